package scale

import (
	"math"
	"testing"
)

func TestK1EndpointsAndSymmetry(t *testing.T) {
	k := K1{}
	const delta = 100.0
	if got := k.K(0, delta); math.Abs(got-(-delta/4)) > 1e-9 {
		t.Errorf("K1(0) = %v, want %v", got, -delta/4)
	}
	if got := k.K(1, delta); math.Abs(got-delta/4) > 1e-9 {
		t.Errorf("K1(1) = %v, want %v", got, delta/4)
	}
	if got := k.K(0.5, delta); math.Abs(got) > 1e-9 {
		t.Errorf("K1(0.5) = %v, want 0", got)
	}
	for _, q := range []float64{0.05, 0.2, 0.4} {
		left := k.K(0.5, delta) - k.K(0.5-q, delta)
		right := k.K(0.5+q, delta) - k.K(0.5, delta)
		if math.Abs(left-right) > 1e-9 {
			t.Errorf("K1 not symmetric about 0.5 at q=%v: left=%v right=%v", q, left, right)
		}
	}
}

func TestK1StrictlyIncreasing(t *testing.T) {
	k := K1{}
	prev := k.K(0, 50)
	for q := 0.01; q <= 1.0; q += 0.01 {
		cur := k.K(q, 50)
		if cur <= prev {
			t.Fatalf("K1 not strictly increasing at q=%v: prev=%v cur=%v", q, prev, cur)
		}
		prev = cur
	}
}

func TestK2EndpointsAndSymmetry(t *testing.T) {
	k := K2{}
	const delta = 100.0
	if got := k.K(0, delta); math.Abs(got-(-delta)) > 1e-9 {
		t.Errorf("K2(0) = %v, want %v", got, -delta)
	}
	if got := k.K(1, delta); math.Abs(got-delta) > 1e-9 {
		t.Errorf("K2(1) = %v, want %v", got, delta)
	}
	if got := k.K(0.5, delta); math.Abs(got) > 1e-9 {
		t.Errorf("K2(0.5) = %v, want 0", got)
	}
	for _, q := range []float64{0.05, 0.2, 0.4} {
		left := k.K(0.5, delta) - k.K(0.5-q, delta)
		right := k.K(0.5+q, delta) - k.K(0.5, delta)
		if math.Abs(left-right) > 1e-9 {
			t.Errorf("K2 not symmetric about 0.5 at q=%v: left=%v right=%v", q, left, right)
		}
	}
}

func TestK2StrictlyIncreasing(t *testing.T) {
	k := K2{}
	prev := k.K(0, 50)
	for q := 0.01; q <= 1.0; q += 0.01 {
		cur := k.K(q, 50)
		if cur <= prev {
			t.Fatalf("K2 not strictly increasing at q=%v: prev=%v cur=%v", q, prev, cur)
		}
		prev = cur
	}
}

func TestCanMergeUnboundedAlwaysFalse(t *testing.T) {
	if CanMerge(0.1, 0.9, 100, K1{}, false) {
		t.Fatal("CanMerge must be false when bounded=false regardless of positions")
	}
}

func TestCanMergeTieBreaksTowardMerging(t *testing.T) {
	fn := K1{}
	const delta = 10.0
	// Find a qHi such that k(qHi) - k(0) is exactly 1, by construction:
	// k(0) = -delta/4, so asin(2*qHi-1) = 2*pi/delta - pi/2, which gives
	// qHi = (1-cos(2*pi/delta))/2.
	qHi := (1 - math.Cos(2*math.Pi/delta)) / 2
	if !CanMerge(0, qHi, delta, fn, true) {
		t.Fatalf("expected exact-equality budget to merge (<=), got false; diff=%v",
			fn.K(qHi, delta)-fn.K(0, delta))
	}
}

func TestCanMergeRejectsOverBudget(t *testing.T) {
	fn := K1{}
	// At delta=100 the full K1 range is 100/2 = 50, far above the limit of 1.
	if CanMerge(0, 1, 100, fn, true) {
		t.Fatal("expected full-range merge at delta=100 to be rejected")
	}
}
