package tdigest

import (
	"bytes"
	"strings"
	"testing"
)

func TestDotProducesValidGraphSkeleton(t *testing.T) {
	d, err := FromValues([]float64{1, 2, 3, 4, 5}, WithMaxCentroids(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	Dot(d, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("Dot output missing digraph header: %q", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("Dot output missing closing brace: %q", out)
	}
}
