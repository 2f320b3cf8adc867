package tdigest

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/hpillai/tdigest/centroid"
)

// Dot writes the digest's centroid sequence to w in Graphviz DOT format,
// for debugging. Each centroid becomes a node labeled with its mean and
// weight; protected endpoint singletons are drawn filled.
func Dot(d *Digest, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")

	n := d.store.Len()
	var nodes, edges string
	d.store.ForEach(func(i int, c centroid.Centroid) bool {
		protected := (i == 0 && c.Mean == d.min && c.Weight == 1) ||
			(i == n-1 && c.Mean == d.max && c.Weight == 1)
		style := ""
		if protected {
			style = ",style=filled,fillcolor=\"#a3d7e4\""
		}
		nodes += fmt.Sprintf("\t\"%d\" [label=\"%g\\nw=%g\"%s];\n", i, c.Mean, c.Weight, style)
		if i > 0 {
			edges += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i-1, i)
		}
		return true
	})

	io.WriteString(w, nodes)
	io.WriteString(w, edges)
	io.WriteString(w, "}\n")
}

// DebugString renders a one-line-per-centroid summary of d, colorizing the
// protected endpoint singletons when w is an interactive terminal. It is
// meant for ad hoc inspection, not for parsing.
func DebugString(d *Digest, w *os.File) string {
	interactive := term.IsTerminal(int(w.Fd()))
	highlight := color.New(color.FgCyan, color.Bold)

	var out string
	n := d.store.Len()
	out += fmt.Sprintf("digest: n_values=%g n_centroids=%d budget=%s\n", d.total, n, d.budget)
	d.store.ForEach(func(i int, c centroid.Centroid) bool {
		line := fmt.Sprintf("  [%d] m=%g c=%g\n", i, c.Mean, c.Weight)
		protected := (i == 0 && c.Mean == d.min && c.Weight == 1) ||
			(i == n-1 && c.Mean == d.max && c.Weight == 1)
		if protected && interactive {
			line = highlight.Sprint(line)
		}
		out += line
		return true
	})
	return out
}
