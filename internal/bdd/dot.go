package bdd

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot renders the ROBDD reachable from root as a GraphViz DOT graph,
// for inspecting a split's diagram by hand. Each node's else edge is drawn
// dashed and its then edge solid. An edge into the terminal points at box
// "1" or "0" according to its complement tag; complement tags on edges into
// internal nodes, and on root itself, are not drawn. Adapted from the teacher's
// dot-export convention, reduced to the single-root case this engine
// actually needs.
func (m *Manager) WriteDot(w io.Writer, root Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph robdd {")
	fmt.Fprintln(bw, `1 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)
	fmt.Fprintln(bw, `0 [shape=box, label="0", style=filled, height=0.3, width=0.3];`)

	visited := map[int32]bool{}
	var walk func(n Node)
	walk = func(n Node) {
		idx := idxOf(m.Regular(n))
		if idx == 0 || visited[idx] {
			return
		}
		visited[idx] = true
		nd := m.nodes[idx]
		fmt.Fprintf(bw, "%d [label=\"x%d\"];\n", idx, nd.level)
		fmt.Fprintf(bw, "%d -> %s [style=dashed];\n", idx, edgeTarget(nd.low))
		fmt.Fprintf(bw, "%d -> %s [style=solid];\n", idx, edgeTarget(nd.high))
		walk(m.Regular(nd.low))
		walk(m.Regular(nd.high))
	}
	walk(root)

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func edgeTarget(n Node) string {
	idx := idxOf(Node(n) &^ 1)
	if idx == 0 {
		if n&1 != 0 {
			return "0"
		}
		return "1"
	}
	return fmt.Sprintf("%d", idx)
}
