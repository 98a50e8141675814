package sortedmap

import (
	"fmt"
	"io"

	"github.com/npillmayer/sortedmap/avl"
)

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes).
//
// A tree-backed map is drawn as its node graph; an array-backed map as a
// single record box holding the ordered entries.
func Map2Dot[K, V any](m Map[K, V], w io.Writer) {
	if m.usesTree() {
		avl.Tree2Dot(m.tree, w)
		return
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	label := ""
	for i, e := range m.Entries() {
		if i > 0 {
			label += "|"
		}
		label += fmt.Sprintf("%v", e.Key)
	}
	fmt.Fprintf(w, "\"array\" [shape=record,style=filled,fillcolor=\"#a3d7e4\",label=\"%s\"];\n", label)
	io.WriteString(w, "}\n")
}
