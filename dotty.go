package arbor

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor/arraytree"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Node identifiers are the array positions of the encoded tree, so the
// output doubles as a picture of the encoding itself.
func Tree2Dot[T comparable](t Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	structure, values := t.flat()
	nodelist, edgelist := "", ""
	for i, n := range structure {
		label := fmt.Sprintf("%d: %s", i, dotEscape(values[i]))
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(n == 0))
		for _, child := range arraytree.ChildIndices(structure, i) {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i, child)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotEscape[T any](value T) string {
	s := fmt.Sprint(value)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
