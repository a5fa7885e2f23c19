package render

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"

	"github.com/npillmayer/arbor"
)

// Plain is a monochrome Format. It prints every node as box-drawing
// prefix plus label, leaving the leaf flag unused.
type Plain struct{}

// Preamble is part of interface Format. It prints nothing.
func (Plain) Preamble(w io.Writer) {}

// TreeNode is part of interface Format.
func (Plain) TreeNode(prefix string, label string, leaf bool, w io.Writer) {
	io.WriteString(w, prefix)
	io.WriteString(w, label)
	io.WriteString(w, "\n")
}

// Postamble is part of interface Format. It prints nothing.
func (Plain) Postamble(w io.Writer) {}

// Text writes an indented view of tree t to w, nodes connected with
// box-drawing characters:
//
//	a
//	├── b
//	│   └── c
//	└── d
//	    ├── e
//	    │   └── f
//	    └── g
func Text[T comparable](t arbor.Tree[T], w io.Writer) error {
	return Output(t, w, nil, nil, Plain{})
}

// TextWith is Text with a node filter and a depth bound, both applied
// the way Tree.Levels applies them. maxDepth 0 means all levels.
func TextWith[T comparable](t arbor.Tree[T], w io.Writer, pred func(T) bool, maxDepth int) error {
	return Output(t, w, pred, &Config{MaxDepth: maxDepth}, Plain{})
}
