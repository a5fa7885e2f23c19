// Package html ingests parsed HTML as arbor trees. It resembles the view
// produced by
//
//	document.getElementById("myNode")
//
// in JavaScript: one tree node per element, carrying the element's tag
// name, with non-blank text content as leaf values in between.
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"golang.org/x/net/html"
)

// ElementTree creates a tree from an HTML element node and all its
// descendants. Element nodes contribute their tag name, text nodes their
// trimmed content; whitespace-only text, comments and doctypes are
// dropped.
func ElementTree(n *html.Node) (arbor.Tree[string], error) {
	if n == nil {
		return arbor.Tree[string]{}, arbor.ErrIllegalArguments
	}
	b := arbor.NewBuilder[string]()
	if err := collectNodes(n, b); err != nil {
		return arbor.Tree[string]{}, err
	}
	return b.Tree(), nil
}

// TreeFromHTML parses an HTML fragment and returns it as a tree. It does
// no interpretation of layout or styling. A fragment with several
// top-level nodes is wrapped under a synthetic #document root.
func TreeFromHTML(input io.Reader) (arbor.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return arbor.Tree[string]{}, err
	}
	b := arbor.NewBuilder[string]()
	roots := 0
	for _, n := range nodes {
		if !renders(n) {
			continue
		}
		if err := collectNodes(n, b); err != nil {
			return arbor.Tree[string]{}, err
		}
		roots++
	}
	if roots == 0 {
		return arbor.Tree[string]{}, nil
	}
	if roots > 1 {
		if err := b.AddPair(roots, "#document"); err != nil {
			return arbor.Tree[string]{}, err
		}
	}
	return b.Tree(), nil
}

// collectNodes walks the DOM below n iteratively and replays it into the
// builder as (child count, label) pairs, children before parents.
func collectNodes(n *html.Node, b *arbor.Builder[string]) error {
	type frame struct {
		node    *html.Node
		child   *html.Node // next child to visit
		emitted int        // children that produced a tree node
	}
	stack := []frame{{node: n, child: n.FirstChild}}
	for len(stack) > 0 {
		ti := len(stack) - 1
		if c := stack[ti].child; c != nil {
			stack[ti].child = c.NextSibling
			if renders(c) {
				stack = append(stack, frame{node: c, child: c.FirstChild})
			}
			continue
		}
		top := stack[ti]
		stack = stack[:ti]
		if err := b.AddPair(top.emitted, label(top.node)); err != nil {
			return err
		}
		if len(stack) > 0 {
			stack[len(stack)-1].emitted++
		}
	}
	return nil
}

// renders decides whether a DOM node contributes a tree node.
func renders(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode, html.DocumentNode:
		return true
	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	}
	return false
}

func label(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return strings.TrimSpace(n.Data)
	case html.DocumentNode:
		return "#document"
	}
	return n.Data
}
