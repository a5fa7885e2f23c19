package render

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config holds parameters of a tree rendering.
type Config struct {
	LineWidth int            // line length in ‘en’s, i.e. fixed width positions
	MaxDepth  int            // tree levels to show, 0 means all
	Context   *uax11.Context // language and script context for line width
}

// Format is an interface for rendering targets. The output driver walks
// a tree and hands every node line to the format, which decides its
// decoration.
type Format interface {
	// Preamble is called before the first node of a tree is rendered.
	Preamble(w io.Writer)
	// TreeNode is called for every rendered node. prefix holds the
	// box-drawing characters leading up to the node, label the node's
	// value, already clipped to the configured line width. leaf tells
	// whether anything below the node will still be printed.
	TreeNode(prefix string, label string, leaf bool, w io.Writer)
	// Postamble is called after the last node of a tree.
	Postamble(w io.Writer)
}

// Output renders tree t to w, one line per node, nodes filtered by pred
// (which may be nil). format decides the decoration of every line.
//
// Output will not break long lines, but rather clips node labels to the
// line width given by config. Clipping counts fixed width positions, not
// bytes, with wide and ambiguous characters resolved through the
// config's uax11.Context. Config may be set to nil, in which case a
// default configuration with a line width of 65 en is used.
func Output[T comparable](t arbor.Tree[T], w io.Writer, pred func(T) bool, config *Config, format Format) error {
	if format == nil {
		return arbor.ErrIllegalArguments
	}
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	width := config.LineWidth
	if width <= 0 {
		width = 65
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	depth := config.MaxDepth
	if depth <= 0 {
		depth = math.MaxInt
	}
	var lines []arbor.Level[T]
	for level := range t.Levels(pred, depth) {
		lines = append(lines, level)
	}
	tracer().P("format", "tree").Debugf("rendering %d of %d nodes", len(lines), t.Size())
	last := lastOfSiblings(lines)
	format.Preamble(w)
	open := make(map[int]bool) // levels with unfinished sibling runs
	for i, line := range lines {
		prefix := linePrefix(line.Depth, last[i], open)
		open[line.Depth] = !last[i]
		budget := width - utf8.RuneCountInString(prefix)
		label := clip(fmt.Sprint(line.Value), budget, context)
		format.TreeNode(prefix, label, line.Leaf, w)
	}
	format.Postamble(w)
	return nil
}

// lastOfSiblings flags, for every line, whether it is the last one of
// its sibling run. A line is last if no further line of the same depth
// follows before the walk returns to a shallower level.
func lastOfSiblings[T comparable](lines []arbor.Level[T]) []bool {
	last := make([]bool, len(lines))
	ahead := make(map[int]bool) // depths seen below the current position
	for i := len(lines) - 1; i >= 0; i-- {
		d := lines[i].Depth
		last[i] = !ahead[d]
		ahead[d] = true
		for k := range ahead {
			if k > d {
				delete(ahead, k)
			}
		}
	}
	return last
}

// linePrefix draws the box-drawing columns leading up to a node at the
// given depth. Depth 1 is the root, printed without decoration.
func linePrefix(depth int, last bool, open map[int]bool) string {
	if depth <= 1 {
		return ""
	}
	var sb strings.Builder
	for k := 2; k < depth; k++ {
		if open[k] {
			sb.WriteString("│   ")
		} else {
			sb.WriteString("    ")
		}
	}
	if last {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("├── ")
	}
	return sb.String()
}

// clip cuts label to at most budget fixed width positions, appending an
// ellipsis if anything had to go.
func clip(label string, budget int, context *uax11.Context) string {
	if budget < 1 {
		budget = 1
	}
	gstr := grapheme.StringFromString(label)
	if uax11.StringWidth(gstr, context) <= budget {
		return label
	}
	prefix := ""
	for _, r := range label {
		cand := prefix + string(r)
		gcand := grapheme.StringFromString(cand)
		if uax11.StringWidth(gcand, context)+1 > budget {
			break
		}
		prefix = cand
	}
	return prefix + "…"
}
