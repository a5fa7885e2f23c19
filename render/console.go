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
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Style classifies rendered nodes for colorization.
type Style int8

// Styles to key a console palette by.
const (
	InnerStyle Style = iota // nodes with further visible descendants
	LeafStyle               // nodes acting as leaves of the rendering
)

// Console is a Format for outputting trees to a colored terminal.
//
// Box-drawing prefixes stay uncolored, node labels are printed through
// a palette keyed by style: inner nodes one color, leaves another. A
// node counts as a leaf when nothing below it will be printed, so a
// depth bound or a node filter may turn inner nodes into leaves of the
// rendering.
type Console struct {
	colors map[Style]*color.Color
}

// NewConsole creates a console format. colors maps styles to colors
// used for display; it may contain just a subset of the styles and may
// be nil, in which case a default palette is used.
func NewConsole(colors map[Style]*color.Color) *Console {
	c := &Console{}
	if colors == nil {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() map[Style]*color.Color {
	palette := map[Style]*color.Color{
		InnerStyle: color.New(color.FgBlue),
		LeafStyle:  color.New(color.FgGreen),
	}
	return palette
}

// Preamble is part of interface Format. It prints nothing.
func (c *Console) Preamble(w io.Writer) {}

// TreeNode is part of interface Format. It uses colors to visualize the
// role of a node.
func (c *Console) TreeNode(prefix string, label string, leaf bool, w io.Writer) {
	io.WriteString(w, prefix)
	style := InnerStyle
	if leaf {
		style = LeafStyle
	}
	if col, ok := c.colors[style]; ok {
		col.Fprint(w, label)
	} else {
		io.WriteString(w, label)
	}
	io.WriteString(w, "\n")
}

// Postamble is part of interface Format. It prints nothing.
func (c *Console) Postamble(w io.Writer) {}

// Print outputs tree t to stdout, colorized for terminals.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
// Config.Context will also be created based on heuristics from the user
// environment.
func Print[T comparable](t arbor.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(t, os.Stdout, nil, config, NewConsole(nil))
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
