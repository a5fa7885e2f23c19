package render

import (
	"strings"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func docTree() arbor.Tree[string] {
	c := arbor.New("c")
	b := arbor.New("b", c)
	f := arbor.New("f")
	e := arbor.New("e", f)
	g := arbor.New("g")
	d := arbor.New("d", e, g)
	return arbor.New("a", b, d)
}

func TestText(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	var sb strings.Builder
	if err := Text(docTree(), &sb); err != nil {
		t.Fatalf("cannot render tree: %v", err)
	}
	want := `a
├── b
│   └── c
└── d
    ├── e
    │   └── f
    └── g
`
	if sb.String() != want {
		t.Errorf("rendering is\n%s\nshould be\n%s", sb.String(), want)
	}
}

func TestTextOfEmptyTree(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	var sb strings.Builder
	if err := Text(arbor.Tree[string]{}, &sb); err != nil {
		t.Fatalf("cannot render tree: %v", err)
	}
	if sb.String() != "" {
		t.Errorf("rendering of empty tree is %q, should be empty", sb.String())
	}
}

func TestTextWithFilter(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	var sb strings.Builder
	notF := func(value string) bool { return value != "f" }
	if err := TextWith(docTree(), &sb, notF, 0); err != nil {
		t.Fatalf("cannot render tree: %v", err)
	}
	want := `a
├── b
│   └── c
└── d
    ├── e
    └── g
`
	if sb.String() != want {
		t.Errorf("rendering is\n%s\nshould be\n%s", sb.String(), want)
	}
}

func TestTextWithDepthBound(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	var sb strings.Builder
	if err := TextWith(docTree(), &sb, nil, 2); err != nil {
		t.Fatalf("cannot render tree: %v", err)
	}
	want := `a
├── b
└── d
`
	if sb.String() != want {
		t.Errorf("rendering is\n%s\nshould be\n%s", sb.String(), want)
	}
}

func TestClipLongLabels(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	clipped := clip("abcdefgh", 4, uax11.LatinContext)
	if clipped != "abc…" {
		t.Errorf("clipped label is %q, should be abc…", clipped)
	}
	if clip("abc", 4, uax11.LatinContext) != "abc" {
		t.Errorf("short label should stay untouched")
	}
}

func TestOutputClipsToLineWidth(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	tree := arbor.New("abcdefghij")
	var sb strings.Builder
	config := &Config{LineWidth: 6, Context: uax11.LatinContext}
	if err := Output(tree, &sb, nil, config, Plain{}); err != nil {
		t.Fatalf("cannot render tree: %v", err)
	}
	if sb.String() != "abcde…\n" {
		t.Errorf("rendering is %q, should be abcde…", sb.String())
	}
}

func TestOutputWithoutFormat(t *testing.T) {
	if err := Output(docTree(), &strings.Builder{}, nil, nil, nil); err == nil {
		t.Errorf("expected rendering without format to fail")
	}
}
