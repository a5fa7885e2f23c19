package arbor

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	var sb strings.Builder
	Tree2Dot(docTree(), &sb)
	out := sb.String()
	t.Logf("dot output:\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Error("missing digraph header")
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("missing digraph footer")
	}
	for _, want := range []string{
		`"6" [label="6: a"`,
		`"6" -> "1";`,
		`"6" -> "5";`,
		`"5" -> "3";`,
		`shape=box`,
		`shape=circle`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q", want)
		}
	}
}

func TestTree2DotEmptyTree(t *testing.T) {
	var sb strings.Builder
	Tree2Dot(Tree[string]{}, &sb)
	if sb.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n" {
		t.Errorf("empty tree output = %q", sb.String())
	}
}

func TestTree2DotEscapesQuotes(t *testing.T) {
	var sb strings.Builder
	Tree2Dot(New(`say "hi"`), &sb)
	if !strings.Contains(sb.String(), `say \"hi\"`) {
		t.Errorf("quotes not escaped: %s", sb.String())
	}
}
