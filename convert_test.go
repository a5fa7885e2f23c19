package arbor

import (
	"testing"
)

func TestInflate(t *testing.T) {
	root := Inflate(docStructure, docValues)
	if root == nil {
		t.Fatal("inflated root is nil")
	}
	if root.Value != "a" || len(root.Children) != 2 {
		t.Fatalf("root = %v with %d children", root.Value, len(root.Children))
	}
	if root.Children[0].Value != "b" || root.Children[1].Value != "d" {
		t.Errorf("children = %v, %v", root.Children[0].Value, root.Children[1].Value)
	}
	e := root.Children[1].Children[0]
	if e.Value != "e" || len(e.Children) != 1 || e.Children[0].Value != "f" {
		t.Errorf("grandchild wiring wrong: %v", e.Value)
	}
	if Inflate[string](nil, nil) != nil {
		t.Error("inflating the empty encoding should give nil")
	}
}

func TestDeflate(t *testing.T) {
	structure, values := Deflate(docTree().Root())
	for i, n := range docStructure {
		if structure[i] != n || values[i] != docValues[i] {
			t.Fatalf("encoding differs at %d: (%d,%s)", i, structure[i], values[i])
		}
	}
	if s, v := Deflate[string](nil); len(s) != 0 || len(v) != 0 {
		t.Error("deflating nil should give empty arrays")
	}
}

func TestInflateDeflateRoundtrip(t *testing.T) {
	structure, values := Deflate(Inflate(docStructure, docValues))
	if len(structure) != len(docStructure) {
		t.Fatalf("roundtrip length %d, want %d", len(structure), len(docStructure))
	}
	for i, n := range docStructure {
		if structure[i] != n || values[i] != docValues[i] {
			t.Fatalf("roundtrip differs at %d: (%d,%s)", i, structure[i], values[i])
		}
	}
}

func TestConversionIsCached(t *testing.T) {
	tree := FromNode(NewNode("a", NewNode("b")))
	s1, _ := tree.flat()
	s2, _ := tree.flat()
	if &s1[0] != &s2[0] {
		t.Error("deflation should run at most once per tree")
	}
	tree = New("a", New("b"))
	n1 := tree.Root()
	n2 := tree.Root()
	if n1 != n2 {
		t.Error("inflation should run at most once per tree")
	}
}

func TestRootOfArrayBornTree(t *testing.T) {
	root := docTree().Root()
	if root.Value != "a" || len(root.Children) != 2 {
		t.Fatalf("root = %v with %d children", root.Value, len(root.Children))
	}
	if root.Children[1].Children[1].Value != "g" {
		t.Error("node form misses g")
	}
}
