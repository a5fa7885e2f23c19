package arbor

import (
	"strings"
	"testing"
)

func TestMap(t *testing.T) {
	tree := docTree()
	out := Map(tree, strings.ToUpper)
	if out.String() != "A(B(C),D(E(F),G))" {
		t.Errorf("mapped tree = %s", out)
	}
	if tree.String() != "a(b(c),d(e(f),g))" {
		t.Errorf("receiver was modified: %s", tree)
	}
	lengths := Map(tree, func(v string) int { return len(v) })
	if lengths.Size() != 7 {
		t.Errorf("mapped tree changed shape: %d nodes", lengths.Size())
	}
}

// leaf is the FlatMap mapper that reproduces every node unchanged.
func leaf(v string) Tree[string] {
	return New(v)
}

func TestFlatMapIdentity(t *testing.T) {
	out := FlatMap(docTree(), leaf)
	if !out.Equal(docTree()) {
		t.Errorf("identity mapping changed the tree: %s", out)
	}
}

func TestFlatMapDropsNode(t *testing.T) {
	drop := func(v string) Tree[string] {
		if v == "b" {
			return Tree[string]{}
		}
		return leaf(v)
	}
	out := FlatMap(docTree(), drop)
	if out.String() != "a(c,d(e(f),g))" {
		t.Errorf("dropping b went wrong: %s", out)
	}
}

func TestFlatMapGeneratedChildrenComeFirst(t *testing.T) {
	expand := func(v string) Tree[string] {
		return New(v, New(v+"!"))
	}
	out := FlatMap(New("b", New("c")), expand)
	if out.String() != "b(b!,c(c!))" {
		t.Errorf("expansion went wrong: %s", out)
	}
}

func TestFlatMapDistinctMergesSiblings(t *testing.T) {
	tree := New("a",
		New("b", New("x")),
		New("b", New("y")))
	out := FlatMapDistinct(tree, leaf)
	if out.String() != "a(b(y,x))" {
		t.Errorf("sibling merge went wrong: %s", out)
	}
	// the lax variant keeps both b siblings
	out = FlatMap(tree, leaf)
	if out.String() != "a(b(x),b(y))" {
		t.Errorf("lax mapping should keep duplicates: %s", out)
	}
}

func TestFlatMapVanishingRoot(t *testing.T) {
	drop := func(v string) Tree[string] {
		if v == "a" {
			return Tree[string]{}
		}
		return leaf(v)
	}
	out := FlatMap(docTree(), drop)
	if out.String() != "b(c)" {
		t.Errorf("expected the leftmost top-level tree, got %s", out)
	}
	forest := FlatMapForest(docTree(), drop, Lax)
	if len(forest) != 2 {
		t.Fatalf("expected 2 top-level trees, got %d", len(forest))
	}
	if forest[0].String() != "b(c)" || forest[1].String() != "d(e(f),g)" {
		t.Errorf("forest = %s, %s", forest[0], forest[1])
	}
}

func TestFlatMapForestSingleTree(t *testing.T) {
	forest := FlatMapForest(docTree(), leaf, Distinct)
	if len(forest) != 1 || !forest[0].Equal(docTree()) {
		t.Errorf("forest = %v", forest)
	}
}

func TestFlatMapEmptyAndNil(t *testing.T) {
	if out := FlatMap(Tree[string]{}, leaf); !out.IsEmpty() {
		t.Errorf("mapping the empty tree = %s", out)
	}
	if out := FlatMap[string, string](docTree(), nil); !out.IsEmpty() {
		t.Errorf("mapping with nil mapper = %s", out)
	}
	if out := Map[string, string](docTree(), nil); !out.IsEmpty() {
		t.Errorf("Map with nil mapper = %s", out)
	}
}
