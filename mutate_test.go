package arbor

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertValue(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := docTree()
	out, err := tree.InsertValue(5, "x", Lax)
	if err != nil {
		t.Fatalf("InsertValue failed: %v", err)
	}
	t.Logf("out = %s", out)
	if out.String() != "a(b(c),d(x,e(f),g))" {
		t.Errorf("unexpected result: %s", out)
	}
	if tree.String() != "a(b(c),d(e(f),g))" {
		t.Errorf("receiver was modified: %s", tree)
	}
}

func TestInsertValueDistinctAbsorbed(t *testing.T) {
	out, err := docTree().InsertValue(5, "e", Distinct)
	if err != nil {
		t.Fatalf("InsertValue failed: %v", err)
	}
	if !out.Equal(docTree()) {
		t.Errorf("colliding insert should be absorbed, got %s", out)
	}
}

func TestInsertValueOutOfBounds(t *testing.T) {
	if _, err := docTree().InsertValue(7, "x", Lax); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := docTree().InsertValue(-1, "x", Lax); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestInsertTree(t *testing.T) {
	out, err := docTree().InsertTree(5, New("e", New("x")), Distinct)
	if err != nil {
		t.Fatalf("InsertTree failed: %v", err)
	}
	if out.String() != "a(b(c),d(e(x,f),g))" {
		t.Errorf("merged insert = %s", out)
	}
	out, err = docTree().InsertTree(5, New("e", New("x")), Lax)
	if err != nil {
		t.Fatalf("InsertTree failed: %v", err)
	}
	if out.String() != "a(b(c),d(e(x),e(f),g))" {
		t.Errorf("lax insert = %s", out)
	}
}

func TestInsertTreeEmptyIsNoop(t *testing.T) {
	tree := docTree()
	out, err := tree.InsertTree(5, Tree[string]{}, Lax)
	if err != nil {
		t.Fatalf("InsertTree failed: %v", err)
	}
	if !out.Equal(tree) {
		t.Errorf("empty insert changed the tree: %s", out)
	}
}

func TestInsertChildren(t *testing.T) {
	subs := []Tree[string]{New("x"), New("y")}
	out, err := docTree().InsertChildren(6, subs, Lax)
	if err != nil {
		t.Fatalf("InsertChildren failed: %v", err)
	}
	if out.String() != "a(x,y,b(c),d(e(f),g))" {
		t.Errorf("children spliced wrong: %s", out)
	}
}

func TestInsertChildrenDistinct(t *testing.T) {
	// e collides with an existing child of d, x does not
	subs := []Tree[string]{New("e"), New("x")}
	out, err := docTree().InsertChildren(5, subs, Distinct)
	if err != nil {
		t.Fatalf("InsertChildren failed: %v", err)
	}
	if out.String() != "a(b(c),d(x,e(f),g))" {
		t.Errorf("children merged wrong: %s", out)
	}
}

func TestInsertBranchDistinct(t *testing.T) {
	out, err := docTree().InsertBranch(6, []string{"a", "d", "e", "y"}, Distinct)
	if err != nil {
		t.Fatalf("InsertBranch failed: %v", err)
	}
	if out.String() != "a(b(c),d(e(y,f),g))" {
		t.Errorf("grafted suffix wrong: %s", out)
	}
}

func TestInsertBranchLax(t *testing.T) {
	out, err := docTree().InsertBranch(6, []string{"a", "d", "e", "y"}, Lax)
	if err != nil {
		t.Fatalf("InsertBranch failed: %v", err)
	}
	if out.String() != "a(d(e(y)),b(c),d(e(f),g))" {
		t.Errorf("lax graft wrong: %s", out)
	}
}

func TestInsertBranchFullyMatched(t *testing.T) {
	out, err := docTree().InsertBranch(6, []string{"a", "d", "e"}, Distinct)
	if err != nil {
		t.Fatalf("InsertBranch failed: %v", err)
	}
	if !out.Equal(docTree()) {
		t.Errorf("fully matched branch should change nothing, got %s", out)
	}
}

func TestInsertBranchHeadMismatch(t *testing.T) {
	if _, err := docTree().InsertBranch(6, []string{"x", "y"}, Lax); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestInsertBranchIntoEmptyTree(t *testing.T) {
	var tree Tree[string]
	out, err := tree.InsertBranch(-1, []string{"a", "b"}, Lax)
	if err != nil {
		t.Fatalf("InsertBranch failed: %v", err)
	}
	if out.String() != "a(b)" {
		t.Errorf("branch-born tree = %s", out)
	}
	if _, err = tree.InsertBranch(0, []string{"a"}, Lax); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err = docTree().InsertBranch(-1, []string{"a"}, Lax); !errors.Is(err, ErrNotATree) {
		t.Errorf("expected ErrNotATree, got %v", err)
	}
}

func TestUpdateValue(t *testing.T) {
	out, err := docTree().UpdateValue(3, "x", Lax)
	if err != nil {
		t.Fatalf("UpdateValue failed: %v", err)
	}
	if out.String() != "a(b(c),d(x(f),g))" {
		t.Errorf("update wrong: %s", out)
	}
}

func TestUpdateValueDistinctDissolves(t *testing.T) {
	// renaming b to d collides with its sibling; b dissolves into d and
	// hands c over to d's front
	out, err := docTree().UpdateValue(1, "d", Distinct)
	if err != nil {
		t.Fatalf("UpdateValue failed: %v", err)
	}
	if out.String() != "a(d(c,e(f),g))" {
		t.Errorf("dissolve wrong: %s", out)
	}
}

func TestUpdateTree(t *testing.T) {
	out, err := docTree().UpdateTree(3, New("z"), Lax)
	if err != nil {
		t.Fatalf("UpdateTree failed: %v", err)
	}
	if out.String() != "a(b(c),d(z,g))" {
		t.Errorf("replace wrong: %s", out)
	}
}

func TestUpdateTreeDistinctDissolves(t *testing.T) {
	out, err := docTree().UpdateTree(1, New("d", New("y")), Distinct)
	if err != nil {
		t.Fatalf("UpdateTree failed: %v", err)
	}
	if out.String() != "a(d(y,e(f),g))" {
		t.Errorf("dissolve wrong: %s", out)
	}
}

func TestUpdateTreeEmptyRemoves(t *testing.T) {
	out, err := docTree().UpdateTree(3, Tree[string]{}, Lax)
	if err != nil {
		t.Fatalf("UpdateTree failed: %v", err)
	}
	if out.String() != "a(b(c),d(g))" {
		t.Errorf("removal wrong: %s", out)
	}
}

func TestModifyValue(t *testing.T) {
	out, err := docTree().ModifyValue(5, strings.ToUpper, Lax)
	if err != nil {
		t.Fatalf("ModifyValue failed: %v", err)
	}
	if out.String() != "a(b(c),D(e(f),g))" {
		t.Errorf("modified value wrong: %s", out)
	}
	if _, err = docTree().ModifyValue(5, nil, Lax); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestModifyTree(t *testing.T) {
	fn := func(sub Tree[string]) Tree[string] {
		if sub.String() != "b(c)" {
			t.Errorf("callback sees %s", sub)
		}
		return New("z")
	}
	out, err := docTree().ModifyTree(1, fn, Lax)
	if err != nil {
		t.Fatalf("ModifyTree failed: %v", err)
	}
	if out.String() != "a(z,d(e(f),g))" {
		t.Errorf("modified tree wrong: %s", out)
	}
}

func TestModifyTreeToEmptyRemoves(t *testing.T) {
	drop := func(Tree[string]) Tree[string] { return Tree[string]{} }
	out, err := docTree().ModifyTree(1, drop, Lax)
	if err != nil {
		t.Fatalf("ModifyTree failed: %v", err)
	}
	if out.String() != "a(d(e(f),g))" {
		t.Errorf("dropped subtree wrong: %s", out)
	}
}

func TestRemoveValue(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	out, err := docTree().RemoveValue(5, Lax)
	if err != nil {
		t.Fatalf("RemoveValue failed: %v", err)
	}
	t.Logf("out = %s", out)
	if out.String() != "a(b(c),e(f),g)" {
		t.Errorf("children not promoted in place: %s", out)
	}
}

func TestRemoveValueDistinctMergesPromoted(t *testing.T) {
	tree := New("a",
		New("b", New("c")),
		New("d",
			New("b", New("x")),
			New("g")))
	out, err := tree.RemoveValue(5, Distinct)
	if err != nil {
		t.Fatalf("RemoveValue failed: %v", err)
	}
	if out.String() != "a(b(x,c),g)" {
		t.Errorf("promoted child not merged: %s", out)
	}
}

func TestRemoveValueAtRoot(t *testing.T) {
	if _, err := docTree().RemoveValue(6, Lax); !errors.Is(err, ErrNotATree) {
		t.Errorf("expected ErrNotATree, got %v", err)
	}
	out, err := New("a", New("b", New("c"))).RemoveValue(2, Lax)
	if err != nil {
		t.Fatalf("RemoveValue failed: %v", err)
	}
	if out.String() != "b(c)" {
		t.Errorf("single child should become the root: %s", out)
	}
	out, err = New("a").RemoveValue(0, Lax)
	if err != nil {
		t.Fatalf("RemoveValue failed: %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("removing the only node should empty the tree: %s", out)
	}
}

func TestRemoveTree(t *testing.T) {
	out, err := docTree().RemoveTree(5, Lax)
	if err != nil {
		t.Fatalf("RemoveTree failed: %v", err)
	}
	if out.String() != "a(b(c))" {
		t.Errorf("subtree removal wrong: %s", out)
	}
	out, err = docTree().RemoveTree(6, Lax)
	if err != nil {
		t.Fatalf("RemoveTree failed: %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("removing the root subtree should empty the tree: %s", out)
	}
}

func TestPathAddressedMutation(t *testing.T) {
	tree := docTree()
	out, ok := tree.UpdateValueAt([]string{"a", "d", "e"}, "x", Lax)
	if !ok || out.String() != "a(b(c),d(x(f),g))" {
		t.Errorf("UpdateValueAt = %s, %v", out, ok)
	}
	out, ok = tree.InsertValueAt([]string{"a", "b"}, "y", Lax)
	if !ok || out.String() != "a(b(y,c),d(e(f),g))" {
		t.Errorf("InsertValueAt = %s, %v", out, ok)
	}
	out, ok = tree.RemoveTreeAt([]string{"a", "d"}, Lax)
	if !ok || out.String() != "a(b(c))" {
		t.Errorf("RemoveTreeAt = %s, %v", out, ok)
	}
	out, ok = tree.InsertTreeAt([]string{"a", "b"}, New("z"), Lax)
	if !ok || out.String() != "a(b(z,c),d(e(f),g))" {
		t.Errorf("InsertTreeAt = %s, %v", out, ok)
	}
	out, ok = tree.UpdateTreeAt([]string{"a", "b"}, New("n", New("m")), Lax)
	if !ok || out.String() != "a(n(m),d(e(f),g))" {
		t.Errorf("UpdateTreeAt = %s, %v", out, ok)
	}
	out, ok = tree.ModifyValueAt([]string{"a", "d"}, strings.ToUpper, Lax)
	if !ok || out.String() != "a(b(c),D(e(f),g))" {
		t.Errorf("ModifyValueAt = %s, %v", out, ok)
	}
	out, ok = tree.RemoveValueAt([]string{"a", "d"}, Lax)
	if !ok || out.String() != "a(b(c),e(f),g)" {
		t.Errorf("RemoveValueAt = %s, %v", out, ok)
	}
	out, ok = tree.ModifyTreeAt([]string{"a", "b"}, func(Tree[string]) Tree[string] { return New("q") }, Lax)
	if !ok || out.String() != "a(q,d(e(f),g))" {
		t.Errorf("ModifyTreeAt = %s, %v", out, ok)
	}
}

func TestPathAddressedMutationMisses(t *testing.T) {
	tree := docTree()
	out, ok := tree.UpdateValueAt([]string{"a", "x"}, "y", Lax)
	if ok || !out.Equal(tree) {
		t.Errorf("missing path should leave the tree alone, got %s, %v", out, ok)
	}
	// the root of the doc tree has two children, so the operation itself
	// is inapplicable even though the path resolves
	out, ok = tree.RemoveValueAt([]string{"a"}, Lax)
	if ok || !out.Equal(tree) {
		t.Errorf("inapplicable removal should report false, got %s, %v", out, ok)
	}
}

func TestPathAddressedMutationByKey(t *testing.T) {
	tree := New("alpha",
		New("bravo", New("charlie")),
		New("delta"))
	initial := func(v string) byte { return v[0] }
	out, ok := UpdateValueAtBy(tree, []byte{'a', 'b'}, initial, "BRAVO", Lax)
	if !ok || out.String() != "alpha(BRAVO(charlie),delta)" {
		t.Errorf("UpdateValueAtBy = %s, %v", out, ok)
	}
	out, ok = InsertValueAtBy(tree, []byte{'a', 'd'}, initial, "echo", Lax)
	if !ok || out.String() != "alpha(bravo(charlie),delta(echo))" {
		t.Errorf("InsertValueAtBy = %s, %v", out, ok)
	}
	out, ok = RemoveTreeAtBy(tree, []byte{'a', 'b'}, initial, Lax)
	if !ok || out.String() != "alpha(delta)" {
		t.Errorf("RemoveTreeAtBy = %s, %v", out, ok)
	}
	out, ok = InsertTreeAtBy(tree, []byte{'a'}, initial, New("zulu"), Lax)
	if !ok || out.String() != "alpha(zulu,bravo(charlie),delta)" {
		t.Errorf("InsertTreeAtBy = %s, %v", out, ok)
	}
	out, ok = UpdateTreeAtBy(tree, []byte{'a', 'd'}, initial, New("golf"), Lax)
	if !ok || out.String() != "alpha(bravo(charlie),golf)" {
		t.Errorf("UpdateTreeAtBy = %s, %v", out, ok)
	}
	out, ok = ModifyValueAtBy(tree, []byte{'a', 'd'}, initial, strings.ToUpper, Lax)
	if !ok || out.String() != "alpha(bravo(charlie),DELTA)" {
		t.Errorf("ModifyValueAtBy = %s, %v", out, ok)
	}
	out, ok = RemoveValueAtBy(tree, []byte{'a', 'b'}, initial, Lax)
	if !ok || out.String() != "alpha(charlie,delta)" {
		t.Errorf("RemoveValueAtBy = %s, %v", out, ok)
	}
	out, ok = ModifyTreeAtBy(tree, []byte{'a', 'b'}, initial, func(Tree[string]) Tree[string] { return New("mike") }, Lax)
	if !ok || out.String() != "alpha(mike,delta)" {
		t.Errorf("ModifyTreeAtBy = %s, %v", out, ok)
	}
	if _, ok = UpdateValueAtBy(tree, []byte{'x'}, initial, "y", Lax); ok {
		t.Error("missing key path should report false")
	}
}
