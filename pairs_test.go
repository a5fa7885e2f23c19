package arbor

import (
	"errors"
	"slices"
	"testing"
)

func TestPairs(t *testing.T) {
	var counts []int
	var values []string
	for n, v := range docTree().Pairs() {
		counts = append(counts, n)
		values = append(values, v)
	}
	if !slices.Equal(counts, docStructure) || !slices.Equal(values, docValues) {
		t.Errorf("pair stream = %v / %v", counts, values)
	}
}

func TestPairsRoundtrip(t *testing.T) {
	forest, err := FromPairs(docTree().Pairs())
	if err != nil {
		t.Fatalf("FromPairs failed: %v", err)
	}
	if len(forest) != 1 {
		t.Fatalf("expected a single tree, got %d", len(forest))
	}
	if !forest[0].Equal(docTree()) {
		t.Errorf("roundtrip tree = %s", forest[0])
	}
}

func TestFromPairsForest(t *testing.T) {
	pairs := func(yield func(int, string) bool) {
		// two top-level trees: a(b) and c
		for _, p := range []struct {
			n int
			v string
		}{{0, "b"}, {1, "a"}, {0, "c"}} {
			if !yield(p.n, p.v) {
				return
			}
		}
	}
	forest, err := FromPairs[string](pairs)
	if err != nil {
		t.Fatalf("FromPairs failed: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("expected 2 trees, got %d", len(forest))
	}
	if forest[0].String() != "a(b)" || forest[1].String() != "c" {
		t.Errorf("forest = %s, %s", forest[0], forest[1])
	}
}

func TestFromPairsEmpty(t *testing.T) {
	forest, err := FromPairs[string](func(func(int, string) bool) {})
	if err != nil {
		t.Fatalf("FromPairs failed: %v", err)
	}
	if len(forest) != 0 {
		t.Errorf("expected an empty forest, got %v", forest)
	}
}

func TestFromPairsMalformed(t *testing.T) {
	orphan := func(yield func(int, string) bool) {
		yield(2, "a") // claims children that were never streamed
	}
	if _, err := FromPairs[string](orphan); !errors.Is(err, ErrMalformedPairs) {
		t.Errorf("expected ErrMalformedPairs, got %v", err)
	}
	negative := func(yield func(int, string) bool) {
		yield(-1, "a")
	}
	if _, err := FromPairs[string](negative); !errors.Is(err, ErrMalformedPairs) {
		t.Errorf("expected ErrMalformedPairs, got %v", err)
	}
}

func TestPairsStopEarly(t *testing.T) {
	n := 0
	for range docTree().Pairs() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d pairs", n)
	}
}
