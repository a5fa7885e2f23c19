package treeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/arbor"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Buffer sizes for scanning pair files.
const (
	sixtyfourKb = 65536
	oneMb       = 1048576
)

// WritePairs streams tree t to w in pair format, one line per node: the
// node's number of children, a blank, and its value. Lines appear
// children before parents, so readers can rebuild the tree in a single
// pass.
func WritePairs[T comparable](t arbor.Tree[T], w io.Writer) error {
	for n, value := range t.Pairs() {
		if _, err := fmt.Fprintf(w, "%d %v\n", n, value); err != nil {
			return err
		}
	}
	return nil
}

// WriteForest writes several trees back to back. The pair format keeps
// them apart without any separator, every tree simply completes itself.
func WriteForest[T comparable](forest []arbor.Tree[T], w io.Writer) error {
	for _, t := range forest {
		if err := WritePairs(t, w); err != nil {
			return err
		}
	}
	return nil
}

// ReadPairs parses the pair format produced by WritePairs and returns
// the forest it encodes. Values are read as raw strings, running from
// after the first blank to the end of the line. Blank lines are
// skipped. A line whose child count asks for more nodes than have been
// staged makes ReadPairs fail with ErrMalformedPairs, wrapped with the
// offending line number.
func ReadPairs(r io.Reader) ([]arbor.Tree[string], error) {
	b := arbor.NewBuilder[string]()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, sixtyfourKb), oneMb)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		count, value, err := splitPair(line)
		if err == nil {
			err = b.AddPair(count, value)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Forest(), nil
}

// splitPair cuts a pair line into child count and value. A line without
// a blank carries an empty value.
func splitPair(line string) (int, string, error) {
	head, value, _ := strings.Cut(line, " ")
	count, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", arbor.ErrMalformedPairs
	}
	return count, value, nil
}
