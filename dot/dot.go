package dot

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/covertree/cover"
)

// ErrNilTree indicates Write was called with a nil tree.
var ErrNilTree = errors.New("dot: tree is nil")

// Write emits t as a Graphviz DOT digraph to w, one line per non-self
// (parent, level, child) edge:
//
//	"lev:i label(parent)"->"lev:i-1 label(child)"
//
// label converts a point to its display string; callers indexing e.g.
// []float64 points might use fmt.Sprint, while string-keyed graphs can
// pass identity. Returns ErrNilTree if t is nil.
func Write[T any](w io.Writer, t *cover.Tree[T], label func(T) string) error {
	if t == nil {
		return ErrNilTree
	}

	if _, err := io.WriteString(w, "digraph {\n"); err != nil {
		return err
	}

	for _, e := range t.Edges() {
		line := fmt.Sprintf("\"lev:%d %s\"->\"lev:%d %s\"\n",
			e.Level, label(e.Parent), e.Level-1, label(e.Child))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")

	return err
}
