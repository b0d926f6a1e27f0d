// Package cover: the invariant checker, offered as a correctness oracle
// for tests rather than as part of normal query operation. It walks the
// tree level by level checking nesting (each level's cover set contains
// the one above it), covering (every node has exactly one qualifying
// parent within radius at the level above), and separation (every two nodes
// at the same level are farther apart than that level's radius).
package cover

import "fmt"

// Violation names which structural invariant failed, and at which level.
type Violation struct {
	Kind  string // "nesting", "covering", or "separation"
	Level int
}

func (v *Violation) Error() string {
	return fmt.Sprintf("cover: %s invariant violated at level %d", v.Kind, v.Level)
}

// nodesAtLevel returns the full cover set (self-inclusive) present at
// level, computed by descending from the root one level at a time. Returns
// nil on an empty tree.
func (t *Tree[T]) nodesAtLevel(level int) []*Node[T] {
	if t.root == nil {
		return nil
	}

	current := []*Node[T]{t.root}
	for i := t.maxLevel; i > level; i-- {
		current = expandLevel(current, i)
	}

	return current
}

// expandLevel replaces each node in nodes with its childrenAtLevel(level),
// deduplicated by pointer identity.
func expandLevel[T any](nodes []*Node[T], level int) []*Node[T] {
	seen := make(map[*Node[T]]struct{}, len(nodes))
	out := make([]*Node[T], 0, len(nodes))
	for _, n := range nodes {
		for _, c := range n.childrenAtLevel(level) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

// CheckInvariants verifies nesting, covering and separation at every level
// from MaxLevel down to MinLevel. Returns (true, nil) if the tree is empty
// or every invariant holds; otherwise returns (false, *Violation) naming the
// first offending level and invariant. This never panics, even when given
// a tree built with a distance function that violates the metric axioms —
// it simply reports whatever it observes.
func (t *Tree[T]) CheckInvariants() (bool, error) {
	if t.root == nil {
		return true, nil
	}

	current := []*Node[T]{t.root}
	for i := t.maxLevel; i >= t.minLevel; i-- {
		next := expandLevel(current, i)

		if !nodeSetSubset(current, next) {
			return false, &Violation{Kind: "nesting", Level: i}
		}
		if !t.checkCovering(next, current, i) {
			return false, &Violation{Kind: "covering", Level: i}
		}
		if !t.checkSeparation(current, i) {
			return false, &Violation{Kind: "separation", Level: i}
		}

		current = next
	}

	return true, nil
}

// nodeSetSubset reports whether every node in a also appears in b, by
// pointer identity.
func nodeSetSubset[T any](a, b []*Node[T]) bool {
	inB := make(map[*Node[T]]struct{}, len(b))
	for _, n := range b {
		inB[n] = struct{}{}
	}
	for _, n := range a {
		if _, ok := inB[n]; !ok {
			return false
		}
	}

	return true
}

// checkCovering verifies that every p in cNext has exactly one q in c with
// d(p,q) <= base^level and p listed as q's level-level child.
func (t *Tree[T]) checkCovering(cNext, c []*Node[T], level int) bool {
	radius := t.radius(level)
	for _, p := range cNext {
		matches := 0
		for _, q := range c {
			if t.distance(p.Point, q.Point) <= radius && isChildAtLevel(q, p, level) {
				matches++
			}
		}
		if matches != 1 {
			return false
		}
	}

	return true
}

// isChildAtLevel reports whether child is p's own self-entry, or is listed
// in p's non-self children at level.
func isChildAtLevel[T any](p, child *Node[T], level int) bool {
	if p == child {
		return true
	}
	for _, c := range p.children[level] {
		if c == child {
			return true
		}
	}

	return false
}

// checkSeparation verifies every distinct pair in c is farther apart than
// base^level.
func (t *Tree[T]) checkSeparation(c []*Node[T], level int) bool {
	radius := t.radius(level)
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if t.distance(c[i].Point, c[j].Point) <= radius {
				return false
			}
		}
	}

	return true
}
