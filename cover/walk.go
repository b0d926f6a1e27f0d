// Package cover: read-only level-walk accessors for external consumers
// (dot emission, diagnostics) that need to traverse the tree without
// reaching into its unexported node graph.
package cover

// Edge describes one (parent, level, child) relationship: child was
// attached to parent via addChildAtLevel(child, level), so child is a
// member of the cover set one level below level.
type Edge[T any] struct {
	Level  int
	Parent T
	Child  T
}

// Edges returns every non-self parent/child edge in the tree, ordered by
// descending level then by the order children were attached. An empty
// tree yields nil.
func (t *Tree[T]) Edges() []Edge[T] {
	if t.root == nil {
		return nil
	}

	var out []Edge[T]
	current := []*Node[T]{t.root}
	for i := t.maxLevel; i > t.minLevel; i-- {
		var next []*Node[T]
		seen := make(map[*Node[T]]struct{})
		for _, p := range current {
			for _, c := range p.onlyChildrenAtLevel(i) {
				out = append(out, Edge[T]{Level: i, Parent: p.Point, Child: c.Point})
				if _, dup := seen[c]; !dup {
					seen[c] = struct{}{}
					next = append(next, c)
				}
			}
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				next = append(next, p)
			}
		}
		current = next
	}

	return out
}
