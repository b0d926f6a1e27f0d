// Package cover: the cover-set sweep, the traversal kernel shared by
// Insert, KNN and KNNInsert.
//
// Given a query point p, a cover set q at level "level" with distances to p
// already known, sweep produces the expanded cover set: q itself plus every
// non-self child at that level of any node already in q, each paired with
// its (newly computed, never recomputed) distance to p. Apart from the one
// distance to the root measured at the start of each descent, this is the
// only place the descents issue distance calls, which matters when the
// caller's Distance is expensive. CheckInvariants measures its own
// distances.
package cover

import (
	"math"
	"runtime"
	"sync"
)

// candidate pairs a Node with its distance to the point currently being
// swept, so the distance is computed exactly once per descent step.
type candidate[T any] struct {
	node *Node[T]
	dist float64
}

// sweep expands q at level, returning q followed by every newly discovered
// non-self child with its distance to p. Nodes already present in q (by
// pointer identity) are never re-added or re-measured.
func (t *Tree[T]) sweep(p T, q []candidate[T], level int) []candidate[T] {
	seen := make(map[*Node[T]]struct{}, len(q))
	for _, c := range q {
		seen[c.node] = struct{}{}
	}

	var fresh []*Node[T]
	for _, c := range q {
		for _, child := range c.node.onlyChildrenAtLevel(level) {
			if _, dup := seen[child]; dup {
				continue
			}
			seen[child] = struct{}{}
			fresh = append(fresh, child)
		}
	}
	if len(fresh) == 0 {
		return q
	}

	dists := t.distances(p, fresh)
	out := make([]candidate[T], 0, len(q)+len(fresh))
	out = append(out, q...)
	for i, child := range fresh {
		out = append(out, candidate[T]{node: child, dist: dists[i]})
	}

	return out
}

// distances computes p's distance to every node in nodes, dispatching
// across a bounded worker pool (at most GOMAXPROCS goroutines) when
// len(nodes) exceeds the tree's parallelThreshold (disabled by default).
// Each goroutine writes only the slice indices it owns, so the
// candidate/distance pairing survives unordered completion.
func (t *Tree[T]) distances(p T, nodes []*Node[T]) []float64 {
	dists := make([]float64, len(nodes))

	if t.parallelThreshold <= 0 || len(nodes) <= t.parallelThreshold {
		for i, n := range nodes {
			dists[i] = t.distance(p, n.Point)
		}

		return dists
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(nodes) {
		workers = len(nodes)
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(nodes); i += workers {
				dists[i] = t.distance(p, nodes[i].Point)
			}
		}(w)
	}
	wg.Wait()

	return dists
}

// minDist returns the smallest distance recorded in q, or +Inf if q is empty.
func minDist[T any](q []candidate[T]) float64 {
	best := math.Inf(1)
	for _, c := range q {
		if c.dist < best {
			best = c.dist
		}
	}

	return best
}

// filterByRadius returns the subset of q whose distance is within radius,
// preserving order.
func filterByRadius[T any](q []candidate[T], radius float64) []candidate[T] {
	out := make([]candidate[T], 0, len(q))
	for _, c := range q {
		if c.dist <= radius {
			out = append(out, c)
		}
	}

	return out
}
