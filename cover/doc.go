// Package cover implements a cover tree: an in-memory index over points of
// an arbitrary metric space that accelerates k-nearest-neighbor search from
// linear scan toward O(log n) per query when the data has bounded expansion
// constant.
//
// 🚀 What is a cover tree?
//
//	A hierarchy of levels, each a superset of the level below it, where every
//	point at level i is within base^i of some parent at level i+1 (covering),
//	and every pair of points at the same level is farther apart than base^i
//	(separation). Descent from the top level prunes candidates by the
//	triangle inequality instead of scanning every point.
//
// ✨ Key properties:
//   - Exact kNN, no approximation knob.
//   - Single caller-supplied distance function; the tree never inspects
//     points beyond passing them to it.
//   - Single-writer: Insert is not safe for concurrent use without external
//     synchronization (see the Tree doc comment).
//   - No deletion; points accumulate for the lifetime of the tree.
//
// ⚙️ Usage:
//
//	t, err := cover.New[[]float64](metric.Euclidean)
//	t.Insert([]float64{3, 4})
//	neighbors, err := t.KNN(1, []float64{0, 0}) // [{Point: {3,4}, Distance: 5}], nil
//
// Under the hood, three generic types do the work: Tree (owner, config,
// seeded RNG), Node (one per point, self-inclusive child lists per level),
// and the unexported sweep kernel shared by Insert, KNN and KNNInsert.
//
//	go get github.com/katalvlaran/covertree/cover
package cover
