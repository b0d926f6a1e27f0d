// Package covertree is the module root: an in-memory cover tree index over
// points of an arbitrary metric space, supporting incremental insertion and
// exact k-nearest-neighbor queries.
//
// 🚀 What is covertree?
//
//	A generic, single-writer nearest-neighbor index that brings together:
//
//	  • cover/  — the tree engine: Tree[T], Insert, KNN, KNNInsert, and a
//	              structural invariant checker
//	  • metric/ — Distance collaborators: vector norms, a DTW adapter, and
//	              shortest-path/hop-count graph adapters
//	  • dot/    — Graphviz DOT emission of a built tree
//	  • naive/  — a linear-scan reference kNN for correctness cross-checks
//	  • dtw/    — Dynamic Time Warping, exercised by metric.TimeSeries
//
// ✨ Why a cover tree?
//
//   - Exact      — no approximation; every kNN call is a true nearest-neighbor answer
//   - Generic    — Tree[T] indexes any T given a Distance[T]
//   - Incremental — Insert adds one point at a time, no rebuild
//   - Pure Go    — no cgo, a single real dependency (testify, test-only)
//
// Quick start:
//
//	tree, err := cover.New(metric.Euclidean)
//	tree.Insert([]float64{0, 0})
//	tree.Insert([]float64{1, 1})
//	results, err := tree.KNN(1, []float64{0.9, 0.9})
//
// go get github.com/katalvlaran/covertree
package covertree
