// Package metric collects distance functions usable as a cover.Distance:
// vector metrics over float64 slices, a Dynamic Time Warping adapter over
// the dtw package, and shortest-path/hop-count adapters over a small
// read-only graph type.
//
// None of these adapters mutate or cache tree state; each is a pure
// func(a, b T) float64 (or a closure producing one). The vector metrics
// plug directly into cover.New; the constructors return a Func[T], which
// is passed as cover.Distance[T](fn).
//
// 🚀 Quick start
//
//	tree, err := cover.New(metric.Euclidean)
//
// ✨ Adapters
//
//	metric.Euclidean, metric.Manhattan, metric.Chebyshev  - []float64
//	metric.TimeSeries(opts)                                - []float64, DTW-backed
//	metric.NewShortestPath(g), metric.NewHopCount(g)       - string vertex IDs
//
// go get github.com/katalvlaran/covertree/metric
package metric
