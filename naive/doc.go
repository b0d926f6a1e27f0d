// Package naive provides a linear-scan reference kNN, used as a
// correctness oracle for cover.Tree and as a baseline for benchmarking it.
//
// go get github.com/katalvlaran/covertree/naive
package naive
