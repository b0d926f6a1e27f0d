// Package dot writes a cover.Tree out as a Graphviz DOT digraph, one edge
// per (parent, level, child) relationship, suitable for piping straight
// into `dot -Tpng` or any other Graphviz renderer.
//
// go get github.com/katalvlaran/covertree/dot
package dot
