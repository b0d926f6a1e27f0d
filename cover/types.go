// Package cover: core Tree type, construction options, and sentinel errors.
//
// This file declares the Tree type, the functional-option constructors that
// configure it, and the errors returned for precondition violations. The
// traversal kernel lives in sweep.go; Insert/KNN/KNNInsert live in their own
// files; the invariant checker lives in invariants.go.
//
// Errors:
//
//	ErrInvalidBase  - base <= 1 passed to New.
//	ErrInvalidK     - k < 1 passed to KNN/KNNInsert.
//	ErrEmptyTree    - KNN/Find called on an empty tree with WithStrictEmpty.
//	ErrNilDistance  - a nil Distance func passed to New.
package cover

import (
	"errors"
	"math/rand"
)

// Distance is a caller-supplied pure metric over points of type T. It must
// satisfy d(p,p)=0, d(p,q)=d(q,p), and the triangle inequality. The tree's
// correctness depends on these axioms holding; violating them is undefined
// behavior for query results but must never corrupt memory or panic.
type Distance[T any] func(a, b T) float64

// Sentinel errors for Tree construction and query preconditions.
var (
	// ErrInvalidBase indicates base <= 1 was passed to New.
	ErrInvalidBase = errors.New("cover: base must be > 1")

	// ErrInvalidK indicates k < 1 was passed to KNN or KNNInsert.
	ErrInvalidK = errors.New("cover: k must be >= 1")

	// ErrEmptyTree indicates a query was made against a tree with no root,
	// and the tree was configured with WithStrictEmpty.
	ErrEmptyTree = errors.New("cover: tree is empty")

	// ErrNilDistance indicates New was called with a nil Distance function.
	ErrNilDistance = errors.New("cover: distance function is nil")
)

const (
	defaultBase              = 2.0
	defaultMaxLevel          = 10
	defaultSeed              = 1 // fixed, so a fresh tree is reproducible by default
	defaultParallelThreshold = 0 // 0 disables the worker-pool distance dispatch
)

// Tree is the owning container of a cover tree: it exclusively owns the
// root Node and, transitively, the entire node graph rooted there.
//
// Concurrency: Tree carries no internal mutex. Insert, KNN and KNNInsert are
// not safe to call concurrently with each other or with themselves — two
// concurrent Inserts race on child-list append and on minLevel, exactly as
// a mutable tree with no lock would. Callers needing parallelism must
// serialize mutation externally; only the distance evaluation inside a
// single sweep may be dispatched across a worker pool, and only when
// WithParallelDistance was supplied to New (see sweep.go).
type Tree[T any] struct {
	distance Distance[T] // caller's metric; never memoized by the tree

	root *Node[T] // nil until the first Insert

	base     float64 // geometric shrink factor between levels, > 1
	maxLevel int     // top level index
	minLevel int      // lowest level any node currently occupies; only decreases

	rng *rand.Rand // single seeded source for random parent tie-breaking

	parallelThreshold int // sweep dispatches distances in parallel above this many new children

	strictEmpty bool // ErrEmptyTree on KNN/Find against an empty tree, instead of an empty result
}

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithBase overrides the default geometric shrink factor (2). New returns
// ErrInvalidBase if base <= 1; the option itself never fails, it only
// records the value for New to validate.
func WithBase[T any](base float64) Option[T] {
	return func(t *Tree[T]) { t.base = base }
}

// WithMaxLevel overrides the default top level index (10). base^maxLevel
// should exceed the diameter of the expected data.
func WithMaxLevel[T any](level int) Option[T] {
	return func(t *Tree[T]) { t.maxLevel = level }
}

// WithSeed seeds the tree's own *rand.Rand, used exclusively for the random
// parent tie-break in Insert and KNNInsert. A single seeded source per tree makes test
// runs deterministic while preserving expected fan-out balance.
func WithSeed[T any](seed int64) Option[T] {
	return func(t *Tree[T]) { t.rng = rand.New(rand.NewSource(seed)) }
}

// WithParallelDistance enables dispatching a sweep's newly-introduced-child
// distance computations across a bounded worker pool once their count
// exceeds threshold. Distances already known are never recomputed, in
// parallel or otherwise. threshold <= 0 disables parallel dispatch (default).
func WithParallelDistance[T any](threshold int) Option[T] {
	return func(t *Tree[T]) { t.parallelThreshold = threshold }
}

// WithStrictEmpty makes KNN and Find return ErrEmptyTree when called
// against a tree with no root, instead of the default empty result.
// KNNInsert is not affected: on an empty tree it always installs the root.
func WithStrictEmpty[T any]() Option[T] {
	return func(t *Tree[T]) { t.strictEmpty = true }
}

// New constructs an empty Tree using distance as the metric and applying
// opts in order. Returns ErrNilDistance if distance is nil, ErrInvalidBase
// if the resolved base is <= 1.
func New[T any](distance Distance[T], opts ...Option[T]) (*Tree[T], error) {
	if distance == nil {
		return nil, ErrNilDistance
	}

	t := &Tree[T]{
		distance:          distance,
		base:              defaultBase,
		maxLevel:          defaultMaxLevel,
		minLevel:          defaultMaxLevel,
		rng:               rand.New(rand.NewSource(defaultSeed)),
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.minLevel = t.maxLevel // re-pin in case WithMaxLevel ran after construction

	if t.base <= 1 {
		return nil, ErrInvalidBase
	}

	return t, nil
}

// MaxLevel returns the tree's configured top level index.
func (t *Tree[T]) MaxLevel() int { return t.maxLevel }

// MinLevel returns the lowest level at which any point is currently
// present. It only ever decreases across the tree's lifetime.
func (t *Tree[T]) MinLevel() int { return t.minLevel }

// Base returns the geometric shrink factor between levels.
func (t *Tree[T]) Base() float64 { return t.base }

// Len returns the number of points currently stored in the tree.
func (t *Tree[T]) Len() int {
	if t.root == nil {
		return 0
	}

	return len(t.nodesAtLevel(t.minLevel))
}

// IsEmpty reports whether the tree has no root yet.
func (t *Tree[T]) IsEmpty() bool { return t.root == nil }

// radius returns base^level, the covering/separation radius at that level.
func (t *Tree[T]) radius(level int) float64 {
	return pow(t.base, level)
}

// pow is a tiny integer-exponent power, avoiding a math.Pow import for the
// common case of small, possibly negative integer levels.
func pow(base float64, exp int) float64 {
	if exp < 0 {
		return 1 / pow(base, -exp)
	}
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}
