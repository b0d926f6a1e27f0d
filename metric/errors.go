package metric

import "errors"

// Sentinel errors for the metric adapters.
var (
	// ErrDimensionMismatch indicates two vectors of unequal length were
	// passed to a Checked vector metric.
	ErrDimensionMismatch = errors.New("metric: vectors have mismatched dimensions")

	// ErrEmptySequence names a zero-length series. No function in this
	// package returns it: TimeSeries has no error return and yields 0
	// for an empty series.
	ErrEmptySequence = errors.New("metric: sequence must be non-empty")

	// ErrVertexNotFound indicates a graph adapter was asked about a vertex
	// absent from its backing Graph.
	ErrVertexNotFound = errors.New("metric: vertex not found")
)
