// Package metric: the Dynamic Time Warping adapter, wrapping dtw.DTW as a
// Func[[]float64] usable by cover.Tree.
//
// DTW is not in general a metric: it can violate the triangle inequality,
// so a cover tree built over TimeSeries is a best-effort accelerator for
// nearest-neighbor search, not a guaranteed-exact one. Invariant checks and
// queries remain memory-safe and well-defined regardless; they simply may
// not reflect true nearest neighbors under a non-metric distance. Callers
// who need exact answers over sequences should cross-check against
// naive.KNN, or accept the same caveat the rest of this corpus's DTW use
// already carries.
package metric

import "github.com/katalvlaran/covertree/dtw"

// TimeSeries returns a Func[[]float64] that computes the DTW distance
// between two sequences using opts, discarding the alignment path. opts is
// validated on every call via dtw.Options.Validate through dtw.DTW itself;
// a bad combination collapses to a distance of 0 since Func has no error
// return — callers should validate opts once up front via opts.Validate().
func TimeSeries(opts dtw.Options) Func[[]float64] {
	return func(a, b []float64) float64 {
		dist, _, err := dtw.DTW(a, b, &opts)
		if err != nil {
			return 0
		}

		return dist
	}
}

// TimeSeriesWithPath behaves like TimeSeries but also returns the most
// recently computed alignment path via the supplied pointer, which is
// overwritten on every call. opts.MemoryMode is forced to dtw.FullMatrix and
// opts.ReturnPath to true; if dtw.DTW returns an error, the distance is 0
// and the path is left as it was.
func TimeSeriesWithPath(opts dtw.Options, path *[]dtw.Coord) Func[[]float64] {
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	return func(a, b []float64) float64 {
		dist, p, err := dtw.DTW(a, b, &opts)
		if err != nil {
			return 0
		}
		*path = p

		return dist
	}
}
