// Package cover_test: CheckInvariants behavior, including its explicit
// tolerance of a distance function that violates the metric axioms.
package cover_test

import (
	"testing"

	"github.com/katalvlaran/covertree/cover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckInvariants_EmptyTree verifies an empty tree reports valid.
func TestCheckInvariants_EmptyTree(t *testing.T) {
	tr, err := cover.New(absDist)
	require.NoError(t, err)

	ok, err := tr.CheckInvariants()
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestCheckInvariants_ViolationNamesLevel verifies the returned error, when
// present, can be inspected as a *cover.Violation naming the invariant kind.
func TestCheckInvariants_ViolationNamesLevel(t *testing.T) {
	v := &cover.Violation{Kind: "separation", Level: 3}
	assert.Contains(t, v.Error(), "separation")
	assert.Contains(t, v.Error(), "3")
}

// badMetric reports zero distance between any two points sharing the same
// parity, violating the identity-of-indiscernibles axiom on purpose. This
// is used only to confirm CheckInvariants reports what it observes instead
// of panicking when fed a non-metric.
func badMetric(a, b int) float64 {
	if a%2 == b%2 && a != b {
		return 0
	}
	if a == b {
		return 0
	}

	return float64(a - b)
	// parity collisions above return 0 "incorrectly"; CheckInvariants must
	// not panic over this, even though results are meaningless.
}

// TestCheckInvariants_NonMetricDoesNotPanic confirms a distance function
// that isn't a true metric is tolerated structurally.
func TestCheckInvariants_NonMetricDoesNotPanic(t *testing.T) {
	tr, err := cover.New(badMetric, cover.WithSeed[int](1))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		for _, p := range []int{1, 2, 3, 4, 5, 6} {
			tr.Insert(p)
		}
		_, _ = tr.CheckInvariants()
	})
}
