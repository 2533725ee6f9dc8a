package zonotope

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors returned by the zonotope package.
var (
	// ErrNilMatrix indicates a nil projection matrix was supplied.
	ErrNilMatrix = errors.New("zonotope: projection matrix is nil")

	// ErrBadDims indicates dimensions outside 1 ≤ n ≤ m.
	ErrBadDims = errors.New("zonotope: dimensions must satisfy 1 ≤ n ≤ m")

	// ErrBadTrials indicates a non-positive Monte Carlo trial budget.
	ErrBadTrials = errors.New("zonotope: Trials must be positive")

	// ErrNotColumn indicates IntervalEndpoints was given a matrix with
	// more than one column; the interval case is defined only for n = 1.
	ErrNotColumn = errors.New("zonotope: interval endpoints require a single-column W1")
)

// DefaultTrials is the default Monte Carlo direction budget for Vertices.
// More trials raise the probability of discovering every vertex (vertices
// with narrow normal cones are the last to appear) at linear extra cost.
const DefaultTrials = 10000

// EnumOptions configures the Monte Carlo vertex enumeration.
//
// Fields:
//   - Trials — number of random directions to draw. Must be positive.
//   - Seed   — seed for the internal RNG when Src is nil.
//   - Src    — optional RNG source; overrides Seed when non-nil. Supply
//     one to share a stream with a caller-managed generator.
type EnumOptions struct {
	Trials int
	Seed   uint64
	Src    rand.Source
}

// DefaultEnumOptions returns the enumeration defaults: DefaultTrials
// directions on a fixed seed, for reproducible vertex sets.
func DefaultEnumOptions() EnumOptions {
	return EnumOptions{Trials: DefaultTrials, Seed: 1}
}

// SignOf maps a scalar to the sign convention used throughout avspace:
// negative values to -1, everything else — including exact zero — to +1.
// The zero tie-break is deterministic on purpose; sign vectors never
// contain 0.
func SignOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
