package avdomain

import (
	"errors"

	"github.com/katalvlaran/avspace/zonotope"
)

// Sentinel errors returned by the avdomain package.
var (
	// ErrNilProjection indicates a nil *subspace.Projection.
	ErrNilProjection = errors.New("avdomain: projection is nil")

	// ErrNotInterval indicates Interval() was called on a non-interval domain.
	ErrNotInterval = errors.New("avdomain: domain is not an interval")

	// ErrBadPoint indicates a query point whose length differs from n.
	ErrBadPoint = errors.New("avdomain: query point has wrong dimension")
)

// FeasTol is the tolerance used by Feasible when testing A·y ≤ b and the
// interval bounds; boundary points are feasible.
const FeasTol = 1e-9

// Kind discriminates the domain variants.
type Kind int

const (
	// KindInterval is the n=1 domain: a closed interval [yl, yu].
	KindInterval Kind = iota

	// KindZonotope is the n>1 domain: vertices plus facet constraints.
	KindZonotope

	// KindUnbounded carries no geometry; inverse maps over it draw
	// inactive coordinates from a standard normal instead of a
	// constrained walk.
	KindUnbounded
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInterval:
		return "Interval"
	case KindZonotope:
		return "Zonotope"
	case KindUnbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// Census reports the zonotope vertex count found by Monte Carlo
// enumeration against the count expected by the combinatorial oracle.
// Found < Expected usually means the trial budget was too small or the
// projection is degenerate; construction proceeds either way.
type Census struct {
	Found    int
	Expected int
}

// Complete reports whether enumeration found every expected vertex.
func (c Census) Complete() bool { return c.Found == c.Expected }

// Options configures bounded-domain construction.
//
// Fields:
//   - Enum — Monte Carlo enumeration settings (trial budget, RNG); see
//     zonotope.EnumOptions for the completeness/cost trade-off.
type Options struct {
	Enum zonotope.EnumOptions
}

// DefaultOptions returns the construction defaults.
func DefaultOptions() Options {
	return Options{Enum: zonotope.DefaultEnumOptions()}
}
