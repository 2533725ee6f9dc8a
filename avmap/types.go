package avmap

import "errors"

// Sentinel errors returned by the avmap package.
var (
	// ErrNilDomain indicates a nil *avdomain.Domain.
	ErrNilDomain = errors.New("avmap: domain is nil")

	// ErrNilProjection indicates a nil *subspace.Projection.
	ErrNilProjection = errors.New("avmap: projection is nil")

	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("avmap: input matrix is nil")

	// ErrBadShape indicates an input whose dimensions do not match the
	// projection (wrong column count, mismatched batch sizes).
	ErrBadShape = errors.New("avmap: input dimensions do not match projection")

	// ErrBadCount indicates a non-positive sample count N.
	ErrBadCount = errors.New("avmap: sample count N must be positive")

	// ErrBadOption indicates SampleOptions outside their valid ranges.
	ErrBadOption = errors.New("avmap: invalid sample options")

	// ErrInfeasible indicates the LP oracle could not find a hypercube
	// point projecting onto the requested active-variable point: the
	// point lies outside the realizable domain.
	ErrInfeasible = errors.New("avmap: no feasible seed for active-variable point")
)

// DefaultBurnFactor is the burn-in multiplier: the chain takes
// BurnFactor·N steps before recording begins.
const DefaultBurnFactor = 10

// DefaultStepScale multiplies the seed's distance to the nearer hypercube
// face to obtain the proposal standard deviation σ.
const DefaultStepScale = 0.1

// SampleOptions configures the constrained sampler and Inverse.
//
// Fields:
//   - BurnFactor — burn-in steps per recorded draw (default 10). Must be
//     positive; raising it decorrelates draws from the seed at linear cost.
//   - StepScale  — σ multiplier on the boundary distance (default 0.1).
//     Must be positive; larger steps explore faster but reject more.
//   - Workers    — maximum concurrent row chains in Inverse. Zero means
//     GOMAXPROCS. Must be non-negative.
//   - Seed       — base RNG seed. Each row chain derives an independent
//     stream from Seed and its row index, so results are reproducible and
//     workers never share a generator.
type SampleOptions struct {
	BurnFactor int
	StepScale  float64
	Workers    int
	Seed       uint64
}

// DefaultSampleOptions returns the sampler defaults.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		BurnFactor: DefaultBurnFactor,
		StepScale:  DefaultStepScale,
		Seed:       1,
	}
}

// validate checks option ranges, returning ErrBadOption on violation.
func (o SampleOptions) validate() error {
	if o.BurnFactor <= 0 || o.StepScale <= 0 || o.Workers < 0 {
		return ErrBadOption
	}

	return nil
}

// rowSeed derives the per-row RNG stream seed. SplitMix64-style odd
// multiplier keeps neighboring rows' streams far apart.
func rowSeed(base uint64, row int) uint64 {
	return base + uint64(row+1)*0x9E3779B97F4A7C15
}
