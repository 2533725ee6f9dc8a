// Package avmap implements the bidirectional coordinate transform between
// the full input space and active/inactive subspace coordinates, plus the
// constrained sampler that makes the inverse direction possible.
//
// 🚀 What lives here?
//
//   - Map.Forward — the pure linear projection X → (X·W1, X·W2)
//   - Map.Inverse — for each active-variable row y, manufacture N full-space
//     points consistent with y, together with a row-provenance index
//   - SampleZ    — the LP-seeded rejection random walk over the inactive
//     coordinate, the hardest piece of the system
//   - RotateX    — reassemble active + inactive coordinates into full-space
//     points via the orthogonal basis
//
// Sampling law (preserved exactly, on purpose):
//
//	The walk proposes z' = z + σ·Normal(0, I) and accepts iff the image
//	W1·y + W2·z' stays inside [-1,1]^m componentwise — a hard feasibility
//	indicator, not a Metropolis–Hastings ratio. After 10·N burn-in steps,
//	each of the N recorded draws is the chain's current state whether or
//	not the last proposal was accepted. The output is therefore an
//	autocorrelated sequence targeting the uniform law on the feasible
//	slab, not an i.i.d. sample; downstream consumers depend on exactly
//	this behavior, so do not "fix" it.
//
// The step scale σ = StepScale·min(‖W2·z0+s−1‖, ‖W2·z0+s+1‖) is derived
// from the seed's distance to the nearer hypercube face. When the
// feasible slab is a single point (or nearly so) σ underflows toward zero
// and the chain stalls at the seed for all draws — accepted behavior, see
// the reference sampling law above.
//
// Concurrency:
//
//	Inverse runs one chain per row of Y on a bounded worker pool
//	(SampleOptions.Workers), each with an RNG stream derived from
//	SampleOptions.Seed and the row index. No shared mutable state.
//
// Errors (sentinel):
//
//   - ErrNilDomain, ErrNilInput, ErrBadShape, ErrBadCount, ErrBadOption —
//     boundary validation; these never reach the sampler
//   - ErrInfeasible — the LP oracle found no hypercube point mapping to y:
//     y is outside the realizable domain, a caller-level error, not retried
package avmap
