package avmap

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/avspace/subspace"
)

// SampleZ draws N correlated samples of the inactive coordinate z such
// that each image W1·y + W2·z lies in [-1,1]^m componentwise. The result
// is (m−n)×N, one draw per column, in chain order.
//
// The chain is seeded at z = 0 when that is already feasible, otherwise
// at the LP oracle's feasibility point (see package doc for the sampling
// law and the σ derivation). A nil opts uses DefaultSampleOptions.
//
// Returns ErrBadCount, ErrBadShape, ErrBadOption, or ErrInfeasible when
// y has no preimage in the hypercube.
func SampleZ(N int, y []float64, p *subspace.Projection, opts *SampleOptions) (*mat.Dense, error) {
	if p == nil {
		return nil, ErrNilProjection
	}
	if N <= 0 {
		return nil, ErrBadCount
	}
	m, n := p.Dims()
	if len(y) != n {
		return nil, ErrBadShape
	}
	o := DefaultSampleOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// s = W1·y, the fixed active contribution to the full-space image.
	s := mat.NewVecDense(m, nil)
	s.MulVec(p.W1(), mat.NewVecDense(n, y))

	// Seed: the origin when feasible, else the LP feasibility point
	// rotated into inactive coordinates.
	z := mat.NewVecDense(m-n, nil)
	if !withinSlab(z, s, p.W2(), mat.NewVecDense(m, nil)) {
		x0, err := feasibleSeed(p, y)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
		}
		z.MulVec(p.W2().T(), mat.NewVecDense(m, x0))
	}

	// Step scale: proportional to the seed image's distance to the
	// nearer hypercube face.
	img := mat.NewVecDense(m, nil)
	img.MulVec(p.W2(), z)
	dLo, dHi := 0.0, 0.0
	for i := 0; i < m; i++ {
		v := img.AtVec(i) + s.AtVec(i)
		dHi += (v - 1) * (v - 1)
		dLo += (v + 1) * (v + 1)
	}
	sigma := o.StepScale * math.Min(math.Sqrt(dHi), math.Sqrt(dLo))

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(o.Seed)}
	cand := mat.NewVecDense(m-n, nil)
	step := func() {
		for i := 0; i < m-n; i++ {
			cand.SetVec(i, z.AtVec(i)+sigma*normal.Rand())
		}
		if withinSlab(cand, s, p.W2(), img) {
			z.CopyVec(cand)
		}
	}

	// Burn-in: BurnFactor·N unrecorded steps.
	for i := 0; i < o.BurnFactor*N; i++ {
		step()
	}

	// Record the chain state after every step, accepted or not.
	Z := mat.NewDense(m-n, N, nil)
	for k := 0; k < N; k++ {
		step()
		for i := 0; i < m-n; i++ {
			Z.Set(i, k, z.AtVec(i))
		}
	}

	return Z, nil
}

// withinSlab reports whether -1 ≤ W2·z + s ≤ 1 holds componentwise.
// scratch must be length m and is overwritten with W2·z.
func withinSlab(z, s *mat.VecDense, W2 mat.Matrix, scratch *mat.VecDense) bool {
	scratch.MulVec(W2, z)
	m := s.Len()
	for i := 0; i < m; i++ {
		v := scratch.AtVec(i)
		if v > 1-s.AtVec(i) || v < -1-s.AtVec(i) {
			return false
		}
	}

	return true
}
