package avmap

import (
	"fmt"
	"runtime"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/avspace/avdomain"
)

// Map is the forward/inverse coordinate transform over a domain.
// Stateless between calls; safe for concurrent use.
type Map struct {
	dom *avdomain.Domain
}

// New builds a Map over dom. Returns ErrNilDomain.
func New(dom *avdomain.Domain) (*Map, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}

	return &Map{dom: dom}, nil
}

// Domain returns the underlying domain.
func (mp *Map) Domain() *avdomain.Domain { return mp.dom }

// Forward projects full-space points onto the subspace coordinates:
// Y = X·W1 (active) and Z = X·W2 (inactive). X is k×m, one point per row.
//
// Returns ErrNilInput or ErrBadShape.
func (mp *Map) Forward(X mat.Matrix) (Y, Z *mat.Dense, err error) {
	if X == nil {
		return nil, nil, ErrNilInput
	}
	m, _ := mp.dom.Dims()
	k, c := X.Dims()
	if k < 1 || c != m {
		return nil, nil, ErrBadShape
	}

	p := mp.dom.Projection()
	_, n := p.Dims()
	Y = mat.NewDense(k, n, nil)
	Y.Mul(X, p.W1())
	Z = mat.NewDense(k, m-n, nil)
	Z.Mul(X, p.W2())

	return Y, Z, nil
}

// Inverse maps each active-variable row of Y (R×n) to N full-space points
// inside the hypercube, returning the (R·N)×m point matrix and the
// provenance index rows, where rows[i] is the originating row of output
// point i. Output is row-major: all N draws for row 0, then row 1, etc.
//
// Bounded domains sample the inactive coordinate with the constrained
// walk (SampleZ), one worker per row; the unbounded domain draws it from
// a standard normal. A nil opts uses DefaultSampleOptions.
//
// Returns ErrNilInput, ErrBadShape, ErrBadCount, ErrBadOption, or a
// wrapped ErrInfeasible naming the offending row.
func (mp *Map) Inverse(Y mat.Matrix, N int, opts *SampleOptions) (X *mat.Dense, rows []int, err error) {
	if Y == nil {
		return nil, nil, ErrNilInput
	}
	if N <= 0 {
		return nil, nil, ErrBadCount
	}
	o := DefaultSampleOptions()
	if opts != nil {
		o = *opts
	}
	if err = o.validate(); err != nil {
		return nil, nil, err
	}
	_, n := mp.dom.Dims()
	if r, c := Y.Dims(); r < 1 || c != n {
		return nil, nil, ErrBadShape
	}

	Z, err := mp.regularize(Y, N, o)
	if err != nil {
		return nil, nil, err
	}

	return RotateX(Y, Z, mp.dom.Projection().Eigenvectors())
}

// regularize produces the inactive-coordinate batch: one (m−n)×N matrix
// per row of Y.
func (mp *Map) regularize(Y mat.Matrix, N int, o SampleOptions) ([]*mat.Dense, error) {
	m, n := mp.dom.Dims()
	R, _ := Y.Dims()
	out := make([]*mat.Dense, R)

	if mp.dom.Kind() == avdomain.KindUnbounded {
		// Unconstrained inactive subspace: independent standard normals,
		// one stream for the whole batch.
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(o.Seed)}
		for r := 0; r < R; r++ {
			z := mat.NewDense(m-n, N, nil)
			for i := 0; i < m-n; i++ {
				for k := 0; k < N; k++ {
					z.Set(i, k, normal.Rand())
				}
			}
			out[r] = z
		}

		return out, nil
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// One independent chain per row: separate options value with a
	// row-derived seed, no shared state beyond the read-only projection.
	var g errgroup.Group
	g.SetLimit(workers)
	for r := 0; r < R; r++ {
		r := r
		y := make([]float64, n)
		for j := 0; j < n; j++ {
			y[j] = Y.At(r, j)
		}
		ro := o
		ro.Seed = rowSeed(o.Seed, r)
		g.Go(func() error {
			z, err := SampleZ(N, y, mp.dom.Projection(), &ro)
			if err != nil {
				return fmt.Errorf("avmap: row %d: %w", r, err)
			}
			out[r] = z

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
