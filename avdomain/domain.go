package avdomain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/avspace/hull"
	"github.com/katalvlaran/avspace/subspace"
	"github.com/katalvlaran/avspace/zonotope"
)

// Domain is the active-variable domain of a projection. Immutable after
// construction; safe to share across goroutines.
type Domain struct {
	kind Kind
	proj *subspace.Projection

	// KindInterval and KindZonotope: vertex images and sign vectors.
	vertY *mat.Dense // V×n
	vertX *mat.Dense // V×m

	// KindZonotope only: facet constraints A·y ≤ b and the vertex census.
	a      *mat.Dense
	b      []float64
	census Census
}

// Bounded constructs the bounded active-variable domain of p: an interval
// when n = 1, otherwise the zonotope with its facet constraints. A nil
// opts uses DefaultOptions.
//
// Returns ErrNilProjection, option validation errors from the zonotope
// package, or a wrapped hull error (fatal, see the package doc).
func Bounded(p *subspace.Projection, opts *Options) (*Domain, error) {
	if p == nil {
		return nil, ErrNilProjection
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	m, n := p.Dims()
	if n == 1 {
		y, x, err := zonotope.IntervalEndpoints(p.W1())
		if err != nil {
			return nil, err
		}

		return &Domain{kind: KindInterval, proj: p, vertY: y, vertX: x}, nil
	}

	y, x, err := zonotope.Vertices(p.W1(), &o.Enum)
	if err != nil {
		return nil, err
	}
	expected, err := zonotope.Count(m, n)
	if err != nil {
		return nil, err
	}
	found, _ := y.Dims()

	a, b, err := hull.Facets(y)
	if err != nil {
		return nil, fmt.Errorf("avdomain: facet construction: %w", err)
	}

	return &Domain{
		kind:   KindZonotope,
		proj:   p,
		vertY:  y,
		vertX:  x,
		a:      a,
		b:      b,
		census: Census{Found: found, Expected: expected},
	}, nil
}

// Unbounded constructs the geometry-free domain variant over p.
func Unbounded(p *subspace.Projection) (*Domain, error) {
	if p == nil {
		return nil, ErrNilProjection
	}

	return &Domain{kind: KindUnbounded, proj: p}, nil
}

// Kind returns the variant discriminant.
func (d *Domain) Kind() Kind { return d.kind }

// Projection returns the underlying projection.
func (d *Domain) Projection() *subspace.Projection { return d.proj }

// Dims returns the full dimension m and active dimension n.
func (d *Domain) Dims() (m, n int) { return d.proj.Dims() }

// Vertices returns the V×n active-coordinate vertices and the parallel
// V×m sign vectors. Both are nil for KindUnbounded. For KindInterval,
// V = 2 and the rows are ordered (lower, upper). Read-only views.
func (d *Domain) Vertices() (Y, X *mat.Dense) { return d.vertY, d.vertX }

// Constraints returns the facet system A (k×n) and b (length k) with the
// zonotope equal to {y : A·y ≤ b}. A is also the Jacobian of the
// feasibility residual. Both are nil unless the kind is KindZonotope.
// Read-only views.
func (d *Domain) Constraints() (A *mat.Dense, b []float64) { return d.a, d.b }

// Census returns the vertex census. Zero-valued unless KindZonotope.
func (d *Domain) Census() Census { return d.census }

// Interval returns the endpoints yl ≤ yu of an interval domain.
// Returns ErrNotInterval for the other kinds.
func (d *Domain) Interval() (yl, yu float64, err error) {
	if d.kind != KindInterval {
		return 0, 0, ErrNotInterval
	}

	return d.vertY.At(0, 0), d.vertY.At(1, 0), nil
}

// Feasible reports whether the active-variable point y lies inside the
// domain within FeasTol. Unbounded domains accept every point.
// Returns ErrBadPoint when len(y) differs from n.
func (d *Domain) Feasible(y []float64) (bool, error) {
	_, n := d.proj.Dims()
	if len(y) != n {
		return false, ErrBadPoint
	}

	switch d.kind {
	case KindInterval:
		return d.vertY.At(0, 0)-FeasTol <= y[0] && y[0] <= d.vertY.At(1, 0)+FeasTol, nil
	case KindZonotope:
		k, _ := d.a.Dims()
		for i := 0; i < k; i++ {
			dot := 0.0
			for j := 0; j < n; j++ {
				dot += d.a.At(i, j) * y[j]
			}
			if dot > d.b[i]+FeasTol {
				return false, nil
			}
		}

		return true, nil
	default:
		return true, nil
	}
}
