package zonotope

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Vertices enumerates the vertex set of the zonotope {xᵀ·W1 : x ∈ [-1,1]^m}
// by Monte Carlo direction sampling. It returns the V×n matrix Y of
// distinct active-coordinate vertices and the parallel V×m matrix X of
// their hypercube sign vectors, in discovery order.
//
// The enumeration may undercount (see the package doc); callers compare
// V against Count(m, n) when they need to know.
//
// Returns ErrNilMatrix, ErrBadDims or ErrBadTrials.
func Vertices(W1 mat.Matrix, opts *EnumOptions) (Y, X *mat.Dense, err error) {
	if W1 == nil {
		return nil, nil, ErrNilMatrix
	}
	m, n := W1.Dims()
	if m < 1 || n < 1 || n > m {
		return nil, nil, ErrBadDims
	}

	o := DefaultEnumOptions()
	if opts != nil {
		o = *opts
	}
	if o.Trials <= 0 {
		return nil, nil, ErrBadTrials
	}
	src := o.Src
	if src == nil {
		src = rand.NewSource(o.Seed)
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	var (
		dir   = mat.NewVecDense(n, nil)
		image = mat.NewVecDense(m, nil)
		seen  = make(map[string]struct{})
		signs []float64 // row-major V×m, grown per discovery
		count int
	)
	key := make([]byte, m)
	for t := 0; t < o.Trials; t++ {
		for i := 0; i < n; i++ {
			dir.SetVec(i, normal.Rand())
		}
		image.MulVec(W1, dir)

		for i := 0; i < m; i++ {
			if SignOf(image.AtVec(i)) < 0 {
				key[i] = '-'
			} else {
				key[i] = '+'
			}
		}
		if _, dup := seen[string(key)]; dup {
			continue
		}
		seen[string(key)] = struct{}{}
		for i := 0; i < m; i++ {
			signs = append(signs, SignOf(image.AtVec(i)))
		}
		count++
	}

	X = mat.NewDense(count, m, signs)
	Y = mat.NewDense(count, n, nil)
	Y.Mul(X, W1)

	return Y, X, nil
}
