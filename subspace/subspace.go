package subspace

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Projection construction.
var (
	// ErrNilBasis indicates a nil eigenvector matrix was supplied.
	ErrNilBasis = errors.New("subspace: eigenvector basis is nil")

	// ErrNonSquare indicates the eigenvector matrix is not m×m.
	ErrNonSquare = errors.New("subspace: eigenvector basis must be square")

	// ErrBadSplit indicates the active dimension n violates 1 ≤ n < m.
	ErrBadSplit = errors.New("subspace: active dimension must satisfy 1 ≤ n < m")

	// ErrNotOrthonormal indicates WᵀW deviates from identity beyond OrthoTol.
	ErrNotOrthonormal = errors.New("subspace: eigenvector columns are not orthonormal")
)

// OrthoTol is the maximum elementwise deviation of WᵀW from the identity
// accepted at construction.
const OrthoTol = 1e-8

// Projection is an orthogonal basis W of ℝ^m split into active directions
// W1 (m×n) and inactive directions W2 (m×(m−n)), so that W = [W1 | W2].
// Immutable after New.
type Projection struct {
	w  *mat.Dense // full m×m basis
	w1 *mat.Dense // first n columns
	w2 *mat.Dense // remaining m−n columns
	m  int
	n  int
}

// New builds a Projection from an m×m eigenvector matrix and the active
// dimension n. The first n columns become W1, the rest W2.
//
// Returns ErrNilBasis, ErrNonSquare, ErrBadSplit or ErrNotOrthonormal.
func New(eigvecs mat.Matrix, n int) (*Projection, error) {
	if eigvecs == nil {
		return nil, ErrNilBasis
	}
	m, c := eigvecs.Dims()
	if m != c {
		return nil, ErrNonSquare
	}
	if n < 1 || n >= m {
		return nil, ErrBadSplit
	}

	w := mat.DenseCopyOf(eigvecs)
	if !orthonormal(w) {
		return nil, ErrNotOrthonormal
	}

	// Column split; slices share w's backing array, which is fine because
	// the Projection is read-only from here on.
	w1 := w.Slice(0, m, 0, n).(*mat.Dense)
	w2 := w.Slice(0, m, n, m).(*mat.Dense)

	return &Projection{w: w, w1: w1, w2: w2, m: m, n: n}, nil
}

// Dims returns the full dimension m and the active dimension n.
func (p *Projection) Dims() (m, n int) { return p.m, p.n }

// W1 returns the m×n active-direction block. Read-only view.
func (p *Projection) W1() *mat.Dense { return p.w1 }

// W2 returns the m×(m−n) inactive-direction block. Read-only view.
func (p *Projection) W2() *mat.Dense { return p.w2 }

// Eigenvectors returns the full m×m orthogonal basis W. Read-only view.
func (p *Projection) Eigenvectors() *mat.Dense { return p.w }

// orthonormal reports whether wᵀw equals the identity within OrthoTol.
func orthonormal(w *mat.Dense) bool {
	m, _ := w.Dims()
	var g mat.Dense
	g.Mul(w.T(), w)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(g.At(i, j)-want) > OrthoTol {
				return false
			}
		}
	}
	return true
}
