// Package subspace defines the Projection type shared by every other
// avspace package: an orthogonal basis W of ℝ^m, split column-wise into
// the n "active" directions W1 and the m−n "inactive" directions W2.
//
// A Projection is immutable after construction. Construction validates
// the two structural invariants everything downstream relies on:
//
//   - W is square and its columns are orthonormal (WᵀW = I within OrthoTol)
//   - the split index n satisfies 1 ≤ n < m, so both W1 and W2 are
//     non-empty
//
// The eigendecomposition that produces W is upstream of this library;
// subspace only holds the result. Callers must treat the matrices
// returned by W1, W2 and Eigenvectors as read-only views.
//
// Usage:
//
//	p, err := subspace.New(eigvecs, 2)
//	if err != nil {
//	  // ErrNilBasis, ErrNonSquare, ErrBadSplit or ErrNotOrthonormal
//	}
//	m, n := p.Dims()
package subspace
