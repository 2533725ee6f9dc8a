package avmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/avspace/avdomain"
	"github.com/katalvlaran/avspace/avmap"
)

// TestNew_NilDomain covers the constructor guard.
func TestNew_NilDomain(t *testing.T) {
	_, err := avmap.New(nil)
	assert.ErrorIs(t, err, avmap.ErrNilDomain)
}

// TestForward_Projection checks Forward against a hand-computed
// projection: Y and Z are the active and inactive coordinates of each
// input row under the orthogonal basis.
func TestForward_Projection(t *testing.T) {
	p := lineBasis(t)
	dom, err := avdomain.Bounded(p, nil)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	// Rows of X: the origin and a hypercube corner.
	X := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		1, 1, 1,
	})

	Y, Z, err := mp.Forward(X)
	require.NoError(t, err)

	ry, cy := Y.Dims()
	rz, cz := Z.Dims()
	assert.Equal(t, 2, ry)
	assert.Equal(t, 1, cy)
	assert.Equal(t, 2, rz)
	assert.Equal(t, 2, cz)

	assert.InDelta(t, 0.0, Y.At(0, 0), 1e-15)
	// (1,1,1)·(1,1,1)/√3 = √3
	assert.InDelta(t, 1.7320508075688772, Y.At(1, 0), 1e-12)
	// (1,1,1) is orthogonal to both inactive directions of lineBasis.
	assert.InDelta(t, 0.0, Z.At(1, 0), 1e-12)
	assert.InDelta(t, 0.0, Z.At(1, 1), 1e-12)
}

// TestForward_Validation rejects malformed input at the boundary.
func TestForward_Validation(t *testing.T) {
	dom, err := avdomain.Bounded(lineBasis(t), nil)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	_, _, err = mp.Forward(nil)
	assert.ErrorIs(t, err, avmap.ErrNilInput)

	_, _, err = mp.Forward(mat.NewDense(1, 2, []float64{1, 2}))
	assert.ErrorIs(t, err, avmap.ErrBadShape)
}

// TestInverse_CountAndShape is the sample-count property: R rows × N
// draws produce exactly R·N points, provenance grouped row-major, every
// point inside the hypercube and consistent with its originating row
// under the forward map.
func TestInverse_CountAndShape(t *testing.T) {
	p := lineBasis(t)
	dom, err := avdomain.Bounded(p, nil)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	Y := mat.NewDense(3, 1, []float64{-1, 0, 1})
	const N = 4

	X, rows, err := mp.Inverse(Y, N, nil)
	require.NoError(t, err)

	rx, cx := X.Dims()
	require.Equal(t, 3*N, rx)
	assert.Equal(t, 3, cx)
	require.Len(t, rows, 3*N)

	for i, r := range rows {
		assert.Equal(t, i/N, r, "provenance must be row-major")
	}

	for i := 0; i < rx; i++ {
		// Inside the hypercube.
		for j := 0; j < cx; j++ {
			assert.LessOrEqual(t, X.At(i, j), 1+feasTol)
			assert.GreaterOrEqual(t, X.At(i, j), -1-feasTol)
		}
		// Forward-consistent with the originating active coordinate.
		dot := 0.0
		for j := 0; j < cx; j++ {
			dot += X.At(i, j) * p.W1().At(j, 0)
		}
		assert.InDelta(t, Y.At(rows[i], 0), dot, 1e-9)
	}
}

// TestInverse_Zonotope runs the n=2 bounded inverse over several rows in
// parallel and rechecks the feasibility and provenance invariants.
func TestInverse_Zonotope(t *testing.T) {
	p := skewBasis(t)
	dom, err := avdomain.Bounded(p, nil)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	Y := mat.NewDense(4, 2, []float64{
		0, 0,
		0.3, -0.1,
		-0.2, 0.4,
		0.1, 0.1,
	})
	const N = 5

	opts := avmap.DefaultSampleOptions()
	opts.Workers = 2
	opts.Seed = 7

	X, rows, err := mp.Inverse(Y, N, &opts)
	require.NoError(t, err)

	rx, _ := X.Dims()
	require.Equal(t, 4*N, rx)
	for i := 0; i < rx; i++ {
		for j := 0; j < 3; j++ {
			assert.LessOrEqual(t, X.At(i, j), 1+feasTol)
			assert.GreaterOrEqual(t, X.At(i, j), -1-feasTol)
		}
	}
	for i, r := range rows {
		assert.Equal(t, i/N, r)
	}
}

// TestInverse_Unbounded: the unbounded variant draws Gaussian inactive
// coordinates; points leave the cube but stay forward-consistent.
func TestInverse_Unbounded(t *testing.T) {
	p := skewBasis(t)
	dom, err := avdomain.Unbounded(p)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	Y := mat.NewDense(2, 2, []float64{0.5, -0.5, 0, 1})
	const N = 3

	X, rows, err := mp.Inverse(Y, N, nil)
	require.NoError(t, err)

	rx, _ := X.Dims()
	require.Equal(t, 2*N, rx)
	for i := 0; i < rx; i++ {
		for j := 0; j < 2; j++ {
			dot := 0.0
			for k := 0; k < 3; k++ {
				dot += X.At(i, k) * p.W1().At(k, j)
			}
			assert.InDelta(t, Y.At(rows[i], j), dot, 1e-9)
		}
	}
}

// TestInverse_Infeasible: one unreachable row fails the whole call with
// ErrInfeasible; there are no partial results.
func TestInverse_Infeasible(t *testing.T) {
	dom, err := avdomain.Bounded(skewBasis(t), nil)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	Y := mat.NewDense(2, 2, []float64{0, 0, 50, 50})
	X, rows, err := mp.Inverse(Y, 3, nil)
	assert.ErrorIs(t, err, avmap.ErrInfeasible)
	assert.Nil(t, X)
	assert.Nil(t, rows)
}

// TestInverse_Validation rejects malformed calls before any sampling.
func TestInverse_Validation(t *testing.T) {
	dom, err := avdomain.Bounded(lineBasis(t), nil)
	require.NoError(t, err)
	mp, err := avmap.New(dom)
	require.NoError(t, err)

	_, _, err = mp.Inverse(nil, 1, nil)
	assert.ErrorIs(t, err, avmap.ErrNilInput)

	Y := mat.NewDense(1, 1, []float64{0})
	_, _, err = mp.Inverse(Y, 0, nil)
	assert.ErrorIs(t, err, avmap.ErrBadCount)

	_, _, err = mp.Inverse(mat.NewDense(1, 2, []float64{0, 0}), 1, nil)
	assert.ErrorIs(t, err, avmap.ErrBadShape)

	bad := avmap.DefaultSampleOptions()
	bad.BurnFactor = -1
	_, _, err = mp.Inverse(Y, 1, &bad)
	assert.ErrorIs(t, err, avmap.ErrBadOption)
}
