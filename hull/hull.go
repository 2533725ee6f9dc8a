package hull

import (
	"errors"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Facets.
var (
	// ErrNilPoints indicates a nil point matrix.
	ErrNilPoints = errors.New("hull: point matrix is nil")

	// ErrBadDimension indicates an ambient dimension below 2; 1-D hulls
	// are intervals and have no facet representation here.
	ErrBadDimension = errors.New("hull: ambient dimension must be at least 2")

	// ErrTooFewPoints indicates fewer than n+1 points in ℝⁿ.
	ErrTooFewPoints = errors.New("hull: need at least n+1 points in n dimensions")

	// ErrDegenerate indicates the cloud is not full-dimensional: no valid
	// facet set could be assembled. Not recoverable by retry; the input
	// itself is rank-deficient.
	ErrDegenerate = errors.New("hull: points are affinely degenerate")
)

// sideTol is the relative tolerance of the supporting-side test; it is
// scaled by the largest point coordinate magnitude.
const sideTol = 1e-9

// Facets computes the facet inequalities of the convex hull of the V×n
// point matrix. It returns A (k×n, unit outward normals) and b (length k)
// with conv(points) = {y : A·y ≤ b}. Facet order is unspecified.
//
// Returns ErrNilPoints, ErrBadDimension, ErrTooFewPoints or ErrDegenerate.
func Facets(points mat.Matrix) (A *mat.Dense, b []float64, err error) {
	if points == nil {
		return nil, nil, ErrNilPoints
	}
	v, n := points.Dims()
	if n < 2 {
		return nil, nil, ErrBadDimension
	}
	if v < n+1 {
		return nil, nil, ErrTooFewPoints
	}

	scale := 1.0
	for i := 0; i < v; i++ {
		for j := 0; j < n; j++ {
			scale = math.Max(scale, math.Abs(points.At(i, j)))
		}
	}
	tol := sideTol * scale

	var (
		rows []float64 // accumulated A, row-major
		offs []float64 // accumulated b
		seen = make(map[string]struct{})
		diff = mat.NewDense(n-1, n, nil)
		svd  mat.SVD
	)

	idx := firstCombination(n)
	for idx != nil {
		normal, ok := subsetNormal(points, idx, diff, &svd)
		if !ok {
			idx = nextCombination(idx, v)
			continue
		}

		// Offset through the first subset point.
		c := 0.0
		for j := 0; j < n; j++ {
			c += normal[j] * points.At(idx[0], j)
		}

		// Supporting-side test over the whole cloud.
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < v; i++ {
			d := -c
			for j := 0; j < n; j++ {
				d += normal[j] * points.At(i, j)
			}
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
		switch {
		case hi <= tol:
			// normal already points outward
		case lo >= -tol:
			for j := range normal {
				normal[j] = -normal[j]
			}
			c = -c
		default:
			// cuts through the cloud: not a facet
			idx = nextCombination(idx, v)
			continue
		}

		key := facetKey(normal, c)
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			rows = append(rows, normal...)
			offs = append(offs, c)
		}
		idx = nextCombination(idx, v)
	}

	// A full-dimensional polytope has at least n+1 facets.
	if len(offs) < n+1 {
		return nil, nil, ErrDegenerate
	}

	return mat.NewDense(len(offs), n, rows), offs, nil
}

// subsetNormal fits the unit normal of the hyperplane through the n
// subset points, or reports ok=false when the subset is affinely
// dependent. diff and svd are scratch space reused across subsets.
func subsetNormal(points mat.Matrix, idx []int, diff *mat.Dense, svd *mat.SVD) ([]float64, bool) {
	n := len(idx)
	for r := 1; r < n; r++ {
		for j := 0; j < n; j++ {
			diff.Set(r-1, j, points.At(idx[r], j)-points.At(idx[0], j))
		}
	}
	if !svd.Factorize(diff, mat.SVDFullV) {
		return nil, false
	}

	sv := svd.Values(nil)
	// Rank check: the n-1 difference vectors must be independent for the
	// hyperplane to be unique.
	if sv[0] == 0 || sv[len(sv)-1] <= 1e-12*sv[0] {
		return nil, false
	}

	var vmat mat.Dense
	svd.VTo(&vmat)
	normal := make([]float64, n)
	for j := 0; j < n; j++ {
		normal[j] = vmat.At(j, n-1) // null-space column
	}

	return normal, true
}

// facetKey builds a dedup key from the rounded normal equation. Rounding
// to 1e-9 merges the many coplanar subsets describing one facet while
// keeping genuinely distinct facets apart.
func facetKey(normal []float64, c float64) string {
	buf := make([]byte, 0, 16*(len(normal)+1))
	for _, v := range normal {
		buf = appendRounded(buf, v)
	}

	return string(appendRounded(buf, c))
}

func appendRounded(buf []byte, v float64) []byte {
	r := math.Round(v * 1e9)
	if r == 0 {
		r = 0 // collapse -0
	}
	buf = strconv.AppendInt(buf, int64(r), 10)

	return append(buf, ';')
}

// firstCombination returns the initial n-subset {0,1,...,n-1}.
func firstCombination(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// nextCombination advances idx to the next n-subset of {0..v-1} in
// lexicographic order, returning nil after the last one. Mutates idx.
func nextCombination(idx []int, v int) []int {
	n := len(idx)
	i := n - 1
	for i >= 0 && idx[i] == v-n+i {
		i--
	}
	if i < 0 {
		return nil
	}
	idx[i]++
	for j := i + 1; j < n; j++ {
		idx[j] = idx[j-1] + 1
	}

	return idx
}
