package zonotope

import "gonum.org/v1/gonum/mat"

// IntervalEndpoints computes the 1-D active-variable domain for a
// single-column W1 (m×1): the interval [yl, yu] the hypercube projects
// onto, plus the sign vectors attaining each endpoint.
//
// The extremal sign pattern is sign(W1) itself: y0 = W1ᵀ·sign(W1) is the
// upper endpoint when positive. Endpoints are returned ordered, Y being
// the 2×1 matrix [yl; yu] and X the 2×m matrix stacking xl above xu, so
// that W1ᵀ·xl = yl and W1ᵀ·xu = yu exactly.
//
// Duplicate rows in W1 are harmless here (no direction sampling is
// involved); a zero row contributes +1 to the sign pattern per SignOf and
// 0 to the endpoint value.
//
// Returns ErrNilMatrix or ErrNotColumn.
func IntervalEndpoints(W1 mat.Matrix) (Y, X *mat.Dense, err error) {
	if W1 == nil {
		return nil, nil, ErrNilMatrix
	}
	m, n := W1.Dims()
	if n != 1 {
		return nil, nil, ErrNotColumn
	}

	sign := make([]float64, m)
	y0 := 0.0
	for i := 0; i < m; i++ {
		sign[i] = SignOf(W1.At(i, 0))
		y0 += W1.At(i, 0) * sign[i]
	}

	// y0 ≥ -y0 always (it is a sum of absolute values), but orient
	// explicitly so a perfectly zero W1 still yields yl ≤ yu.
	lo, hi := -y0, y0
	loSign, hiSign := -1.0, 1.0
	if y0 < -y0 {
		lo, hi = y0, -y0
		loSign, hiSign = 1.0, -1.0
	}

	Y = mat.NewDense(2, 1, []float64{lo, hi})
	X = mat.NewDense(2, m, nil)
	for i := 0; i < m; i++ {
		X.Set(0, i, loSign*sign[i])
		X.Set(1, i, hiSign*sign[i])
	}

	return Y, X, nil
}
