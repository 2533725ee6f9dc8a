// Package avdomain models the active-variable domain induced by a
// subspace.Projection: the region of ℝⁿ reachable as W1ᵀ·x when x ranges
// over the hypercube [-1,1]^m.
//
// The domain is a tagged variant, each kind carrying exactly the fields
// it needs (no nil-sentinel hull on an interval):
//
//   - KindInterval  (n = 1) — endpoints [yl, yu] and their sign vectors
//   - KindZonotope  (n > 1) — the enumerated vertex set, the facet
//     constraints A·y ≤ b, and a vertex Census comparing the number of
//     vertices found against the combinatorial oracle
//   - KindUnbounded         — no vertices and no constraints; the
//     companion variant for maps whose inputs are unbounded (Gaussian)
//     rather than hypercube-bounded
//
// Construction:
//
//	dom, err := avdomain.Bounded(p, nil) // nil opts → defaults
//
// A vertex-count mismatch is not an error: Monte Carlo enumeration can
// undercount, and degenerate projections legitimately have fewer
// vertices. The discrepancy is reported as a structured Census instead.
// A hull failure, by contrast, is fatal — it means the projection is too
// low-rank for a full-dimensional zonotope, which no retry can fix; the
// hull package sentinel (e.g. hull.ErrDegenerate) is wrapped and remains
// matchable via errors.Is.
//
// The constraint block (A, b) doubles as the optimizer interface: A is
// the (constant) Jacobian of the feasibility residual b − A·y, ready for
// gradient-based consumers.
package avdomain
