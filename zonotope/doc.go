// Package zonotope computes the vertex structure of the image of the
// hypercube [-1,1]^m under an active-subspace projection W1 (m×n).
//
// 🚀 What lives here?
//
//   - Vertices       — Monte Carlo enumeration of the zonotope's vertex
//     set: distinct extremal sign vectors x ∈ {-1,+1}^m and their
//     active-coordinate images y = xᵀ·W1
//   - IntervalEndpoints — the closed-form n=1 case, where the zonotope
//     collapses to the interval [yl, yu]
//   - Count / CountCache — the exact expected vertex count from the
//     combinatorial recurrence, used downstream as a validation oracle
//   - SignOf         — the deterministic sign convention (0 → +1) shared
//     by every sign-vector computation in the library
//
// Algorithm Outline (Vertices):
//  1. Draw a direction y ~ Normal(0, I_n).
//  2. The hypercube vertex extremal in that direction has sign vector
//     x = sign(W1·y) componentwise.
//  3. Record x if unseen; its image xᵀ·W1 is a zonotope vertex.
//  4. Repeat for a fixed trial budget (EnumOptions.Trials, default 10000).
//
// The enumeration is stochastic, not exhaustive: vertices whose normal
// cone carries vanishing probability mass can be missed, which is why the
// count oracle is a validation aid and never a hard precondition.
// Degenerate W1 (a zero row, or duplicate rows) makes distinct directions
// tie in sign space; SignOf breaks ties deterministically but the vertex
// set found may then legitimately differ from the oracle count.
//
// Complexity:
//
//	Vertices:          O(Trials · m·n) time, O(V·m) memory for V vertices
//	Count:             O(m·n) table fills, memoized, safe for concurrent use
//	IntervalEndpoints: O(m)
//
// Errors (sentinel):
//
//   - ErrNilMatrix  — W1 is nil
//   - ErrBadDims    — m or n outside 1 ≤ n ≤ m
//   - ErrBadTrials  — non-positive trial budget
//   - ErrNotColumn  — IntervalEndpoints given a W1 with n ≠ 1
package zonotope
