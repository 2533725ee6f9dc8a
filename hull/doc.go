// Package hull derives the facet inequalities of the convex hull of a
// finite point cloud in ℝⁿ (n ≥ 2): a matrix A and vector b with outward
// normals such that the hull equals {y : A·y ≤ b}.
//
// Algorithm Outline:
//  1. For every subset of n points, fit the hyperplane through them:
//     the unit normal is the null-space vector of the (n−1)×n matrix of
//     in-plane differences, extracted from its SVD. Affinely dependent
//     subsets (rank < n−1) are skipped.
//  2. Keep the hyperplane only if it supports the cloud — every point
//     lies on one side within tolerance. The supporting side fixes the
//     outward orientation of (a, b).
//  3. Deduplicate facets by their rounded normal equation; zonotope
//     facets in particular carry many coplanar vertices, so one facet is
//     discovered by many subsets.
//
// This is the classical brute-force facet enumeration: exact for points
// in general position and O(C(V,n)·V·n³) for V points. avspace builds a
// hull once per domain construction over modest zonotope vertex sets, so
// asymptotics are irrelevant here; for large point clouds use a dedicated
// computational-geometry code instead.
//
// Errors (sentinel):
//
//   - ErrNilPoints    — nil input matrix
//   - ErrBadDimension — ambient dimension below 2
//   - ErrTooFewPoints — fewer than n+1 points, hull cannot be full-dimensional
//   - ErrDegenerate   — fewer than n+1 supporting facets found, i.e. the
//     cloud is flat (not full-dimensional) or otherwise degenerate
package hull
