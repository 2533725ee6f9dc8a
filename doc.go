// Package avspace is your in-memory toolkit for working with the geometry
// of active subspaces — from the zonotope shadow a hypercube casts onto a
// learned low-dimensional projection, down to constrained sampling of
// full-space points consistent with a reduced coordinate.
//
// 🚀 What is avspace?
//
//	A modern Go library that brings together:
//		• Projections: orthogonal bases W = [W1|W2] split into active &
//		  inactive directions, validated once at construction
//		• Domains: the interval (n=1) or zonotope (n>1) image of the
//		  hypercube [-1,1]^m under W1, with vertices and facet constraints
//		• Maps: forward projection X → (Y, Z) and the inverse map that
//		  manufactures valid full-space points for active coordinates
//		• Sampling: an LP-seeded rejection random walk that keeps every
//		  draw inside the original hypercube
//
// ✨ Why choose avspace?
//
//   - Explicit over implicit – tagged domain variants, structured vertex
//     census instead of printed warnings, no hidden global state
//   - Numerically honest – deterministic sign conventions, documented
//     tolerances, gonum-backed linear algebra throughout
//   - Concurrent where it counts – per-row sampler chains run on
//     independent workers with independent RNG streams
//
// Under the hood, everything is organized under five subpackages:
//
//	subspace/ — the Projection type: W1, W2 and the shared eigenvector basis
//	zonotope/ — vertex enumeration, interval endpoints, the vertex count oracle
//	hull/     — facet inequalities A·y ≤ b over a vertex cloud
//	avdomain/ — the Interval / Zonotope / Unbounded domain model
//	avmap/    — forward & inverse maps, the constrained sampler, rotation
//
// Quick ASCII example (m=2 generators, n=2 → the zonotope is a hexagon’s
// little sibling, a parallelogram):
//
//	  +·······+
//	 ╱       ╱
//	+·······+
//
// Dive into the package docs for contracts, complexity notes and the
// sampling law preserved from the reference implementation.
//
//	go get github.com/katalvlaran/avspace
package avspace
