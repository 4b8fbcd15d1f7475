// Package inv2x2 is a small, dependency-light toolkit for inverting 2×2
// matrices, from the closed-form kernel to a command-line front end.
//
// 🚀 What is inside?
//
//	• matrix: Invert / InvertAny / InvertMatrix with fail-fast validation
//	  (shape → determinant → singular → element type → construction)
//	• matrix helpers: Det, Mul, Identity, AllClose, IsIdentity, Dense
//	• cmd/inv2x2: decode a matrix from YAML/JSON, invert it, print it
//
// ✨ Why closed form?
//
//	For a 2×2 matrix [[a, b], [c, d]] the inverse is
//	[[d, -b], [-c, a]] / (a·d − b·c). No pivoting, no iteration:
//	O(1) time and a single allocation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/inv2x2/matrix"
//
//	inv, err := matrix.Invert([][]float64{{4, 7}, {2, 6}})
//	// inv == [[0.6, -0.7], [-0.2, 0.4]]
//
// Out of scope: N×N inversion, numerical stabilization, exact arithmetic,
// batch inversion.
package inv2x2
