// Package chainorder computes a cheapest way to fully parenthesize a
// chain of matrix multiplications, given only the matrices' shapes.
//
// 🚀 What is matrix-chain ordering?
//
//	Matrix multiplication is associative, but the grouping dictates the
//	arithmetic bill: (A * B) * C and A * (B * C) produce the same matrix
//	at wildly different flop counts.  The classical interval dynamic
//	program finds a minimum-cost grouping by solving every sub-chain
//	[i, j] from shortest to longest and remembering where each one is
//	best split.
//
// ✨ Key features:
//   - exact optimum over all parenthesizations, O(n³) time / O(n²) memory
//   - deterministic tie-break: among equally cheap splits the leftmost
//     split index wins, so the reported expression is reproducible
//   - rendered result: a fully parenthesized expression over the given
//     names (or synthesized labels M1..Mn), e.g. "((A * (B * C)) * D)"
//   - NaiveOrder baseline pricing the strictly left-to-right grouping
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matchain/chainorder"
//
//	shapes := []flopcost.Shape{{Rows: 40, Cols: 20}, {Rows: 20, Cols: 30}, {Rows: 30, Cols: 10}, {Rows: 10, Cols: 30}}
//	opts := chainorder.DefaultOptions()
//	opts.Names = []string{"A", "B", "C", "D"}
//
//	res, err := chainorder.OptimalOrder(shapes, &opts)
//	// res.Expression == "((A * (B * C)) * D)"
//	// res.Flops      == 50200
//
// Costs use the flopcost formulas (2·k−1 scalar ops per output cell), so
// evaluating the returned grouping with flopcost.Multiply reproduces
// res.Flops exactly.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) (two n×n tables, allocated fresh per call)
package chainorder
