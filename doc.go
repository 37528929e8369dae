// Package matchain answers one question about matrix products: in which
// order should a chain of matrices be multiplied, and what does each order
// actually cost in scalar arithmetic?
//
// 🚀 What is matchain?
//
//	A small, pure-Go library that models matrix SHAPES and their flop
//	cost — never the numeric data itself:
//		• flopcost:   an immutable value tracking a matrix shape together
//		  with the add/mult operation counts accumulated to produce it
//		• chainorder: the classical matrix-chain-order interval DP, which
//		  finds a cheapest full parenthesization of a shape chain and
//		  renders it as a labeled expression
//
// ✨ Why choose matchain?
//
//   - Deterministic – same chain in, same expression and cost out,
//     including which of several equally cheap groupings is reported
//   - Honest accounting – multiplication charges 2·k−1 ops per output
//     cell (k mults, k−1 adds), addition one op per cell
//   - Pure Go – no cgo, no hidden deps, safe for concurrent callers
//
// Quick example:
//
//	shapes := []flopcost.Shape{{Rows: 40, Cols: 20}, {Rows: 20, Cols: 30}, {Rows: 30, Cols: 10}, {Rows: 10, Cols: 30}}
//	opts := chainorder.DefaultOptions()
//	opts.Names = []string{"A", "B", "C", "D"}
//	res, _ := chainorder.OptimalOrder(shapes, &opts)
//	// res.Expression == "((A * (B * C)) * D)", res.Flops == 50200
//
//	go get github.com/katalvlaran/matchain
package matchain
