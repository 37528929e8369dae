// Package chainorder - sentinel errors, options and result types.
//
// This file defines ONLY the public surface shared by the solvers; the
// algorithms live in chainorder.go and naive.go, validation in
// validate.go. All errors are sentinels matched via errors.Is; no solver
// panics on user input.
package chainorder

import "errors"

var (
	// ErrNameCount is returned when Options.Names is non-empty but its
	// length differs from the number of shapes.
	ErrNameCount = errors.New("chainorder: names length must match shapes length")

	// ErrChainMismatch is returned when adjacent shapes are incompatible,
	// i.e. shapes[i].Cols != shapes[i+1].Rows for some i. Returned errors
	// wrap this sentinel together with the offending position.
	ErrChainMismatch = errors.New("chainorder: adjacent shapes incompatible")
)

// Result holds the outcome of a chain-ordering solver.
type Result struct {
	// Expression is the fully parenthesized multiplication over the
	// operand labels, with "*" between operands, e.g. "((A * (B * C)) * D)".
	// A single operand renders as its bare label; an empty chain as "".
	Expression string

	// Flops is the total scalar-operation cost of evaluating the chain in
	// the reported grouping (flopcost accounting: 2*k-1 ops per output cell).
	Flops int
}

// Options configures a chain-ordering solver.
//
// Fields:
//   - Names — optional operand labels, one per shape, used verbatim in the
//     rendered expression. Leave nil (or empty) to synthesize "M1".."Mn".
//     A non-empty slice of any other length is rejected with ErrNameCount.
//
// Example:
//
//	opts := chainorder.DefaultOptions()
//	opts.Names = []string{"A", "B", "C"}
//	res, err := chainorder.OptimalOrder(shapes, &opts)
type Options struct {
	Names []string
}

// DefaultOptions returns the canonical defaults: no explicit names, so
// operands are labeled M1..Mn by position.
func DefaultOptions() Options {
	return Options{}
}
