package chainorder

import (
	"strings"

	"github.com/katalvlaran/matchain/flopcost"
)

// NaiveOrder prices the strictly left-to-right grouping of the chain,
// (((M1 * M2) * M3) ... * Mn), the order an unoptimized evaluator would
// use. It shares OptimalOrder's validation and empty/single-chain policy,
// which makes the two directly comparable: for every valid chain,
// OptimalOrder's cost is ≤ NaiveOrder's.
//
// The cost is computed by folding flopcost.Multiply across the chain, so
// it is the exact accumulated cost a caller chaining ShapeCost values in
// input order would observe.
//
// Errors: ErrNameCount, ErrChainMismatch (same contract as OptimalOrder).
// Complexity: O(n) time, O(n) expression memory.
func NaiveOrder(shapes []flopcost.Shape, opts *Options) (Result, error) {
	var names []string
	if opts != nil {
		names = opts.Names
	}

	n, err := validateChain(shapes, names)
	if err != nil {
		return Result{}, err
	}

	if n == 0 {
		return Result{}, nil
	}
	if n == 1 {
		return Result{Expression: label(names, 0)}, nil
	}

	// Fold the accumulated cost left-to-right. Adjacency was validated,
	// so every Multiply along the fold is shape-compatible.
	acc := flopcost.FromShape(shapes[0])
	for i := 1; i < n; i++ {
		if acc, err = acc.Multiply(flopcost.FromShape(shapes[i])); err != nil {
			return Result{}, err
		}
	}

	// Left-deep rendering: n-1 opening parens, then one ") * label" per
	// further operand.
	var sb strings.Builder
	sb.WriteString(strings.Repeat("(", n-1))
	sb.WriteString(label(names, 0))
	for i := 1; i < n; i++ {
		sb.WriteString(" * ")
		sb.WriteString(label(names, i))
		sb.WriteByte(')')
	}

	return Result{Expression: sb.String(), Flops: acc.Flops()}, nil
}
