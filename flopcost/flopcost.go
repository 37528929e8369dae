package flopcost

import "fmt"

// New constructs a ShapeCost of the given shape with zero accumulated
// cost. Dimensions are accepted as given; callers own any non-negativity
// policy.
//
// Complexity: O(1).
func New(rows, cols int) ShapeCost {
	return ShapeCost{rows: rows, cols: cols}
}

// FromShape constructs a zero-cost ShapeCost from a Shape value.
// Complexity: O(1).
func FromShape(s Shape) ShapeCost {
	return New(s.Rows, s.Cols)
}

// AddFlops is the cost formula for elementwise matrix addition:
// one scalar addition per cell, rows*cols in total.
//
// Complexity: O(1).
func AddFlops(rows, cols int) int {
	return rows * cols
}

// MulFlops is the cost formula for multiplying an (rows x inner) matrix
// by an (inner x cols) one: per left-operand cell, cols multiplications
// and cols-1 additions - rows*inner*(2*cols-1) in total.
//
// The chain-order optimizer prices every candidate split with this same
// formula, so its minima agree with chained Multiply accounting.
//
// Complexity: O(1).
func MulFlops(rows, inner, cols int) int {
	return rows * inner * (2*cols - 1)
}

// Add combines two same-shape values under elementwise addition.
//
// Implementation:
//   - Stage 1: validate both dimensions match.
//   - Stage 2: carry both operands' counters forward and charge
//     rows*cols additions for the operation itself.
//
// Returns a new ShapeCost of the shared shape; neither operand changes.
// Errors: ErrDimensionMismatch (wrapped with both shapes) when shapes differ.
// Complexity: O(1).
func (c ShapeCost) Add(other ShapeCost) (ShapeCost, error) {
	if c.rows != other.rows || c.cols != other.cols {
		return ShapeCost{}, fmt.Errorf("Add: %v vs %v: %w", c.Shape(), other.Shape(), ErrDimensionMismatch)
	}

	return ShapeCost{
		rows:    c.rows,
		cols:    c.cols,
		addOps:  c.addOps + other.addOps + AddFlops(c.rows, c.cols),
		multOps: c.multOps + other.multOps,
	}, nil
}

// Multiply combines two values under matrix multiplication.
//
// Implementation:
//   - Stage 1: validate inner dimensions (c.cols == other.rows).
//   - Stage 2: result takes shape (c.rows, other.cols); charge
//     c.rows*c.cols*(other.cols-1) additions and c.rows*c.cols*other.cols
//     multiplications on top of both operands' counters.
//
// The two charges sum to MulFlops(c.rows, c.cols, other.cols).
// Errors: ErrDimensionMismatch (wrapped with both shapes) when inner
// dimensions differ.
// Complexity: O(1).
func (c ShapeCost) Multiply(other ShapeCost) (ShapeCost, error) {
	if c.cols != other.rows {
		return ShapeCost{}, fmt.Errorf("Multiply: %v vs %v: %w", c.Shape(), other.Shape(), ErrDimensionMismatch)
	}

	return ShapeCost{
		rows:    c.rows,
		cols:    other.cols,
		addOps:  c.addOps + other.addOps + c.rows*c.cols*(other.cols-1),
		multOps: c.multOps + other.multOps + c.rows*c.cols*other.cols,
	}, nil
}

// Sum folds Add left-to-right over first and rest, equivalent to
// repeatedly rebinding an accumulator: acc = acc.Add(x).
//
// Errors: the first ErrDimensionMismatch encountered; in that case the
// partial accumulation is discarded.
// Complexity: O(len(rest)) combinations.
func Sum(first ShapeCost, rest ...ShapeCost) (ShapeCost, error) {
	var err error
	acc := first
	for _, x := range rest {
		if acc, err = acc.Add(x); err != nil {
			return ShapeCost{}, err
		}
	}

	return acc, nil
}

// Product folds Multiply left-to-right over first and rest, pricing the
// strictly-left-to-right parenthesization (((first * r0) * r1) * ...).
//
// Errors: the first ErrDimensionMismatch encountered; the partial
// accumulation is discarded.
// Complexity: O(len(rest)) combinations.
func Product(first ShapeCost, rest ...ShapeCost) (ShapeCost, error) {
	var err error
	acc := first
	for _, x := range rest {
		if acc, err = acc.Multiply(x); err != nil {
			return ShapeCost{}, err
		}
	}

	return acc, nil
}
