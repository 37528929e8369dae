// Package flopcost - domain types and sentinel errors.
//
// This file defines ONLY the value types and the package sentinel set.
// Combinators and formulas live in flopcost.go. Tests MUST match errors
// via errors.Is; no operation panics on user input.
package flopcost

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two ShapeCost values are combined
// with incompatible shapes: Add requires identical shapes, Multiply
// requires the left operand's cols to equal the right operand's rows.
// Returned errors wrap this sentinel together with both operand shapes.
var ErrDimensionMismatch = errors.New("flopcost: dimension mismatch")

// Shape is the (rows, cols) dimension pair of a matrix, independent of
// its contents. The zero value is the degenerate 0x0 shape.
type Shape struct {
	// Rows is the number of matrix rows.
	Rows int

	// Cols is the number of matrix columns.
	Cols int
}

// String renders the shape as "RxC", e.g. "2x10".
// Complexity: O(1).
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// ShapeCost is an immutable matrix shape annotated with the cumulative
// scalar-operation counts charged to produce a matrix of that shape.
// Additions and multiplications are tracked separately; Flops reports
// their sum. Every combinator returns a new value - ShapeCost is safe to
// share between goroutines without synchronization.
type ShapeCost struct {
	rows    int // matrix rows
	cols    int // matrix columns
	addOps  int // accumulated scalar additions
	multOps int // accumulated scalar multiplications
}

// Rows returns the number of matrix rows. Complexity: O(1).
func (c ShapeCost) Rows() int { return c.rows }

// Cols returns the number of matrix columns. Complexity: O(1).
func (c ShapeCost) Cols() int { return c.cols }

// Shape returns the (rows, cols) pair of the value. Complexity: O(1).
func (c ShapeCost) Shape() Shape { return Shape{Rows: c.rows, Cols: c.cols} }

// AddOps returns the accumulated scalar-addition count. Complexity: O(1).
func (c ShapeCost) AddOps() int { return c.addOps }

// MultOps returns the accumulated scalar-multiplication count. Complexity: O(1).
func (c ShapeCost) MultOps() int { return c.multOps }

// Flops returns the total accumulated cost: AddOps + MultOps.
// Complexity: O(1).
func (c ShapeCost) Flops() int { return c.addOps + c.multOps }

// Equal reports whether two values have identical shape AND identical
// accumulated counters. Two same-shape values reached through different
// operation sequences are NOT equal unless their costs coincide.
// Complexity: O(1).
func (c ShapeCost) Equal(other ShapeCost) bool {
	return c == other
}

// String renders the value as "<dims: R x C, flops: F>".
// Complexity: O(1).
func (c ShapeCost) String() string {
	return fmt.Sprintf("<dims: %d x %d, flops: %d>", c.rows, c.cols, c.Flops())
}
