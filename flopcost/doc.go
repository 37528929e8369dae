// Package flopcost models the arithmetic cost of matrix expressions
// without touching any matrix data: only shapes and operation counts.
//
// 🚀 What is flopcost?
//
//	A ShapeCost is an immutable value pairing a matrix shape (rows × cols)
//	with the scalar additions and multiplications accumulated so far to
//	produce a matrix of that shape.  Combining two values with Add or
//	Multiply validates the shapes, charges the operation's own flops and
//	carries both operands' histories forward:
//	  • Add:      same shape required; charges rows·cols additions.
//	  • Multiply: inner dimensions must match; per output row of the left
//	    operand, each of its cols entries feeds cols₂ multiplications and
//	    cols₂−1 additions — rows·cols·(2·cols₂−1) flops in total.
//
// ✨ Key properties:
//   - Immutable: every combinator returns a fresh value; a failed
//     combination alters neither operand.
//   - Monotone: accumulated counters never decrease or reset.
//   - Comparable: Equal requires identical shape AND identical counters,
//     so the same chain grouped two ways compares equal only when the
//     groupings genuinely cost the same.
//
// ⚙️ Usage:
//
//	a := flopcost.New(2, 5)
//	b := flopcost.New(5, 10)
//	c, err := a.Multiply(b)
//	if err != nil {
//	  // errors.Is(err, flopcost.ErrDimensionMismatch)
//	}
//	fmt.Println(c) // <dims: 2 x 10, flops: 190>
//
// All operations are O(1) time and memory; Sum and Product fold a sequence
// in O(len) combinations.
package flopcost
