package chainorder

import (
	"math"
	"strings"

	"github.com/katalvlaran/matchain/flopcost"
)

// OptimalOrder finds a minimum-flop full parenthesization of a matrix
// chain given only the operand shapes.
//
// Algorithm Outline (interval DP, matrix-chain-order):
//  1. Let n = len(shapes). Allocate two n×n tables:
//     minCost[i][j] — cheapest way to fully multiply sub-chain [i..j];
//     split[i][j]   — the k realizing it, grouping (i..k) * (k+1..j).
//  2. minCost[i][i] = 0: a lone matrix costs nothing to produce.
//  3. For window length L = 2..n, for every [i, j] with j-i+1 == L, and
//     every split k in [i, j):
//     cand = minCost[i][k] + minCost[k+1][j]
//     + MulFlops(rows(i), cols(k), cols(j))
//     keep the strictly smaller cand, so among equal-cost splits the
//     SMALLEST k wins and the reported grouping is deterministic.
//  4. Answer = minCost[0][n-1]; the expression is rendered recursively
//     from the split table over the operand labels.
//
// Policy notes:
//   - Empty chain returns (Result{"", 0}, nil) rather than an error;
//     callers that consider empty input invalid reject it themselves.
//   - A single matrix returns its label and cost 0.
//   - Adjacency (shapes[i].Cols == shapes[i+1].Rows) is the caller's
//     contract but is still verified up front; a violation yields
//     ErrChainMismatch instead of silently wrong costs.
//
// Errors:
//   - ErrNameCount     — opts.Names non-empty with the wrong length.
//   - ErrChainMismatch — adjacent shapes incompatible.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²), both tables allocated per call and discarded.
func OptimalOrder(shapes []flopcost.Shape, opts *Options) (Result, error) {
	var names []string
	if opts != nil {
		names = opts.Names
	}

	n, err := validateChain(shapes, names)
	if err != nil {
		return Result{}, err
	}

	// Trivial chains need no tables.
	if n == 0 {
		return Result{}, nil
	}
	if n == 1 {
		return Result{Expression: label(names, 0)}, nil
	}

	// --- 1. Allocate DP and split tables ---
	minCost := make([][]int, n)
	split := make([][]int, n)
	for i := 0; i < n; i++ {
		minCost[i] = make([]int, n)
		split[i] = make([]int, n)
	}

	// --- 2. Fill windows from shortest to longest ---
	var i, j, k, cand int
	for length := 2; length <= n; length++ {
		for i = 0; i+length <= n; i++ {
			j = i + length - 1
			minCost[i][j] = math.MaxInt
			for k = i; k < j; k++ {
				// Grouping (i..k) * (k+1..j) multiplies a rows(i)×cols(k)
				// result by a cols(k)×cols(j) one.
				cand = minCost[i][k] + minCost[k+1][j] +
					flopcost.MulFlops(shapes[i].Rows, shapes[k].Cols, shapes[j].Cols)
				if cand < minCost[i][j] {
					minCost[i][j] = cand
					split[i][j] = k
				}
			}
		}
	}

	// --- 3. Render the optimal grouping from the split table ---
	var sb strings.Builder
	renderOrder(&sb, split, names, 0, n-1)

	return Result{Expression: sb.String(), Flops: minCost[0][n-1]}, nil
}

// renderOrder writes the fully parenthesized expression for sub-chain
// [i, j] into sb, reading the recorded split points. It is a pure
// function of its arguments: the split table, bounds and labels are
// passed explicitly rather than captured.
//
// Each leaf position is visited exactly once; windows shrink strictly,
// so the recursion terminates after n-1 splits.
//
// Complexity: O(n) visits for the whole tree.
func renderOrder(sb *strings.Builder, split [][]int, names []string, i, j int) {
	if i == j {
		sb.WriteString(label(names, i))

		return
	}

	k := split[i][j]
	sb.WriteByte('(')
	renderOrder(sb, split, names, i, k)
	sb.WriteString(" * ")
	renderOrder(sb, split, names, k+1, j)
	sb.WriteByte(')')
}
