package chainorder_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/matchain/chainorder"
	"github.com/katalvlaran/matchain/flopcost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalExpression prices a fully parenthesized expression by evaluating it
// with flopcost.Multiply, resolving each label through byName. It lets
// tests confirm that the DP's claimed minimum matches what actually
// chaining ShapeCost values in the reported grouping costs.
func evalExpression(t *testing.T, expr string, byName map[string]flopcost.Shape) flopcost.ShapeCost {
	t.Helper()

	if !strings.HasPrefix(expr, "(") {
		s, ok := byName[expr]
		require.True(t, ok, "unknown operand %q", expr)

		return flopcost.FromShape(s)
	}

	// Strip the outer parens and split at the top-level " * ".
	inner := expr[1 : len(expr)-1]
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '*':
			if depth == 0 {
				left := evalExpression(t, inner[:i-1], byName)
				right := evalExpression(t, inner[i+2:], byName)
				prod, err := left.Multiply(right)
				require.NoError(t, err, "rendered grouping must be shape-compatible")

				return prod
			}
		}
	}
	t.Fatalf("malformed expression %q", expr)

	return flopcost.ShapeCost{}
}

// bruteForceMin enumerates every parenthesization of shapes[i..j] and
// returns the cheapest total flop count, priced with flopcost.Multiply.
// Exponential, so only used on short chains.
func bruteForceMin(t *testing.T, shapes []flopcost.Shape) int {
	t.Helper()

	var solve func(i, j int) []flopcost.ShapeCost
	solve = func(i, j int) []flopcost.ShapeCost {
		if i == j {
			return []flopcost.ShapeCost{flopcost.FromShape(shapes[i])}
		}
		var out []flopcost.ShapeCost
		for k := i; k < j; k++ {
			for _, l := range solve(i, k) {
				for _, r := range solve(k+1, j) {
					prod, err := l.Multiply(r)
					require.NoError(t, err)
					out = append(out, prod)
				}
			}
		}

		return out
	}

	best := -1
	for _, c := range solve(0, len(shapes)-1) {
		if best < 0 || c.Flops() < best {
			best = c.Flops()
		}
	}

	return best
}

// randomChain builds a valid n-matrix chain with dimensions in [1, maxDim].
func randomChain(rng *rand.Rand, n, maxDim int) []flopcost.Shape {
	dims := make([]int, n+1)
	for i := range dims {
		dims[i] = 1 + rng.Intn(maxDim)
	}
	shapes := make([]flopcost.Shape, n)
	for i := 0; i < n; i++ {
		shapes[i] = flopcost.Shape{Rows: dims[i], Cols: dims[i+1]}
	}

	return shapes
}

// TestOptimalOrder_Golden pins the classic four-matrix chain: grouping
// (A * (B * C)) first and D last saves almost half the naive bill.
func TestOptimalOrder_Golden(t *testing.T) {
	shapes := []flopcost.Shape{
		{Rows: 40, Cols: 20},
		{Rows: 20, Cols: 30},
		{Rows: 30, Cols: 10},
		{Rows: 10, Cols: 30},
	}
	opts := chainorder.DefaultOptions()
	opts.Names = []string{"A", "B", "C", "D"}

	res, err := chainorder.OptimalOrder(shapes, &opts)
	require.NoError(t, err)
	assert.Equal(t, "((A * (B * C)) * D)", res.Expression)
	assert.Equal(t, 50200, res.Flops)
}

// TestOptimalOrder_EmptyChain verifies the non-throwing empty-input
// policy: no expression, zero cost, no error.
func TestOptimalOrder_EmptyChain(t *testing.T) {
	res, err := chainorder.OptimalOrder(nil, nil)
	require.NoError(t, err, "empty chain is not an error")
	assert.Equal(t, chainorder.Result{}, res)
}

// TestOptimalOrder_SingleMatrix verifies a lone matrix costs nothing and
// renders as its bare label.
func TestOptimalOrder_SingleMatrix(t *testing.T) {
	opts := chainorder.DefaultOptions()
	opts.Names = []string{"A"}

	res, err := chainorder.OptimalOrder([]flopcost.Shape{{Rows: 5, Cols: 7}}, &opts)
	require.NoError(t, err)
	assert.Equal(t, "A", res.Expression)
	assert.Equal(t, 0, res.Flops)
}

// TestOptimalOrder_SynthesizedLabels checks the M1..Mn fallback when no
// names are supplied.
func TestOptimalOrder_SynthesizedLabels(t *testing.T) {
	shapes := []flopcost.Shape{
		{Rows: 2, Cols: 5},
		{Rows: 5, Cols: 3},
		{Rows: 3, Cols: 10},
	}

	res, err := chainorder.OptimalOrder(shapes, nil)
	require.NoError(t, err)
	assert.Equal(t, "((M1 * M2) * M3)", res.Expression)
	assert.Equal(t, 164, res.Flops)
}

// TestOptimalOrder_NameCount ensures a non-empty name list of the wrong
// length is rejected.
func TestOptimalOrder_NameCount(t *testing.T) {
	shapes := []flopcost.Shape{
		{Rows: 2, Cols: 3},
		{Rows: 3, Cols: 4},
	}
	opts := chainorder.DefaultOptions()
	opts.Names = []string{"A"}

	_, err := chainorder.OptimalOrder(shapes, &opts)
	assert.ErrorIs(t, err, chainorder.ErrNameCount, "one name for two shapes must error")
}

// TestOptimalOrder_ChainMismatch ensures a broken adjacency is reported
// instead of priced.
func TestOptimalOrder_ChainMismatch(t *testing.T) {
	shapes := []flopcost.Shape{
		{Rows: 2, Cols: 3},
		{Rows: 4, Cols: 5},
	}

	_, err := chainorder.OptimalOrder(shapes, nil)
	assert.ErrorIs(t, err, chainorder.ErrChainMismatch, "cols(0) != rows(1) must error")
}

// TestOptimalOrder_TieBreak pins the first-k policy on a chain of equal
// square matrices, where every split costs the same: the reported
// grouping must be right-leaning off the first operand, not arbitrary.
func TestOptimalOrder_TieBreak(t *testing.T) {
	shapes := []flopcost.Shape{
		{Rows: 2, Cols: 2},
		{Rows: 2, Cols: 2},
		{Rows: 2, Cols: 2},
		{Rows: 2, Cols: 2},
	}

	res, err := chainorder.OptimalOrder(shapes, nil)
	require.NoError(t, err)
	assert.Equal(t, "(M1 * (M2 * (M3 * M4)))", res.Expression, "equal-cost splits must keep the smallest k")
	assert.Equal(t, 36, res.Flops, "three 2x2 products at 12 flops each")
}

// TestOptimalOrder_StructuralCompleteness verifies every operand appears
// exactly once in the rendered expression, for chains of several lengths.
func TestOptimalOrder_StructuralCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		shapes := randomChain(rng, n, 9)

		res, err := chainorder.OptimalOrder(shapes, nil)
		require.NoError(t, err)

		// Tokenize on expression syntax; what remains are the bare labels.
		operands := strings.FieldsFunc(res.Expression, func(r rune) bool {
			return r == '(' || r == ')' || r == '*' || r == ' '
		})
		require.Lenf(t, operands, n, "expression %q must name all %d operands", res.Expression, n)
		for i := 1; i <= n; i++ {
			assert.Containsf(t, operands, "M"+strconv.Itoa(i),
				"operand M%d must appear in %q", i, res.Expression)
		}
	}
}

// TestOptimalOrder_MatchesBruteForce cross-checks the DP against full
// enumeration on random short chains: the returned cost must equal the
// true minimum, and evaluating the rendered expression with
// flopcost.Multiply must reproduce it exactly.
func TestOptimalOrder_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"A", "B", "C", "D", "E", "F"}

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(5)
		shapes := randomChain(rng, n, 12)
		opts := chainorder.DefaultOptions()
		opts.Names = names[:n]

		res, err := chainorder.OptimalOrder(shapes, &opts)
		require.NoError(t, err)

		assert.Equalf(t, bruteForceMin(t, shapes), res.Flops,
			"DP must find the true minimum for %v", shapes)

		byName := make(map[string]flopcost.Shape, n)
		for i, s := range shapes {
			byName[names[i]] = s
		}
		got := evalExpression(t, res.Expression, byName)
		assert.Equalf(t, res.Flops, got.Flops(),
			"evaluating %q must reproduce the reported cost", res.Expression)
		assert.Equal(t, shapes[0].Rows, got.Rows(), "outer shape rows")
		assert.Equal(t, shapes[n-1].Cols, got.Cols(), "outer shape cols")
	}
}

// TestOptimalOrder_NeverWorseThanNaive checks the optimality bound
// against the left-to-right baseline on random chains.
func TestOptimalOrder_NeverWorseThanNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		shapes := randomChain(rng, 2+rng.Intn(7), 15)

		opt, err := chainorder.OptimalOrder(shapes, nil)
		require.NoError(t, err)
		naive, err := chainorder.NaiveOrder(shapes, nil)
		require.NoError(t, err)

		assert.LessOrEqual(t, opt.Flops, naive.Flops,
			"optimum must never exceed the left-to-right order")
	}
}
