// Package chainorder - validation utilities shared by both solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No panics on user input - only sentinel errors from types.go,
//     wrapped with position context where that aids diagnosis.
//   - O(n) worst-case where n is the chain length.
package chainorder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/matchain/flopcost"
)

// validateChain verifies the optional names and the adjacency contract.
// It returns the chain length n on success.
//
// Contract:
//   - names is optional; if non-empty, len(names) must equal len(shapes).
//   - shapes[i].Cols must equal shapes[i+1].Rows for every i; the chain
//     is otherwise not multiplicable and the cost recurrence would price
//     impossible products.
//
// Complexity: O(n) time, O(1) space.
func validateChain(shapes []flopcost.Shape, names []string) (int, error) {
	n := len(shapes)

	// Stage 1: names, when supplied, must cover every position exactly once.
	if len(names) != 0 && len(names) != n {
		return 0, fmt.Errorf("%d names for %d shapes: %w", len(names), n, ErrNameCount)
	}

	// Stage 2: adjacency - cols of each matrix feed rows of its successor.
	for i := 0; i+1 < n; i++ {
		if shapes[i].Cols != shapes[i+1].Rows {
			return 0, fmt.Errorf("position %d: %v vs %v: %w", i, shapes[i], shapes[i+1], ErrChainMismatch)
		}
	}

	return n, nil
}

// label returns the display name of operand i: names[i] when names were
// supplied, otherwise the synthesized 1-based "M<i+1>".
//
// Complexity: O(1).
func label(names []string, i int) string {
	if len(names) != 0 {
		return names[i]
	}

	return "M" + strconv.Itoa(i+1)
}
