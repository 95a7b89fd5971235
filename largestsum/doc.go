// Package largestsum finds the subset of a multiset of non-negative integers
// whose sum equals a target, or comes closest to it from below.
//
// 🚀 What does it solve?
//
//	Subset-sum approximation: "which of these values fill T best without
//	going over?". Typical uses:
//	  • Packing a budget or time slot from fixed-cost items
//	  • Change making / batching payments up to a limit
//	  • Filling a container of capacity T from indivisible pieces
//
// ✨ Key features:
//   - deficit table: cells store target − achieved sum, so an exact match is
//     simply a zero at the target column
//   - early exit: construction stops at the first row that hits T exactly
//   - best-row fallback: without an exact match the row with the smallest
//     deficit is reconstructed
//   - two reconstruction strategies (row comparison or recorded take bits)
//   - opt-in TakeOrSkip recurrence for a globally optimal sum
//   - explicit ErrTableTooLarge instead of an out-of-memory crash
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsum/largestsum"
//
//	subset, sum, err := largestsum.Solve(19, []uint64{4, 3, 6, 5, 4, 3}, nil)
//	// subset = [5 4 4 3 3], sum = 19
//
//	opts := largestsum.DefaultOptions()
//	opts.Recurrence = largestsum.TakeOrSkip
//	res, err := largestsum.Run(21, []uint64{4, 3, 6, 5, 4, 3}, &opts)
//	// res.Sum = 21, res.Subset = [6 5 4 3 3]
//
// Performance:
//
//   - Time:   O(n log n + n·T)
//   - Memory: O(n·T), bounded by Options.MaxCells
//
// The returned subset is in discovery order (largest table row first), not
// sorted. Sums are computed in uint64 and overflow is not detected.
package largestsum
