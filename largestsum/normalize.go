package largestsum

import "slices"

// normalize returns an ascending copy of items and the subset seed.
//
// Contract:
//   - items is never mutated.
//   - seed is [0] when target == 0 and items holds a zero, otherwise empty.
//     The zero counts as used even though it adds nothing to the sum.
//
// Complexity: O(n log n) time, O(n) space.
func normalize(target uint64, items []uint64) (sorted []uint64, seed []uint64) {
	sorted = slices.Clone(items)
	slices.Sort(sorted)

	// Sorted ascending, so a zero (if any) is at the front.
	if target == 0 && len(sorted) > 0 && sorted[0] == 0 {
		seed = append(seed, 0)
	}

	return sorted, seed
}
