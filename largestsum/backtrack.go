package largestsum

// backtrackSkip reconstructs the subset behind D[row][T] by row comparison.
//
// Algorithm:
//  1. Cursor (i, j) = (row, T), goal d = D[row][T].
//  2. While j > d: append V[i-1], j -= V[i-1], i--.
//     Then move i up while D[i-1][j] == D[i][j]: those rows left the
//     deficit at capacity j unchanged, so none of their values was used.
//     The row where it last changed names the next included value.
//
// Every visited cell holds d, and a row where the deficit changed can only
// have been filled by including its value, so V[i-1] ≤ j on every append
// and i never reaches 0 while j > d. The i > 0 guard only bounds the loop.
//
// Complexity: O(n) time.
func backtrackSkip(t *table, sorted []uint64, row int, subset []uint64) ([]uint64, uint64) {
	var (
		d   = t.at(row, t.cols-1)
		i   = row
		j   = t.cols - 1
		sum uint64
	)

	for i > 0 && uint64(j) > d {
		v := sorted[i-1]
		subset = append(subset, v)
		sum += v
		j -= int(v)
		i--

		cell := t.at(i, j)
		for i-1 >= 0 && t.at(i-1, j) == cell {
			i--
		}
	}

	return subset, sum
}

// backtrackFlags reconstructs the subset by following the take bits.
//
// From (row, T), each row either took its value (move to j − v) or not
// (stay at j); in both cases the cell above holds the same deficit, so the
// walk ends with exactly T − d collected. It stops once j ≤ d: past that
// point only zero values could still be "taken".
//
// Complexity: O(n) time.
func backtrackFlags(t *table, sorted []uint64, row int, subset []uint64) ([]uint64, uint64) {
	var (
		d   = t.at(row, t.cols-1)
		j   = t.cols - 1
		sum uint64
	)

	for i := row; i > 0 && uint64(j) > d; i-- {
		if !t.taken(i, j) {
			continue
		}
		v := sorted[i-1]
		subset = append(subset, v)
		sum += v
		j -= int(v)
	}

	return subset, sum
}
