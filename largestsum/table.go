package largestsum

import "math"

// table is the (n+1)×(T+1) deficit table stored row-major in one slice.
// cell(i, j) holds the minimal deficit j − s for a subset of the first i
// sorted values with sum s ≤ j. Row 0 is the reference row D[0][j] = j.
type table struct {
	rows  int
	cols  int
	cells []uint64
	take  []bool // nil unless InclusionFlags
}

// checkSize verifies (n+1)·(T+1) ≤ limit without overflowing.
// It returns the row and column counts as ints on success.
//
// Complexity: O(1).
func checkSize(n int, target uint64, limit uint64) (rows, cols int, err error) {
	if target >= math.MaxInt-1 {
		return 0, 0, ErrTableTooLarge
	}
	if limit > math.MaxInt {
		limit = math.MaxInt
	}
	r := uint64(n) + 1
	c := target + 1
	if c > limit || r > limit/c {
		return 0, 0, ErrTableTooLarge
	}

	return int(r), int(c), nil
}

// newTable allocates a table and fills the reference row.
func newTable(rows, cols int, trackTake bool) *table {
	t := &table{
		rows:  rows,
		cols:  cols,
		cells: make([]uint64, rows*cols),
	}
	if trackTake {
		t.take = make([]bool, rows*cols)
	}
	for j := 0; j < cols; j++ {
		t.cells[j] = uint64(j)
	}

	return t
}

// at returns D[i][j].
func (t *table) at(i, j int) uint64 {
	return t.cells[i*t.cols+j]
}

// taken reports whether cell (i, j) was filled by including V[i-1].
func (t *table) taken(i, j int) bool {
	return t.take[i*t.cols+j]
}

// rowSelector tracks the row with the smallest deficit at the target column.
// It starts at row 0, whose deficit is T itself, so an empty selection is
// always a valid fallback.
type rowSelector struct {
	best    int
	deficit uint64
}

// observe records row i with target-column deficit d.
// Only strict improvements move the selection; ties keep the earlier row.
func (s *rowSelector) observe(i int, d uint64) {
	if d < s.deficit {
		s.best, s.deficit = i, d
	}
}

// buildOutcome reports where construction stopped and which row to walk from.
type buildOutcome struct {
	row       int  // i_result
	rowsBuilt int  // rows 1..rowsBuilt were computed
	exact     bool // stopped on D[row][T] == 0
}

// build fills rows 1..n of t from the sorted values.
//
// Recurrence for cell (i, j), v = sorted[i-1]:
//   - v > j:  D[i][j] = D[i-1][j]                       (cannot fit)
//   - v ≤ j:  D[i][j] = D[i-1][j-v]                     (TakeOnly)
//     D[i][j] = min(D[i-1][j-v], D[i-1][j])   (TakeOrSkip)
//
// After each row the target column is inspected: a zero deficit stops
// construction (no later row can improve on it); otherwise the selector is
// updated.
//
// Complexity: O(n·T) time, no allocations.
func (t *table) build(sorted []uint64, rec Recurrence) buildOutcome {
	var (
		last = t.cols - 1
		sel  = rowSelector{best: 0, deficit: t.at(0, last)}
	)

	for i := 1; i < t.rows; i++ {
		var (
			v    = sorted[i-1]
			prev = t.cells[(i-1)*t.cols : i*t.cols]
			cur  = t.cells[i*t.cols : (i+1)*t.cols]
		)
		for j := 0; j < t.cols; j++ {
			if v > uint64(j) {
				cur[j] = prev[j]
				continue
			}
			takeDef := prev[j-int(v)]
			if rec == TakeOrSkip && prev[j] <= takeDef {
				cur[j] = prev[j]
				continue
			}
			cur[j] = takeDef
			if t.take != nil {
				t.take[i*t.cols+j] = true
			}
		}

		if cur[last] == 0 {
			return buildOutcome{row: i, rowsBuilt: i, exact: true}
		}
		sel.observe(i, cur[last])
	}

	return buildOutcome{row: sel.best, rowsBuilt: t.rows - 1, exact: false}
}
