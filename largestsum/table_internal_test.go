package largestsum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFor normalizes items and builds a full table for target.
func buildFor(t *testing.T, target uint64, items []uint64, rec Recurrence, flags bool) (*table, []uint64, buildOutcome) {
	t.Helper()
	sorted, _ := normalize(target, items)
	rows, cols, err := checkSize(len(sorted), target, DefaultMaxCells)
	require.NoError(t, err)
	tb := newTable(rows, cols, flags)

	return tb, sorted, tb.build(sorted, rec)
}

// TestTable_ReferenceRow verifies D[0][j] = j.
func TestTable_ReferenceRow(t *testing.T) {
	tb := newTable(3, 9, false)
	for j := 0; j < 9; j++ {
		assert.Equal(t, uint64(j), tb.at(0, j))
	}
	assert.Nil(t, tb.take, "take bits are only allocated on request")
}

// TestTable_DocumentedExample reproduces the I=[1 3 5 6], T=8 table.
func TestTable_DocumentedExample(t *testing.T) {
	tb, _, out := buildFor(t, 8, []uint64{6, 1, 5, 3}, TakeOnly, false)
	want := [][]uint64{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{0, 0, 1, 2, 3, 4, 5, 6, 7},
		{0, 0, 1, 0, 0, 1, 2, 3, 4},
		{0, 0, 1, 0, 0, 0, 0, 1, 0},
	}
	for i, row := range want {
		for j, v := range row {
			assert.Equal(t, v, tb.at(i, j), "D[%d][%d]", i, j)
		}
	}
	assert.True(t, out.exact)
	assert.Equal(t, 3, out.row)
	assert.Equal(t, 3, out.rowsBuilt, "row for value 6 is never filled")
}

// TestTable_Invariants checks 0 ≤ D[i][j] ≤ j and D[i][0] = 0 on built rows.
func TestTable_Invariants(t *testing.T) {
	for _, rec := range []Recurrence{TakeOnly, TakeOrSkip} {
		tb, _, out := buildFor(t, 40, []uint64{9, 4, 4, 0, 13, 7, 2, 21}, rec, false)
		for i := 0; i <= out.rowsBuilt; i++ {
			assert.Zero(t, tb.at(i, 0), "%s: D[%d][0]", rec, i)
			for j := 0; j < tb.cols; j++ {
				assert.LessOrEqual(t, tb.at(i, j), uint64(j), "%s: D[%d][%d]", rec, i, j)
			}
		}
	}
}

// TestTable_TakeOrSkipIsMonotone checks D[i][j] ≤ D[i-1][j] under TakeOrSkip,
// which TakeOnly does not guarantee.
func TestTable_TakeOrSkipIsMonotone(t *testing.T) {
	tb, _, out := buildFor(t, 30, []uint64{2, 2, 3, 4, 11, 6}, TakeOrSkip, false)
	for i := 1; i <= out.rowsBuilt; i++ {
		for j := 0; j < tb.cols; j++ {
			assert.LessOrEqual(t, tb.at(i, j), tb.at(i-1, j), "D[%d][%d]", i, j)
		}
	}

	// TakeOnly: 2+2 fills capacity 4 exactly, but row 3 (value 3) overwrites
	// it with the take deficit D[2][1] = 1.
	ref, _, out := buildFor(t, 8, []uint64{2, 2, 3, 4}, TakeOnly, false)
	assert.Zero(t, ref.at(2, 4))
	assert.Equal(t, uint64(1), ref.at(3, 4))
	assert.Equal(t, uint64(1), ref.at(4, 8), "so 4 cannot complete 2+2+4")
	assert.False(t, out.exact)
}

// TestTable_TakeBits checks bits are set exactly on take cells.
func TestTable_TakeBits(t *testing.T) {
	tb, sorted, out := buildFor(t, 8, []uint64{2, 2, 3, 4}, TakeOnly, true)
	require.NotNil(t, tb.take)
	for i := 1; i <= out.rowsBuilt; i++ {
		for j := 0; j < tb.cols; j++ {
			assert.Equal(t, sorted[i-1] <= uint64(j), tb.taken(i, j), "bit (%d,%d)", i, j)
		}
	}
}

// TestCheckSize covers the limit, the overflow guard and exact fits.
func TestCheckSize(t *testing.T) {
	rows, cols, err := checkSize(3, 24, 100)
	require.NoError(t, err)
	assert.Equal(t, 4, rows)
	assert.Equal(t, 25, cols)

	_, _, err = checkSize(3, 25, 100)
	assert.ErrorIs(t, err, ErrTableTooLarge)

	_, _, err = checkSize(0, 200, 100)
	assert.ErrorIs(t, err, ErrTableTooLarge, "a single row can already be too wide")

	_, _, err = checkSize(1, math.MaxUint64, math.MaxUint64)
	assert.ErrorIs(t, err, ErrTableTooLarge)

	_, _, err = checkSize(math.MaxInt32, 1<<40, math.MaxUint64)
	assert.ErrorIs(t, err, ErrTableTooLarge, "product overflow")
}

// TestNormalize checks sorting, non-mutation and the zero seed.
func TestNormalize(t *testing.T) {
	items := []uint64{3, 0, 2, 1}
	sorted, seed := normalize(0, items)
	assert.Equal(t, []uint64{0, 1, 2, 3}, sorted)
	assert.Equal(t, []uint64{0}, seed)
	assert.Equal(t, []uint64{3, 0, 2, 1}, items)

	_, seed = normalize(5, items)
	assert.Empty(t, seed, "zeros only seed the subset for a zero target")

	_, seed = normalize(0, []uint64{1, 2})
	assert.Empty(t, seed)
}

// TestRowSelector checks strict improvement and tie handling.
func TestRowSelector(t *testing.T) {
	s := rowSelector{best: 0, deficit: 10}
	s.observe(1, 12)
	assert.Equal(t, 0, s.best)
	s.observe(2, 4)
	assert.Equal(t, 2, s.best)
	s.observe(3, 4)
	assert.Equal(t, 2, s.best, "ties keep the earlier row")
	s.observe(4, 1)
	assert.Equal(t, 4, s.best)
	assert.Equal(t, uint64(1), s.deficit)
}
