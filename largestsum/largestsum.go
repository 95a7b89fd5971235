package largestsum

// Largest Sum - subset sum equal or closest below a target
//
// Description:
//
//	Given a multiset of non-negative integers and a non-negative target T,
//	find a subset whose sum equals T, or failing that the subset whose sum
//	is the closest value not exceeding T, and return it with its sum.
//
// Algorithm Outline:
//  1. Normalize: copy and sort items ascending (V). Empty input ⇒ ([], 0).
//     T == 0 and a zero present ⇒ the subset starts as [0].
//  2. Allocate the (n+1)×(T+1) deficit table D; D[0][j] = j.
//  3. For i = 1..n, j = 0..T, v = V[i-1]:
//     D[i][j] = D[i-1][j]            if v > j
//     D[i][j] = D[i-1][j-v]          otherwise (TakeOnly)
//     After row i: D[i][T] == 0 ⇒ stop, walk from row i.
//     Otherwise remember the row with the smallest D[i][T].
//  4. Walk back from the chosen row (see backtrack.go) collecting values
//     until the remaining capacity equals the row's deficit.
//
// Complexity:
//
//	Time   = O(n log n + n·T)
//	Memory = O(n·T) (plus n·T bools with InclusionFlags)
//
// Errors:
//   - ErrTableTooLarge - (n+1)·(T+1) exceeds Options.MaxCells.
//   - ErrBadOptions    - unknown Recurrence or BacktrackMode.

// Solve returns the subset of items whose sum equals target, or the best
// reachable sum below it, together with that sum.
// The subset is in discovery order. opts may be nil for DefaultOptions.
//
// Example:
//
//	subset, sum, err := Solve(11, []uint64{1, 2, 3, 4, 5, 6, 7}, nil)
//	// subset = [5 3 2 1], sum = 11
func Solve(target uint64, items []uint64, opts *Options) (subset []uint64, sum uint64, err error) {
	res, err := Run(target, items, opts)
	if err != nil {
		return nil, 0, err
	}

	return res.Subset, res.Sum, nil
}

// Run performs the same computation as Solve and also reports which table
// row the result came from, its deficit, and how much of the table was built.
func Run(target uint64, items []uint64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(&o); err != nil {
		return Result{}, err
	}

	if len(items) == 0 {
		return Result{Subset: []uint64{}, Deficit: target}, nil
	}

	sorted, subset := normalize(target, items)

	rows, cols, err := checkSize(len(sorted), target, o.MaxCells)
	if err != nil {
		return Result{}, err
	}
	t := newTable(rows, cols, o.Backtrack == InclusionFlags)
	out := t.build(sorted, o.Recurrence)

	var sum uint64
	if subset == nil {
		subset = make([]uint64, 0, out.row)
	}
	switch o.Backtrack {
	case InclusionFlags:
		subset, sum = backtrackFlags(t, sorted, out.row, subset)
	default:
		subset, sum = backtrackSkip(t, sorted, out.row, subset)
	}

	return Result{
		Subset:    subset,
		Sum:       sum,
		Row:       out.row,
		Deficit:   t.at(out.row, cols-1),
		RowsBuilt: out.rowsBuilt,
		Exact:     out.exact,
	}, nil
}

// validateOptions rejects unknown modes and resolves MaxCells == 0.
func validateOptions(o *Options) error {
	switch o.Recurrence {
	case TakeOnly, TakeOrSkip:
	default:
		return ErrBadOptions
	}
	switch o.Backtrack {
	case SkipUnchanged, InclusionFlags:
	default:
		return ErrBadOptions
	}
	if o.MaxCells == 0 {
		o.MaxCells = DefaultMaxCells
	}

	return nil
}
