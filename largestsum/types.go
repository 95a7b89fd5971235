// Package largestsum defines options, modes, results and sentinel errors
// for the subset-sum approximation solver.
package largestsum

import (
	"errors"
	"strings"
)

// Sentinel errors for largestsum operations.
var (
	// ErrTableTooLarge indicates the (n+1)×(T+1) deficit table would exceed
	// Options.MaxCells (or overflow the platform int). Nothing is allocated.
	ErrTableTooLarge = errors.New("largestsum: deficit table exceeds cell limit")

	// ErrBadOptions indicates an unknown Recurrence or BacktrackMode value.
	ErrBadOptions = errors.New("largestsum: invalid options")

	// ErrUnknownMode indicates a mode name that ParseRecurrence or
	// ParseBacktrackMode does not recognise.
	ErrUnknownMode = errors.New("largestsum: unknown mode name")
)

// DefaultMaxCells bounds the table size when Options.MaxCells is zero.
// 1<<26 cells of uint64 is 512 MiB.
const DefaultMaxCells uint64 = 1 << 26

// Recurrence selects how a cell is filled when the element fits.
//
//   - TakeOnly   - D[i][j] = D[i-1][j-v]. The reference recurrence: the
//     "take" deficit is stored without comparing it to the "skip" deficit.
//     Outputs match the reference scenarios exactly, but an exact subset can
//     be missed (e.g. T=8, I=[2 2 3 4] yields 7).
//
//   - TakeOrSkip - D[i][j] = min(D[i-1][j-v], D[i-1][j]). Globally optimal:
//     the returned sum is the best achievable value not exceeding T.
type Recurrence int

const (
	// TakeOnly stores the take deficit unconditionally (default).
	TakeOnly Recurrence = iota

	// TakeOrSkip stores the smaller of the take and skip deficits.
	TakeOrSkip
)

// String returns the flag/config name of r.
func (r Recurrence) String() string {
	switch r {
	case TakeOnly:
		return "take-only"
	case TakeOrSkip:
		return "take-or-skip"
	default:
		return "unknown"
	}
}

// ParseRecurrence maps a name produced by Recurrence.String back to its value.
// Matching is case-insensitive; an empty name selects TakeOnly.
func ParseRecurrence(name string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "take-only":
		return TakeOnly, nil
	case "take-or-skip":
		return TakeOrSkip, nil
	default:
		return TakeOnly, ErrUnknownMode
	}
}

// BacktrackMode selects how the subset is recovered from the table.
//
//   - SkipUnchanged  - walk up from the chosen row, skipping rows whose
//     deficit at the current capacity equals the row above. No extra memory.
//
//   - InclusionFlags - record a "taken" bit per cell while building and
//     follow the bits. Costs one bool per cell, simpler walk. May pick a
//     different (equal-sum) subset than SkipUnchanged.
type BacktrackMode int

const (
	// SkipUnchanged reconstructs by row-to-row deficit comparison (default).
	SkipUnchanged BacktrackMode = iota

	// InclusionFlags reconstructs from take bits recorded at build time.
	InclusionFlags
)

// String returns the flag/config name of m.
func (m BacktrackMode) String() string {
	switch m {
	case SkipUnchanged:
		return "skip-unchanged"
	case InclusionFlags:
		return "inclusion-flags"
	default:
		return "unknown"
	}
}

// ParseBacktrackMode maps a name produced by BacktrackMode.String back to its value.
// Matching is case-insensitive; an empty name selects SkipUnchanged.
func ParseBacktrackMode(name string) (BacktrackMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "skip-unchanged":
		return SkipUnchanged, nil
	case "inclusion-flags":
		return InclusionFlags, nil
	default:
		return SkipUnchanged, ErrUnknownMode
	}
}

// Options configures Solve and Run.
//
// Fields:
//   - Recurrence - TakeOnly (reference behavior) or TakeOrSkip (optimal).
//   - Backtrack  - SkipUnchanged or InclusionFlags reconstruction.
//   - MaxCells   - upper bound on (n+1)·(T+1); 0 means DefaultMaxCells.
//
// Example:
//
//	opts := largestsum.DefaultOptions()
//	opts.Recurrence = largestsum.TakeOrSkip
//	subset, sum, err := largestsum.Solve(8, []uint64{2, 2, 3, 4}, &opts)
type Options struct {
	Recurrence Recurrence
	Backtrack  BacktrackMode
	MaxCells   uint64
}

// DefaultOptions returns Options with the reference recurrence,
// the skip-unchanged walk and the default cell limit.
func DefaultOptions() Options {
	return Options{
		Recurrence: TakeOnly,
		Backtrack:  SkipUnchanged,
		MaxCells:   DefaultMaxCells,
	}
}

// Result is the outcome of Run.
type Result struct {
	// Subset holds the chosen values in discovery order (largest-row first),
	// not in sorted order.
	Subset []uint64

	// Sum is the total of Subset; Sum ≤ target.
	Sum uint64

	// Row is the table row the walk started from (i_result).
	Row int

	// Deficit is D[Row][T], i.e. target − Sum.
	Deficit uint64

	// RowsBuilt counts table rows computed before construction stopped.
	RowsBuilt int

	// Exact reports that construction stopped on a zero deficit at the target column.
	Exact bool
}
