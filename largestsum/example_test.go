package largestsum_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsum/largestsum"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Pick weights 1..7 that add up to exactly 11.
//
// Complexity: O(n·T) time, O(n·T) memory
func ExampleSolve() {
	subset, sum, err := largestsum.Solve(11, []uint64{1, 2, 3, 4, 5, 6, 7}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d subset=%v\n", sum, subset)
	// Output:
	// sum=11 subset=[5 3 2 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve_closest
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	No subset of [4 3 6 5 4 3] reaches 21 under the reference recurrence;
//	the closest reachable sum below it is returned instead.
func ExampleSolve_closest() {
	subset, sum, _ := largestsum.Solve(21, []uint64{4, 3, 6, 5, 4, 3}, nil)
	fmt.Printf("sum=%d subset=%v\n", sum, subset)
	// Output:
	// sum=19 subset=[5 4 4 3 3]
}

// ExampleRun_takeOrSkip shows the optimal recurrence and the diagnostics Run reports.
func ExampleRun_takeOrSkip() {
	opts := largestsum.DefaultOptions()
	opts.Recurrence = largestsum.TakeOrSkip

	res, err := largestsum.Run(8, []uint64{2, 2, 3, 4}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d subset=%v row=%d exact=%v\n", res.Sum, res.Subset, res.Row, res.Exact)
	// Output:
	// sum=8 subset=[4 2 2] row=4 exact=true
}

// ExampleSolve_tooLarge shows the explicit allocation guard.
func ExampleSolve_tooLarge() {
	opts := largestsum.DefaultOptions()
	opts.MaxCells = 1000

	_, _, err := largestsum.Solve(5000, []uint64{1, 2, 3}, &opts)
	fmt.Println(errors.Is(err, largestsum.ErrTableTooLarge))
	// Output:
	// true
}
