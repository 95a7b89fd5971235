// Package bitwise implements integer addition from bit operations only.
//
// Add walks the 32 bit positions of two int32 operands and applies the
// full-adder truth table at each one:
//
//	a | b | carry in | sum | carry out
//	--+---+----------+-----+----------
//	0 | 0 |    0     |  0  |    0
//	0 | 0 |    1     |  1  |    0
//	0 | 1 |    0     |  1  |    0
//	0 | 1 |    1     |  0  |    1
//	1 | 0 |    0     |  1  |    0
//	1 | 0 |    1     |  0  |    1
//	1 | 1 |    0     |  0  |    1
//	1 | 1 |    1     |  1  |    1
//
// Overflow wraps the same way as the + operator on int32.
package bitwise
