package bitwise

// Add returns a + b computed one bit at a time with a full adder.
//
// For every bit position i (0..31):
//
//	sum_i   = a_i XOR b_i XOR carry
//	carry   = (a_i AND b_i) OR (a_i AND carry) OR (b_i AND carry)
//
// The final carry out of bit 31 is dropped, so the result wraps exactly like
// two's-complement int32 addition.
//
// Complexity: O(32).
func Add(a, b int32) int32 {
	var (
		ua, ub = uint32(a), uint32(b)
		result uint32
		carry  uint32
	)
	for i := uint(0); i < 32; i++ {
		x := ua >> i & 1
		y := ub >> i & 1
		result |= (x ^ y ^ carry) << i
		carry = x&y | x&carry | y&carry
	}

	return int32(result)
}
