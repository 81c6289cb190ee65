// qmul.go - unsigned Q0.16 multiply

package main

// QMul computes the truncating product of two UQ0.16 operands in a
// 64-bit-wide intermediate: qmul(a,b) = floor((a*b) / 2^16).
//
// Commutative exactly (multiplication of uint64 is commutative) and
// monotonic in each argument. No saturation is needed: both operands
// are < 1 in Q0.16, so the product is < 1 and fits UQ0.16 without
// overflow.
func QMul(a, b UQ016) UQ016 {
	checkUQ016(a)
	checkUQ016(b)
	product := uint64(a) * uint64(b)
	return UQ016(product >> uq016Bits)
}
