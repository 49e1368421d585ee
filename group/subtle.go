package group

import "crypto/subtle"

// ByteEqCT returns 1 if a == b, 0 otherwise, without branching on a or b.
// Mirrors the original source's subtle::bytes_equal_ct.
func ByteEqCT(a, b byte) byte {
	return byte(subtle.ConstantTimeByteEq(a, b))
}

// ByteNonzeroCT returns 1 if a != 0, 0 otherwise, without branching on a.
// Mirrors the original source's subtle::byte_is_nonzero.
func ByteNonzeroCT(a byte) byte {
	return 1 - ByteEqCT(a, 0)
}
