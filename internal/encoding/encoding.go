// Package encoding implements the integer encodings from [NIST SP 800-185].
//
// left_encode and right_encode render an unsigned 64-bit value as its minimal
// big-endian magnitude (a single zero byte for zero) plus one byte counting
// the magnitude's length. left_encode leads with the count so the encoding is
// parseable from the front of a string; right_encode trails with it so the
// encoding is parseable from the end.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package encoding

import (
	"math/bits"
)

// MaxSize is the length, in bytes, of the largest encoded integer: an 8-byte
// magnitude plus the count byte.
const MaxSize = 9

// AppendLeftEncode appends left_encode(value) to b and returns the result.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := magnitudeLen(value)
	b = append(b, byte(n))
	for i := n - 1; i >= 0; i-- {
		b = append(b, byte(value>>(8*uint(i))))
	}
	return b
}

// AppendRightEncode appends right_encode(value) to b and returns the result.
func AppendRightEncode(b []byte, value uint64) []byte {
	n := magnitudeLen(value)
	for i := n - 1; i >= 0; i-- {
		b = append(b, byte(value>>(8*uint(i))))
	}
	return append(b, byte(n))
}

// magnitudeLen returns the number of bytes in the minimal big-endian
// representation of value. Zero still occupies one byte, so the count byte
// never leaves the range [1, 8].
func magnitudeLen(value uint64) int {
	return 8 - bits.LeadingZeros64(value|1)/8
}
