// Package sp800185 implements the SHA-3 derived functions from [NIST SP 800-185]:
// cSHAKE, a customizable extendable-output function, and (in subpackages) KMAC,
// TupleHash, and ParallelHash.
//
// All four constructions are domain-separated: distinct function names,
// customization strings, tuple framings, and requested output lengths never
// produce colliding digests. The root package provides cSHAKE, the primitive
// the derived functions are built on.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package sp800185

import (
	"github.com/quininer/sp800-185/internal/encoding"
	"github.com/quininer/sp800-185/internal/sponge"
)

const (
	// Rate128 is the sponge rate, in bytes, at the 128-bit security strength.
	Rate128 = 168
	// Rate256 is the sponge rate, in bytes, at the 256-bit security strength.
	Rate256 = 136
)

// A CShake is an incremental cSHAKE instance. It absorbs message data via
// Write, then produces either a fixed-length digest via Finalize or an
// unbounded output stream via Read. Once output has begun, further writes
// panic.
//
// CShake instances are not concurrent-safe.
type CShake struct {
	s *sponge.Sponge
}

// NewCShake128 returns a cSHAKE128 instance with the given function name and
// customization string. The function name is reserved for NIST-defined
// derived functions; pass nil when building your own construction.
//
// When both the function name and the customization string are empty, the
// instance is plain SHAKE128, as the standard defines.
func NewCShake128(functionName, customization []byte) *CShake {
	return newCShake(Rate128, functionName, customization)
}

// NewCShake256 returns a cSHAKE256 instance with the given function name and
// customization string. See NewCShake128.
func NewCShake256(functionName, customization []byte) *CShake {
	return newCShake(Rate256, functionName, customization)
}

// NewShake128 returns a plain SHAKE128 instance. It is equivalent to
// NewCShake128(nil, nil).
func NewShake128() *CShake {
	return &CShake{s: sponge.New(Rate128, sponge.DomainSHAKE)}
}

// NewShake256 returns a plain SHAKE256 instance. It is equivalent to
// NewCShake256(nil, nil).
func NewShake256() *CShake {
	return &CShake{s: sponge.New(Rate256, sponge.DomainSHAKE)}
}

func newCShake(rate int, functionName, customization []byte) *CShake {
	// cSHAKE with no function name and no customization degrades to plain
	// SHAKE, which pads differently and absorbs no preamble.
	if len(functionName) == 0 && len(customization) == 0 {
		return &CShake{s: sponge.New(rate, sponge.DomainSHAKE)}
	}

	s := sponge.New(rate, sponge.DomainCShake)

	// bytepad(encode_string(N) || encode_string(S), rate)
	var buf [encoding.MaxSize]byte
	s.Absorb(encoding.AppendLeftEncode(buf[:0], uint64(rate)))
	absorbString(s, functionName)
	absorbString(s, customization)
	s.FillBlock()

	return &CShake{s: s}
}

// absorbString absorbs encode_string(v): the value's length in bits,
// left-encoded, followed by the value itself.
func absorbString(s *sponge.Sponge, v []byte) {
	var buf [encoding.MaxSize]byte
	s.Absorb(encoding.AppendLeftEncode(buf[:0], uint64(len(v))*8))
	s.Absorb(v)
}

// Write absorbs message data. It never returns an error; it panics if output
// has already begun.
func (c *CShake) Write(p []byte) (int, error) {
	c.s.Absorb(p)
	return len(p), nil
}

// Finalize fills out with a digest of everything written so far. The digest
// length is len(out). After Finalize the instance is terminal: further
// writes panic, and Read continues the same output stream.
func (c *CShake) Finalize(out []byte) {
	c.s.Squeeze(out)
}

// Read fills p with output bytes, finalizing the instance on the first call.
// It never returns an error. Repeated calls extend the same stream, making
// the instance an arbitrary-length XOF.
func (c *CShake) Read(p []byte) (int, error) {
	c.s.Squeeze(p)
	return len(p), nil
}

// FillBlock zero-pads the sponge's current block to the rate boundary and
// runs the permutation, so subsequent input begins on a fresh block. The
// derived constructions use it to terminate bytepad-encoded prefixes; most
// callers never need it.
func (c *CShake) FillBlock() {
	c.s.FillBlock()
}

// Clone returns an independent copy of the instance, including any pending
// output stream position.
func (c *CShake) Clone() *CShake {
	return &CShake{s: c.s.Clone()}
}

// BlockSize returns the sponge rate in bytes.
func (c *CShake) BlockSize() int {
	return c.s.Rate()
}

// Sum128 computes cSHAKE128(data, len(out)*8, functionName, customization)
// into out.
func Sum128(out, data, functionName, customization []byte) {
	c := NewCShake128(functionName, customization)
	c.s.Absorb(data)
	c.s.Squeeze(out)
}

// Sum256 computes cSHAKE256(data, len(out)*8, functionName, customization)
// into out.
func Sum256(out, data, functionName, customization []byte) {
	c := NewCShake256(functionName, customization)
	c.s.Absorb(data)
	c.s.Squeeze(out)
}
