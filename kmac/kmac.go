// Package kmac implements the KECCAK Message Authentication Code (KMAC) from
// NIST SP 800-185.
//
// KMAC is a PRF and keyed hash with variable-length output. Unlike SHAKE and
// cSHAKE, the requested output length is bound into the computation: digests
// of different lengths are unrelated, not prefixes of one another.
package kmac

import (
	sp800185 "github.com/quininer/sp800-185"
	"github.com/quininer/sp800-185/internal/encoding"
)

// A KMac is an incremental KMAC instance. The key is absorbed at
// construction and not retained.
//
// KMac instances are not concurrent-safe.
type KMac struct {
	c       *sp800185.CShake
	emitted bool
}

// New128 returns a KMAC128 instance with the given key and customization
// string.
func New128(key, customization []byte) *KMac {
	return newKMac(sp800185.NewCShake128(functionName, customization), sp800185.Rate128, key)
}

// New256 returns a KMAC256 instance with the given key and customization
// string.
func New256(key, customization []byte) *KMac {
	return newKMac(sp800185.NewCShake256(functionName, customization), sp800185.Rate256, key)
}

var functionName = []byte("KMAC")

func newKMac(c *sp800185.CShake, rate int, key []byte) *KMac {
	// bytepad(encode_string(K), rate): the key-derived prefix occupies a
	// whole number of blocks regardless of key length.
	var buf [encoding.MaxSize]byte
	_, _ = c.Write(encoding.AppendLeftEncode(buf[:0], uint64(rate)))
	_, _ = c.Write(encoding.AppendLeftEncode(buf[:0], uint64(len(key))*8))
	_, _ = c.Write(key)
	c.FillBlock()

	return &KMac{c: c}
}

// Write absorbs message data. It never returns an error; it panics if output
// has already begun.
func (k *KMac) Write(p []byte) (int, error) {
	return k.c.Write(p)
}

// Finalize fills out with a tag over everything written so far. The tag
// length is len(out) and is bound into the computation. After Finalize the
// instance is terminal.
func (k *KMac) Finalize(out []byte) {
	k.emitLength(uint64(len(out)) * 8)
	k.c.Finalize(out)
}

// Read fills p with XOF output, finalizing the instance on the first call
// with the length-unknown sentinel. It never returns an error. Repeated
// calls extend the same stream.
func (k *KMac) Read(p []byte) (int, error) {
	k.emitLength(0)
	return k.c.Read(p)
}

// Clone returns an independent copy of the instance.
func (k *KMac) Clone() *KMac {
	return &KMac{c: k.c.Clone(), emitted: k.emitted}
}

// BlockSize returns the sponge rate in bytes.
func (k *KMac) BlockSize() int {
	return k.c.BlockSize()
}

// emitLength absorbs right_encode(bits) exactly once, immediately before
// output begins.
func (k *KMac) emitLength(bits uint64) {
	if k.emitted {
		return
	}
	var buf [encoding.MaxSize]byte
	_, _ = k.c.Write(encoding.AppendRightEncode(buf[:0], bits))
	k.emitted = true
}

// Sum128 computes KMAC128(key, message, len(out)*8, customization) into out.
func Sum128(out, key, message, customization []byte) {
	k := New128(key, customization)
	_, _ = k.Write(message)
	k.Finalize(out)
}

// Sum256 computes KMAC256(key, message, len(out)*8, customization) into out.
func Sum256(out, key, message, customization []byte) {
	k := New256(key, customization)
	_, _ = k.Write(message)
	k.Finalize(out)
}
