// Package tuplehash implements the TupleHash function from NIST SP 800-185.
//
// TupleHash hashes a tuple of byte strings — any of which may be empty — in
// an unambiguous way: each element is framed by its own length, so the tuple
// ("abc", "d") hashes differently from ("ab", "cd") even though the raw
// concatenations coincide.
package tuplehash

import (
	sp800185 "github.com/quininer/sp800-185"
	"github.com/quininer/sp800-185/internal/encoding"
)

// A TupleHash is an incremental TupleHash instance. The tuple being hashed
// is the concatenation of the elements passed across all Update calls.
//
// TupleHash instances are not concurrent-safe.
type TupleHash struct {
	c       *sp800185.CShake
	emitted bool
}

// New128 returns a TupleHash128 instance with the given customization
// string.
func New128(customization []byte) *TupleHash {
	return &TupleHash{c: sp800185.NewCShake128(functionName, customization)}
}

// New256 returns a TupleHash256 instance with the given customization
// string.
func New256(customization []byte) *TupleHash {
	return &TupleHash{c: sp800185.NewCShake256(functionName, customization)}
}

var functionName = []byte("TupleHash")

// Update absorbs the given tuple elements in order, each framed by its
// length. It panics if output has already begun.
func (t *TupleHash) Update(elements ...[]byte) {
	var buf [encoding.MaxSize]byte
	for _, e := range elements {
		// encode_string(X[i])
		_, _ = t.c.Write(encoding.AppendLeftEncode(buf[:0], uint64(len(e))*8))
		_, _ = t.c.Write(e)
	}
}

// Finalize fills out with a digest of the tuple. The digest length is
// len(out) and is bound into the computation. After Finalize the instance is
// terminal.
func (t *TupleHash) Finalize(out []byte) {
	t.emitLength(uint64(len(out)) * 8)
	t.c.Finalize(out)
}

// Read fills p with XOF output, finalizing the instance on the first call
// with the length-unknown sentinel. It never returns an error. Repeated
// calls extend the same stream.
func (t *TupleHash) Read(p []byte) (int, error) {
	t.emitLength(0)
	return t.c.Read(p)
}

// Clone returns an independent copy of the instance.
func (t *TupleHash) Clone() *TupleHash {
	return &TupleHash{c: t.c.Clone(), emitted: t.emitted}
}

func (t *TupleHash) emitLength(bits uint64) {
	if t.emitted {
		return
	}
	var buf [encoding.MaxSize]byte
	_, _ = t.c.Write(encoding.AppendRightEncode(buf[:0], bits))
	t.emitted = true
}

// Sum128 computes TupleHash128(elements, len(out)*8, customization) into
// out.
func Sum128(out, customization []byte, elements ...[]byte) {
	t := New128(customization)
	t.Update(elements...)
	t.Finalize(out)
}

// Sum256 computes TupleHash256(elements, len(out)*8, customization) into
// out.
func Sum256(out, customization []byte, elements ...[]byte) {
	t := New256(customization)
	t.Update(elements...)
	t.Finalize(out)
}
