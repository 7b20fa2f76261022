// Package parallelhash implements the ParallelHash function from NIST
// SP 800-185.
//
// ParallelHash supports efficient hashing of very long inputs: the input is
// split into fixed-size blocks, each block is hashed independently (and here,
// concurrently), and the block digests are then accumulated in stream order
// by an outer cSHAKE instance. The customization string, block size, block
// count, and requested output length are all bound into the result.
package parallelhash

import (
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	sp800185 "github.com/quininer/sp800-185"
	"github.com/quininer/sp800-185/internal/encoding"
	"github.com/quininer/sp800-185/internal/sponge"
)

// A ParallelHash is an incremental ParallelHash instance. Input may be
// written in chunks of any size; block boundaries are tracked internally.
//
// ParallelHash instances are not concurrent-safe. (The per-block hashing
// inside a single Write call is parallelized internally.)
type ParallelHash struct {
	outer     *sp800185.CShake
	carry     []byte // partial trailing block, always shorter than blockSize
	n         uint64 // block digests absorbed into outer so far
	blockSize int
	leafRate  int // sponge rate for block digests
	leafLen   int // block digest length in bytes
	emitted   bool
}

// New128 returns a ParallelHash128 instance with the given customization
// string and block size in bytes. It panics if blockSize is less than one.
func New128(customization []byte, blockSize int) *ParallelHash {
	return newParallelHash(sp800185.NewCShake128(functionName, customization), sp800185.Rate128, 32, blockSize)
}

// New256 returns a ParallelHash256 instance with the given customization
// string and block size in bytes. It panics if blockSize is less than one.
func New256(customization []byte, blockSize int) *ParallelHash {
	return newParallelHash(sp800185.NewCShake256(functionName, customization), sp800185.Rate256, 64, blockSize)
}

var functionName = []byte("ParallelHash")

func newParallelHash(outer *sp800185.CShake, leafRate, leafLen, blockSize int) *ParallelHash {
	if blockSize < 1 {
		panic("sp800185: invalid block size")
	}

	var buf [encoding.MaxSize]byte
	_, _ = outer.Write(encoding.AppendLeftEncode(buf[:0], uint64(blockSize)))

	return &ParallelHash{
		outer:     outer,
		blockSize: blockSize,
		leafRate:  leafRate,
		leafLen:   leafLen,
	}
}

// Write absorbs input. The input is treated as one continuous stream:
// splitting the same bytes across Write calls differently does not change
// the digest. It never returns an error; it panics if output has already
// begun.
func (p *ParallelHash) Write(b []byte) (int, error) {
	// A short write lands in the carry buffer without touching the outer
	// sponge, so terminal misuse is checked here rather than left to it.
	if p.emitted {
		panic("sp800185: write after finalize")
	}

	n := len(b)

	// Complete the in-flight carry block first.
	if len(p.carry) > 0 {
		need := p.blockSize - len(p.carry)
		if len(b) < need {
			p.carry = append(p.carry, b...)
			return n, nil
		}
		p.carry = append(p.carry, b[:need]...)
		b = b[need:]

		digest := make([]byte, p.leafLen)
		p.leafDigest(digest, p.carry)
		p.absorbLeaf(digest)
		p.carry = p.carry[:0]
	}

	// Digest the whole blocks, concurrently when there is more than one.
	if blocks := len(b) / p.blockSize; blocks > 0 {
		p.digestBlocks(b[:blocks*p.blockSize], blocks)
		b = b[blocks*p.blockSize:]
	}

	// Stash the partial remainder until more input arrives or output begins.
	p.carry = append(p.carry, b...)
	return n, nil
}

// digestBlocks computes the digest of each whole block in data concurrently,
// then absorbs the digests into the outer accumulator in stream order.
func (p *ParallelHash) digestBlocks(data []byte, blocks int) {
	if blocks == 1 {
		digest := make([]byte, p.leafLen)
		p.leafDigest(digest, data)
		p.absorbLeaf(digest)
		return
	}

	// Unordered parallel map into position-indexed slots. Each worker reads
	// a disjoint block and writes a disjoint slot, so no locking is needed.
	digests := make([]byte, blocks*p.leafLen)
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range blocks {
		g.Go(func() error {
			block := data[i*p.blockSize : (i+1)*p.blockSize]
			p.leafDigest(digests[i*p.leafLen:(i+1)*p.leafLen], block)
			return nil
		})
	}
	_ = g.Wait() // block digests cannot fail

	// Sequential, ordered reduction into the outer accumulator.
	for i := range blocks {
		p.absorbLeaf(digests[i*p.leafLen : (i+1)*p.leafLen])
	}
}

// leafDigest computes cSHAKE(block, leafLen*8, "", "") — plain SHAKE at the
// construction's security strength — from a freshly initialized sponge.
func (p *ParallelHash) leafDigest(out, block []byte) {
	s := sponge.New(p.leafRate, sponge.DomainSHAKE)
	s.Absorb(block)
	s.Squeeze(out)
}

func (p *ParallelHash) absorbLeaf(digest []byte) {
	_, _ = p.outer.Write(digest)
	p.n++
}

// Finalize fills out with a digest of the whole stream. The digest length is
// len(out) and is bound into the computation. After Finalize the instance is
// terminal.
func (p *ParallelHash) Finalize(out []byte) {
	p.emitTrailer(uint64(len(out)) * 8)
	p.outer.Finalize(out)
}

// Read fills b with XOF output, finalizing the instance on the first call
// with the length-unknown sentinel. It never returns an error. Repeated
// calls extend the same stream.
func (p *ParallelHash) Read(b []byte) (int, error) {
	p.emitTrailer(0)
	return p.outer.Read(b)
}

// Clone returns an independent copy of the instance.
func (p *ParallelHash) Clone() *ParallelHash {
	c := *p
	c.outer = p.outer.Clone()
	c.carry = slices.Clone(p.carry)
	return &c
}

// BlockSize returns the configured block size in bytes.
func (p *ParallelHash) BlockSize() int {
	return p.blockSize
}

// emitTrailer digests the trailing partial block, if any, then absorbs
// right_encode(n) and right_encode(bits). It runs exactly once, immediately
// before output begins.
func (p *ParallelHash) emitTrailer(bits uint64) {
	if p.emitted {
		return
	}

	// The final block may be short; it is still counted in n.
	if len(p.carry) > 0 {
		digest := make([]byte, p.leafLen)
		p.leafDigest(digest, p.carry)
		p.absorbLeaf(digest)
		p.carry = p.carry[:0]
	}

	var buf [encoding.MaxSize]byte
	_, _ = p.outer.Write(encoding.AppendRightEncode(buf[:0], p.n))
	_, _ = p.outer.Write(encoding.AppendRightEncode(buf[:0], bits))
	p.emitted = true
}

// Sum128 computes ParallelHash128(message, blockSize, len(out)*8,
// customization) into out.
func Sum128(out, message, customization []byte, blockSize int) {
	p := New128(customization, blockSize)
	_, _ = p.Write(message)
	p.Finalize(out)
}

// Sum256 computes ParallelHash256(message, blockSize, len(out)*8,
// customization) into out.
func Sum256(out, message, customization []byte, blockSize int) {
	p := New256(customization, blockSize)
	_, _ = p.Write(message)
	p.Finalize(out)
}
