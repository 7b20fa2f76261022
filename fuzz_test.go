package sp800185_test

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"

	sp800185 "github.com/quininer/sp800-185"
)

// FuzzCShakeCrossCheck compares cSHAKE output against an independent
// implementation for arbitrary function names, customization strings, and
// messages, including the SHAKE degenerate case.
func FuzzCShakeCrossCheck(f *testing.F) {
	f.Add([]byte("TEST"), []byte("custom"), []byte("message"), false)
	f.Add([]byte{}, []byte{}, []byte("plain shake"), true)
	f.Fuzz(func(t *testing.T, functionName, custom, message []byte, use256 bool) {
		var c *sp800185.CShake
		var ref sha3.ShakeHash
		if use256 {
			c = sp800185.NewCShake256(functionName, custom)
			ref = sha3.NewCShake256(functionName, custom)
		} else {
			c = sp800185.NewCShake128(functionName, custom)
			ref = sha3.NewCShake128(functionName, custom)
		}

		_, _ = c.Write(message)
		got := make([]byte, 64)
		_, _ = c.Read(got)

		_, _ = ref.Write(message)
		want := make([]byte, 64)
		_, _ = ref.Read(want)

		if !bytes.Equal(got, want) {
			t.Errorf("cSHAKE(%q, %q, %q) = %x, sha3 = %x", functionName, custom, message, got, want)
		}
	})
}

// FuzzWriteChunking checks that how the message is split across writes never
// affects the digest.
func FuzzWriteChunking(f *testing.F) {
	f.Add([]byte("a message of moderate length, longer than one split"), uint16(7))
	f.Fuzz(func(t *testing.T, message []byte, rawStep uint16) {
		step := int(rawStep)%200 + 1

		whole := sp800185.NewCShake128(nil, []byte("chunking"))
		_, _ = whole.Write(message)
		want := make([]byte, 32)
		whole.Finalize(want)

		split := sp800185.NewCShake128(nil, []byte("chunking"))
		for rest := message; len(rest) > 0; {
			n := min(step, len(rest))
			_, _ = split.Write(rest[:n])
			rest = rest[n:]
		}
		got := make([]byte, 32)
		split.Finalize(got)

		if !bytes.Equal(got, want) {
			t.Errorf("step %d: digest = %x, want = %x", step, got, want)
		}
	})
}
