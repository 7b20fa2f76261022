package sp800185_test

import (
	"fmt"

	sp800185 "github.com/quininer/sp800-185"
)

func ExampleCShake() {
	// A cSHAKE128 instance customized for a specific application.
	c := sp800185.NewCShake128(nil, []byte("Email Signature"))

	// Absorb the message, in as many writes as convenient.
	_, _ = c.Write([]byte{0x00, 0x01, 0x02, 0x03})

	// Produce a 32-byte digest.
	digest := make([]byte, 32)
	c.Finalize(digest)

	fmt.Printf("%x\n", digest)
	// Output: c1c36925b6409a04f1b504fcbca9d82b4017277cb5ed2b2065fc1d3814d5aaf5
}

func ExampleCShake_Read() {
	// Used via Read, a cSHAKE instance is an arbitrary-length XOF.
	c := sp800185.NewCShake128(nil, []byte("Email Signature"))
	_, _ = c.Write([]byte{0x00, 0x01, 0x02, 0x03})

	// Pull the same 32 bytes as Finalize would, in two reads.
	out := make([]byte, 32)
	_, _ = c.Read(out[:16])
	_, _ = c.Read(out[16:])

	fmt.Printf("%x\n", out)
	// Output: c1c36925b6409a04f1b504fcbca9d82b4017277cb5ed2b2065fc1d3814d5aaf5
}
