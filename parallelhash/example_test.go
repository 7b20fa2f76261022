package parallelhash_test

import (
	"fmt"

	"github.com/quininer/sp800-185/parallelhash"
)

func Example() {
	input := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
	}

	// Hash with 8-byte blocks; block boundaries need not align with writes.
	p := parallelhash.New128(nil, 8)
	_, _ = p.Write(input[:13])
	_, _ = p.Write(input[13:])

	digest := make([]byte, 32)
	p.Finalize(digest)

	fmt.Printf("%x\n", digest)
	// Output: ba8dc1d1d979331d3f813603c67f72609ab5e44b94a0b8f9af46514454a2b4f5
}
