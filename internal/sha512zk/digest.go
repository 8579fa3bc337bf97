package sha512zk

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash"
	"github.com/consensys/gnark/std/math/uints"
)

// seed holds SHA-512's eight 64-bit initial chaining values, the fractional
// parts of the square roots of the first eight primes.
var seed = uints.NewU64Array([]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
})

// Digest is a SHA-512 circuit hasher, built the same way the pack's own
// SHA-256 hasher is (std/hash/sha2.digest): collect Write calls into an
// in-circuit byte buffer, pad it on Sum, and run it through Permute block
// by block. Unlike the pack's hasher this one does not support variable
// witnessed lengths (FixedLengthSum) — every AuthPath call site hashes a
// fixed, constraint-system-known number of bytes (two same-width digests),
// so that generality buys nothing here.
type Digest struct {
	uapi *uints.BinaryField[uints.U64]
	in   []uints.U8
}

// New constructs a SHA-512 circuit hasher bound to api.
func New(api frontend.API) (*Digest, error) {
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return nil, fmt.Errorf("initializing uints: %w", err)
	}
	return &Digest{uapi: uapi}, nil
}

// Write appends data to the hasher's pending input.
func (d *Digest) Write(data []uints.U8) {
	d.in = append(d.in, data...)
}

// Reset discards any pending input, so the same Digest can be reused for
// another call — callers in this module still prefer a fresh Digest per
// Hash call (see hashfamily), matching the no-shared-hasher-state
// discipline the numeric side also follows.
func (d *Digest) Reset() { d.in = nil }

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return BlockSize / 2 }

// pad appends SHA-512's 1-bit-then-zeros-then-128-bit-bitlength padding,
// sized to bring the buffer to a multiple of the 128-byte block size.
func (d *Digest) pad(bytesLen int) []uints.U8 {
	zeroPadLen := 111 - bytesLen%BlockSize
	if zeroPadLen < 0 {
		zeroPadLen += BlockSize
	}
	buf := make([]uints.U8, 0, bytesLen+17+zeroPadLen)
	buf = append(buf, d.in...)
	buf = append(buf, uints.NewU8(0x80))
	buf = append(buf, uints.NewU8Array(make([]uint8, zeroPadLen))...)
	// SHA-512 carries a 128-bit bit-length field; the high 64 bits are
	// always zero for the message sizes this module ever hashes.
	lenbuf := make([]uint8, 16)
	binary.BigEndian.PutUint64(lenbuf[8:], uint64(8*bytesLen))
	buf = append(buf, uints.NewU8Array(lenbuf)...)
	return buf
}

// Sum runs the padded input through the SHA-512 compression function and
// returns the 64-byte digest as circuit bytes.
func (d *Digest) Sum() []uints.U8 {
	var running [chainSize]uints.U64
	var block [BlockSize]uints.U8
	copy(running[:], seed)

	padded := d.pad(len(d.in))
	for i := 0; i < len(padded)/BlockSize; i++ {
		copy(block[:], padded[i*BlockSize:(i+1)*BlockSize])
		running = Permute(d.uapi, running, block)
	}

	var out []uints.U8
	for i := range running {
		out = append(out, d.uapi.UnpackMSB(running[i])...)
	}
	return out
}

var _ hash.BinaryHasher = (*Digest)(nil)
