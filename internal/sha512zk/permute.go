// Package sha512zk provides the SHA-512 circuit compression function for
// the symbolic hash family. No SHA-512 gadget exists anywhere in the
// example pack (gnark ships SHA-256, Keccak, MiMC, Poseidon, RIPEMD-160 and
// SHA-3 circuit gadgets, but not SHA-512), so this package hand-writes it,
// mirroring the structure of the pack's own SHA-256 permutation
// (std/permutation/sha2/sha2block.go) one-for-one: same Σ0/Σ1/σ0/σ1
// message-schedule-plus-round-loop shape, built on the same
// uints.BinaryField[T] word algebra, adapted to 64-bit words, 80 rounds
// and the SHA-512 round constants and rotate amounts.
package sha512zk

import "github.com/consensys/gnark/std/math/uints"

// BlockSize is the SHA-512 block size in bytes.
const BlockSize = 128

// chainSize is the number of 64-bit words in the running hash state.
const chainSize = 8

// rounds is the number of SHA-512 compression rounds.
const rounds = 80

// k512 holds the 80 SHA-512 round constants, the fractional parts of the
// cube roots of the first 80 primes.
var k512 = [rounds]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// k512Words holds k512 pre-converted to circuit constants, the same way
// package-level seed is for the chaining value: built once with
// uints.NewU64Array rather than per-round via the API, since these are
// compile-time constants, not witnessed values.
var k512Words = uints.NewU64Array(k512[:])

// Permute runs the SHA-512 compression function on currentHash with a
// single 128-byte message block, returning the updated hash state. It
// follows std/permutation/sha2/sha2block.go's shape: build the 80-word
// message schedule, then run the round loop maintaining an 8-word working
// state, adding the original chaining value back in at the end.
func Permute(uapi *uints.BinaryField[uints.U64], currentHash [chainSize]uints.U64, block [BlockSize]uints.U8) [chainSize]uints.U64 {
	var w [rounds]uints.U64
	for i := 0; i < 16; i++ {
		var b [8]uints.U8
		copy(b[:], block[i*8:i*8+8])
		w[i] = uapi.PackMSB(b[:]...)
	}
	for i := 16; i < rounds; i++ {
		s0 := smallSigma0(uapi, w[i-15])
		s1 := smallSigma1(uapi, w[i-2])
		w[i] = uapi.Add(uapi.Add(w[i-16], s0), uapi.Add(w[i-7], s1))
	}

	a, b, c, d, e, f, g, h := currentHash[0], currentHash[1], currentHash[2], currentHash[3],
		currentHash[4], currentHash[5], currentHash[6], currentHash[7]

	for i := 0; i < rounds; i++ {
		bigS1 := bigSigma1(uapi, e)
		ch := uapi.Xor(uapi.And(e, f), uapi.And(uapi.Not(e), g))
		t1 := uapi.Add(uapi.Add(h, bigS1), uapi.Add(ch, uapi.Add(k512Words[i], w[i])))

		bigS0 := bigSigma0(uapi, a)
		maj := uapi.Xor(uapi.Xor(uapi.And(a, b), uapi.And(a, c)), uapi.And(b, c))
		t2 := uapi.Add(bigS0, maj)

		h = g
		g = f
		f = e
		e = uapi.Add(d, t1)
		d = c
		c = b
		b = a
		a = uapi.Add(t1, t2)
	}

	return [chainSize]uints.U64{
		uapi.Add(currentHash[0], a),
		uapi.Add(currentHash[1], b),
		uapi.Add(currentHash[2], c),
		uapi.Add(currentHash[3], d),
		uapi.Add(currentHash[4], e),
		uapi.Add(currentHash[5], f),
		uapi.Add(currentHash[6], g),
		uapi.Add(currentHash[7], h),
	}
}

// bigSigma0 is Σ0(a) = ROTR(a,28) ⊕ ROTR(a,34) ⊕ ROTR(a,39).
func bigSigma0(uapi *uints.BinaryField[uints.U64], a uints.U64) uints.U64 {
	r1 := uapi.Lrot(a, -28)
	r2 := uapi.Lrot(a, -34)
	r3 := uapi.Lrot(a, -39)
	return uapi.Xor(uapi.Xor(r1, r2), r3)
}

// bigSigma1 is Σ1(e) = ROTR(e,14) ⊕ ROTR(e,18) ⊕ ROTR(e,41).
func bigSigma1(uapi *uints.BinaryField[uints.U64], e uints.U64) uints.U64 {
	r1 := uapi.Lrot(e, -14)
	r2 := uapi.Lrot(e, -18)
	r3 := uapi.Lrot(e, -41)
	return uapi.Xor(uapi.Xor(r1, r2), r3)
}

// smallSigma0 is σ0(x) = ROTR(x,1) ⊕ ROTR(x,8) ⊕ SHR(x,7).
func smallSigma0(uapi *uints.BinaryField[uints.U64], x uints.U64) uints.U64 {
	r1 := uapi.Lrot(x, -1)
	r2 := uapi.Lrot(x, -8)
	r3 := uapi.Rshift(x, 7)
	return uapi.Xor(uapi.Xor(r1, r2), r3)
}

// smallSigma1 is σ1(x) = ROTR(x,19) ⊕ ROTR(x,61) ⊕ SHR(x,6).
func smallSigma1(uapi *uints.BinaryField[uints.U64], x uints.U64) uints.U64 {
	r1 := uapi.Lrot(x, -19)
	r2 := uapi.Lrot(x, -61)
	r3 := uapi.Rshift(x, 6)
	return uapi.Xor(uapi.Xor(r1, r2), r3)
}
