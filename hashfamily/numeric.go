// Package hashfamily implements the Hash capability from spec.md §6: the
// narrow "clear/input/finalise/digest" contract the Merkle engine consumes,
// in both numeric (cleartext) and symbolic (circuit) variants, for the
// SHA-256 and SHA-512 hash families. It also folds in the bit-variant
// ternary capability (§6) as a `Select` method, since in practice a hash
// family and its matching ternary always travel together at AuthPath call
// sites.
//
// The hash primitives themselves are external collaborators (spec.md §1):
// this package wraps stdlib crypto/sha256 and crypto/sha512 for the
// numeric side, and the pack's own gnark circuit gadgets (plus this
// module's internal/sha512zk, written in their idiom) for the symbolic
// side. It never reimplements SHA-256/512 from scratch.
package hashfamily

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
)

// Width256 and Width512 are the two digest widths, in bytes, this package
// supports.
const (
	Width256 = 32
	Width512 = 64
)

// SHA256Numeric is the cleartext SHA-256 hash family.
type SHA256Numeric struct{}

// Zero returns the 32-byte all-zero digest.
func (SHA256Numeric) Zero() digest.Numeric { return digest.Zero(Width256) }

// Hash computes SHA-256(left || right) with a fresh hasher instance per
// call, satisfying the single-threaded "no shared hasher state" contract
// from spec.md §5.
func (SHA256Numeric) Hash(left, right digest.Numeric) digest.Numeric {
	h := sha256.New()
	h.Write(left)
	h.Write(right)
	return digest.Numeric(h.Sum(nil))
}

// Select implements the numeric ternary: whenTrue when bit marks a right
// child, whenFalse otherwise.
func (SHA256Numeric) Select(bit bitvar.Numeric, whenTrue, whenFalse digest.Numeric) digest.Numeric {
	if bit.IsRight() {
		return whenTrue
	}
	return whenFalse
}

// SHA512Numeric is the cleartext SHA-512 hash family.
type SHA512Numeric struct{}

// Zero returns the 64-byte all-zero digest.
func (SHA512Numeric) Zero() digest.Numeric { return digest.Zero(Width512) }

// Hash computes SHA-512(left || right) with a fresh hasher instance per call.
func (SHA512Numeric) Hash(left, right digest.Numeric) digest.Numeric {
	h := sha512.New()
	h.Write(left)
	h.Write(right)
	return digest.Numeric(h.Sum(nil))
}

// Select implements the numeric ternary, same semantics as SHA256Numeric.Select.
func (SHA512Numeric) Select(bit bitvar.Numeric, whenTrue, whenFalse digest.Numeric) digest.Numeric {
	if bit.IsRight() {
		return whenTrue
	}
	return whenFalse
}
