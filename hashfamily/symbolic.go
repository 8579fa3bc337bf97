package hashfamily

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/sha2"

	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/internal/sha512zk"
)

// SHA256Symbolic is the circuit-side SHA-256 hash family, wrapping the
// pack's own gadget (std/hash/sha2). A fresh hasher is built for every Hash
// call, since std/hash.BinaryHasher carries no Reset method — the pack's
// own circuit tests follow the same one-shot-hasher pattern.
type SHA256Symbolic struct {
	api frontend.API
}

// NewSHA256Symbolic binds a SHA256Symbolic hash family to a circuit API.
func NewSHA256Symbolic(api frontend.API) SHA256Symbolic {
	return SHA256Symbolic{api: api}
}

// Zero returns 32 zero-valued circuit bytes.
func (h SHA256Symbolic) Zero() digest.Symbolic { return digest.ZeroSymbolic(Width256) }

// Hash computes SHA-256(left || right) in-circuit.
func (h SHA256Symbolic) Hash(left, right digest.Symbolic) digest.Symbolic {
	hasher, err := sha2.New(h.api)
	if err != nil {
		panic(fmt.Errorf("hashfamily: building sha256 circuit hasher: %w", err))
	}
	hasher.Write(left)
	hasher.Write(right)
	return digest.Symbolic(hasher.Sum())
}

// Select implements the symbolic ternary via digest.Select.
func (h SHA256Symbolic) Select(bit bitvar.Symbolic, whenTrue, whenFalse digest.Symbolic) digest.Symbolic {
	return digest.Select(h.api, frontend.Variable(bit), whenTrue, whenFalse)
}

// SHA512Symbolic is the circuit-side SHA-512 hash family, wrapping this
// module's internal/sha512zk hasher (no such gadget exists in the example
// pack; it is hand-written there, grounded on the pack's SHA-256 gadget).
type SHA512Symbolic struct {
	api frontend.API
}

// NewSHA512Symbolic binds a SHA512Symbolic hash family to a circuit API.
func NewSHA512Symbolic(api frontend.API) SHA512Symbolic {
	return SHA512Symbolic{api: api}
}

// Zero returns 64 zero-valued circuit bytes.
func (h SHA512Symbolic) Zero() digest.Symbolic { return digest.ZeroSymbolic(Width512) }

// Hash computes SHA-512(left || right) in-circuit.
func (h SHA512Symbolic) Hash(left, right digest.Symbolic) digest.Symbolic {
	hasher, err := sha512zk.New(h.api)
	if err != nil {
		panic(fmt.Errorf("hashfamily: building sha512 circuit hasher: %w", err))
	}
	hasher.Write(left)
	hasher.Write(right)
	return digest.Symbolic(hasher.Sum())
}

// Select implements the symbolic ternary via digest.Select.
func (h SHA512Symbolic) Select(bit bitvar.Symbolic, whenTrue, whenFalse digest.Symbolic) digest.Symbolic {
	return digest.Select(h.api, frontend.Variable(bit), whenTrue, whenFalse)
}
