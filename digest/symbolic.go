package digest

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

// Symbolic is the circuit-side mirror of Numeric: the same bit pattern
// carried as a sequence of in-circuit byte variables.
type Symbolic []uints.U8

// ZeroSymbolic returns width zero-valued circuit bytes, the symbolic
// analogue of Zero — used when building a fresh symbolic AuthPath before
// its siblings are blessed from a numeric snapshot.
func ZeroSymbolic(width int) Symbolic {
	return uints.NewU8Array(make([]uint8, width))
}

// Bless materialises a fresh sequence of circuit variables carrying the
// same bit pattern as a cleartext digest — the "blessing" capability from
// spec.md §6, specialised to digests. api is accepted for symmetry with
// the rest of the symbolic API even though constant byte construction
// does not need it (see SPEC_FULL.md §9 on threading api explicitly
// rather than reaching for a singleton).
func Bless(_ frontend.API, d Numeric) (Symbolic, error) {
	out := make(Symbolic, len(d))
	for i, b := range d {
		out[i] = uints.NewU8(b)
	}
	return out, nil
}

// Select returns a, component-wise, if bit is true, and b otherwise — the
// digest-level ternary used inside AuthPath.UpdatePath's symbolic variant.
func Select(api frontend.API, bit frontend.Variable, a, b Symbolic) Symbolic {
	out := make(Symbolic, len(a))
	for i := range a {
		out[i] = uints.U8{Val: api.Select(bit, a[i].Val, b[i].Val)}
	}
	return out
}

// AssertEqual constrains two symbolic digests to carry the same bytes.
func AssertEqual(api frontend.API, a, b Symbolic) {
	for i := range a {
		api.AssertIsEqual(a[i].Val, b[i].Val)
	}
}
