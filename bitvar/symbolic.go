package bitvar

import "github.com/consensys/gnark/frontend"

// Symbolic is the circuit-side bit: a frontend.Variable constrained to be
// boolean, carried through the constraint system the same way the numeric
// bit carries an int through plain Go control flow.
type Symbolic frontend.Variable

// BlessBit binds a fresh circuit variable to the witnessed value of a
// numeric bit — the "blessing" capability from spec.md §6, specialised to
// bits, for mirroring a numeric AuthPath's childBits into a symbolic one
// (authpath.FromOther takes it wrapped as a func(Numeric) (Symbolic,
// error)). Only valid inside Define, where api is
// live; for building a witness assignment outside Define, use ValueOf.
func BlessBit(api frontend.API, b Numeric) Symbolic {
	v := frontend.Variable(0)
	if b.IsRight() {
		v = frontend.Variable(1)
	}
	api.AssertIsBoolean(v)
	return Symbolic(v)
}

// ValueOf converts a numeric bit directly to its constant circuit-variable
// value, with no API call — the form to use when building a witness
// assignment struct outside of Define, where AssertIsBoolean would need a
// live frontend.API that is not available.
func ValueOf(b Numeric) Symbolic {
	if b.IsRight() {
		return Symbolic(frontend.Variable(1))
	}
	return Symbolic(frontend.Variable(0))
}
