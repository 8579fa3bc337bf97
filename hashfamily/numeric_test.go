package hashfamily_test

import (
	"crypto/sha256"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/hashfamily"
)

func TestSHA256NumericHashMatchesStdlib(t *testing.T) {
	c := qt.New(t)

	left := digest.Zero(hashfamily.Width256)
	right := digest.FromUint64(hashfamily.Width256, 1)

	got := hashfamily.SHA256Numeric{}.Hash(left, right)

	h := sha256.New()
	h.Write(left)
	h.Write(right)
	want := h.Sum(nil)

	c.Assert([]byte(got), qt.DeepEquals, want)
}

func TestSHA256NumericZeroWidth(t *testing.T) {
	c := qt.New(t)

	z := hashfamily.SHA256Numeric{}.Zero()
	c.Assert(len(z), qt.Equals, hashfamily.Width256)
}

func TestSHA512NumericZeroWidth(t *testing.T) {
	c := qt.New(t)

	z := hashfamily.SHA512Numeric{}.Zero()
	c.Assert(len(z), qt.Equals, hashfamily.Width512)
}

func TestNumericSelect(t *testing.T) {
	c := qt.New(t)

	whenTrue := digest.FromUint64(hashfamily.Width256, 1)
	whenFalse := digest.FromUint64(hashfamily.Width256, 2)

	c.Assert(hashfamily.SHA256Numeric{}.Select(bitvar.One, whenTrue, whenFalse), qt.DeepEquals, whenTrue)
	c.Assert(hashfamily.SHA256Numeric{}.Select(bitvar.Zero, whenTrue, whenFalse), qt.DeepEquals, whenFalse)
}
