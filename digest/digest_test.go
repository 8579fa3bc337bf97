package digest_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkaccumulator/merkauth/digest"
)

func TestZero(t *testing.T) {
	c := qt.New(t)

	z := digest.Zero(32)
	c.Assert(len(z), qt.Equals, 32)
	for _, b := range z {
		c.Assert(b, qt.Equals, byte(0))
	}
}

func TestEqual(t *testing.T) {
	c := qt.New(t)

	a := digest.Numeric{1, 2, 3}
	b := digest.Numeric{1, 2, 3}
	d := digest.Numeric{1, 2, 4}

	c.Assert(a.Equal(b), qt.IsTrue)
	c.Assert(a.Equal(d), qt.IsFalse)
	c.Assert(a.Equal(digest.Numeric{1, 2}), qt.IsFalse)
}

func TestCloneIsIndependent(t *testing.T) {
	c := qt.New(t)

	a := digest.Numeric{1, 2, 3}
	b := a.Clone()
	b[0] = 9

	c.Assert(a[0], qt.Equals, byte(1))
}

func TestFromUint64FirstWord(t *testing.T) {
	c := qt.New(t)

	d := digest.FromUint64(32, 7)
	c.Assert(len(d), qt.Equals, 32)

	// width/8 = 4-byte first word, big-endian
	c.Assert(d[:4], qt.DeepEquals, digest.Numeric{0, 0, 0, 7})
	for _, b := range d[4:] {
		c.Assert(b, qt.Equals, byte(0))
	}
}
