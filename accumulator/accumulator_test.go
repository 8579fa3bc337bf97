package accumulator_test

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkaccumulator/merkauth/accumulator"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/hashfamily"
	"github.com/zkaccumulator/merkauth/streamcodec"
)

func leaf(v uint64) digest.Numeric { return digest.FromUint64(hashfamily.Width256, v) }

func TestAccumulatorFillsAndBecomesFull(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 2
	a := accumulator.New[digest.Numeric](depth, ops)

	leaves := 1 << uint(depth)
	for i := 0; i < leaves; i++ {
		c.Assert(a.IsFull(), qt.IsFalse)
		a.UpdatePath(ops, leaf(uint64(i)))
		a.UpdateSiblings(ops, leaf(uint64(i)))
	}

	c.Assert(a.IsFull(), qt.IsTrue)
}

func TestZeroDepthAccumulatorFillsAfterOneLeaf(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	a := accumulator.New[digest.Numeric](0, ops)
	c.Assert(a.IsFull(), qt.IsFalse)

	a.UpdatePath(ops, leaf(0))
	a.UpdateSiblings(ops, leaf(0))
	c.Assert(a.IsFull(), qt.IsTrue)
}

func TestAccumulatorMarshalRoundTrip(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3
	a := accumulator.New[digest.Numeric](depth, ops)
	for i := 0; i < 3; i++ {
		a.UpdatePath(ops, leaf(uint64(i)))
		a.UpdateSiblings(ops, leaf(uint64(i)))
	}

	var buf bytes.Buffer
	sw := streamcodec.NewWriter(&buf)
	c.Assert(accumulator.MarshalNumericText(a, sw), qt.IsNil)

	sr := streamcodec.NewReader(&buf)
	back, err := accumulator.UnmarshalNumericText(sr, hashfamily.Width256)
	c.Assert(err, qt.IsNil)
	c.Assert(back.IsFull(), qt.Equals, a.IsFull())
	c.Assert(back.AuthPath().RootHash().Equal(a.AuthPath().RootHash()), qt.IsTrue)
}
