package bundle_test

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkaccumulator/merkauth/bundle"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/hashfamily"
)

func leaf(v uint64) digest.Numeric { return digest.FromUint64(hashfamily.Width256, v) }

func TestAddLeafKeepsPathCurrentAsTreeGrows(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3
	b := bundle.New[digest.Numeric, uint64](depth, ops)

	leaves := 1 << uint(depth)
	for i := 0; i < leaves; i++ {
		b.AddLeaf(ops, leaf(uint64(i)), i == 0)
	}

	c.Assert(b.IsFull(), qt.IsTrue)
	c.Assert(b.TreeSize(), qt.Equals, uint64(leaves))
	c.Assert(len(b.AuthLeaf()), qt.Equals, 1)
	c.Assert(len(b.AuthPath()), qt.Equals, 1)

	// the kept path for leaf 0 must still authenticate against the final root
	kept := b.AuthPath()[0]
	c.Assert(kept.RootHash().Equal(b.RootHash()), qt.IsTrue)
	c.Assert(b.AuthLeaf()[0].Equal(leaf(0)), qt.IsTrue)
}

func TestAuthGarbageCollect(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3
	b := bundle.New[digest.Numeric, uint64](depth, ops)

	leaves := 1 << uint(depth)
	for i := 0; i < leaves; i++ {
		b.AddLeaf(ops, leaf(uint64(i)), i%2 == 0)
	}
	c.Assert(len(b.AuthLeaf()), qt.Equals, leaves/2)

	// keep only leaf 0
	b.AuthGarbageCollect(func(l digest.Numeric) bool { return l.Equal(leaf(0)) })

	c.Assert(len(b.AuthLeaf()), qt.Equals, 1)
	c.Assert(len(b.AuthPath()), qt.Equals, 1)
	c.Assert(b.AuthLeaf()[0].Equal(leaf(0)), qt.IsTrue)
}

func TestBundleMarshalRoundTrip(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3
	b := bundle.New[digest.Numeric, uint64](depth, ops)
	leaves := 1 << uint(depth)
	for i := 0; i < leaves; i++ {
		b.AddLeaf(ops, leaf(uint64(i)), i == 2)
	}

	var buf bytes.Buffer
	c.Assert(bundle.MarshalNumericText[uint64](b, &buf), qt.IsNil)

	back, err := bundle.UnmarshalNumericTextFrom[uint64](&buf, hashfamily.Width256)
	c.Assert(err, qt.IsNil)
	c.Assert(back.TreeSize(), qt.Equals, b.TreeSize())
	c.Assert(back.RootHash().Equal(b.RootHash()), qt.IsTrue)
	c.Assert(len(back.AuthLeaf()), qt.Equals, len(b.AuthLeaf()))
	c.Assert(back.AuthLeaf()[0].Equal(b.AuthLeaf()[0]), qt.IsTrue)
}
