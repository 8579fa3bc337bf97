package authpath_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/hashfamily"
)

const width = hashfamily.Width256

func leaf(v uint64) digest.Numeric { return digest.FromUint64(width, v) }

// buildFullTree manually drives a tree of the given depth through all
// 2^depth leaves using
// the same UpdatePath/UpdateSiblings choreography accumulator.Accumulator
// uses internally, without depending on that package, so authpath's
// contract is exercised in isolation.
func buildFullTree(t *testing.T, depth int) (*authpath.AuthPath[digest.Numeric, bitvar.Numeric], []digest.Numeric) {
	t.Helper()
	ops := hashfamily.SHA256Numeric{}
	p := authpath.New[digest.Numeric, bitvar.Numeric](depth, ops, bitvar.Zero)

	var roots []digest.Numeric
	leaves := 1 << uint(depth)
	for i := 0; i < leaves; i++ {
		p.UpdatePath(ops, leaf(uint64(i)))
		roots = append(roots, p.RootHash().Clone())

		firstBit := authpath.IncChildBits(p)
		switch {
		case firstBit == -1:
		case firstBit == 0:
			authpath.LeafSibling(p, leaf(uint64(i)))
		default:
			authpath.HashSibling(p, ops, firstBit)
		}
	}
	return p, roots
}

func TestUpdatePathBuildsConsistentRoot(t *testing.T) {
	c := qt.New(t)

	depth := 3
	p, roots := buildFullTree(t, depth)

	c.Assert(p.Depth(), qt.Equals, depth)
	c.Assert(len(roots), qt.Equals, 8)

	// two runs over the same leaf sequence must produce the same roots:
	// UpdatePath is a pure function of siblings/childBits/leaf.
	_, roots2 := buildFullTree(t, depth)
	c.Assert(roots, qt.DeepEquals, roots2)
}

func TestUpdatePathDifferentLeavesDivergeRoot(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 2

	p1 := authpath.New[digest.Numeric, bitvar.Numeric](depth, ops, bitvar.Zero)
	p1.UpdatePath(ops, leaf(1))

	p2 := authpath.New[digest.Numeric, bitvar.Numeric](depth, ops, bitvar.Zero)
	p2.UpdatePath(ops, leaf(2))

	c.Assert(p1.RootHash().Equal(p2.RootHash()), qt.IsFalse)
}

func TestCloneIsIndependentOfMutation(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 2
	p := authpath.New[digest.Numeric, bitvar.Numeric](depth, ops, bitvar.Zero)
	p.UpdatePath(ops, leaf(1))

	snapshot := p.Clone()
	wantRoot := snapshot.RootHash().Clone()

	// mutate the live path; the snapshot's slices must not alias it
	p.UpdatePath(ops, leaf(2))
	authpath.LeafSibling(p, leaf(2))

	c.Assert(snapshot.RootHash().Equal(wantRoot), qt.IsTrue)
}

func TestUpdatePathPatchingKeepsOldPathsCurrent(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3

	frontier := authpath.New[digest.Numeric, bitvar.Numeric](depth, ops, bitvar.Zero)

	var kept []*authpath.AuthPath[digest.Numeric, bitvar.Numeric]

	addLeaf := func(v uint64, keep bool) {
		authpath.UpdatePathPatching(frontier, ops, leaf(v), kept)
		if keep {
			kept = append(kept, frontier.Clone())
		}
		firstBit := authpath.IncChildBits(frontier)
		switch {
		case firstBit == -1:
		case firstBit == 0:
			authpath.LeafSibling(frontier, leaf(v))
		default:
			authpath.HashSibling(frontier, ops, firstBit)
		}
	}

	// keep leaf 0's path, then fill the rest of the tree
	addLeaf(0, true)
	for i := uint64(1); i < 8; i++ {
		addLeaf(i, false)
	}

	// leaf 0's kept path must end up with the same root as the final tree
	c.Assert(kept[0].RootHash().Equal(frontier.RootHash()), qt.IsTrue)
}

func TestFromOtherMirrorsDepthAndCount(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3
	p := authpath.New[digest.Numeric, bitvar.Numeric](depth, ops, bitvar.Zero)
	p.UpdatePath(ops, leaf(5))

	blessDigest := func(d digest.Numeric) (digest.Numeric, error) { return d.Clone(), nil }
	blessBit := func(b bitvar.Numeric) (bitvar.Numeric, error) { return b, nil }

	mirrored, err := authpath.FromOther[digest.Numeric, bitvar.Numeric, digest.Numeric, bitvar.Numeric](p, blessDigest, blessBit)
	c.Assert(err, qt.IsNil)
	c.Assert(mirrored.Depth(), qt.Equals, depth)
	c.Assert(mirrored.Siblings(), qt.DeepEquals, p.Siblings())
	c.Assert(mirrored.ChildBits(), qt.DeepEquals, p.ChildBits())
}
