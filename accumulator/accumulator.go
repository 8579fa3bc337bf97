// Package accumulator implements the append-only Merkle tree: a single
// authentication path maintained at the tree's rightmost frontier,
// together with the bookkeeping (child-bit increment, sibling rotation,
// full-tree detection) needed to extend it leaf by leaf.
//
// Unlike authpath.AuthPath, Accumulator is parameterised only by its
// digest type D; its child-bit vector is always the numeric counter
// (bitvar.Numeric), matching the original's MerkleTree<HASH>, which wraps
// a MerkleAuthPath<HASH,int> specifically and never a symbolic one — the
// tree itself is only ever built and advanced in cleartext, the symbolic
// mirror existing only as a per-proof AuthPath snapshot.
package accumulator

import (
	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/bitvar"
)

// Accumulator is an append-only Merkle tree of fixed depth.
type Accumulator[D any] struct {
	full bool
	path *authpath.AuthPath[D, bitvar.Numeric]
}

// New builds an empty Accumulator of the given depth. Even at depth 0
// (a single-leaf tree) full starts false: it only latches true once
// UpdateSiblings has run once, the same way the original MerkleTree(0)
// starts unfull and only wraps to full after its first updateSiblings
// call, rather than treating an empty depth-0 tree as pre-filled.
func New[D any](depth int, ops authpath.Ops[D, bitvar.Numeric]) *Accumulator[D] {
	return &Accumulator[D]{
		path: authpath.New[D, bitvar.Numeric](depth, ops, bitvar.Zero),
	}
}

// IsFull reports whether every one of the tree's 2^depth leaves has been
// added.
func (a *Accumulator[D]) IsFull() bool { return a.full }

// AuthPath returns the tree's current frontier authentication path — the
// path to whichever leaf position is about to be filled next.
func (a *Accumulator[D]) AuthPath() *authpath.AuthPath[D, bitvar.Numeric] { return a.path }

// UpdatePath recomputes the root path for a newly added leaf, without
// patching any other paths.
func (a *Accumulator[D]) UpdatePath(ops authpath.Ops[D, bitvar.Numeric], leaf D) {
	a.path.UpdatePath(ops, leaf)
}

// UpdatePathPatching recomputes the root path for a newly added leaf and
// patches every authentication path in oldPaths whose childBits share a
// root-ward prefix with this tree's current frontier.
func (a *Accumulator[D]) UpdatePathPatching(ops authpath.Ops[D, bitvar.Numeric], leaf D, oldPaths []*authpath.AuthPath[D, bitvar.Numeric]) {
	authpath.UpdatePathPatching(a.path, ops, leaf, oldPaths)
}

// UpdateSiblings prepares the tree for the next leaf: it increments the
// frontier's child-bit counter and rotates siblings accordingly. If the
// tree was already full, or this increment fills it, full becomes (or
// stays) true and no sibling state is touched.
func (a *Accumulator[D]) UpdateSiblings(ops authpath.Ops[D, bitvar.Numeric], leaf D) {
	if a.full {
		return
	}

	firstBit := authpath.IncChildBits(a.path)

	switch {
	case firstBit == -1:
		// every bit wrapped back to zero: the tree is full
		a.full = true
	case firstBit == 0:
		// next leaf is a right child; the leaf just added becomes its
		// left sibling
		authpath.LeafSibling(a.path, leaf)
	default:
		// a new branch opens at level firstBit
		authpath.HashSibling(a.path, ops, firstBit)
	}
}
