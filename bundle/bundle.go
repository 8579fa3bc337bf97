// Package bundle implements the top-level Merkle accumulator with kept
// history: an Accumulator plus, for every leaf a caller chose to keep, the
// leaf digest and the authentication path snapshot proving its membership
// at the moment it was added.
package bundle

import (
	"github.com/zkaccumulator/merkauth/accumulator"
	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/bitvar"
)

// Count is the tree-size counter type: either a 32- or 64-bit unsigned
// integer, matching the original's COUNT template parameter (an unsigned
// integral counting added leaves).
type Count interface {
	~uint32 | ~uint64
}

// Bundle is a Merkle accumulator that keeps a subset of its leaves'
// authentication paths alongside the underlying tree.
type Bundle[D any, C Count] struct {
	tree *accumulator.Accumulator[D]
	size C

	leaves []D
	paths  []*authpath.AuthPath[D, bitvar.Numeric]
}

// New builds an empty Bundle over a tree of the given depth.
func New[D any, C Count](depth int, ops authpath.Ops[D, bitvar.Numeric]) *Bundle[D, C] {
	return &Bundle[D, C]{tree: accumulator.New[D](depth, ops)}
}

// IsFull reports whether the underlying tree has no more room for leaves.
func (b *Bundle[D, C]) IsFull() bool { return b.tree.IsFull() }

// TreeSize returns the number of leaves added so far.
func (b *Bundle[D, C]) TreeSize() C { return b.size }

// RootHash returns the tree's current root digest.
func (b *Bundle[D, C]) RootHash() D { return b.tree.AuthPath().RootHash() }

// AuthLeaf returns the leaf digests kept alongside their authentication
// paths, in the order they were added.
func (b *Bundle[D, C]) AuthLeaf() []D { return b.leaves }

// AuthPath returns the kept authentication-path snapshots, parallel to
// AuthLeaf.
func (b *Bundle[D, C]) AuthPath() []*authpath.AuthPath[D, bitvar.Numeric] { return b.paths }

// AddLeaf appends cm as the tree's next leaf: it patches every
// already-kept path so their root hashes stay current, then — if keepPath
// is true — snapshots cm's own authentication path for later membership
// proofs, and finally advances the tree. Adding a leaf to a full tree
// panics.
func (b *Bundle[D, C]) AddLeaf(ops authpath.Ops[D, bitvar.Numeric], cm D, keepPath bool) {
	if b.tree.IsFull() {
		panic("bundle: AddLeaf on a full tree")
	}

	b.tree.UpdatePathPatching(ops, cm, b.paths)

	if keepPath {
		b.leaves = append(b.leaves, cm)
		b.paths = append(b.paths, b.tree.AuthPath().Clone())
	}

	b.tree.UpdateSiblings(ops, cm)

	b.size++
}

// AuthGarbageCollect discards every kept leaf/path pair whose leaf is not
// in keep, shrinking both AuthLeaf and AuthPath to the survivors, in their
// original relative order.
func (b *Bundle[D, C]) AuthGarbageCollect(keep func(leaf D) bool) {
	keptLeaves := b.leaves[:0:0]
	keptPaths := b.paths[:0:0]

	for i, leaf := range b.leaves {
		if keep(leaf) {
			keptLeaves = append(keptLeaves, leaf)
			keptPaths = append(keptPaths, b.paths[i])
		}
	}

	b.leaves = keptLeaves
	b.paths = keptPaths
}
