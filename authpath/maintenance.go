package authpath

import "github.com/zkaccumulator/merkauth/bitvar"

// LeafSibling, HashSibling and IncChildBits prepare a path's sibling and
// child-bit vectors for the next leaf. They exist only on the numeric
// (bitvar.Numeric) instantiation: the original only ever grew its
// sibling/child-bit state on the cleartext side, deriving the symbolic
// mirror afresh from it via FromOther for each proof rather than growing
// the symbolic copy directly.

// LeafSibling records leaf as the left sibling of the next node to be
// added at the leaf level, i.e. the just-added leaf itself.
func LeafSibling[D any](p *AuthPath[D, bitvar.Numeric], leaf D) {
	p.siblings[0] = leaf
}

// HashSibling opens a new branch in the tree at the given level: the
// sibling at index becomes the digest just computed one level below it,
// and every sibling below that is reset to the zero digest, ready to
// accumulate a fresh subtree.
func HashSibling[D any](p *AuthPath[D, bitvar.Numeric], ops Ops[D, bitvar.Numeric], index int) {
	p.siblings[index] = p.rootPath[index-1]

	for i := 0; i < index; i++ {
		p.siblings[i] = ops.Zero()
	}
}

// IncChildBits increments the child-bit vector as a little-endian binary
// counter (leaf-level bit first) and returns the index of the first bit
// that flipped 0->1, or -1 if every bit was already 1 (the tree is full
// and the increment wrapped around to all zero).
func IncChildBits[D any](p *AuthPath[D, bitvar.Numeric]) int {
	for i := 0; i < p.depth; i++ {
		if p.childBits[i] == bitvar.Zero {
			p.childBits[i] = bitvar.One
			return i
		}
		p.childBits[i] = bitvar.Zero
	}
	return -1
}
