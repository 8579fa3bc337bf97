// Package authpath implements the Merkle authentication-path engine: the
// bottom-up sibling/childBit/rootPath vectors shared by the cleartext and
// in-circuit variants of a Merkle tree path from a leaf to the root.
//
// AuthPath is parameterised by two type parameters rather than templated
// on a Hash/Bit pair the way the original C++ was: D is the digest
// representation (numeric bytes or symbolic circuit bytes, see package
// digest) and B is the bit representation (plain int or circuit variable,
// see package bitvar). The Hash and ternary capabilities a caller needs are
// passed explicitly as an Ops[D, B] value to every call that hashes or
// selects, rather than being implied by D/B themselves — D and B stay
// plain data, and the external collaborator (a hash family) stays
// explicit at the call site, matching this module's rule of never hiding
// an external capability behind a singleton.
package authpath

// Ops bundles the external capabilities AuthPath needs to ascend the tree:
// a zero digest, a two-child hash, and the bit-indexed ternary that picks
// which child goes on which side. hashfamily's four concrete hash
// families satisfy this interface structurally, for both digest
// variants.
type Ops[D any, B any] interface {
	// Zero returns the digest used to fill empty sibling slots.
	Zero() D
	// Hash combines a left and right child digest into their parent.
	Hash(left, right D) D
	// Select returns whenTrue when bit marks a right child, whenFalse
	// otherwise.
	Select(bit B, whenTrue, whenFalse D) D
}

// AuthPath holds one Merkle authentication path: the sibling digest, child
// bit, and resulting root-path digest at every level from the leaf (index
// 0) up to the root (index depth-1).
type AuthPath[D any, B any] struct {
	depth     int
	rootPath  []D
	siblings  []D
	childBits []B
}

// New builds a fresh AuthPath of the given depth, with every sibling slot
// set to the zero digest and every child bit set to zeroBit. The root
// path is left unpopulated until the first UpdatePath call, matching the
// original's "first update initializes hash digests" comment.
func New[D any, B any](depth int, ops Ops[D, B], zeroBit B) *AuthPath[D, B] {
	siblings := make([]D, depth)
	childBits := make([]B, depth)
	for i := range siblings {
		siblings[i] = ops.Zero()
		childBits[i] = zeroBit
	}
	return &AuthPath[D, B]{
		depth:     depth,
		rootPath:  make([]D, depth),
		siblings:  siblings,
		childBits: childBits,
	}
}

// FromOther mirrors an existing AuthPath into a different digest/bit
// representation, blessing each sibling and child bit with the supplied
// functions — the Go-native form of the "zk from eval" conversion
// constructor, which bound a fresh circuit variable per cleartext element.
func FromOther[OD, OB, D, B any](
	other *AuthPath[OD, OB],
	blessDigest func(OD) (D, error),
	blessBit func(OB) (B, error),
) (*AuthPath[D, B], error) {
	siblings := make([]D, len(other.siblings))
	for i, s := range other.siblings {
		b, err := blessDigest(s)
		if err != nil {
			return nil, err
		}
		siblings[i] = b
	}

	childBits := make([]B, len(other.childBits))
	for i, c := range other.childBits {
		b, err := blessBit(c)
		if err != nil {
			return nil, err
		}
		childBits[i] = b
	}

	return &AuthPath[D, B]{
		depth:     other.depth,
		rootPath:  make([]D, other.depth),
		siblings:  siblings,
		childBits: childBits,
	}, nil
}

// Clone returns an independent deep copy of p, so that callers (notably
// bundle.Bundle) can keep a snapshot of a path that will go on to be
// mutated in place.
func (p *AuthPath[D, B]) Clone() *AuthPath[D, B] {
	return &AuthPath[D, B]{
		depth:     p.depth,
		rootPath:  append([]D(nil), p.rootPath...),
		siblings:  append([]D(nil), p.siblings...),
		childBits: append([]B(nil), p.childBits...),
	}
}

// Depth returns the number of tree levels this path spans.
func (p *AuthPath[D, B]) Depth() int { return p.depth }

// RootHash returns the digest at the root, the last entry of the root
// path. Only meaningful after UpdatePath has run at least once.
func (p *AuthPath[D, B]) RootHash() D { return p.rootPath[p.depth-1] }

// RootPath returns the bottom-up sequence of digests from just above the
// leaf up to and including the root.
func (p *AuthPath[D, B]) RootPath() []D { return p.rootPath }

// Siblings returns the bottom-up sequence of sibling digests.
func (p *AuthPath[D, B]) Siblings() []D { return p.siblings }

// ChildBits returns the bottom-up sequence of child-side bits.
func (p *AuthPath[D, B]) ChildBits() []B { return p.childBits }

// UpdatePath recomputes the root path for a new leaf digest, using the
// existing siblings and child bits.
func (p *AuthPath[D, B]) UpdatePath(ops Ops[D, B], leaf D) {
	p.updatePath(ops, leaf, nil)
}

// UpdatePathPatching is UpdatePath's patching variant: in addition to
// recomputing this path's own root path, it patches every path in
// oldPaths whose childBits share a leading run of bits (counted from the
// root) with this path's childBits, since the newly computed hashes at
// those shared levels are also correct for oldPaths.
//
// B must be comparable so the shared-prefix length (matchMSB) can be
// computed; every concrete bit type in this module satisfies that.
func UpdatePathPatching[D any, B comparable](p *AuthPath[D, B], ops Ops[D, B], leaf D, oldPaths []*AuthPath[D, B]) {
	overlap := make([]int, len(oldPaths))
	for j, old := range oldPaths {
		overlap[j] = matchMSB(p.childBits, old.childBits)
	}

	p.updatePathWithOverlap(ops, leaf, oldPaths, overlap)
}

func (p *AuthPath[D, B]) updatePath(ops Ops[D, B], leaf D, oldPaths []*AuthPath[D, B]) {
	p.updatePathWithOverlap(ops, leaf, oldPaths, nil)
}

func (p *AuthPath[D, B]) updatePathWithOverlap(ops Ops[D, B], leaf D, oldPaths []*AuthPath[D, B], overlap []int) {
	dig := leaf

	for i := 0; i < p.depth; i++ {
		isRightChild := p.childBits[i]
		left := ops.Select(isRightChild, p.siblings[i], dig)
		right := ops.Select(isRightChild, dig, p.siblings[i])

		dig = ops.Hash(left, right)
		p.rootPath[i] = dig

		// path length from root to the node whose hash was just computed
		pathLen := p.depth - 1 - i

		for j, old := range oldPaths {
			switch {
			case pathLen <= overlap[j]:
				old.rootPath[i] = dig
			case pathLen == overlap[j]+1:
				old.siblings[i+1] = dig
			}
		}
	}

	for j, old := range oldPaths {
		if p.depth-1 == overlap[j] {
			// differ in last bit only, leaf must be right sibling
			old.siblings[0] = leaf
		}
	}
}

// matchMSB counts how many trailing (root-most) entries of a and b are
// equal, scanning from the highest index (the root level) down towards
// the leaf and stopping at the first mismatch.
func matchMSB[B comparable](a, b []B) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	count := 0
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			break
		}
		count++
	}
	return count
}
