// Package membership provides the zk-SNARK circuit that proves Merkle-tree
// membership: given a leaf, its authentication path (siblings and child
// bits), and a claimed root, it re-derives the root the same way
// authpath.AuthPath.UpdatePath does and constrains it equal to the
// claimed one. It is grounded on the pack's own circuit-verifier shape
// (std/accumulator/merkle/verify.go's MerkleProof struct plus Define
// method, and vocdoni's tree/arbo/verifier.go CheckInclusionProof), built
// on top of this module's own symbolic AuthPath rather than gnark's MiMC
// tree verifier.
package membership

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/hashfamily"
)

// Circuit is a frontend.Circuit proving Merkle-tree membership. Width
// selects the hash family (hashfamily.Width256 or hashfamily.Width512);
// depth (len(Siblings)) is fixed once at construction, before compiling,
// matching the original's compile-time HASH/BIT parameterisation.
type Circuit struct {
	Leaf      []uints.U8          `gnark:",secret"`
	Siblings  [][]uints.U8        `gnark:",secret"`
	ChildBits []frontend.Variable `gnark:",secret"`
	Root      []uints.U8          `gnark:",public"`

	width int
}

// New builds an empty Circuit ready for a witness assignment or direct
// compilation: width is hashfamily.Width256 or hashfamily.Width512, depth
// is the number of tree levels the path spans.
func New(width, depth int) *Circuit {
	siblings := make([][]uints.U8, depth)
	for i := range siblings {
		siblings[i] = make([]uints.U8, width)
	}
	return &Circuit{
		Leaf:      make([]uints.U8, width),
		Siblings:  siblings,
		ChildBits: make([]frontend.Variable, depth),
		Root:      make([]uints.U8, width),
		width:     width,
	}
}

// Assignment builds a witness-assignment Circuit from cleartext values: a
// leaf, its sibling vector, its child-bit vector, and the claimed root.
// This runs outside Define (there is no live frontend.API yet), so it
// converts via digest.Bless (which ignores the API it is handed) and
// bitvar.ValueOf rather than bitvar.BlessBit.
func Assignment(width int, leaf digest.Numeric, siblings []digest.Numeric, childBits []bitvar.Numeric, root digest.Numeric) (*Circuit, error) {
	c := New(width, len(siblings))

	leafSym, err := digest.Bless(nil, leaf)
	if err != nil {
		return nil, fmt.Errorf("membership: blessing leaf: %w", err)
	}
	c.Leaf = leafSym

	for i, s := range siblings {
		sym, err := digest.Bless(nil, s)
		if err != nil {
			return nil, fmt.Errorf("membership: blessing sibling %d: %w", i, err)
		}
		c.Siblings[i] = sym
	}

	for i, b := range childBits {
		c.ChildBits[i] = frontend.Variable(bitvar.ValueOf(b))
	}

	rootSym, err := digest.Bless(nil, root)
	if err != nil {
		return nil, fmt.Errorf("membership: blessing root: %w", err)
	}
	c.Root = rootSym

	return c, nil
}

// Define implements frontend.Circuit. It re-derives the root hash from
// Leaf along Siblings/ChildBits using authpath's symbolic UpdatePath, and
// constrains the result equal to Root.
func (c *Circuit) Define(api frontend.API) error {
	var ops authpath.Ops[digest.Symbolic, bitvar.Symbolic]
	switch c.width {
	case hashfamily.Width256:
		ops = hashfamily.NewSHA256Symbolic(api)
	case hashfamily.Width512:
		ops = hashfamily.NewSHA512Symbolic(api)
	default:
		return fmt.Errorf("membership: unsupported digest width %d", c.width)
	}

	depth := len(c.Siblings)
	path := authpath.New[digest.Symbolic, bitvar.Symbolic](depth, ops, bitvar.Symbolic(frontend.Variable(0)))

	siblings := path.Siblings()
	childBits := path.ChildBits()
	for i := 0; i < depth; i++ {
		api.AssertIsBoolean(c.ChildBits[i])
		siblings[i] = digest.Symbolic(c.Siblings[i])
		childBits[i] = bitvar.Symbolic(c.ChildBits[i])
	}

	path.UpdatePath(ops, digest.Symbolic(c.Leaf))

	digest.AssertEqual(api, path.RootHash(), digest.Symbolic(c.Root))
	return nil
}
