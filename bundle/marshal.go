package bundle

import (
	"io"

	"github.com/zkaccumulator/merkauth/accumulator"
	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/streamcodec"
)

// MarshalNumericText writes b's textual encoding to w: the underlying
// tree's encoding, the tree-size counter, the kept leaves, then each kept
// path's own encoding, in the same relative order as AuthLeaf/AuthPath.
// A single streamcodec.Writer is built over w and threaded through every
// sub-encoding, so the whole bundle is one token stream rather than one
// per nested Marshal call.
func MarshalNumericText[C Count](b *Bundle[digest.Numeric, C], w io.Writer) error {
	sw := streamcodec.NewWriter(w)

	if err := accumulator.MarshalNumericText(b.tree, sw); err != nil {
		return err
	}

	sw.WriteUint(uint64(b.size))
	sw.WriteUint(uint64(len(b.leaves)))
	for _, leaf := range b.leaves {
		sw.WriteHex(leaf)
	}
	if err := sw.Err(); err != nil {
		return err
	}

	for _, path := range b.paths {
		if err := authpath.MarshalNumericText(path, sw); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalNumericTextFrom reads a textual encoding produced by
// MarshalNumericText. width is the digest width in bytes. A single
// streamcodec.Reader is built over r and threaded through every
// sub-decoding — building a fresh Reader per nested call would each read
// the whole remaining stream into its own buffered scanner and drain it
// out from under the next one.
func UnmarshalNumericTextFrom[C Count](r io.Reader, width int) (*Bundle[digest.Numeric, C], error) {
	sr := streamcodec.NewReader(r)

	tree, err := accumulator.UnmarshalNumericText(sr, width)
	if err != nil {
		return nil, err
	}

	size := sr.ReadUint()
	leafCount := int(sr.ReadUint())
	if err := sr.Err(); err != nil {
		return nil, err
	}

	leaves := make([]digest.Numeric, leafCount)
	for i := range leaves {
		leaves[i] = digest.Numeric(sr.ReadHex(width))
	}
	if err := sr.Err(); err != nil {
		return nil, err
	}

	paths := make([]*authpath.AuthPath[digest.Numeric, bitvar.Numeric], leafCount)
	for i := range paths {
		p, err := authpath.UnmarshalNumericText(sr, width)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}

	return &Bundle[digest.Numeric, C]{
		tree:   tree,
		size:   C(size),
		leaves: leaves,
		paths:  paths,
	}, nil
}
