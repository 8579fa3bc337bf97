package authpath

import (
	"errors"

	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/streamcodec"
)

// ErrEmptyPath is returned by UnmarshalNumericText when the encoded depth
// is zero, matching the original's treatment of a zero-length stream as
// invalid rather than as a legitimately empty path.
var ErrEmptyPath = errors.New("authpath: encoded depth is zero")

// MarshalNumericText and UnmarshalNumericText below are free functions
// rather than methods because Go cannot declare a method on AuthPath
// specialised to one concrete instantiation of its type parameters.
// Marshalling is only defined for the numeric (cleartext) instantiation —
// the symbolic mirror is rebuilt per proof via FromOther rather than
// persisted.
//
// Both take an already-built *streamcodec.Writer/*Reader rather than an
// io.Writer/io.Reader, so that a caller composing several encodings in
// sequence (accumulator, bundle) shares one token stream across all of
// them instead of each wrapping the raw stream in its own
// bufio.Scanner-backed Reader, which would read ahead and drain the
// stream out from under the next one.

// MarshalNumericText writes p's textual encoding to sw: depth, then the
// root path, then the siblings, each digest as one hex token per line,
// then one 0/1 token per child bit.
func MarshalNumericText(p *AuthPath[digest.Numeric, bitvar.Numeric], sw *streamcodec.Writer) error {
	sw.WriteUint(uint64(p.depth))
	for _, d := range p.rootPath {
		sw.WriteHex(d)
	}
	for _, d := range p.siblings {
		sw.WriteHex(d)
	}
	for _, b := range p.childBits {
		sw.WriteBool(b.IsRight())
	}
	return sw.Err()
}

// UnmarshalNumericText reads a textual encoding produced by
// MarshalNumericText off sr. width is the digest width in bytes (32 for
// SHA-256, 64 for SHA-512), which the wire format itself does not carry —
// matching the original, where the digest width is fixed by the HASH
// type parameter rather than encoded on the wire.
func UnmarshalNumericText(sr *streamcodec.Reader, width int) (*AuthPath[digest.Numeric, bitvar.Numeric], error) {
	depth := int(sr.ReadUint())
	if err := sr.Err(); err != nil {
		return nil, err
	}
	if depth == 0 {
		return nil, ErrEmptyPath
	}

	rootPath := make([]digest.Numeric, depth)
	for i := range rootPath {
		rootPath[i] = digest.Numeric(sr.ReadHex(width))
	}

	siblings := make([]digest.Numeric, depth)
	for i := range siblings {
		siblings[i] = digest.Numeric(sr.ReadHex(width))
	}

	childBits := make([]bitvar.Numeric, depth)
	for i := range childBits {
		if sr.ReadBool() {
			childBits[i] = bitvar.One
		} else {
			childBits[i] = bitvar.Zero
		}
	}

	if err := sr.Err(); err != nil {
		return nil, err
	}

	return &AuthPath[digest.Numeric, bitvar.Numeric]{
		depth:     depth,
		rootPath:  rootPath,
		siblings:  siblings,
		childBits: childBits,
	}, nil
}
