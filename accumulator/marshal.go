package accumulator

import (
	"errors"

	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/digest"
	"github.com/zkaccumulator/merkauth/streamcodec"
)

// ErrInvalidEncoding names an invalid accumulator encoding.
// UnmarshalNumericText does not return it: on a malformed stream it
// returns the streamcodec or authpath error (such as authpath.ErrEmptyPath)
// unchanged.
var ErrInvalidEncoding = errors.New("accumulator: invalid encoding")

// MarshalNumericText writes a's textual encoding to sw: the full flag,
// followed by the frontier authentication path's own encoding, both
// through the same streamcodec.Writer so a caller composing this with
// other encodings (bundle) keeps everything on one token stream.
func MarshalNumericText(a *Accumulator[digest.Numeric], sw *streamcodec.Writer) error {
	sw.WriteBool(a.full)
	if err := authpath.MarshalNumericText(a.path, sw); err != nil {
		return err
	}
	return sw.Err()
}

// UnmarshalNumericText reads a textual encoding produced by
// MarshalNumericText off sr. width is the digest width in bytes. sr must
// be the same *streamcodec.Reader the caller used for anything preceding
// this encoding on the stream — a fresh Reader here would re-wrap the
// underlying io.Reader in its own buffered scanner and silently consume
// bytes authpath.UnmarshalNumericText still needs.
func UnmarshalNumericText(sr *streamcodec.Reader, width int) (*Accumulator[digest.Numeric], error) {
	full := sr.ReadBool()

	path, err := authpath.UnmarshalNumericText(sr, width)
	if err != nil {
		return nil, err
	}
	if err := sr.Err(); err != nil {
		return nil, err
	}

	return &Accumulator[digest.Numeric]{full: full, path: path}, nil
}
