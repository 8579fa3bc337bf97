// Package streamcodec implements the whitespace-delimited textual wire
// format this module persists AuthPath/Accumulator/Bundle state in (spec
// §4.4): one token per value, newline- or space-separated, read back with
// the same token-at-a-time discipline the original's `istream >>` chain
// used. No library in the example pack's dependency graph targets this
// bespoke format (it is neither JSON, gob, nor protobuf), so Writer and
// Reader are built directly on bufio/fmt/strconv/encoding/hex, the
// smallest stdlib surface that can express it.
//
// Both Writer and Reader are "sticky error" types: once a write or read
// fails, every subsequent call is a no-op and the original error is what
// Err returns, mirroring the original's repeated `if (!is) return false;`
// checks without repeating them at every call site.
package streamcodec

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
)

// Writer serialises values as whitespace-separated text tokens.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w for token-at-a-time writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered by any Write* call, if any.
func (w *Writer) Err() error { return w.err }

// WriteUint writes an unsigned integer followed by a newline.
func (w *Writer) WriteUint(v uint64) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%d\n", v)
}

// WriteBool writes 0 or 1 followed by a newline.
func (w *Writer) WriteBool(b bool) {
	if b {
		w.WriteUint(1)
		return
	}
	w.WriteUint(0)
}

// WriteHex writes b as a lowercase hex token followed by a newline.
func (w *Writer) WriteHex(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%s\n", hex.EncodeToString(b))
}

// Reader parses values out of a whitespace-delimited token stream.
type Reader struct {
	sc  *bufio.Scanner
	err error
}

// NewReader wraps r for token-at-a-time reads.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{sc: sc}
}

// Err returns the first error encountered by any Read* call, if any.
func (r *Reader) Err() error { return r.err }

func (r *Reader) next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = err
		} else {
			r.err = io.ErrUnexpectedEOF
		}
		return "", false
	}
	return r.sc.Text(), true
}

// ReadUint reads one unsigned-integer token.
func (r *Reader) ReadUint() uint64 {
	tok, ok := r.next()
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("streamcodec: parsing uint token %q: %w", tok, err)
		return 0
	}
	return v
}

// ReadBool reads one 0/1 token.
func (r *Reader) ReadBool() bool {
	return r.ReadUint() != 0
}

// ReadHex reads one hex token and decodes it to exactly n bytes. If the
// decoded length does not match n, Err will report it.
func (r *Reader) ReadHex(n int) []byte {
	tok, ok := r.next()
	if !ok {
		return nil
	}
	b, err := hex.DecodeString(tok)
	if err != nil {
		r.err = fmt.Errorf("streamcodec: decoding hex token: %w", err)
		return nil
	}
	if len(b) != n {
		r.err = fmt.Errorf("streamcodec: hex token has %d bytes, want %d", len(b), n)
		return nil
	}
	return b
}
