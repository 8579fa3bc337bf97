package authpath_test

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkaccumulator/merkauth/authpath"
	"github.com/zkaccumulator/merkauth/bitvar"
	"github.com/zkaccumulator/merkauth/hashfamily"
	"github.com/zkaccumulator/merkauth/streamcodec"
)

func TestMarshalNumericTextRoundTrip(t *testing.T) {
	c := qt.New(t)

	ops := hashfamily.SHA256Numeric{}
	depth := 3
	p := authpath.New(depth, ops, bitvar.Zero)
	p.UpdatePath(ops, leaf(9))
	authpath.LeafSibling(p, leaf(9))

	var buf bytes.Buffer
	sw := streamcodec.NewWriter(&buf)
	c.Assert(authpath.MarshalNumericText(p, sw), qt.IsNil)

	sr := streamcodec.NewReader(&buf)
	back, err := authpath.UnmarshalNumericText(sr, width)
	c.Assert(err, qt.IsNil)
	c.Assert(back.Depth(), qt.Equals, p.Depth())
	c.Assert(back.RootHash().Equal(p.RootHash()), qt.IsTrue)
	c.Assert(back.Siblings(), qt.DeepEquals, p.Siblings())
	c.Assert(back.ChildBits(), qt.DeepEquals, p.ChildBits())
}

func TestUnmarshalEmptyPathErrors(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	buf.WriteString("0\n")

	sr := streamcodec.NewReader(&buf)
	_, err := authpath.UnmarshalNumericText(sr, width)
	c.Assert(err, qt.Equals, authpath.ErrEmptyPath)
}
