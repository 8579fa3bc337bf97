package sha512zk_test

import (
	"crypto/sha512"
	"fmt"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"

	"github.com/zkaccumulator/merkauth/internal/sha512zk"
)

type circuit struct {
	In       []uints.U8
	Expected [64]uints.U8
}

func (c *circuit) Define(api frontend.API) error {
	h, err := sha512zk.New(api)
	if err != nil {
		return err
	}
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	h.Write(c.In)
	res := h.Sum()
	if len(res) != 64 {
		return fmt.Errorf("not 64 bytes")
	}
	for i := range c.Expected {
		uapi.ByteAssertEq(c.Expected[i], res[i])
	}
	return nil
}

func TestSHA512MatchesStdlib(t *testing.T) {
	assert := test.NewAssert(t)

	for _, n := range []int{0, 1, 64, 111, 112, 128, 200} {
		n := n
		assert.Run(func(assert *test.Assert) {
			bts := make([]byte, n)
			for i := range bts {
				bts[i] = byte(i)
			}
			want := sha512.Sum512(bts)

			witness := &circuit{In: uints.NewU8Array(bts)}
			copy(witness.Expected[:], uints.NewU8Array(want[:]))

			err := test.IsSolved(&circuit{In: make([]uints.U8, n)}, witness, ecc.BN254.ScalarField())
			assert.NoError(err)
		}, fmt.Sprintf("length=%d", n))
	}
}
