// Command proof-demo drives the four-mode proving pipeline the original's
// test_proof demonstrator used: keygen writes a proving/verifying key
// pair, input writes a witness for a fixed public statement, proof
// consumes both to produce a Groth16 proof, and verify checks it — each
// mode a separate process invocation, artifacts passed between them as
// files, the way a real prover/verifier deployment would be split.
package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/sha2"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/zkaccumulator/merkauth/internal/zklog"
	"github.com/zkaccumulator/merkauth/snarkengine"
)

// statement is the public claim this demonstrator proves knowledge of a
// preimage for: SHA-256(Preimage) == Digest, with Preimage fixed at 3
// bytes, mirroring the original's hard-coded SHA-256("abc") demo
// statement.
type statement struct {
	Preimage [3]uints.U8  `gnark:",secret"`
	Digest   [32]uints.U8 `gnark:",public"`
}

func (s *statement) Define(api frontend.API) error {
	h, err := sha2.New(api)
	if err != nil {
		return err
	}
	h.Write(s.Preimage[:])
	sum := h.Sum()
	for i := range sum {
		api.AssertIsEqual(sum[i].Val, s.Digest[i].Val)
	}
	return nil
}

const (
	pkFile      = "proof-demo.pk"
	vkFile      = "proof-demo.vk"
	witnessFile = "proof-demo.witness"
	proofFile   = "proof-demo.proof"
	publicFile  = "proof-demo.public"
)

func main() {
	app := &cli.App{
		Name:  "proof-demo",
		Usage: "keygen/input/proof/verify pipeline for a fixed public SHA-256 statement",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Required: true, Usage: "keygen, input, proof or verify"},
			&cli.StringFlag{Name: "pairing", Value: string(snarkengine.BN128), Usage: "BN128 or Edwards"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "proof-demo:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	curve := snarkengine.Curve(c.String("pairing"))
	log := zklog.Logger("proof-demo")

	switch c.String("mode") {
	case "keygen":
		return modeKeygen(curve, log)
	case "input":
		return modeInput(curve)
	case "proof":
		return modeProof(curve, log)
	case "verify":
		return modeVerify(curve, log)
	default:
		return fmt.Errorf("unknown mode %q", c.String("mode"))
	}
}

func modeKeygen(curve snarkengine.Curve, log zerolog.Logger) error {
	compiled, err := snarkengine.Compile(curve, &statement{})
	if err != nil {
		return err
	}

	pk, vk, err := snarkengine.Setup(compiled)
	if err != nil {
		return err
	}

	if err := writeTo(pkFile, pk); err != nil {
		return err
	}
	if err := writeTo(vkFile, vk); err != nil {
		return err
	}

	log.Info().Msg("wrote proving and verifying keys")
	return nil
}

func modeInput(curve snarkengine.Curve) error {
	preimage := [3]byte{'a', 'b', 'c'}
	digest := sha256.Sum256(preimage[:])

	assignment := &statement{
		Preimage: uints.NewU8Array(preimage[:]),
		Digest:   uints.NewU8Array(digest[:]),
	}

	id, err := curve.ID()
	if err != nil {
		return err
	}
	w, err := frontend.NewWitness(assignment, id.ScalarField())
	if err != nil {
		return fmt.Errorf("proof-demo: building witness: %w", err)
	}

	return writeTo(witnessFile, w)
}

func modeProof(curve snarkengine.Curve, log zerolog.Logger) error {
	compiled, err := snarkengine.Compile(curve, &statement{})
	if err != nil {
		return err
	}

	id, err := curve.ID()
	if err != nil {
		return err
	}

	pk := groth16.NewProvingKey(id)
	if err := readFrom(pkFile, pk); err != nil {
		return err
	}

	fullWitness, err := witness.New(id.ScalarField())
	if err != nil {
		return err
	}
	if err := readFrom(witnessFile, fullWitness); err != nil {
		return err
	}

	proof, err := groth16.Prove(compiled, pk, fullWitness)
	if err != nil {
		return fmt.Errorf("proof-demo: proving: %w", err)
	}
	if err := writeTo(proofFile, proof); err != nil {
		return err
	}

	public, err := fullWitness.Public()
	if err != nil {
		return err
	}
	if err := writeTo(publicFile, public); err != nil {
		return err
	}

	log.Info().Msg("wrote proof and public witness")
	return nil
}

func modeVerify(curve snarkengine.Curve, log zerolog.Logger) error {
	id, err := curve.ID()
	if err != nil {
		return err
	}

	vk := groth16.NewVerifyingKey(id)
	if err := readFrom(vkFile, vk); err != nil {
		return err
	}

	proof := groth16.NewProof(id)
	if err := readFrom(proofFile, proof); err != nil {
		return err
	}

	public, err := witness.New(id.ScalarField())
	if err != nil {
		return err
	}
	if err := readFrom(publicFile, public); err != nil {
		return err
	}

	if err := groth16.Verify(proof, vk, public); err != nil {
		log.Error().Err(err).Msg("verification failed")
		fmt.Println("FAILED")
		return err
	}

	log.Info().Msg("verification succeeded")
	fmt.Println("PASSED")
	return nil
}

// writeTo persists any gnark artifact implementing io.WriterTo (proving
// keys, verifying keys, proofs, witnesses all do) to a file.
func writeTo(path string, v io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("proof-demo: creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := v.WriteTo(f); err != nil {
		return fmt.Errorf("proof-demo: writing %s: %w", path, err)
	}
	return nil
}

// readFrom loads a gnark artifact implementing io.ReaderFrom from a file.
func readFrom(path string, v io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("proof-demo: opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := v.ReadFrom(f); err != nil {
		return fmt.Errorf("proof-demo: reading %s: %w", path, err)
	}
	return nil
}
