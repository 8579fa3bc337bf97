// Package snarkengine wraps the Groth16 proving pipeline (compile, setup,
// prove, verify) the demonstrator CLIs drive, grounded on the modern gnark
// API also used directly by cmd/proof-demo: frontend.Compile with
// r1cs.NewBuilder returning a constraint.ConstraintSystem,
// groth16.Setup/Prove/Verify, and frontend.NewWitness returning the
// witness.Witness interface. This package exists so cmd/merkle-demo and
// cmd/proof-demo share one place that knows how to drive that pipeline,
// instead of repeating it in both commands.
package snarkengine

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/zkaccumulator/merkauth/internal/zklog"
)

// Curve names the two pairing-friendly curves this engine compiles
// circuits over, named after the original's libsnark-era pairing
// parameters (BN128, Edwards) and mapped onto their modern gnark-crypto
// equivalents.
type Curve string

const (
	// BN128 is the modern BN254 curve (same curve family, renamed).
	BN128 Curve = "BN128"
	// Edwards maps to BLS12-377, the curve in the pack's dependency graph
	// whose embedded twisted-Edwards curve plays the same role the
	// original's Edwards backend did.
	Edwards Curve = "Edwards"
)

// ID resolves c to the gnark-crypto curve it maps to.
func (c Curve) ID() (ecc.ID, error) {
	switch c {
	case BN128:
		return ecc.BN254, nil
	case Edwards:
		return ecc.BLS12_377, nil
	default:
		return 0, fmt.Errorf("snarkengine: unknown curve %q", c)
	}
}

// Compile builds the R1CS constraint system for circuit over curve.
func Compile(curve Curve, circuit frontend.Circuit) (constraint.ConstraintSystem, error) {
	id, err := curve.ID()
	if err != nil {
		return nil, err
	}
	log := zklog.Logger("snarkengine")
	log.Debug().Str("curve", string(curve)).Msg("compiling circuit")

	cs, err := frontend.Compile(id.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("snarkengine: compiling circuit: %w", err)
	}
	return cs, nil
}

// Setup runs the Groth16 trusted setup over a compiled constraint system.
func Setup(cs constraint.ConstraintSystem) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, nil, fmt.Errorf("snarkengine: running setup: %w", err)
	}
	return pk, vk, nil
}

// Prove builds a full witness for assignment and produces a Groth16 proof
// of it, returning the proof and the witness's public portion (the part a
// verifier needs).
func Prove(curve Curve, cs constraint.ConstraintSystem, pk groth16.ProvingKey, assignment frontend.Circuit) (groth16.Proof, witness.Witness, error) {
	id, err := curve.ID()
	if err != nil {
		return nil, nil, err
	}

	fullWitness, err := frontend.NewWitness(assignment, id.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("snarkengine: building witness: %w", err)
	}

	proof, err := groth16.Prove(cs, pk, fullWitness)
	if err != nil {
		return nil, nil, fmt.Errorf("snarkengine: proving: %w", err)
	}

	public, err := fullWitness.Public()
	if err != nil {
		return nil, nil, fmt.Errorf("snarkengine: extracting public witness: %w", err)
	}

	return proof, public, nil
}

// Verify checks proof against vk and the public witness.
func Verify(proof groth16.Proof, vk groth16.VerifyingKey, public witness.Witness) error {
	if err := groth16.Verify(proof, vk, public); err != nil {
		return fmt.Errorf("snarkengine: verification failed: %w", err)
	}
	return nil
}
