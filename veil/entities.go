package veil

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/veilindex/fibsnark/kzgpc"
)

// ProvingKey carries everything a prover needs for one domain size.
// It is immutable after Setup and may be shared by unboundedly many
// concurrent Prove calls.
type ProvingKey struct {
	cs *ConstraintSystem

	// domain interpolates the columns; domainBig is the 4N coset domain on
	// which the quotient is computed pointwise. 4N leaves room for the
	// degree added by the column blinders.
	domain    *fft.Domain
	domainBig *fft.Domain

	// selEvals[k] holds the coset evaluations of selector kind k.
	selEvals [numSelectorKinds][]fr.Element
	// zhInvCoset holds the inverses of the vanishing polynomial on the
	// coset; Z_H cycles through four values with the point index mod 4.
	zhInvCoset [4]fr.Element

	pc *kzgpc.Prover
}

// N returns the domain size the key was set up for.
func (pk *ProvingKey) N() int {
	return pk.cs.n
}

// VerifyingKey carries everything a verifier needs for one domain size.
// It is immutable after Setup and may be shared by unboundedly many
// concurrent Verify calls.
type VerifyingKey struct {
	cs *ConstraintSystem

	domain *fft.Domain

	pc *kzgpc.Verifier
}

// N returns the domain size the key was set up for.
func (vk *VerifyingKey) N() int {
	return vk.cs.n
}

// Proof is a self-contained argument for one statement (x, y, z).
// Its shape is fixed by the constraint system alone, never by the witness.
type Proof struct {
	// Commitments holds one commitment per advice column, in column
	// declaration order.
	Commitments []kzgpc.Commitment
	// Quotient commits to the batched-gate quotient polynomial.
	Quotient kzgpc.Commitment
	// Openings holds one opening proof per scheduled (column, rotation)
	// pair, followed by the quotient opening. Each carries its claimed
	// evaluation at the (rotated) challenge point.
	Openings []kzgpc.OpeningProof
}
