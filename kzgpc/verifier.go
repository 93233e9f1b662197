package kzgpc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// Verifier verifies opening proofs against commitments.
//
// Verifier is safe for concurrent use:
// all methods are read-only with respect to the parameters.
type Verifier struct {
	Parameters Parameters
}

// NewVerifier creates a new Verifier.
func NewVerifier(params Parameters) *Verifier {
	return &Verifier{
		Parameters: params,
	}
}

// VerifyOpening checks that com opens to evalPf.ClaimedValue at x.
// Returns nil on success.
func (v *Verifier) VerifyOpening(com Commitment, evalPf OpeningProof, x fr.Element) error {
	return kzg.Verify(&com, &evalPf, x, v.Parameters.srs.Vk)
}
