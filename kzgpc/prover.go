package kzgpc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// Prover commits to polynomials and proves their evaluations.
//
// Prover is safe for concurrent use:
// all methods are read-only with respect to the parameters.
type Prover struct {
	Parameters Parameters
}

// NewProver creates a new Prover.
func NewProver(params Parameters) *Prover {
	return &Prover{
		Parameters: params,
	}
}

// Commit commits to a polynomial given by its coefficients, in ascending degree order.
func (p *Prover) Commit(coeffs []fr.Element) (Commitment, error) {
	return kzg.Commit(coeffs, p.Parameters.srs.Pk)
}

// Open evaluates a committed polynomial at x and proves the evaluation.
// The returned proof contains the claimed value.
func (p *Prover) Open(coeffs []fr.Element, x fr.Element) (OpeningProof, error) {
	return kzg.Open(coeffs, x, p.Parameters.srs.Pk)
}
