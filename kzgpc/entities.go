package kzgpc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// Commitment is a polynomial commitment: a single short group element.
// Its encoding is fixed-width, independent of the committed polynomial.
type Commitment = kzg.Digest

// OpeningProof is a proof that a committed polynomial evaluates to
// ClaimedValue at a given point.
type OpeningProof = kzg.OpeningProof
