package kzgpc

import (
	"crypto/sha256"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
)

// RandomOracle is a random oracle deriving verifier challenges
// from the absorbed transcript (Fiat-Shamir).
//
// Challenges are registered up front and must be squeezed in order;
// each absorbed value is bound to the next unsqueezed challenge.
// A RandomOracle is ephemeral: it lives for one Prove or Verify call.
type RandomOracle struct {
	fs *fiatshamir.Transcript
}

// NewRandomOracle creates a new RandomOracle with the given challenge schedule.
func NewRandomOracle(challengeIDs ...string) *RandomOracle {
	return &RandomOracle{
		fs: fiatshamir.NewTranscript(sha256.New(), challengeIDs...),
	}
}

// WriteCommitment absorbs a commitment, binding it to the given challenge.
func (o *RandomOracle) WriteCommitment(challengeID string, com Commitment) {
	if err := o.fs.Bind(challengeID, com.Marshal()); err != nil {
		panic(err)
	}
}

// WriteField absorbs a field element, binding it to the given challenge.
func (o *RandomOracle) WriteField(challengeID string, x fr.Element) {
	if err := o.fs.Bind(challengeID, x.Marshal()); err != nil {
		panic(err)
	}
}

// SampleChallenge squeezes the named challenge as a field element.
// Each challenge embeds every value bound to it and all previous challenges,
// so prover and verifier derive identical values exactly when their
// transcripts agree.
func (o *RandomOracle) SampleChallenge(challengeID string) fr.Element {
	b, err := o.fs.ComputeChallenge(challengeID)
	if err != nil {
		panic(err)
	}

	var c fr.Element
	c.SetBytes(b)
	return c
}
