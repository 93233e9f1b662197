package veil

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

// The hidden index must not be recoverable from the proof. Without blinding
// the selector commitment is a pure function of k, so an attacker can commit
// the candidate one-hot column for every k' < N and match.

func TestSelectorCommitmentHidesIndex(t *testing.T) {
	const n = 8

	pk, _, err := Setup(n)
	assert.NoError(t, err)

	var x, y, z fr.Element
	x.SetUint64(1)
	y.SetUint64(1)
	z.SetUint64(8)

	pf, err := Prove(pk, x, y, z, 5)
	assert.NoError(t, err)

	for guess := 0; guess < n; guess++ {
		sel := make([]fr.Element, n)
		sel[guess].SetOne()
		com, err := pk.pc.Commit(evalsToCoeffs(pk.domain, sel))
		assert.NoError(t, err)
		assert.False(t, com.Equal(&pf.Commitments[ColSelector]),
			"selector commitment matches unblinded candidate for index %d", guess)
	}
}

func TestProofsAreRandomized(t *testing.T) {
	const n = 8

	pk, vk, err := Setup(n)
	assert.NoError(t, err)

	var x, y, z fr.Element
	x.SetUint64(1)
	y.SetUint64(1)
	z.SetUint64(8)

	pf0, err := Prove(pk, x, y, z, 5)
	assert.NoError(t, err)
	pf1, err := Prove(pk, x, y, z, 5)
	assert.NoError(t, err)

	// Same witness, same statement: fresh blinders must make every
	// commitment differ between the two runs.
	for c := range pf0.Commitments {
		assert.False(t, pf0.Commitments[c].Equal(&pf1.Commitments[c]),
			"commitment to %v repeats across proofs", Column(c))
	}
	assert.False(t, pf0.Quotient.Equal(&pf1.Quotient))

	assert.NoError(t, Verify(vk, x, y, z, pf0))
	assert.NoError(t, Verify(vk, x, y, z, pf1))
}
