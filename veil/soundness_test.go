package veil

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

// These tests bypass the prover's self-check and run the cryptographic
// protocol on deliberately inconsistent witnesses: every cheat must be
// caught by the verifier's gate identity at the challenge point.

func TestVerifyRejectsCheatingWitness(t *testing.T) {
	const n = 8

	pk, vk, err := Setup(n)
	assert.NoError(t, err)

	var x, y, z, one fr.Element
	x.SetUint64(1)
	y.SetUint64(1)
	z.SetUint64(8)
	one.SetUint64(1)

	const k = 5

	cheats := []struct {
		name     string
		checkErr error
		tamper   func(asg *Assignment)
	}{
		{"broken recurrence", ErrRecurrenceViolation, func(asg *Assignment) {
			asg.Trace[3].Add(&asg.Trace[3], &one)
		}},
		{"non-boolean selector", ErrSelectorInvalid, func(asg *Assignment) {
			asg.Selector[k].Add(&asg.Selector[k], &one)
		}},
		{"two-hot selector", ErrSelectorInvalid, func(asg *Assignment) {
			asg.Selector[2].SetOne()
		}},
		{"inconsistent weighted column", ErrSelectorInvalid, func(asg *Assignment) {
			asg.Weighted[2].Add(&asg.Weighted[2], &one)
		}},
		{"broken selector sum", ErrSelectorInvalid, func(asg *Assignment) {
			asg.Acc[2].Add(&asg.Acc[2], &one)
		}},
		{"broken weighted sum", ErrSelectorInvalid, func(asg *Assignment) {
			asg.WAcc[2].Add(&asg.WAcc[2], &one)
		}},
		// Tampering a seed row also breaks the recurrence at row 2, which is
		// the first gate the self-check reaches.
		{"first row not x", ErrRecurrenceViolation, func(asg *Assignment) {
			asg.Trace[0].Add(&asg.Trace[0], &one)
		}},
		{"second row not y", ErrRecurrenceViolation, func(asg *Assignment) {
			asg.Trace[1].Add(&asg.Trace[1], &one)
		}},
	}

	pub := PublicInputs{X: x, Y: y, Z: z}
	for _, cheat := range cheats {
		t.Run(cheat.name, func(t *testing.T) {
			asg, err := BuildAssignment(n, x, y, z, k)
			assert.NoError(t, err)

			cheat.tamper(asg)
			assert.ErrorIs(t, pk.cs.Check(asg, pub), cheat.checkErr, "self-check must also catch it")

			pf, err := prove(pk, asg, pub)
			assert.NoError(t, err)
			assert.ErrorIs(t, Verify(vk, x, y, z, pf), ErrConstraintUnsatisfied)
		})
	}
}

func TestCheckReportsPublicMismatch(t *testing.T) {
	const n = 8

	pk, _, err := Setup(n)
	assert.NoError(t, err)

	// An internally consistent witness: x = 2, y = 1 gives the trace
	// 2, 1, 3, 4, 7, 11, 18, 29, with trace[5] = 11. Only the public
	// bindings can fail against a different statement.
	var x, y, z, wrong fr.Element
	x.SetUint64(2)
	y.SetUint64(1)
	z.SetUint64(11)
	wrong.SetUint64(5)

	asg, err := BuildAssignment(n, x, y, z, 5)
	assert.NoError(t, err)

	assert.NoError(t, pk.cs.Check(asg, PublicInputs{X: x, Y: y, Z: z}))
	assert.ErrorIs(t, pk.cs.Check(asg, PublicInputs{X: wrong, Y: y, Z: z}), ErrPublicMismatch)
	assert.ErrorIs(t, pk.cs.Check(asg, PublicInputs{X: x, Y: wrong, Z: z}), ErrPublicMismatch)
	assert.ErrorIs(t, pk.cs.Check(asg, PublicInputs{X: x, Y: y, Z: wrong}), ErrPublicMismatch)
}

func TestVerifyRejectsDishonestTarget(t *testing.T) {
	const n = 8

	pk, vk, err := Setup(n)
	assert.NoError(t, err)

	var x, y, z, zLie fr.Element
	x.SetUint64(1)
	y.SetUint64(1)
	z.SetUint64(8)
	zLie.SetUint64(9)

	// The witness honestly opens trace[5] = 8, but the prover claims z = 9
	// throughout the protocol.
	asg, err := BuildAssignment(n, x, y, z, 5)
	assert.NoError(t, err)

	pub := PublicInputs{X: x, Y: y, Z: zLie}
	pf, err := prove(pk, asg, pub)
	assert.NoError(t, err)

	assert.ErrorIs(t, Verify(vk, x, y, zLie, pf), ErrConstraintUnsatisfied)
}
