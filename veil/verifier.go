package veil

import (
	"fmt"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/veilindex/fibsnark/kzgpc"
	"github.com/veilindex/fibsnark/logger"
)

// Verify checks a proof against the public inputs (x, y, z).
// It returns nil exactly when the proof convinces the verifier that the
// prover knows a valid trace and hidden index for the statement.
//
// A structurally broken proof fails with ErrMalformed, a proof whose batched
// gate identity does not hold at the challenge point fails with
// ErrConstraintUnsatisfied, and a proof whose evaluations are not those of
// the committed polynomials fails with ErrOpeningInvalid.
func Verify(vk *VerifyingKey, x, y, z fr.Element, pf Proof) error {
	start := time.Now()

	if len(pf.Commitments) != int(numColumns) || len(pf.Openings) != numOpenings {
		return fmt.Errorf("unexpected proof shape: %w", ErrMalformed)
	}

	pub := PublicInputs{X: x, Y: y, Z: z}

	// Replay the prover's transcript to rederive the challenges.
	oracle := kzgpc.NewRandomOracle(challengeAlpha, challengeZeta)
	for c := Column(0); c < numColumns; c++ {
		oracle.WriteCommitment(challengeAlpha, pf.Commitments[c])
	}
	oracle.WriteField(challengeAlpha, pub.X)
	oracle.WriteField(challengeAlpha, pub.Y)
	oracle.WriteField(challengeAlpha, pub.Z)
	alpha := oracle.SampleChallenge(challengeAlpha)

	oracle.WriteCommitment(challengeZeta, pf.Quotient)
	zeta := oracle.SampleChallenge(challengeZeta)

	n := vk.cs.n
	one := fr.One()
	var zetaN, zh fr.Element
	zetaN.Exp(zeta, big.NewInt(int64(n)))
	zh.Sub(&zetaN, &one)

	sel := vk.selectorEvalsAt(zeta, zh)

	// The claimed evaluations stand in for the rows a gate sees: the value
	// opened at zeta * omega^(-r) is the rotation-r entry of the view.
	var v RowView
	v.Public = pub
	for i, sched := range openingSchedule {
		val := pf.Openings[i].ClaimedValue
		switch sched.Rot {
		case 0:
			v.Cur[sched.Col] = val
		case 1:
			v.Rot1[sched.Col] = val
		case 2:
			v.Rot2[sched.Col] = val
		default:
			panic("rotation outside the opening schedule")
		}
	}

	var f, term fr.Element
	for g := len(vk.cs.gates) - 1; g >= 0; g-- {
		gate := &vk.cs.gates[g]
		term = gate.Expr(&v)
		term.Mul(&term, &sel[gate.Selector])
		f.Mul(&f, &alpha)
		f.Add(&f, &term)
	}

	var rhs fr.Element
	rhs.Mul(&pf.Openings[numOpenings-1].ClaimedValue, &zh)
	if !f.Equal(&rhs) {
		return ErrConstraintUnsatisfied
	}

	for i, sched := range openingSchedule {
		point := rotatedPoint(zeta, vk.domain.GeneratorInv, sched.Rot)
		if err := vk.pc.VerifyOpening(pf.Commitments[sched.Col], pf.Openings[i], point); err != nil {
			return fmt.Errorf("column %v rotation %d: %w", sched.Col, sched.Rot, ErrOpeningInvalid)
		}
	}
	if err := vk.pc.VerifyOpening(pf.Quotient, pf.Openings[numOpenings-1], zeta); err != nil {
		return fmt.Errorf("quotient: %w", ErrOpeningInvalid)
	}

	log := logger.Logger()
	log.Debug().
		Int("n", n).
		Dur("took", time.Since(start)).
		Msg("proof verified")

	return nil
}

// selectorEvalsAt evaluates every selector polynomial at the challenge
// point, in closed form: L_i(zeta) = omega^i * Z_H(zeta) / (N * (zeta - omega^i)).
// Only three Lagrange basis values are ever needed, so a single batch
// inversion covers them all.
func (vk *VerifyingKey) selectorEvalsAt(zeta, zh fr.Element) [numSelectorKinds]fr.Element {
	one := fr.One()
	omega := vk.domain.Generator
	omegaLast := vk.domain.GeneratorInv // omega^(N-1)

	dens := make([]fr.Element, 3)
	dens[0].Sub(&zeta, &one)
	dens[1].Sub(&zeta, &omega)
	dens[2].Sub(&zeta, &omegaLast)
	dens = fr.BatchInvert(dens)

	var factor fr.Element
	factor.Mul(&zh, &vk.domain.CardinalityInv)

	var l0, l1, lLast fr.Element
	l0.Mul(&factor, &dens[0])
	l1.Mul(&factor, &omega).Mul(&l1, &dens[1])
	lLast.Mul(&factor, &omegaLast).Mul(&lLast, &dens[2])

	var sel [numSelectorKinds]fr.Element
	sel[SelectorAll] = one
	sel[SelectorFirst] = l0
	sel[SelectorSecond] = l1
	sel[SelectorLast] = lLast
	sel[SelectorNotFirst].Sub(&one, &l0)
	sel[SelectorInterior].Sub(&sel[SelectorNotFirst], &l1)
	return sel
}
