package veil

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"golang.org/x/sync/errgroup"

	"github.com/veilindex/fibsnark/kzgpc"
	"github.com/veilindex/fibsnark/logger"
)

// Challenge names fix the transcript schedule shared by prover and verifier:
// the batching challenge alpha binds the column commitments and the public
// inputs, the evaluation challenge zeta additionally binds the quotient.
const (
	challengeAlpha = "alpha"
	challengeZeta  = "zeta"
)

// columnBlinding[c] is the blinding order of column c: the number of openings
// the schedule makes on it. A blinder of that order carries one more random
// coefficient than the number of revealed evaluations, so the commitment and
// its openings leak nothing about the column.
var columnBlinding = func() [numColumns]int {
	var bo [numColumns]int
	for _, sched := range openingSchedule {
		bo[sched.Col]++
	}
	return bo
}()

// blindPoly hides a column polynomial by adding b(X) * (X^N - 1) for a random
// polynomial b of the given order. Evaluations over the trace domain are
// unchanged, so the gate identities still hold.
func blindPoly(coeffs []fr.Element, n, order int) ([]fr.Element, error) {
	res := make([]fr.Element, n+order+1)
	copy(res, coeffs)
	for i := 0; i <= order; i++ {
		var b fr.Element
		if _, err := b.SetRandom(); err != nil {
			return nil, err
		}
		res[n+i].Add(&res[n+i], &b)
		res[i].Sub(&res[i], &b)
	}
	return res, nil
}

// Prove produces an argument that the prover knows a secret index k and a
// recurrence trace with trace[0] = x, trace[1] = y and trace[k] = z.
// The returned proof reveals nothing about k beyond the statement.
//
// The witness is checked against every gate before anything is committed,
// so a bad witness fails with its error class (ErrIndexOutOfRange,
// ErrRecurrenceViolation, ErrSelectorInvalid, ErrPublicMismatch) and never
// produces a proof.
func Prove(pk *ProvingKey, x, y, z fr.Element, k int) (Proof, error) {
	asg, err := BuildAssignment(pk.cs.n, x, y, z, k)
	if err != nil {
		return Proof{}, err
	}

	pub := PublicInputs{X: x, Y: y, Z: z}
	if err := pk.cs.Check(asg, pub); err != nil {
		return Proof{}, err
	}

	return prove(pk, asg, pub)
}

// prove runs the cryptographic part of the protocol over a witness that
// already passed the self-check.
func prove(pk *ProvingKey, asg *Assignment, pub PublicInputs) (Proof, error) {
	start := time.Now()

	cols := asg.columns()
	var coeffs [numColumns][]fr.Element
	for c := range cols {
		blinded, err := blindPoly(evalsToCoeffs(pk.domain, cols[c]), pk.cs.n, columnBlinding[c])
		if err != nil {
			return Proof{}, fmt.Errorf("%w: blind column %v: %v", ErrCommitmentFailure, Column(c), err)
		}
		coeffs[c] = blinded
	}

	pf := Proof{
		Commitments: make([]kzgpc.Commitment, numColumns),
	}

	var eg errgroup.Group
	for c := Column(0); c < numColumns; c++ {
		c := c
		eg.Go(func() error {
			com, err := pk.pc.Commit(coeffs[c])
			if err != nil {
				return fmt.Errorf("column %v: %v", c, err)
			}
			pf.Commitments[c] = com
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Proof{}, fmt.Errorf("%w: %v", ErrCommitmentFailure, err)
	}

	oracle := kzgpc.NewRandomOracle(challengeAlpha, challengeZeta)
	for c := Column(0); c < numColumns; c++ {
		oracle.WriteCommitment(challengeAlpha, pf.Commitments[c])
	}
	oracle.WriteField(challengeAlpha, pub.X)
	oracle.WriteField(challengeAlpha, pub.Y)
	oracle.WriteField(challengeAlpha, pub.Z)
	alpha := oracle.SampleChallenge(challengeAlpha)

	qCoeffs := pk.computeQuotient(&coeffs, pub, alpha)
	qCom, err := pk.pc.Commit(qCoeffs)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: quotient: %v", ErrCommitmentFailure, err)
	}
	pf.Quotient = qCom

	oracle.WriteCommitment(challengeZeta, qCom)
	zeta := oracle.SampleChallenge(challengeZeta)

	pf.Openings = make([]kzgpc.OpeningProof, numOpenings)
	for i := range openingSchedule {
		i := i
		eg.Go(func() error {
			sched := openingSchedule[i]
			point := rotatedPoint(zeta, pk.domain.GeneratorInv, sched.Rot)
			op, err := pk.pc.Open(coeffs[sched.Col], point)
			if err != nil {
				return fmt.Errorf("column %v rotation %d: %v", sched.Col, sched.Rot, err)
			}
			pf.Openings[i] = op
			return nil
		})
	}
	eg.Go(func() error {
		op, err := pk.pc.Open(qCoeffs, zeta)
		if err != nil {
			return fmt.Errorf("quotient: %v", err)
		}
		pf.Openings[numOpenings-1] = op
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Proof{}, fmt.Errorf("%w: %v", ErrCommitmentFailure, err)
	}

	log := logger.Logger()
	log.Debug().
		Int("n", pk.cs.n).
		Dur("took", time.Since(start)).
		Msg("proof generated")

	return pf, nil
}

// computeQuotient batches every gate with powers of alpha and divides out
// the vanishing polynomial, pointwise on the 4N coset:
//
//	Q = (sum_g alpha^g * sel_g * expr_g) / (X^N - 1).
//
// The division is exact exactly when every gate identity holds over the
// trace domain, which the self-check already established. The returned
// coefficient vector has length 4N.
func (pk *ProvingKey) computeQuotient(coeffs *[numColumns][]fr.Element, pub PublicInputs, alpha fr.Element) []fr.Element {
	m := int(pk.domainBig.Cardinality)

	var coset [numColumns][]fr.Element
	for c := range coset {
		coset[c] = coeffsToCosetEvals(pk.domainBig, coeffs[c])
	}

	// One backward row rotation on H is four points on the coset:
	// omega = w^4 for the 4N domain generator w.
	q := make([]fr.Element, m)
	var v RowView
	v.Public = pub
	for j := 0; j < m; j++ {
		for c := Column(0); c < numColumns; c++ {
			v.Cur[c] = coset[c][j]
			v.Rot1[c] = coset[c][(j-4+m)%m]
			v.Rot2[c] = coset[c][(j-8+m)%m]
		}

		var f, term fr.Element
		for g := len(pk.cs.gates) - 1; g >= 0; g-- {
			gate := &pk.cs.gates[g]
			term = gate.Expr(&v)
			term.Mul(&term, &pk.selEvals[gate.Selector][j])
			f.Mul(&f, &alpha)
			f.Add(&f, &term)
		}

		q[j].Mul(&f, &pk.zhInvCoset[j&3])
	}

	pk.domainBig.FFTInverse(q, fft.DIF, fft.OnCoset())
	fft.BitReverse(q)
	return q
}
