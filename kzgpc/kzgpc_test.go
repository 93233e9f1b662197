package kzgpc_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/stretchr/testify/assert"

	"github.com/veilindex/fibsnark/kzgpc"
)

var params = kzgpc.ParametersLiteral{
	MaxDegree: 64,
	Seed:      []byte("kzgpc test srs"),
}.Compile()

func randomPoly(t *testing.T, n int) []fr.Element {
	coeffs := make([]fr.Element, n)
	for i := range coeffs {
		_, err := coeffs[i].SetRandom()
		assert.NoError(t, err)
	}
	return coeffs
}

func evalPoly(coeffs []fr.Element, x fr.Element) fr.Element {
	var res fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &coeffs[i])
	}
	return res
}

func TestCommitOpenVerify(t *testing.T) {
	prover := kzgpc.NewProver(params)
	verifier := kzgpc.NewVerifier(params)

	coeffs := randomPoly(t, params.MaxDegree())
	com, err := prover.Commit(coeffs)
	assert.NoError(t, err)

	var x fr.Element
	_, err = x.SetRandom()
	assert.NoError(t, err)

	pf, err := prover.Open(coeffs, x)
	assert.NoError(t, err)

	want := evalPoly(coeffs, x)
	assert.True(t, pf.ClaimedValue.Equal(&want))
	assert.NoError(t, verifier.VerifyOpening(com, pf, x))
}

func TestVerifyOpeningRejectsTampered(t *testing.T) {
	prover := kzgpc.NewProver(params)
	verifier := kzgpc.NewVerifier(params)

	coeffs := randomPoly(t, params.MaxDegree())
	com, err := prover.Commit(coeffs)
	assert.NoError(t, err)

	var x fr.Element
	_, err = x.SetRandom()
	assert.NoError(t, err)

	pf, err := prover.Open(coeffs, x)
	assert.NoError(t, err)

	one := fr.One()
	pf.ClaimedValue.Add(&pf.ClaimedValue, &one)
	assert.Error(t, verifier.VerifyOpening(com, pf, x))

	// A proof for one polynomial must not verify against another commitment.
	other, err := prover.Commit(randomPoly(t, params.MaxDegree()))
	assert.NoError(t, err)
	pf, err = prover.Open(coeffs, x)
	assert.NoError(t, err)
	assert.Error(t, verifier.VerifyOpening(other, pf, x))
}

func TestCompileDeterministic(t *testing.T) {
	again := kzgpc.ParametersLiteral{
		MaxDegree: 64,
		Seed:      []byte("kzgpc test srs"),
	}.Compile()

	assert.Equal(t, params.VerifyKey().G2, again.VerifyKey().G2)
	assert.Equal(t, params.CommitKey().G1, again.CommitKey().G1)

	other := kzgpc.ParametersLiteral{
		MaxDegree: 64,
		Seed:      []byte("a different seed"),
	}.Compile()
	assert.NotEqual(t, params.CommitKey().G1, other.CommitKey().G1)
}

func TestCompileWithSRS(t *testing.T) {
	srs, err := kzg.NewSRS(64+3, big.NewInt(42))
	assert.NoError(t, err)

	external := kzgpc.ParametersLiteral{MaxDegree: 64}.CompileWithSRS(srs)
	prover := kzgpc.NewProver(external)
	verifier := kzgpc.NewVerifier(external)

	coeffs := randomPoly(t, external.MaxDegree())
	com, err := prover.Commit(coeffs)
	assert.NoError(t, err)

	var x fr.Element
	_, err = x.SetRandom()
	assert.NoError(t, err)

	pf, err := prover.Open(coeffs, x)
	assert.NoError(t, err)
	assert.NoError(t, verifier.VerifyOpening(com, pf, x))

	assert.Panics(t, func() {
		kzgpc.ParametersLiteral{MaxDegree: 1 << 10}.CompileWithSRS(srs)
	})
}

func TestRandomOracle(t *testing.T) {
	prover := kzgpc.NewProver(params)

	comA, err := prover.Commit(randomPoly(t, 8))
	assert.NoError(t, err)
	comB, err := prover.Commit(randomPoly(t, 8))
	assert.NoError(t, err)

	sample := func(coms ...kzgpc.Commitment) fr.Element {
		oracle := kzgpc.NewRandomOracle("alpha")
		for _, com := range coms {
			oracle.WriteCommitment("alpha", com)
		}
		return oracle.SampleChallenge("alpha")
	}

	// Equal transcripts agree; reordering or dropping a write diverges.
	c0 := sample(comA, comB)
	c1 := sample(comA, comB)
	assert.True(t, c0.Equal(&c1))

	c2 := sample(comB, comA)
	assert.False(t, c0.Equal(&c2))

	c3 := sample(comA)
	assert.False(t, c0.Equal(&c3))
}
