package veil

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/veilindex/fibsnark/kzgpc"
	"github.com/veilindex/fibsnark/num"
)

// maxDomainSize bounds the trace length: quotient computation needs a
// domain of size 4N within the two-adicity of the scalar field.
const maxDomainSize = 1 << 26

// srsSeed is the public seed of the deterministic SRS derivation,
// making Setup reproducible given N. See [kzgpc.ParametersLiteral].
var srsSeed = []byte("fibsnark: kzgpc srs v1")

// Setup derives the proving and verifying keys for trace length n.
// n is fixed for the lifetime of the keys; it must be a power of two,
// at least 2 and at most 2^26, or Setup fails with ErrInvalidDomainSize.
//
// Setup is deterministic given n and produces no secret state. Both keys
// are immutable and safe for concurrent use.
func Setup(n int) (*ProvingKey, *VerifyingKey, error) {
	if n < 2 || n > maxDomainSize || !num.IsPowerOfTwo(n) {
		return nil, nil, fmt.Errorf("domain size %d: %w", n, ErrInvalidDomainSize)
	}

	cs := NewConstraintSystem(n)
	domain := fft.NewDomain(uint64(n))
	domainBig := fft.NewDomain(uint64(4 * n))

	params := kzgpc.ParametersLiteral{
		MaxDegree: 4 * n,
		Seed:      srsSeed,
	}.Compile()

	pk := &ProvingKey{
		cs: cs,

		domain:    domain,
		domainBig: domainBig,

		pc: kzgpc.NewProver(params),
	}

	for kind := SelectorKind(0); kind < numSelectorKinds; kind++ {
		sel := make([]fr.Element, n)
		rows := selectorRows(kind, n)
		for i, ok := rows.NextSet(0); ok; i, ok = rows.NextSet(i + 1) {
			sel[i].SetOne()
		}
		pk.selEvals[kind] = coeffsToCosetEvals(domainBig, evalsToCoeffs(domain, sel))
	}

	// Z_H(g w^j) = g^N w^(Nj) - 1 = g^N i^j - 1, where g is the coset shift,
	// w generates the 4N domain and i = w^N is a primitive fourth root of
	// unity. Z_H therefore cycles through four values with j mod 4.
	one := fr.One()
	var gN, rot4 fr.Element
	bigN := big.NewInt(int64(n))
	gN.Exp(domainBig.FrMultiplicativeGen, bigN)
	rot4.Exp(domainBig.Generator, bigN)

	zh := gN
	for j := 0; j < 4; j++ {
		pk.zhInvCoset[j].Sub(&zh, &one)
		zh.Mul(&zh, &rot4)
	}
	zhInv := fr.BatchInvert(pk.zhInvCoset[:])
	copy(pk.zhInvCoset[:], zhInv)

	vk := &VerifyingKey{
		cs: cs,

		domain: domain,

		pc: kzgpc.NewVerifier(params),
	}

	return pk, vk, nil
}
