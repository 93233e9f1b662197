package veil

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// evalsToCoeffs interpolates a length-N evaluation vector over the trace
// domain into coefficient form. The input is not modified.
func evalsToCoeffs(domain *fft.Domain, evals []fr.Element) []fr.Element {
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	domain.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return coeffs
}

// coeffsToCosetEvals evaluates a coefficient vector on the coset domain used
// for quotient computation, in natural point order.
func coeffsToCosetEvals(domainBig *fft.Domain, coeffs []fr.Element) []fr.Element {
	evals := make([]fr.Element, domainBig.Cardinality)
	copy(evals, coeffs)
	domainBig.FFT(evals, fft.DIF, fft.OnCoset())
	fft.BitReverse(evals)
	return evals
}

// rotatedPoint returns x shifted back by rot rows: x * ω^(-rot).
func rotatedPoint(x fr.Element, genInv fr.Element, rot int) fr.Element {
	for r := 0; r < rot; r++ {
		x.Mul(&x, &genInv)
	}
	return x
}
