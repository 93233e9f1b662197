// Package kzgpc implements a polynomial commitment adapter over the BN254 scalar field,
// backed by the KZG scheme from gnark-crypto.
//
// The adapter exposes exactly four operations: commit, open, verify-opening,
// and a random oracle for Fiat-Shamir challenges.
package kzgpc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	"github.com/veilindex/fibsnark/csprng"
)

// ParametersLiteral is a structure for KZG commitment parameters.
type ParametersLiteral struct {
	// MaxDegree is the maximum length of a committed coefficient vector.
	MaxDegree int

	// Seed seeds the SRS derivation.
	// Two literals with equal Seed and MaxDegree compile to identical parameters.
	//
	// The derived trapdoor is erased after compilation but is recomputable
	// from the seed, so a public seed yields a transparent test setup only.
	// Production deployments should substitute an SRS from a trusted ceremony
	// via [ParametersLiteral.CompileWithSRS].
	Seed []byte
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
func (p ParametersLiteral) Compile() Parameters {
	if p.MaxDegree <= 0 {
		panic("MaxDegree must be positive")
	}

	tau := csprng.NewUniformSamplerWithSeed(p.Seed).SampleMod(fr.Modulus())
	srs, err := kzg.NewSRS(uint64(p.MaxDegree+3), tau)
	if err != nil {
		panic(err)
	}

	return Parameters{
		maxDegree: p.MaxDegree,
		srs:       srs,
	}
}

// CompileWithSRS transforms ParametersLiteral to read-only Parameters
// using an externally supplied SRS, ignoring the Seed.
// Panics if the SRS is too small for MaxDegree.
func (p ParametersLiteral) CompileWithSRS(srs *kzg.SRS) Parameters {
	if p.MaxDegree <= 0 {
		panic("MaxDegree must be positive")
	}
	if len(srs.Pk.G1) < p.MaxDegree {
		panic("SRS is too small for MaxDegree")
	}

	return Parameters{
		maxDegree: p.MaxDegree,
		srs:       srs,
	}
}

// Parameters is a read-only structure for KZG commitment parameters.
type Parameters struct {
	maxDegree int
	srs       *kzg.SRS
}

// MaxDegree returns the maximum length of a committed coefficient vector.
func (p Parameters) MaxDegree() int {
	return p.maxDegree
}

// CommitKey returns the proving part of the SRS.
func (p Parameters) CommitKey() kzg.ProvingKey {
	return p.srs.Pk
}

// VerifyKey returns the verifying part of the SRS.
func (p Parameters) VerifyKey() kzg.VerifyingKey {
	return p.srs.Vk
}
