package veil

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/veilindex/fibsnark/kzgpc"
)

// WriteTo serializes the proof. Group elements use the compressed point
// encoding and slices are length-prefixed, matching the curve's canonical
// encoder throughout.
func (pf *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)

	hs := make([]bn254.G1Affine, len(pf.Openings))
	vals := make([]fr.Element, len(pf.Openings))
	for i := range pf.Openings {
		hs[i] = pf.Openings[i].H
		vals[i] = pf.Openings[i].ClaimedValue
	}

	toEncode := []interface{}{
		pf.Commitments,
		&pf.Quotient,
		hs,
		vals,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom deserializes a proof. Points are subgroup-checked on decode.
// Any decoding failure or shape inconsistency is reported as ErrMalformed.
//
// The proof shape is fixed by the constraint system, so every length prefix
// is checked against its expected value before anything is allocated;
// adversarial prefixes cannot drive allocations.
func (pf *Proof) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	readLen := func(want int) error {
		var buf [4]byte
		read, err := io.ReadFull(r, buf[:])
		total += int64(read)
		if err != nil {
			return err
		}
		if got := binary.BigEndian.Uint32(buf[:]); got != uint32(want) {
			return fmt.Errorf("length prefix %d, want %d", got, want)
		}
		return nil
	}

	dec := bn254.NewDecoder(r)
	fail := func(err error) (int64, error) {
		return total + dec.BytesRead(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := readLen(int(numColumns)); err != nil {
		return fail(err)
	}
	commitments := make([]kzgpc.Commitment, numColumns)
	for i := range commitments {
		if err := dec.Decode(&commitments[i]); err != nil {
			return fail(err)
		}
	}

	var quotient bn254.G1Affine
	if err := dec.Decode(&quotient); err != nil {
		return fail(err)
	}

	if err := readLen(numOpenings); err != nil {
		return fail(err)
	}
	hs := make([]bn254.G1Affine, numOpenings)
	for i := range hs {
		if err := dec.Decode(&hs[i]); err != nil {
			return fail(err)
		}
	}

	if err := readLen(numOpenings); err != nil {
		return fail(err)
	}
	vals := make([]fr.Element, numOpenings)
	for i := range vals {
		if err := dec.Decode(&vals[i]); err != nil {
			return fail(err)
		}
	}

	pf.Commitments = commitments
	pf.Quotient = quotient
	pf.Openings = make([]kzgpc.OpeningProof, numOpenings)
	for i := range hs {
		pf.Openings[i].H = hs[i]
		pf.Openings[i].ClaimedValue = vals[i]
	}
	return total + dec.BytesRead(), nil
}
