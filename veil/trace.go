package veil

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Assignment holds every witness column for one proof, in evaluation form
// over the trace domain. Each column is a flat fixed-length vector indexed
// by row. An Assignment is owned exclusively by one in-flight Prove call and
// is never persisted.
type Assignment struct {
	// Trace is the recurrence sequence: Trace[0] = x, Trace[1] = y,
	// Trace[i] = Trace[i-1] + Trace[i-2].
	Trace []fr.Element
	// Selector is the one-hot mask: 1 at the hidden index, 0 elsewhere.
	Selector []fr.Element
	// Weighted is the masked trace: Weighted[i] = Selector[i] * Trace[i].
	Weighted []fr.Element
	// Acc is the running sum of Selector; Acc[N-1] = 1 forces one-hotness.
	Acc []fr.Element
	// WAcc is the running sum of Weighted; WAcc[N-1] = Trace[k].
	WAcc []fr.Element
}

// BuildAssignment computes the full witness from the secret index k and the
// public inputs: the recurrence trace, the one-hot selector, the masked
// trace, and both running sums.
//
// Fails with ErrIndexOutOfRange when k lies outside [0, n). Fails with
// ErrPublicMismatch when the trace value at k differs from z: an honest
// prover never submits a witness it knows to violate the public claim.
func BuildAssignment(n int, x, y, z fr.Element, k int) (*Assignment, error) {
	if k < 0 || k >= n {
		return nil, fmt.Errorf("index %d with domain size %d: %w", k, n, ErrIndexOutOfRange)
	}

	asg := &Assignment{
		Trace:    make([]fr.Element, n),
		Selector: make([]fr.Element, n),
		Weighted: make([]fr.Element, n),
		Acc:      make([]fr.Element, n),
		WAcc:     make([]fr.Element, n),
	}

	asg.Trace[0] = x
	asg.Trace[1] = y
	for i := 2; i < n; i++ {
		asg.Trace[i].Add(&asg.Trace[i-1], &asg.Trace[i-2])
	}

	asg.Selector[k].SetOne()

	for i := 0; i < n; i++ {
		asg.Weighted[i].Mul(&asg.Selector[i], &asg.Trace[i])
		if i == 0 {
			asg.Acc[0] = asg.Selector[0]
			asg.WAcc[0] = asg.Weighted[0]
			continue
		}
		asg.Acc[i].Add(&asg.Acc[i-1], &asg.Selector[i])
		asg.WAcc[i].Add(&asg.WAcc[i-1], &asg.Weighted[i])
	}

	if !asg.WAcc[n-1].Equal(&z) {
		return nil, fmt.Errorf("trace value at the hidden index differs from the public target: %w", ErrPublicMismatch)
	}

	return asg, nil
}

// columns returns the columns in declaration order.
func (a *Assignment) columns() [numColumns][]fr.Element {
	return [numColumns][]fr.Element{a.Trace, a.Selector, a.Weighted, a.Acc, a.WAcc}
}
