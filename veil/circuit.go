// Package veil implements a commitment-based argument that a hidden position
// of a two-term recurrence trace holds a public value.
//
// The prover convinces the verifier that it knows a secret index k and a
// trace with trace[0] = x, trace[1] = y and trace[k] = z, revealing nothing
// but (x, y, z). The circuit never indexes by k: a one-hot selector column is
// reduced through row-local running sums, so that the final accumulator cell
// equals the trace value at the hidden position.
package veil

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Column identifies one committed advice column of the trace table.
type Column int

const (
	// ColTrace holds the recurrence sequence.
	ColTrace Column = iota
	// ColSelector holds the one-hot mask of the hidden index.
	ColSelector
	// ColWeighted holds the selector-masked trace.
	ColWeighted
	// ColAcc holds the running sum of the selector.
	ColAcc
	// ColWAcc holds the running sum of the masked trace.
	ColWAcc

	numColumns
)

var columnNames = [numColumns]string{"trace", "selector", "weighted", "acc", "wacc"}

func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnNames[c]
}

// SelectorKind identifies the fixed selector polynomial gating a gate.
// Selectors take only the values 0 and 1 on the domain, so each one doubles
// as the set of rows where its gate is active.
type SelectorKind int

const (
	// SelectorAll is the constant 1: the gate holds on every row.
	SelectorAll SelectorKind = iota
	// SelectorFirst is L_0: the gate holds on row 0.
	SelectorFirst
	// SelectorSecond is L_1: the gate holds on row 1.
	SelectorSecond
	// SelectorLast is L_{N-1}: the gate holds on the last row.
	SelectorLast
	// SelectorNotFirst is 1 - L_0: the gate holds on rows 1 <= i < N.
	SelectorNotFirst
	// SelectorInterior is 1 - L_0 - L_1: the gate holds on rows 2 <= i < N.
	SelectorInterior

	numSelectorKinds
)

// PublicInputs is the public instance (x, y, z), known to both parties.
type PublicInputs struct {
	X, Y, Z fr.Element
}

// RowView exposes the column evaluations a gate expression may reference:
// the current row and up to two rows back (row-relative rotations only, no
// arbitrary indexing). The same view is filled from actual rows during the
// prover's self-check, from coset points during quotient computation, and
// from claimed evaluations at the challenge point during verification.
//
// At verification time only the (column, rotation) pairs of the opening
// schedule are populated; gate expressions must not reference other entries.
type RowView struct {
	Cur  [numColumns]fr.Element
	Rot1 [numColumns]fr.Element
	Rot2 [numColumns]fr.Element

	Public PublicInputs
}

// Gate is one row-local polynomial identity: selector * expression must
// vanish on the whole domain.
type Gate struct {
	// Name names the gate in self-check failures.
	Name string
	// Selector gates the expression.
	Selector SelectorKind
	// Active marks the rows where the selector is 1; the raw expression must
	// vanish exactly there.
	Active *bitset.BitSet
	// Err is the witness error class reported when the self-check finds the
	// expression nonzero on an active row.
	Err error
	// Expr evaluates the gate expression, selector excluded.
	Expr func(v *RowView) fr.Element
}

// openingSchedule lists every (column, backward rotation) pair the gate
// expressions reference. The prover opens each pair at the rotated challenge
// point and the verifier checks the very same points; the quotient opening
// is appended after the schedule. The schedule is independent of the witness,
// so proof shape cannot leak the hidden index.
var openingSchedule = []struct {
	Col Column
	Rot int
}{
	{ColTrace, 0}, {ColTrace, 1}, {ColTrace, 2},
	{ColSelector, 0},
	{ColWeighted, 0},
	{ColAcc, 0}, {ColAcc, 1},
	{ColWAcc, 0}, {ColWAcc, 1},
}

// numOpenings counts the scheduled openings plus the quotient opening.
var numOpenings = len(openingSchedule) + 1

// ConstraintSystem is the immutable description of the circuit for one
// domain size: columns, gate polynomials and their active rows. It is built
// once by Setup and shared read-only across all Prove and Verify calls.
type ConstraintSystem struct {
	n     int
	gates []Gate
}

// NewConstraintSystem builds the constraint system over a domain of n rows.
// n must be at least 2.
func NewConstraintSystem(n int) *ConstraintSystem {
	if n < 2 {
		panic("domain must have at least two rows")
	}

	one := fr.One()

	gates := []Gate{
		{
			Name:     "recurrence",
			Selector: SelectorInterior,
			Err:      ErrRecurrenceViolation,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColTrace], &v.Rot1[ColTrace])
				res.Sub(&res, &v.Rot2[ColTrace])
				return res
			},
		},
		{
			Name:     "booleanity",
			Selector: SelectorAll,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Square(&v.Cur[ColSelector])
				res.Sub(&res, &v.Cur[ColSelector])
				return res
			},
		},
		{
			Name:     "weighted",
			Selector: SelectorAll,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Mul(&v.Cur[ColSelector], &v.Cur[ColTrace])
				res.Sub(&v.Cur[ColWeighted], &res)
				return res
			},
		},
		{
			Name:     "acc-init",
			Selector: SelectorFirst,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColAcc], &v.Cur[ColSelector])
				return res
			},
		},
		{
			Name:     "acc-step",
			Selector: SelectorNotFirst,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColAcc], &v.Rot1[ColAcc])
				res.Sub(&res, &v.Cur[ColSelector])
				return res
			},
		},
		{
			Name:     "acc-final",
			Selector: SelectorLast,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColAcc], &one)
				return res
			},
		},
		{
			Name:     "wacc-init",
			Selector: SelectorFirst,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColWAcc], &v.Cur[ColWeighted])
				return res
			},
		},
		{
			Name:     "wacc-step",
			Selector: SelectorNotFirst,
			Err:      ErrSelectorInvalid,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColWAcc], &v.Rot1[ColWAcc])
				res.Sub(&res, &v.Cur[ColWeighted])
				return res
			},
		},
		{
			Name:     "bind-x",
			Selector: SelectorFirst,
			Err:      ErrPublicMismatch,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColTrace], &v.Public.X)
				return res
			},
		},
		{
			Name:     "bind-y",
			Selector: SelectorSecond,
			Err:      ErrPublicMismatch,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColTrace], &v.Public.Y)
				return res
			},
		},
		{
			Name:     "bind-z",
			Selector: SelectorLast,
			Err:      ErrPublicMismatch,
			Expr: func(v *RowView) fr.Element {
				var res fr.Element
				res.Sub(&v.Cur[ColWAcc], &v.Public.Z)
				return res
			},
		},
	}

	for i := range gates {
		gates[i].Active = selectorRows(gates[i].Selector, n)
	}

	return &ConstraintSystem{
		n:     n,
		gates: gates,
	}
}

// N returns the domain size.
func (cs *ConstraintSystem) N() int {
	return cs.n
}

// selectorRows returns the set of rows where the selector polynomial is 1.
func selectorRows(kind SelectorKind, n int) *bitset.BitSet {
	rows := bitset.New(uint(n))
	switch kind {
	case SelectorAll:
		for i := 0; i < n; i++ {
			rows.Set(uint(i))
		}
	case SelectorFirst:
		rows.Set(0)
	case SelectorSecond:
		rows.Set(1)
	case SelectorLast:
		rows.Set(uint(n - 1))
	case SelectorNotFirst:
		for i := 1; i < n; i++ {
			rows.Set(uint(i))
		}
	case SelectorInterior:
		for i := 2; i < n; i++ {
			rows.Set(uint(i))
		}
	default:
		panic("unknown selector kind")
	}
	return rows
}

// Check verifies every gate identity directly over an assignment, row by row.
// This is the prover's non-cryptographic self-check: it touches no
// commitments, and a failing witness never leaves the prover's boundary.
func (cs *ConstraintSystem) Check(asg *Assignment, pub PublicInputs) error {
	cols := asg.columns()

	var v RowView
	v.Public = pub
	for g := range cs.gates {
		gate := &cs.gates[g]
		for i, ok := gate.Active.NextSet(0); ok; i, ok = gate.Active.NextSet(i + 1) {
			row := int(i)
			for c := Column(0); c < numColumns; c++ {
				v.Cur[c] = cols[c][row]
				v.Rot1[c] = cols[c][(row-1+cs.n)%cs.n]
				v.Rot2[c] = cols[c][(row-2+cs.n)%cs.n]
			}
			if res := gate.Expr(&v); !res.IsZero() {
				return fmt.Errorf("gate %q unsatisfied at row %d: %w", gate.Name, row, gate.Err)
			}
		}
	}
	return nil
}
