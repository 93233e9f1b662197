package veil

import "errors"

var (
	// ErrInvalidDomainSize is returned by Setup when the requested trace
	// length is not supported by the evaluation domain.
	ErrInvalidDomainSize = errors.New("domain size must be a power of two, at least 2 and at most 2^26")

	// ErrIndexOutOfRange is returned when the hidden index does not fall
	// inside the fixed trace domain.
	ErrIndexOutOfRange = errors.New("hidden index out of range")
	// ErrRecurrenceViolation is returned when the trace column does not
	// satisfy the recurrence rule.
	ErrRecurrenceViolation = errors.New("trace does not satisfy the recurrence")
	// ErrSelectorInvalid is returned when the selector subcircuit columns are
	// inconsistent: the selector is not one-hot, or an accumulator does not
	// match its running sum.
	ErrSelectorInvalid = errors.New("selector columns are not a consistent one-hot mask")
	// ErrPublicMismatch is returned when the witness contradicts the public
	// inputs (x, y, z).
	ErrPublicMismatch = errors.New("witness does not match the public inputs")

	// ErrCommitmentFailure wraps errors reported by the commitment adapter.
	ErrCommitmentFailure = errors.New("polynomial commitment failed")

	// ErrConstraintUnsatisfied is returned by Verify when the batched gate
	// identity does not hold at the challenge point.
	ErrConstraintUnsatisfied = errors.New("gate identity does not hold at the challenge point")
	// ErrOpeningInvalid is returned by Verify when an opening proof does not
	// match its commitment.
	ErrOpeningInvalid = errors.New("invalid opening proof")
	// ErrMalformed is returned when a proof cannot be parsed into the
	// expected shape.
	ErrMalformed = errors.New("malformed proof")
)
