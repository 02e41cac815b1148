package model

import "errors"

// Sentinel errors for the loan servicing engine. Callers classify failures
// with errors.Is and map them to transport codes at the presentation layer.
var (
	// ErrInvalidArgument indicates a calculator or constructor received
	// an out-of-range input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a loan, installment, or transaction does not
	// exist in the expected state.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness or lifecycle conflict, such as a
	// duplicate account number or deleting a loan with recorded payments.
	ErrConflict = errors.New("conflict")

	// ErrForbidden indicates an operation that would puncture the
	// transaction log, such as reversing a non-tail payment.
	ErrForbidden = errors.New("forbidden")
)
