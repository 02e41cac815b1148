package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan account.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive = "ACTIVE"
	loanStatusClosed = "CLOSED"
)

var (
	LoanStatusActive = LoanStatus{value: loanStatusActive}
	LoanStatusClosed = LoanStatus{value: loanStatusClosed}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive: LoanStatusActive,
	loanStatusClosed: LoanStatusClosed,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
