package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// Installment is one row of a loan's repayment schedule. The loan aggregate
// owns the slice and is the only writer; the struct itself is plain data.
type Installment struct {
	Number           int
	DueDate          time.Time
	Amount           decimal.Decimal
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	DaysInPeriod     int
	Status           valueobject.InstallmentStatus
	PaidDate         *time.Time
	PaidAmount       decimal.Decimal
	PrincipalPaid    decimal.Decimal
	InterestPaid     decimal.Decimal
}

// IsPending reports whether the installment is still awaiting payment.
func (i Installment) IsPending() bool {
	return i.Status.Equal(valueobject.InstallmentStatusPending)
}

// IsPaid reports whether the installment has been settled.
func (i Installment) IsPaid() bool {
	return i.Status.Equal(valueobject.InstallmentStatusPaid)
}
