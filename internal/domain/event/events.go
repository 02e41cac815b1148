package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendstack/loan-servicing/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// LoanCreated is raised when a new loan account is opened and its schedule
// generated.
type LoanCreated struct {
	events.BaseEvent
	AccountNumber     string          `json:"account_number"`
	Principal         decimal.Decimal `json:"principal"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	TermMonths        int             `json:"term_months"`
	StartDate         time.Time       `json:"start_date"`
}

func NewLoanCreated(
	loanID, accountNumber string,
	principal, rate, installmentAmount decimal.Decimal,
	termMonths int, startDate time.Time,
) LoanCreated {
	return LoanCreated{
		BaseEvent:         events.NewBaseEvent("loans.loan.created", loanID, "Loan"),
		AccountNumber:     accountNumber,
		Principal:         principal,
		InterestRate:      rate,
		InstallmentAmount: installmentAmount,
		TermMonths:        termMonths,
		StartDate:         startDate,
	}
}

// InterestRateChanged is raised when a loan's rate is updated and its pending
// installments recalculated.
type InterestRateChanged struct {
	events.BaseEvent
	OldRate       decimal.Decimal `json:"old_rate"`
	NewRate       decimal.Decimal `json:"new_rate"`
	EffectiveFrom time.Time       `json:"effective_from"`
	NewEMI        decimal.Decimal `json:"new_emi"`
	Reason        string          `json:"reason"`
}

func NewInterestRateChanged(
	loanID string,
	oldRate, newRate decimal.Decimal,
	effectiveFrom time.Time,
	newEMI decimal.Decimal,
	reason string,
) InterestRateChanged {
	return InterestRateChanged{
		BaseEvent:     events.NewBaseEvent("loans.loan.rate_changed", loanID, "Loan"),
		OldRate:       oldRate,
		NewRate:       newRate,
		EffectiveFrom: effectiveFrom,
		NewEMI:        newEMI,
		Reason:        reason,
	}
}

// PaymentRecorded is raised when an installment payment is applied.
type PaymentRecorded struct {
	events.BaseEvent
	TransactionID        string          `json:"transaction_id"`
	InstallmentNumber    int             `json:"installment_number"`
	Amount               decimal.Decimal `json:"amount"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
}

func NewPaymentRecorded(
	loanID, transactionID string,
	installmentNumber int,
	amount, outstanding decimal.Decimal,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:            events.NewBaseEvent("loans.loan.payment_recorded", loanID, "Loan"),
		TransactionID:        transactionID,
		InstallmentNumber:    installmentNumber,
		Amount:               amount,
		OutstandingPrincipal: outstanding,
	}
}

// PaymentReversed is raised when the most recent payment is rolled back.
type PaymentReversed struct {
	events.BaseEvent
	TransactionID        string          `json:"transaction_id"`
	InstallmentNumber    int             `json:"installment_number"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
}

func NewPaymentReversed(
	loanID, transactionID string,
	installmentNumber int,
	outstanding decimal.Decimal,
) PaymentReversed {
	return PaymentReversed{
		BaseEvent:            events.NewBaseEvent("loans.loan.payment_reversed", loanID, "Loan"),
		TransactionID:        transactionID,
		InstallmentNumber:    installmentNumber,
		OutstandingPrincipal: outstanding,
	}
}

// LoanClosed is raised when a loan is soft-closed.
type LoanClosed struct {
	events.BaseEvent
}

func NewLoanClosed(loanID string) LoanClosed {
	return LoanClosed{
		BaseEvent: events.NewBaseEvent("loans.loan.closed", loanID, "Loan"),
	}
}
