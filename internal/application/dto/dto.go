package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLoanRequest carries the data needed to open a loan account.
type CreateLoanRequest struct {
	AccountNumber string          `json:"account_number"`
	LoanType      string          `json:"loan_type"`
	Principal     decimal.Decimal `json:"principal"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	TenureYears   int             `json:"tenure_years"`
	StartDate     time.Time       `json:"start_date"`
	CreatedBy     string          `json:"created_by"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID         string `json:"loan_id"`
	AccountNumber  string `json:"account_number"`
	IncludeDetails bool   `json:"include_details"`
}

// ListLoansRequest pages through loans, optionally filtered by status.
type ListLoansRequest struct {
	Status string `json:"status"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// UpdateLoanRequest carries the editable loan fields.
type UpdateLoanRequest struct {
	LoanID   string `json:"loan_id"`
	LoanType string `json:"loan_type"`
	Status   string `json:"status"`
}

// UpdateInterestRateRequest carries a rate change for a loan.
type UpdateInterestRateRequest struct {
	LoanID        string          `json:"loan_id"`
	NewRate       decimal.Decimal `json:"new_rate"`
	EffectiveFrom time.Time       `json:"effective_from"`
	Reason        string          `json:"reason"`
	ChangedBy     string          `json:"changed_by"`
}

// MakePaymentRequest carries the data for an installment payment.
type MakePaymentRequest struct {
	LoanID            string          `json:"loan_id"`
	InstallmentNumber int             `json:"installment_number"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentDate       time.Time       `json:"payment_date"`
	PaymentMethod     string          `json:"payment_method"`
	Reference         string          `json:"reference"`
	Remarks           string          `json:"remarks"`
}

// ReversePaymentRequest identifies a payment to roll back.
type ReversePaymentRequest struct {
	LoanID        string `json:"loan_id"`
	TransactionID string `json:"transaction_id"`
}

// DeleteLoanRequest identifies a loan to remove.
type DeleteLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// CloseLoanRequest identifies a loan to soft-close.
type CloseLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// GetEffectiveRateRequest asks for the rate in force on a date.
type GetEffectiveRateRequest struct {
	LoanID string    `json:"loan_id"`
	OnDate time.Time `json:"on_date"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is one row of a loan's repayment schedule.
type InstallmentResponse struct {
	Number         int             `json:"number"`
	DueDate        time.Time       `json:"due_date"`
	Amount         decimal.Decimal `json:"amount"`
	Principal      decimal.Decimal `json:"principal"`
	Interest       decimal.Decimal `json:"interest"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	DaysInPeriod   int             `json:"days_in_period"`
	Status         string          `json:"status"`
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
}

// RateChangeResponse is one entry of a loan's interest rate history.
type RateChangeResponse struct {
	ID            string          `json:"id"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveFrom time.Time       `json:"effective_from"`
	EffectiveTill *time.Time      `json:"effective_till,omitempty"`
	ChangedBy     string          `json:"changed_by,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionResponse is one entry of a loan's payment log.
type TransactionResponse struct {
	ID                string          `json:"id"`
	InstallmentNumber int             `json:"installment_number"`
	Date              time.Time       `json:"date"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	PrincipalAmount   decimal.Decimal `json:"principal_amount"`
	InterestAmount    decimal.Decimal `json:"interest_amount"`
	Method            string          `json:"method,omitempty"`
	Reference         string          `json:"reference,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                    string                `json:"id"`
	AccountNumber         string                `json:"account_number"`
	LoanType              string                `json:"loan_type"`
	Principal             decimal.Decimal       `json:"principal"`
	InterestRate          decimal.Decimal       `json:"interest_rate"`
	InstallmentAmount     decimal.Decimal       `json:"installment_amount"`
	TenureYears           int                   `json:"tenure_years"`
	TotalInstallments     int                   `json:"total_installments"`
	Status                string                `json:"status"`
	StartDate             time.Time             `json:"start_date"`
	EndDate               time.Time             `json:"end_date"`
	OutstandingPrincipal  decimal.Decimal       `json:"outstanding_principal"`
	InstallmentsPaid      int                   `json:"installments_paid"`
	InstallmentsRemaining int                   `json:"installments_remaining"`
	NextInstallmentDate   time.Time             `json:"next_installment_date"`
	LastInstallmentDate   *time.Time            `json:"last_installment_date,omitempty"`
	FinalInstallmentDate  time.Time             `json:"final_installment_date"`
	Schedule              []InstallmentResponse `json:"schedule,omitempty"`
	RateHistory           []RateChangeResponse  `json:"rate_history,omitempty"`
	Transactions          []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

// LoanListResponse is a page of loans.
type LoanListResponse struct {
	Loans  []LoanResponse `json:"loans"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// PaymentResponse is the external representation of a payment result.
type PaymentResponse struct {
	Transaction          TransactionResponse `json:"transaction"`
	LoanID               string              `json:"loan_id"`
	OutstandingPrincipal decimal.Decimal     `json:"outstanding_principal"`
	InstallmentsPaid     int                 `json:"installments_paid"`
	NextInstallmentDate  time.Time           `json:"next_installment_date"`
}

// DeleteLoanResponse reports the outcome of a delete request.
type DeleteLoanResponse struct {
	LoanID  string `json:"loan_id"`
	Deleted bool   `json:"deleted"`
}

// EffectiveRateResponse reports the rate in force on a date.
type EffectiveRateResponse struct {
	LoanID string          `json:"loan_id"`
	OnDate time.Time       `json:"on_date"`
	Rate   decimal.Decimal `json:"rate"`
}
