package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionTypeEMI marks a regular installment payment.
const TransactionTypeEMI = "EMI"

// Transaction is a payment record against a single installment. The loan's
// transaction list is an append-only log: only its most recent entry may be
// removed, so reversing a payment never punctures the ledger mid-history.
type Transaction struct {
	ID                string
	InstallmentNumber int
	Date              time.Time
	Type              string
	Amount            decimal.Decimal
	PrincipalAmount   decimal.Decimal
	InterestAmount    decimal.Decimal
	Method            string
	Reference         string
	Remarks           string
	CreatedAt         time.Time
}
