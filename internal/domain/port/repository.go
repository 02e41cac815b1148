package port

import (
	"context"

	"github.com/lendstack/loan-servicing/internal/domain/event"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// LoanRepository persists Loan aggregates together with their installments,
// rate history, and transaction log. Each method is atomic: implementations
// wrap the writes to the child tables in a single database transaction.
type LoanRepository interface {
	Create(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (model.Loan, error)
	ListByStatus(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error)

	// Update rewrites the loan's summary row.
	Update(ctx context.Context, loan model.Loan) error

	// SaveRateChange persists a rate change: the summary row, the rewritten
	// pending installments, and the updated rate history, atomically.
	SaveRateChange(ctx context.Context, loan model.Loan) error

	// SavePayment persists an applied payment: the settled installment, the
	// new transaction, and the summary row, atomically.
	SavePayment(ctx context.Context, loan model.Loan, txn model.Transaction) error

	// SaveReversal persists a payment reversal: the reset installment, the
	// transaction deletion, and the summary row, atomically.
	SaveReversal(ctx context.Context, loan model.Loan, transactionID string) error

	// Delete removes the loan and all of its child rows.
	Delete(ctx context.Context, id string) error
}

// EventPublisher pushes domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
