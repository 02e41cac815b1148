package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/port"
)

// ReversePaymentUseCase rolls back the most recent payment on a loan.
type ReversePaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewReversePaymentUseCase wires dependencies.
func NewReversePaymentUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *ReversePaymentUseCase {
	return &ReversePaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute reverses a payment, restoring its installment to pending and
// deleting the transaction, atomically.
func (uc *ReversePaymentUseCase) Execute(
	ctx context.Context,
	req dto.ReversePaymentRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.ReversePayment(req.TransactionID, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("reverse payment: %w", err)
	}

	if err := uc.loanRepo.SaveReversal(ctx, loan, req.TransactionID); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save reversal: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan, true), nil
}
