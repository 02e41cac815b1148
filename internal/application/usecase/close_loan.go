package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/port"
)

// CloseLoanUseCase soft-closes a loan, preserving its schedule, rate
// history, and payment ledger.
type CloseLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewCloseLoanUseCase wires dependencies.
func NewCloseLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *CloseLoanUseCase {
	return &CloseLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute marks the loan closed and publishes the closure event.
func (uc *CloseLoanUseCase) Execute(
	ctx context.Context,
	req dto.CloseLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.Close(now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("close loan: %w", err)
	}

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan, false), nil
}
