package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/port"
)

// CreateLoanUseCase opens a loan account with its repayment schedule.
type CreateLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute creates a loan, persists it, and publishes its creation event.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Account numbers are unique across loans.
	_, err := uc.loanRepo.FindByAccountNumber(ctx, req.AccountNumber)
	switch {
	case err == nil:
		return dto.LoanResponse{}, fmt.Errorf("%w: account number %s already has a loan", model.ErrConflict, req.AccountNumber)
	case !errors.Is(err, model.ErrNotFound):
		return dto.LoanResponse{}, fmt.Errorf("check account number: %w", err)
	}

	// 2. Build the aggregate.
	loan, err := model.NewLoan(
		req.AccountNumber, req.LoanType,
		req.Principal, req.StartDate,
		req.TenureYears, req.InterestRate,
		req.CreatedBy, now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 3. Persist it.
	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan, true), nil
}
