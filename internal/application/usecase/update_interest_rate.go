package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/port"
)

// UpdateInterestRateUseCase changes a loan's rate and recalculates its
// pending installments.
type UpdateInterestRateUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewUpdateInterestRateUseCase wires dependencies.
func NewUpdateInterestRateUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *UpdateInterestRateUseCase {
	return &UpdateInterestRateUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute applies the rate change and persists the rewritten schedule, the
// rate history, and the loan summary in one transaction.
func (uc *UpdateInterestRateUseCase) Execute(
	ctx context.Context,
	req dto.UpdateInterestRateRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.ApplyRateChange(req.NewRate, req.EffectiveFrom, req.Reason, req.ChangedBy, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("apply rate change: %w", err)
	}

	if err := uc.loanRepo.SaveRateChange(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save rate change: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan, true), nil
}
