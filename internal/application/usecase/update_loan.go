package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/port"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// UpdateLoanUseCase changes the editable fields of a loan.
type UpdateLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewUpdateLoanUseCase wires dependencies.
func NewUpdateLoanUseCase(loanRepo port.LoanRepository) *UpdateLoanUseCase {
	return &UpdateLoanUseCase{loanRepo: loanRepo}
}

// Execute updates the loan's type and status.
func (uc *UpdateLoanUseCase) Execute(
	ctx context.Context,
	req dto.UpdateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	status, err := valueobject.NewLoanStatus(req.Status)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// Closing retires the loan and raises its closure event; that goes
	// through the close operation, not a detail edit.
	if status.Equal(valueobject.LoanStatusClosed) && !loan.Status().Equal(valueobject.LoanStatusClosed) {
		return dto.LoanResponse{}, fmt.Errorf(
			"%w: status %s can only be set by closing the loan", model.ErrInvalidArgument, status)
	}

	loan, err = loan.UpdateDetails(req.LoanType, status, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("update loan: %w", err)
	}

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	return toLoanResponse(loan, false), nil
}
