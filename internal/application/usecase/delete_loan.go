package usecase

import (
	"context"
	"fmt"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/port"
)

// DeleteLoanUseCase removes a loan that has no payment history. A loan with
// recorded payments keeps its audit trail and must be closed instead.
type DeleteLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewDeleteLoanUseCase wires dependencies.
func NewDeleteLoanUseCase(loanRepo port.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{loanRepo: loanRepo}
}

// Execute deletes the loan and its child rows.
func (uc *DeleteLoanUseCase) Execute(
	ctx context.Context,
	req dto.DeleteLoanRequest,
) (dto.DeleteLoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.DeleteLoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	if loan.HasPayments() {
		return dto.DeleteLoanResponse{}, fmt.Errorf(
			"%w: loan %s has recorded payments, close it instead", model.ErrConflict, loan.ID())
	}

	if err := uc.loanRepo.Delete(ctx, loan.ID()); err != nil {
		return dto.DeleteLoanResponse{}, fmt.Errorf("delete loan: %w", err)
	}

	return dto.DeleteLoanResponse{
		LoanID:  loan.ID(),
		Deleted: true,
	}, nil
}
