package usecase

import (
	"context"
	"fmt"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/port"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// GetLoanUseCase retrieves a loan by ID or account number.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute returns a loan response, with schedule, rate history, and
// transactions when details are requested.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.find(ctx, req)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan, req.IncludeDetails), nil
}

func (uc *GetLoanUseCase) find(ctx context.Context, req dto.GetLoanRequest) (model.Loan, error) {
	if req.LoanID != "" {
		return uc.loanRepo.FindByID(ctx, req.LoanID)
	}
	if req.AccountNumber != "" {
		return uc.loanRepo.FindByAccountNumber(ctx, req.AccountNumber)
	}
	return model.Loan{}, fmt.Errorf("%w: loan id or account number is required", model.ErrInvalidArgument)
}

// ListLoansUseCase pages through loans, optionally filtered by status.
type ListLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute returns a page of loan summaries.
func (uc *ListLoansUseCase) Execute(
	ctx context.Context,
	req dto.ListLoansRequest,
) (dto.LoanListResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var status valueobject.LoanStatus
	if req.Status != "" {
		s, err := valueobject.NewLoanStatus(req.Status)
		if err != nil {
			return dto.LoanListResponse{}, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
		}
		status = s
	}

	loans, err := uc.loanRepo.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return dto.LoanListResponse{}, fmt.Errorf("list loans: %w", err)
	}

	resp := dto.LoanListResponse{Limit: limit, Offset: offset}
	for _, loan := range loans {
		resp.Loans = append(resp.Loans, toLoanResponse(loan, false))
	}
	return resp, nil
}

// GetEffectiveRateUseCase reports the interest rate in force on a date.
type GetEffectiveRateUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetEffectiveRateUseCase wires dependencies.
func NewGetEffectiveRateUseCase(loanRepo port.LoanRepository) *GetEffectiveRateUseCase {
	return &GetEffectiveRateUseCase{loanRepo: loanRepo}
}

// Execute looks up the rate history entry covering the requested date.
func (uc *GetEffectiveRateUseCase) Execute(
	ctx context.Context,
	req dto.GetEffectiveRateRequest,
) (dto.EffectiveRateResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.EffectiveRateResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return dto.EffectiveRateResponse{
		LoanID: loan.ID(),
		OnDate: req.OnDate,
		Rate:   loan.EffectiveRateOn(req.OnDate),
	}, nil
}
