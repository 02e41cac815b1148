package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// LoanHandler is the gRPC handler for loan servicing operations.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	createLoan     *usecase.CreateLoanUseCase
	getLoan        *usecase.GetLoanUseCase
	listLoans      *usecase.ListLoansUseCase
	updateLoan     *usecase.UpdateLoanUseCase
	deleteLoan     *usecase.DeleteLoanUseCase
	closeLoan      *usecase.CloseLoanUseCase
	updateRate     *usecase.UpdateInterestRateUseCase
	effectiveRate  *usecase.GetEffectiveRateUseCase
	makePayment    *usecase.MakePaymentUseCase
	reversePayment *usecase.ReversePaymentUseCase
}

// NewLoanHandler creates a new handler with all use-case dependencies.
func NewLoanHandler(
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	updateLoan *usecase.UpdateLoanUseCase,
	deleteLoan *usecase.DeleteLoanUseCase,
	closeLoan *usecase.CloseLoanUseCase,
	updateRate *usecase.UpdateInterestRateUseCase,
	effectiveRate *usecase.GetEffectiveRateUseCase,
	makePayment *usecase.MakePaymentUseCase,
	reversePayment *usecase.ReversePaymentUseCase,
) *LoanHandler {
	return &LoanHandler{
		createLoan:     createLoan,
		getLoan:        getLoan,
		listLoans:      listLoans,
		updateLoan:     updateLoan,
		deleteLoan:     deleteLoan,
		closeLoan:      closeLoan,
		updateRate:     updateRate,
		effectiveRate:  effectiveRate,
		makePayment:    makePayment,
		reversePayment: reversePayment,
	}
}

// CreateLoan opens a loan account with its repayment schedule.
func (h *LoanHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*LoanResponse, error) {
	resp, err := h.createLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// GetLoan retrieves a loan by ID or account number.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*LoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// ListLoans pages through loans.
func (h *LoanHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*LoanListResponse, error) {
	resp, err := h.listLoans.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// UpdateLoan changes the editable fields of a loan.
func (h *LoanHandler) UpdateLoan(ctx context.Context, req *UpdateLoanRequest) (*LoanResponse, error) {
	resp, err := h.updateLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// DeleteLoan removes a loan that has no payment history.
func (h *LoanHandler) DeleteLoan(ctx context.Context, req *DeleteLoanRequest) (*DeleteLoanResponse, error) {
	resp, err := h.deleteLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// CloseLoan soft-closes a loan, keeping its audit trail.
func (h *LoanHandler) CloseLoan(ctx context.Context, req *CloseLoanRequest) (*LoanResponse, error) {
	resp, err := h.closeLoan.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// UpdateInterestRate changes a loan's rate and recalculates its pending
// installments.
func (h *LoanHandler) UpdateInterestRate(ctx context.Context, req *UpdateInterestRateRequest) (*LoanResponse, error) {
	resp, err := h.updateRate.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// GetEffectiveRate reports the interest rate in force on a date.
func (h *LoanHandler) GetEffectiveRate(ctx context.Context, req *GetEffectiveRateRequest) (*EffectiveRateResponse, error) {
	resp, err := h.effectiveRate.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// MakePayment settles a pending installment.
func (h *LoanHandler) MakePayment(ctx context.Context, req *MakePaymentRequest) (*PaymentResponse, error) {
	resp, err := h.makePayment.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// ReversePayment rolls back the most recent payment on a loan.
func (h *LoanHandler) ReversePayment(ctx context.Context, req *ReversePaymentRequest) (*LoanResponse, error) {
	resp, err := h.reversePayment.Execute(ctx, *req)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &resp, nil
}

// toStatusError maps domain sentinel errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
