package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/port"
)

// MakePaymentUseCase settles a pending installment on a loan.
type MakePaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewMakePaymentUseCase wires dependencies.
func NewMakePaymentUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *MakePaymentUseCase {
	return &MakePaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute applies a payment against an installment.
func (uc *MakePaymentUseCase) Execute(
	ctx context.Context,
	req dto.MakePaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, txn, err := loan.ApplyPayment(
		req.InstallmentNumber, req.Amount, paymentDate,
		req.PaymentMethod, req.Reference, req.Remarks, now,
	)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	if err := uc.loanRepo.SavePayment(ctx, loan, txn); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		Transaction:          toTransactionResponse(txn),
		LoanID:               loan.ID(),
		OutstandingPrincipal: loan.OutstandingPrincipal(),
		InstallmentsPaid:     loan.InstallmentsPaid(),
		NextInstallmentDate:  loan.NextInstallmentDate(),
	}, nil
}
