package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/domain/event"
	"github.com/lendstack/loan-servicing/internal/domain/model"
)

func TestMakePayment_Execute(t *testing.T) {
	t.Run("successfully makes a payment", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := repoReturning(loan)
		publisher := &mockEventPublisher{}
		uc := usecase.NewMakePaymentUseCase(loanRepo, publisher)

		req := dto.MakePaymentRequest{
			LoanID:            loan.ID(),
			InstallmentNumber: 1,
			Amount:            loan.InstallmentAmount(),
			PaymentDate:       fixtureStart,
			PaymentMethod:     "BANK_TRANSFER",
			Reference:         "RCPT-1",
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, loan.ID(), resp.LoanID)
		assert.Equal(t, 1, resp.Transaction.InstallmentNumber)
		assert.Equal(t, model.TransactionTypeEMI, resp.Transaction.Type)
		assert.Equal(t, 1, resp.InstallmentsPaid)
		assert.Equal(t, "109338.15", resp.OutstandingPrincipal.StringFixed(2))

		require.Len(t, loanRepo.savedLoans, 1)
		require.Len(t, loanRepo.savedPayments, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.IsType(t, event.PaymentRecorded{}, publisher.publishedEvents[0])
	})

	t.Run("fails when the installment is not pending", func(t *testing.T) {
		loan := activeLoan(t)
		uc := usecase.NewMakePaymentUseCase(repoReturning(loan), &mockEventPublisher{})

		req := dto.MakePaymentRequest{
			LoanID:            loan.ID(),
			InstallmentNumber: 99,
			Amount:            decimal.NewFromInt(1000),
		}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("fails when the loan does not exist", func(t *testing.T) {
		uc := usecase.NewMakePaymentUseCase(&mockLoanRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.MakePaymentRequest{LoanID: "missing"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("fails when publishing fails", func(t *testing.T) {
		loan := activeLoan(t)
		publisher := &mockEventPublisher{
			publishFunc: func(ctx context.Context, events ...event.DomainEvent) error {
				return fmt.Errorf("broker unavailable")
			},
		}
		uc := usecase.NewMakePaymentUseCase(repoReturning(loan), publisher)

		req := dto.MakePaymentRequest{
			LoanID:            loan.ID(),
			InstallmentNumber: 1,
			Amount:            loan.InstallmentAmount(),
		}
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
