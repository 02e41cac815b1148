package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/domain/event"
	"github.com/lendstack/loan-servicing/internal/domain/model"
)

func TestUpdateInterestRate_Execute(t *testing.T) {
	t.Run("recalculates pending installments after paid ones", func(t *testing.T) {
		loan, _ := loanWithPayments(t, 3)
		loanRepo := repoReturning(loan)
		publisher := &mockEventPublisher{}
		uc := usecase.NewUpdateInterestRateUseCase(loanRepo, publisher)

		req := dto.UpdateInterestRateRequest{
			LoanID:        loan.ID(),
			NewRate:       decimal.NewFromInt(10),
			EffectiveFrom: fixtureStart.AddDate(0, 3, 0),
			Reason:        "repo rate cut",
			ChangedBy:     "officer-2",
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "10.00", resp.InterestRate.StringFixed(2))
		assert.Equal(t, "10430.57", resp.InstallmentAmount.StringFixed(2))
		require.Len(t, resp.RateHistory, 2)

		// Paid rows are untouched.
		for i := 0; i < 3; i++ {
			assert.Equal(t, "10661.85", resp.Schedule[i].Amount.StringFixed(2))
			assert.Equal(t, "PAID", resp.Schedule[i].Status)
		}
		assert.Equal(t, "10430.57", resp.Schedule[3].Amount.StringFixed(2))

		require.Len(t, loanRepo.savedLoans, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.IsType(t, event.InterestRateChanged{}, publisher.publishedEvents[0])
	})

	t.Run("rejects an out-of-range rate", func(t *testing.T) {
		loan := activeLoan(t)
		uc := usecase.NewUpdateInterestRateUseCase(repoReturning(loan), &mockEventPublisher{})

		req := dto.UpdateInterestRateRequest{
			LoanID:        loan.ID(),
			NewRate:       decimal.NewFromInt(150),
			EffectiveFrom: fixtureStart,
		}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("conflicts on a closed loan", func(t *testing.T) {
		loan := activeLoan(t)
		closed, err := loan.Close(fixtureStart)
		require.NoError(t, err)
		uc := usecase.NewUpdateInterestRateUseCase(repoReturning(closed.ClearEvents()), &mockEventPublisher{})

		req := dto.UpdateInterestRateRequest{
			LoanID:        loan.ID(),
			NewRate:       decimal.NewFromInt(10),
			EffectiveFrom: fixtureStart,
		}
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("fails when the loan does not exist", func(t *testing.T) {
		uc := usecase.NewUpdateInterestRateUseCase(&mockLoanRepository{}, &mockEventPublisher{})

		req := dto.UpdateInterestRateRequest{
			LoanID:  "missing",
			NewRate: decimal.NewFromInt(10),
		}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
