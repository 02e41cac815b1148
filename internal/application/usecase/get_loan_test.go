package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

func TestGetLoan_Execute(t *testing.T) {
	t.Run("finds a loan by id", func(t *testing.T) {
		loan := activeLoan(t)
		uc := usecase.NewGetLoanUseCase(repoReturning(loan))

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: loan.ID()})

		require.NoError(t, err)
		assert.Equal(t, loan.ID(), resp.ID)
		assert.Empty(t, resp.Schedule)
	})

	t.Run("includes details on request", func(t *testing.T) {
		loan := activeLoan(t)
		uc := usecase.NewGetLoanUseCase(repoReturning(loan))

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: loan.ID(), IncludeDetails: true})

		require.NoError(t, err)
		assert.Len(t, resp.Schedule, 12)
		assert.Len(t, resp.RateHistory, 1)
	})

	t.Run("finds a loan by account number", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByAccountNumberFunc: func(ctx context.Context, accountNumber string) (model.Loan, error) {
				assert.Equal(t, "LN-1001", accountNumber)
				return loan, nil
			},
		}
		uc := usecase.NewGetLoanUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{AccountNumber: "LN-1001"})

		require.NoError(t, err)
		assert.Equal(t, loan.ID(), resp.ID)
	})

	t.Run("requires an identifier", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanRepository{})
		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{})
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc := usecase.NewGetLoanUseCase(&mockLoanRepository{})
		_, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "missing"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestListLoans_Execute(t *testing.T) {
	t.Run("lists with defaults", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			listByStatusFunc: func(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error) {
				assert.True(t, status.IsZero())
				assert.Equal(t, 50, limit)
				assert.Equal(t, 0, offset)
				return []model.Loan{loan}, nil
			},
		}
		uc := usecase.NewListLoansUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.ListLoansRequest{})

		require.NoError(t, err)
		require.Len(t, resp.Loans, 1)
		assert.Equal(t, 50, resp.Limit)
	})

	t.Run("filters by status", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			listByStatusFunc: func(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error) {
				assert.Equal(t, valueobject.LoanStatusClosed, status)
				return nil, nil
			},
		}
		uc := usecase.NewListLoansUseCase(loanRepo)

		_, err := uc.Execute(context.Background(), dto.ListLoansRequest{Status: "CLOSED"})
		require.NoError(t, err)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		uc := usecase.NewListLoansUseCase(&mockLoanRepository{})
		_, err := uc.Execute(context.Background(), dto.ListLoansRequest{Status: "FROZEN"})
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			listByStatusFunc: func(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}
		uc := usecase.NewListLoansUseCase(loanRepo)

		_, err := uc.Execute(context.Background(), dto.ListLoansRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list loans")
	})
}

func TestGetEffectiveRate_Execute(t *testing.T) {
	t.Run("returns the rate in force", func(t *testing.T) {
		loan := activeLoan(t)
		uc := usecase.NewGetEffectiveRateUseCase(repoReturning(loan))

		resp, err := uc.Execute(context.Background(), dto.GetEffectiveRateRequest{
			LoanID: loan.ID(),
			OnDate: fixtureStart.AddDate(0, 6, 0),
		})

		require.NoError(t, err)
		assert.Equal(t, "12", resp.Rate.String())
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc := usecase.NewGetEffectiveRateUseCase(&mockLoanRepository{})
		_, err := uc.Execute(context.Background(), dto.GetEffectiveRateRequest{LoanID: "missing"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
