package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/domain/model"
)

func TestDeleteLoan_Execute(t *testing.T) {
	t.Run("hard-deletes a loan without payments", func(t *testing.T) {
		loan := activeLoan(t)
		repo := repoReturning(loan)
		uc := usecase.NewDeleteLoanUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.DeleteLoanRequest{LoanID: loan.ID()})

		require.NoError(t, err)
		assert.True(t, resp.Deleted)
		assert.Equal(t, loan.ID(), resp.LoanID)
		assert.Equal(t, []string{loan.ID()}, repo.deletedIDs)
	})

	t.Run("refuses to delete a loan with payment history", func(t *testing.T) {
		loan, _ := loanWithPayments(t, 1)
		repo := repoReturning(loan)
		uc := usecase.NewDeleteLoanUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.DeleteLoanRequest{LoanID: loan.ID()})

		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Empty(t, repo.deletedIDs)
		assert.Empty(t, repo.updatedLoans)
	})

	t.Run("returns not found for an unknown loan", func(t *testing.T) {
		repo := &mockLoanRepository{}
		uc := usecase.NewDeleteLoanUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.DeleteLoanRequest{LoanID: "missing"})

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("propagates repository delete failures", func(t *testing.T) {
		loan := activeLoan(t)
		repo := repoReturning(loan)
		repo.deleteFunc = func(ctx context.Context, id string) error {
			return fmt.Errorf("delete loan %s: %w", id, errors.New("connection reset"))
		}
		uc := usecase.NewDeleteLoanUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.DeleteLoanRequest{LoanID: loan.ID()})

		assert.ErrorContains(t, err, "connection reset")
	})
}
