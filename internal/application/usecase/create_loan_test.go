package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/application/usecase"
	"github.com/lendstack/loan-servicing/internal/domain/event"
	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// --- Mocks ---

type mockLoanRepository struct {
	createFunc              func(ctx context.Context, loan model.Loan) error
	findByIDFunc            func(ctx context.Context, id string) (model.Loan, error)
	findByAccountNumberFunc func(ctx context.Context, accountNumber string) (model.Loan, error)
	listByStatusFunc        func(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error)
	updateFunc              func(ctx context.Context, loan model.Loan) error
	deleteFunc              func(ctx context.Context, id string) error

	createdLoans  []model.Loan
	updatedLoans  []model.Loan
	savedLoans    []model.Loan
	savedPayments []model.Transaction
	reversedTxns  []string
	deletedIDs    []string
}

func (m *mockLoanRepository) Create(ctx context.Context, loan model.Loan) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, loan)
	}
	m.createdLoans = append(m.createdLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, fmt.Errorf("%w: loan %s", model.ErrNotFound, id)
}

func (m *mockLoanRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (model.Loan, error) {
	if m.findByAccountNumberFunc != nil {
		return m.findByAccountNumberFunc(ctx, accountNumber)
	}
	return model.Loan{}, fmt.Errorf("%w: account %s", model.ErrNotFound, accountNumber)
}

func (m *mockLoanRepository) ListByStatus(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error) {
	if m.listByStatusFunc != nil {
		return m.listByStatusFunc(ctx, status, limit, offset)
	}
	return nil, nil
}

func (m *mockLoanRepository) Update(ctx context.Context, loan model.Loan) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, loan)
	}
	m.updatedLoans = append(m.updatedLoans, loan)
	return nil
}

func (m *mockLoanRepository) SaveRateChange(ctx context.Context, loan model.Loan) error {
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) SavePayment(ctx context.Context, loan model.Loan, txn model.Transaction) error {
	m.savedLoans = append(m.savedLoans, loan)
	m.savedPayments = append(m.savedPayments, txn)
	return nil
}

func (m *mockLoanRepository) SaveReversal(ctx context.Context, loan model.Loan, transactionID string) error {
	m.savedLoans = append(m.savedLoans, loan)
	m.reversedTxns = append(m.reversedTxns, transactionID)
	return nil
}

func (m *mockLoanRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Fixtures ---

var fixtureStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func activeLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		"LN-1001", "PERSONAL",
		decimal.NewFromInt(120000),
		fixtureStart, 1,
		decimal.NewFromInt(12),
		"officer-1", fixtureStart,
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func repoReturning(loan model.Loan) *mockLoanRepository {
	return &mockLoanRepository{
		findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
			return loan, nil
		},
	}
}

// --- Tests ---

func validCreateRequest() dto.CreateLoanRequest {
	return dto.CreateLoanRequest{
		AccountNumber: "LN-1001",
		LoanType:      "PERSONAL",
		Principal:     decimal.NewFromInt(120000),
		InterestRate:  decimal.NewFromInt(12),
		TenureYears:   1,
		StartDate:     fixtureStart,
		CreatedBy:     "officer-1",
	}
}

func TestCreateLoan_Execute(t *testing.T) {
	t.Run("successfully creates a loan", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		resp, err := uc.Execute(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "LN-1001", resp.AccountNumber)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, 12, resp.TotalInstallments)
		assert.Equal(t, "10661.85", resp.InstallmentAmount.StringFixed(2))
		assert.Len(t, resp.Schedule, 12)
		require.Len(t, resp.RateHistory, 1)
		assert.Equal(t, "Initial loan creation", resp.RateHistory[0].Reason)

		require.Len(t, loanRepo.createdLoans, 1)
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("conflicts when the account number already has a loan", func(t *testing.T) {
		existing := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByAccountNumberFunc: func(ctx context.Context, accountNumber string) (model.Loan, error) {
				return existing, nil
			},
		}
		uc := usecase.NewCreateLoanUseCase(loanRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("fails on invalid input", func(t *testing.T) {
		uc := usecase.NewCreateLoanUseCase(&mockLoanRepository{}, &mockEventPublisher{})

		req := validCreateRequest()
		req.TenureYears = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("fails when persistence fails", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			createFunc: func(ctx context.Context, loan model.Loan) error {
				return fmt.Errorf("connection refused")
			},
		}
		uc := usecase.NewCreateLoanUseCase(loanRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), validCreateRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save loan")
	})
}
