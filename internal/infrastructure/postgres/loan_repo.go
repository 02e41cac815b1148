package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
	pkgpostgres "github.com/lendstack/loan-servicing/pkg/postgres"
)

// LoanRepo implements port.LoanRepository on PostgreSQL. Writes that touch
// the loan row together with its installments, rate history, or transactions
// run inside a single database transaction.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

const loanColumns = `
	id, account_number, loan_type, principal, interest_rate,
	installment_amount, tenure_years, total_installments, status,
	start_date, end_date, outstanding_principal,
	installments_paid, installments_remaining,
	next_installment_date, last_installment_date, final_installment_date,
	created_at, updated_at
`

// Create persists a new loan with its schedule and opening rate entry.
func (r *LoanRepo) Create(ctx context.Context, loan model.Loan) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := insertLoanRow(ctx, tx, loan); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: account number %s already in use", model.ErrConflict, loan.AccountNumber())
			}
			return err
		}
		if err := insertInstallments(ctx, tx, loan.ID(), loan.Installments()); err != nil {
			return err
		}
		return insertRateHistory(ctx, tx, loan.ID(), loan.RateHistory())
	})
}

// FindByID retrieves a loan with its installments, rate history, and
// transactions.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByAccountNumber retrieves a loan by its account number.
func (r *LoanRepo) FindByAccountNumber(ctx context.Context, accountNumber string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE account_number = $1`
	return r.findOne(ctx, query, accountNumber)
}

// ListByStatus returns loan summaries without child rows, ordered by account
// number. A zero status matches all loans.
func (r *LoanRepo) ListByStatus(ctx context.Context, status valueobject.LoanStatus, limit, offset int) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans`
	args := []any{}
	if !status.IsZero() {
		query += ` WHERE status = $1`
		args = append(args, status.String())
	}
	query += fmt.Sprintf(` ORDER BY account_number LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

// Update rewrites the loan's summary row.
func (r *LoanRepo) Update(ctx context.Context, loan model.Loan) error {
	tag, err := r.pool.Exec(ctx, updateLoanSQL, updateLoanArgs(loan)...)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", model.ErrNotFound, loan.ID())
	}
	return nil
}

// SaveRateChange persists a rate change: the summary row, the rewritten
// installments, and the rate history, in one transaction.
func (r *LoanRepo) SaveRateChange(ctx context.Context, loan model.Loan) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := updateLoanRow(ctx, tx, loan); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM loan_installments WHERE loan_id = $1`, loan.ID()); err != nil {
			return fmt.Errorf("clear installments: %w", err)
		}
		if err := insertInstallments(ctx, tx, loan.ID(), loan.Installments()); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM interest_rate_changes WHERE loan_id = $1`, loan.ID()); err != nil {
			return fmt.Errorf("clear rate history: %w", err)
		}
		return insertRateHistory(ctx, tx, loan.ID(), loan.RateHistory())
	})
}

// SavePayment persists an applied payment: the settled installment, the new
// transaction, and the summary row, in one transaction.
func (r *LoanRepo) SavePayment(ctx context.Context, loan model.Loan, txn model.Transaction) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := updateLoanRow(ctx, tx, loan); err != nil {
			return err
		}
		if err := updateInstallment(ctx, tx, loan.ID(), loan.Installments(), txn.InstallmentNumber); err != nil {
			return err
		}
		query := `
			INSERT INTO loan_transactions (
				id, loan_id, installment_number, txn_date, txn_type,
				amount, principal_amount, interest_amount,
				method, reference, remarks, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		`
		_, err := tx.Exec(ctx, query,
			txn.ID, loan.ID(), txn.InstallmentNumber, txn.Date, txn.Type,
			txn.Amount, txn.PrincipalAmount, txn.InterestAmount,
			txn.Method, txn.Reference, txn.Remarks, txn.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		return nil
	})
}

// SaveReversal persists a payment reversal: the reset installment, the
// transaction deletion, and the summary row, in one transaction.
func (r *LoanRepo) SaveReversal(ctx context.Context, loan model.Loan, transactionID string) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := updateLoanRow(ctx, tx, loan); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM loan_transactions WHERE id = $1 AND loan_id = $2`, transactionID, loan.ID())
		if err != nil {
			return fmt.Errorf("delete transaction: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: transaction %s", model.ErrNotFound, transactionID)
		}
		for _, inst := range loan.Installments() {
			if err := writeInstallment(ctx, tx, loan.ID(), inst, true); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a loan; child rows cascade.
func (r *LoanRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", model.ErrNotFound, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// write helpers
// ---------------------------------------------------------------------------

const updateLoanSQL = `
	UPDATE loans SET
		loan_type             = $2,
		interest_rate         = $3,
		installment_amount    = $4,
		status                = $5,
		outstanding_principal = $6,
		installments_paid     = $7,
		installments_remaining = $8,
		next_installment_date = $9,
		last_installment_date = $10,
		updated_at            = $11
	WHERE id = $1
`

func updateLoanArgs(loan model.Loan) []any {
	return []any{
		loan.ID(), loan.LoanType(), loan.CurrentRate(), loan.InstallmentAmount(),
		loan.Status().String(), loan.OutstandingPrincipal(),
		loan.InstallmentsPaid(), loan.InstallmentsRemaining(),
		loan.NextInstallmentDate(), loan.LastInstallmentDate(), loan.UpdatedAt(),
	}
}

func updateLoanRow(ctx context.Context, tx pkgpostgres.Querier, loan model.Loan) error {
	tag, err := tx.Exec(ctx, updateLoanSQL, updateLoanArgs(loan)...)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", model.ErrNotFound, loan.ID())
	}
	return nil
}

func insertLoanRow(ctx context.Context, tx pkgpostgres.Querier, loan model.Loan) error {
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`
	_, err := tx.Exec(ctx, query,
		loan.ID(), loan.AccountNumber(), loan.LoanType(),
		loan.Principal(), loan.CurrentRate(), loan.InstallmentAmount(),
		loan.TenureYears(), loan.TotalInstallments(), loan.Status().String(),
		loan.StartDate(), loan.EndDate(), loan.OutstandingPrincipal(),
		loan.InstallmentsPaid(), loan.InstallmentsRemaining(),
		loan.NextInstallmentDate(), loan.LastInstallmentDate(), loan.FinalInstallmentDate(),
		loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

func insertInstallments(ctx context.Context, tx pkgpostgres.Querier, loanID string, installments []model.Installment) error {
	for _, inst := range installments {
		if err := writeInstallment(ctx, tx, loanID, inst, false); err != nil {
			return err
		}
	}
	return nil
}

func writeInstallment(ctx context.Context, tx pkgpostgres.Querier, loanID string, inst model.Installment, update bool) error {
	if update {
		return updateInstallmentRow(ctx, tx, loanID, inst)
	}
	query := `
		INSERT INTO loan_installments (
			loan_id, number, due_date, amount, principal, interest,
			opening_balance, closing_balance, days_in_period, status,
			paid_date, paid_amount, principal_paid, interest_paid
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	_, err := tx.Exec(ctx, query,
		loanID, inst.Number, inst.DueDate, inst.Amount, inst.Principal, inst.Interest,
		inst.OpeningBalance, inst.ClosingBalance, inst.DaysInPeriod, inst.Status.String(),
		inst.PaidDate, inst.PaidAmount, inst.PrincipalPaid, inst.InterestPaid,
	)
	if err != nil {
		return fmt.Errorf("insert installment %d: %w", inst.Number, err)
	}
	return nil
}

func updateInstallment(ctx context.Context, tx pkgpostgres.Querier, loanID string, installments []model.Installment, number int) error {
	for _, inst := range installments {
		if inst.Number == number {
			return updateInstallmentRow(ctx, tx, loanID, inst)
		}
	}
	return fmt.Errorf("%w: installment %d", model.ErrNotFound, number)
}

func updateInstallmentRow(ctx context.Context, tx pkgpostgres.Querier, loanID string, inst model.Installment) error {
	query := `
		UPDATE loan_installments SET
			amount          = $3,
			principal       = $4,
			interest        = $5,
			opening_balance = $6,
			closing_balance = $7,
			days_in_period  = $8,
			status          = $9,
			paid_date       = $10,
			paid_amount     = $11,
			principal_paid  = $12,
			interest_paid   = $13
		WHERE loan_id = $1 AND number = $2
	`
	tag, err := tx.Exec(ctx, query,
		loanID, inst.Number, inst.Amount, inst.Principal, inst.Interest,
		inst.OpeningBalance, inst.ClosingBalance, inst.DaysInPeriod, inst.Status.String(),
		inst.PaidDate, inst.PaidAmount, inst.PrincipalPaid, inst.InterestPaid,
	)
	if err != nil {
		return fmt.Errorf("update installment %d: %w", inst.Number, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: installment %d", model.ErrNotFound, inst.Number)
	}
	return nil
}

func insertRateHistory(ctx context.Context, tx pkgpostgres.Querier, loanID string, history []model.RateChange) error {
	query := `
		INSERT INTO interest_rate_changes (
			id, loan_id, rate, effective_from, effective_till,
			changed_by, reason, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	for _, rc := range history {
		_, err := tx.Exec(ctx, query,
			rc.ID, loanID, rc.Rate, rc.EffectiveFrom, rc.EffectiveTill,
			rc.ChangedBy, rc.Reason, rc.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert rate change %s: %w", rc.ID, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// read helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func (r *LoanRepo) findOne(ctx context.Context, query string, arg any) (model.Loan, error) {
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return model.Loan{}, err
	}

	installments, err := r.loadInstallments(ctx, loan.ID())
	if err != nil {
		return model.Loan{}, err
	}
	history, err := r.loadRateHistory(ctx, loan.ID())
	if err != nil {
		return model.Loan{}, err
	}
	transactions, err := r.loadTransactions(ctx, loan.ID())
	if err != nil {
		return model.Loan{}, err
	}

	return withChildren(loan, installments, history, transactions), nil
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, accountNumber, loanType                  string
		principal, interestRate, installmentAmount   decimal.Decimal
		tenureYears, totalInstallments               int
		statusStr                                    string
		startDate, endDate                           time.Time
		outstandingPrincipal                         decimal.Decimal
		installmentsPaid, installmentsRemaining      int
		nextInstallmentDate                          time.Time
		lastInstallmentDate                          *time.Time
		finalInstallmentDate, createdAt, updatedAt   time.Time
	)

	err := s.Scan(
		&id, &accountNumber, &loanType, &principal, &interestRate,
		&installmentAmount, &tenureYears, &totalInstallments, &statusStr,
		&startDate, &endDate, &outstandingPrincipal,
		&installmentsPaid, &installmentsRemaining,
		&nextInstallmentDate, &lastInstallmentDate, &finalInstallmentDate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, fmt.Errorf("%w: loan", model.ErrNotFound)
		}
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, accountNumber, loanType,
		principal, startDate, endDate,
		tenureYears, totalInstallments,
		interestRate, installmentAmount,
		status, outstandingPrincipal,
		installmentsPaid, installmentsRemaining,
		nextInstallmentDate, lastInstallmentDate, finalInstallmentDate,
		nil, nil, nil,
		createdAt, updatedAt,
	), nil
}

func withChildren(loan model.Loan, installments []model.Installment, history []model.RateChange, transactions []model.Transaction) model.Loan {
	return model.ReconstructLoan(
		loan.ID(), loan.AccountNumber(), loan.LoanType(),
		loan.Principal(), loan.StartDate(), loan.EndDate(),
		loan.TenureYears(), loan.TotalInstallments(),
		loan.CurrentRate(), loan.InstallmentAmount(),
		loan.Status(), loan.OutstandingPrincipal(),
		loan.InstallmentsPaid(), loan.InstallmentsRemaining(),
		loan.NextInstallmentDate(), loan.LastInstallmentDate(), loan.FinalInstallmentDate(),
		installments, history, transactions,
		loan.CreatedAt(), loan.UpdatedAt(),
	)
}

func (r *LoanRepo) loadInstallments(ctx context.Context, loanID string) ([]model.Installment, error) {
	query := `
		SELECT number, due_date, amount, principal, interest,
		       opening_balance, closing_balance, days_in_period, status,
		       paid_date, paid_amount, principal_paid, interest_paid
		FROM loan_installments
		WHERE loan_id = $1
		ORDER BY number
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		inst, err := scanInstallmentRow(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, rows.Err()
}

func scanInstallmentRow(s scannable) (model.Installment, error) {
	var (
		inst      model.Installment
		statusStr string
	)
	err := s.Scan(
		&inst.Number, &inst.DueDate, &inst.Amount, &inst.Principal, &inst.Interest,
		&inst.OpeningBalance, &inst.ClosingBalance, &inst.DaysInPeriod, &statusStr,
		&inst.PaidDate, &inst.PaidAmount, &inst.PrincipalPaid, &inst.InterestPaid,
	)
	if err != nil {
		return model.Installment{}, fmt.Errorf("scan installment: %w", err)
	}
	status, err := valueobject.NewInstallmentStatus(statusStr)
	if err != nil {
		return model.Installment{}, fmt.Errorf("parse installment status: %w", err)
	}
	inst.Status = status
	return inst, nil
}

func (r *LoanRepo) loadRateHistory(ctx context.Context, loanID string) ([]model.RateChange, error) {
	query := `
		SELECT id, rate, effective_from, effective_till, changed_by, reason, created_at
		FROM interest_rate_changes
		WHERE loan_id = $1
		ORDER BY effective_from, created_at
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query rate history: %w", err)
	}
	defer rows.Close()

	var history []model.RateChange
	for rows.Next() {
		var rc model.RateChange
		err := rows.Scan(&rc.ID, &rc.Rate, &rc.EffectiveFrom, &rc.EffectiveTill, &rc.ChangedBy, &rc.Reason, &rc.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan rate change: %w", err)
		}
		history = append(history, rc)
	}
	return history, rows.Err()
}

func (r *LoanRepo) loadTransactions(ctx context.Context, loanID string) ([]model.Transaction, error) {
	query := `
		SELECT id, installment_number, txn_date, txn_type, amount,
		       principal_amount, interest_amount, method, reference, remarks, created_at
		FROM loan_transactions
		WHERE loan_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		err := rows.Scan(
			&txn.ID, &txn.InstallmentNumber, &txn.Date, &txn.Type, &txn.Amount,
			&txn.PrincipalAmount, &txn.InterestAmount, &txn.Method, &txn.Reference, &txn.Remarks, &txn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}
