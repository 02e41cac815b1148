package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lendstack/loan-servicing/internal/domain/event"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy. The aggregate
// owns its installments, rate history, and transaction log; every mutating
// operation recomputes the denormalized summary fields from the installment
// set rather than applying incremental deltas.
type Loan struct {
	id                    string
	accountNumber         string
	loanType              string
	principal             decimal.Decimal
	startDate             time.Time
	endDate               time.Time
	tenureYears           int
	totalInstallments     int
	currentRate           decimal.Decimal
	installmentAmount     decimal.Decimal
	status                valueobject.LoanStatus
	outstandingPrincipal  decimal.Decimal
	installmentsPaid      int
	installmentsRemaining int
	nextInstallmentDate   time.Time
	lastInstallmentDate   *time.Time
	finalInstallmentDate  time.Time
	createdAt             time.Time
	updatedAt             time.Time

	installments []Installment
	rateHistory  []RateChange
	transactions []Transaction

	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan opens a loan account, generates its repayment schedule, and records
// the opening interest rate in the rate history. The loan starts ACTIVE with
// its first installment due on the start date.
func NewLoan(
	accountNumber, loanType string,
	principal decimal.Decimal,
	startDate time.Time,
	tenureYears int,
	annualRate decimal.Decimal,
	createdBy string,
	now time.Time,
) (Loan, error) {
	if accountNumber == "" {
		return Loan{}, fmt.Errorf("%w: account number is required", ErrInvalidArgument)
	}
	if loanType == "" {
		return Loan{}, fmt.Errorf("%w: loan type is required", ErrInvalidArgument)
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Loan{}, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidArgument, principal)
	}
	if tenureYears <= 0 {
		return Loan{}, fmt.Errorf("%w: tenure years must be positive, got %d", ErrInvalidArgument, tenureYears)
	}
	if annualRate.IsNegative() {
		return Loan{}, fmt.Errorf("%w: interest rate must not be negative, got %s", ErrInvalidArgument, annualRate)
	}

	termMonths := tenureYears * 12

	schedule, err := GenerateSchedule(principal, annualRate, termMonths, startDate)
	if err != nil {
		return Loan{}, err
	}
	emi := schedule[0].Amount

	endDate := startDate.AddDate(tenureYears, 0, 0)

	loan := Loan{
		id:                    uuid.New().String(),
		accountNumber:         accountNumber,
		loanType:              loanType,
		principal:             principal.Round(2),
		startDate:             startDate,
		endDate:               endDate,
		tenureYears:           tenureYears,
		totalInstallments:     termMonths,
		currentRate:           annualRate,
		installmentAmount:     emi,
		status:                valueobject.LoanStatusActive,
		outstandingPrincipal:  principal.Round(2),
		installmentsPaid:      0,
		installmentsRemaining: termMonths,
		nextInstallmentDate:   startDate,
		finalInstallmentDate:  endDate,
		createdAt:             now,
		updatedAt:             now,
		installments:          schedule,
		rateHistory: []RateChange{{
			ID:            uuid.New().String(),
			Rate:          annualRate,
			EffectiveFrom: startDate,
			ChangedBy:     createdBy,
			Reason:        "Initial loan creation",
			CreatedAt:     now,
		}},
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		loan.id, accountNumber, loan.principal, annualRate, emi, termMonths, startDate,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, accountNumber, loanType string,
	principal decimal.Decimal,
	startDate, endDate time.Time,
	tenureYears, totalInstallments int,
	currentRate, installmentAmount decimal.Decimal,
	status valueobject.LoanStatus,
	outstandingPrincipal decimal.Decimal,
	installmentsPaid, installmentsRemaining int,
	nextInstallmentDate time.Time,
	lastInstallmentDate *time.Time,
	finalInstallmentDate time.Time,
	installments []Installment,
	rateHistory []RateChange,
	transactions []Transaction,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                    id,
		accountNumber:         accountNumber,
		loanType:              loanType,
		principal:             principal,
		startDate:             startDate,
		endDate:               endDate,
		tenureYears:           tenureYears,
		totalInstallments:     totalInstallments,
		currentRate:           currentRate,
		installmentAmount:     installmentAmount,
		status:                status,
		outstandingPrincipal:  outstandingPrincipal,
		installmentsPaid:      installmentsPaid,
		installmentsRemaining: installmentsRemaining,
		nextInstallmentDate:   nextInstallmentDate,
		lastInstallmentDate:   lastInstallmentDate,
		finalInstallmentDate:  finalInstallmentDate,
		installments:          installments,
		rateHistory:           rateHistory,
		transactions:          transactions,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Rate change
// ---------------------------------------------------------------------------

// ApplyRateChange updates the loan's interest rate, closes the open rate
// history entry, appends the new one, and recalculates every pending
// installment due on or after effectiveFrom. Paid installments are never
// touched. When no pending installment falls in range, only the rate and
// history change; the EMI keeps its old value because no row was rewritten.
func (l Loan) ApplyRateChange(
	newRate decimal.Decimal,
	effectiveFrom time.Time,
	reason, changedBy string,
	now time.Time,
) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, fmt.Errorf("%w: cannot change the rate of a %s loan", ErrConflict, l.status)
	}
	if newRate.LessThanOrEqual(decimal.Zero) || newRate.GreaterThan(hundred) {
		return l, fmt.Errorf("%w: interest rate must be between 0.01 and 100, got %s", ErrInvalidArgument, newRate)
	}

	next := l
	next.installments = copyInstallments(l.installments)
	next.rateHistory = copyRateHistory(l.rateHistory)
	next.domainEvents = copyEvents(l.domainEvents)

	// Close the currently open rate period and open the new one.
	for i := range next.rateHistory {
		if next.rateHistory[i].IsOpen() {
			till := effectiveFrom
			next.rateHistory[i].EffectiveTill = &till
		}
	}
	next.rateHistory = append(next.rateHistory, RateChange{
		ID:            uuid.New().String(),
		Rate:          newRate,
		EffectiveFrom: effectiveFrom,
		ChangedBy:     changedBy,
		Reason:        reason,
		CreatedAt:     now,
	})

	oldRate := next.currentRate
	next.currentRate = newRate
	next.updatedAt = now

	// Pending installments due on or after the effective date, in order.
	var pending []int
	for i, inst := range next.installments {
		if inst.IsPending() && !inst.DueDate.Before(effectiveFrom) {
			pending = append(pending, i)
		}
	}

	newEMI := next.installmentAmount
	if len(pending) > 0 {
		balance := next.startingBalanceForRecalc()

		monthlyRate := newRate.Div(hundred).Div(twelve)
		emi, err := ComputeInstallment(balance, monthlyRate, len(pending))
		if err != nil {
			return l, err
		}
		newEMI = emi
		next.installmentAmount = emi

		for k, i := range pending {
			inst := &next.installments[i]
			days := daysInPeriod(next.startDate, inst.Number)

			interest := accrueInterest(balance, newRate, days)
			principalPart := emi.Sub(interest)
			amount := emi
			closing := balance.Sub(principalPart)

			if k == len(pending)-1 {
				principalPart = balance
				closing = decimal.Zero
				amount = principalPart.Add(interest)
			}

			inst.Amount = amount
			inst.Principal = principalPart
			inst.Interest = interest
			inst.OpeningBalance = balance.Round(2)
			inst.ClosingBalance = closing
			inst.DaysInPeriod = days

			balance = closing
		}
	}

	next.domainEvents = append(next.domainEvents, event.NewInterestRateChanged(
		l.id, oldRate, newRate, effectiveFrom, newEMI, reason,
	))

	return next, nil
}

// startingBalanceForRecalc returns the closing balance of the most recently
// paid installment, or the initial principal when nothing has been paid.
func (l Loan) startingBalanceForRecalc() decimal.Decimal {
	balance := l.principal
	highest := 0
	for _, inst := range l.installments {
		if inst.IsPaid() && inst.Number > highest {
			highest = inst.Number
			balance = inst.ClosingBalance
		}
	}
	return balance
}

// ---------------------------------------------------------------------------
// Payment ledger
// ---------------------------------------------------------------------------

// ApplyPayment settles the pending installment with the given number and
// appends a transaction to the ledger. The principal/interest split is copied
// from the installment's precomputed components; the paid amount is recorded
// verbatim and does not reallocate the split.
func (l Loan) ApplyPayment(
	installmentNumber int,
	amount decimal.Decimal,
	paymentDate time.Time,
	method, reference, remarks string,
	now time.Time,
) (Loan, Transaction, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, Transaction{}, fmt.Errorf("%w: cannot pay a %s loan", ErrConflict, l.status)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return l, Transaction{}, fmt.Errorf("%w: payment amount must be positive, got %s", ErrInvalidArgument, amount)
	}

	idx := -1
	for i, inst := range l.installments {
		if inst.Number == installmentNumber && inst.IsPending() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l, Transaction{}, fmt.Errorf("%w: no pending installment %d", ErrNotFound, installmentNumber)
	}

	next := l
	next.installments = copyInstallments(l.installments)
	next.transactions = copyTransactions(l.transactions)
	next.domainEvents = copyEvents(l.domainEvents)

	inst := &next.installments[idx]

	txn := Transaction{
		ID:                uuid.New().String(),
		InstallmentNumber: inst.Number,
		Date:              paymentDate,
		Type:              TransactionTypeEMI,
		Amount:            amount,
		PrincipalAmount:   inst.Principal,
		InterestAmount:    inst.Interest,
		Method:            method,
		Reference:         reference,
		Remarks:           remarks,
		CreatedAt:         now,
	}

	paid := paymentDate
	inst.Status = valueobject.InstallmentStatusPaid
	inst.PaidDate = &paid
	inst.PaidAmount = amount
	inst.PrincipalPaid = inst.Principal
	inst.InterestPaid = inst.Interest

	next.transactions = append(next.transactions, txn)
	next.refreshSummary(now)

	next.domainEvents = append(next.domainEvents, event.NewPaymentRecorded(
		l.id, txn.ID, inst.Number, amount, next.outstandingPrincipal,
	))

	return next, txn, nil
}

// ReversePayment undoes a payment. Only the most recent transaction for the
// loan (by payment date, tie-broken by creation order) may be reversed, so
// the ledger is only ever truncated from its tail. The target installment is
// reset to pending and the summary fields are recomputed from the full
// installment set.
func (l Loan) ReversePayment(transactionID string, now time.Time) (Loan, error) {
	idx := -1
	for i, txn := range l.transactions {
		if txn.ID == transactionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l, fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
	}
	if idx != l.mostRecentTransactionIndex() {
		return l, fmt.Errorf("%w: only the most recent payment can be reversed", ErrForbidden)
	}

	next := l
	next.installments = copyInstallments(l.installments)
	next.transactions = copyTransactions(l.transactions)
	next.domainEvents = copyEvents(l.domainEvents)

	target := next.transactions[idx]
	next.transactions = append(next.transactions[:idx], next.transactions[idx+1:]...)

	for i := range next.installments {
		if next.installments[i].Number == target.InstallmentNumber {
			inst := &next.installments[i]
			inst.Status = valueobject.InstallmentStatusPending
			inst.PaidDate = nil
			inst.PaidAmount = decimal.Zero
			inst.PrincipalPaid = decimal.Zero
			inst.InterestPaid = decimal.Zero
			break
		}
	}

	next.refreshSummary(now)

	next.domainEvents = append(next.domainEvents, event.NewPaymentReversed(
		l.id, target.ID, target.InstallmentNumber, next.outstandingPrincipal,
	))

	return next, nil
}

// mostRecentTransactionIndex returns the index of the latest transaction by
// payment date; ties fall to the later entry, preserving creation order.
func (l Loan) mostRecentTransactionIndex() int {
	latest := -1
	for i, txn := range l.transactions {
		if latest < 0 || !txn.Date.Before(l.transactions[latest].Date) {
			latest = i
		}
	}
	return latest
}

// refreshSummary recomputes every denormalized summary field from the
// installment set, so apply/reverse sequences can never drift.
func (l *Loan) refreshSummary(now time.Time) {
	paid := 0
	outstanding := l.principal
	highestPaid := 0
	var lastPaidDate *time.Time
	var nextDue *time.Time

	for _, inst := range l.installments {
		switch {
		case inst.IsPaid():
			paid++
			if inst.Number > highestPaid {
				highestPaid = inst.Number
				outstanding = inst.ClosingBalance
			}
			if inst.PaidDate != nil && (lastPaidDate == nil || inst.PaidDate.After(*lastPaidDate)) {
				d := *inst.PaidDate
				lastPaidDate = &d
			}
		case inst.IsPending():
			if nextDue == nil || inst.DueDate.Before(*nextDue) {
				d := inst.DueDate
				nextDue = &d
			}
		}
	}

	l.installmentsPaid = paid
	l.installmentsRemaining = l.totalInstallments - paid
	l.outstandingPrincipal = outstanding
	l.lastInstallmentDate = lastPaidDate
	if nextDue != nil {
		l.nextInstallmentDate = *nextDue
	} else {
		l.nextInstallmentDate = l.finalInstallmentDate
	}
	l.updatedAt = now
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// UpdateDetails changes the editable fields of a loan: its type and status.
func (l Loan) UpdateDetails(loanType string, status valueobject.LoanStatus, now time.Time) (Loan, error) {
	if loanType == "" {
		return l, fmt.Errorf("%w: loan type is required", ErrInvalidArgument)
	}
	if status.IsZero() {
		return l, fmt.Errorf("%w: loan status is required", ErrInvalidArgument)
	}

	next := l
	next.loanType = loanType
	next.status = status
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// Close soft-deletes the loan by marking it CLOSED. Its history stays intact.
func (l Loan) Close(now time.Time) (Loan, error) {
	if l.status.Equal(valueobject.LoanStatusClosed) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusClosed
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanClosed(l.id))
	return next, nil
}

// HasPayments reports whether any payment has ever been recorded. A loan
// with payments may only be soft-closed, never hard-deleted.
func (l Loan) HasPayments() bool {
	if len(l.transactions) > 0 {
		return true
	}
	for _, inst := range l.installments {
		if inst.IsPaid() {
			return true
		}
	}
	return false
}

// EffectiveRateOn returns the interest rate in force on the given date,
// falling back to the current rate when no history entry covers it.
func (l Loan) EffectiveRateOn(date time.Time) decimal.Decimal {
	best := -1
	for i, rc := range l.rateHistory {
		if rc.Covers(date) && (best < 0 || rc.EffectiveFrom.After(l.rateHistory[best].EffectiveFrom)) {
			best = i
		}
	}
	if best < 0 {
		return l.currentRate
	}
	return l.rateHistory[best].Rate
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                            { return l.id }
func (l Loan) AccountNumber() string                 { return l.accountNumber }
func (l Loan) LoanType() string                      { return l.loanType }
func (l Loan) Principal() decimal.Decimal            { return l.principal }
func (l Loan) StartDate() time.Time                  { return l.startDate }
func (l Loan) EndDate() time.Time                    { return l.endDate }
func (l Loan) TenureYears() int                      { return l.tenureYears }
func (l Loan) TotalInstallments() int                { return l.totalInstallments }
func (l Loan) CurrentRate() decimal.Decimal          { return l.currentRate }
func (l Loan) InstallmentAmount() decimal.Decimal    { return l.installmentAmount }
func (l Loan) Status() valueobject.LoanStatus        { return l.status }
func (l Loan) OutstandingPrincipal() decimal.Decimal { return l.outstandingPrincipal }
func (l Loan) InstallmentsPaid() int                 { return l.installmentsPaid }
func (l Loan) InstallmentsRemaining() int            { return l.installmentsRemaining }
func (l Loan) NextInstallmentDate() time.Time        { return l.nextInstallmentDate }
func (l Loan) LastInstallmentDate() *time.Time       { return l.lastInstallmentDate }
func (l Loan) FinalInstallmentDate() time.Time       { return l.finalInstallmentDate }
func (l Loan) CreatedAt() time.Time                  { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                  { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent     { return l.domainEvents }

// Installments returns a defensive copy of the repayment schedule.
func (l Loan) Installments() []Installment {
	return copyInstallments(l.installments)
}

// RateHistory returns a defensive copy of the interest rate history.
func (l Loan) RateHistory() []RateChange {
	return copyRateHistory(l.rateHistory)
}

// Transactions returns a defensive copy of the payment log.
func (l Loan) Transactions() []Transaction {
	return copyTransactions(l.transactions)
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func copyEvents(in []event.DomainEvent) []event.DomainEvent {
	if in == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(in))
	copy(out, in)
	return out
}

func copyInstallments(in []Installment) []Installment {
	if in == nil {
		return nil
	}
	out := make([]Installment, len(in))
	copy(out, in)
	return out
}

func copyRateHistory(in []RateChange) []RateChange {
	if in == nil {
		return nil
	}
	out := make([]RateChange, len(in))
	copy(out, in)
	return out
}

func copyTransactions(in []Transaction) []Transaction {
	if in == nil {
		return nil
	}
	out := make([]Transaction, len(in))
	copy(out, in)
	return out
}
