package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

var (
	hundred     = decimal.NewFromInt(100)
	twelve      = decimal.NewFromInt(12)
	daysPerYear = decimal.NewFromInt(365)
)

// GenerateSchedule builds the complete repayment schedule for a new loan.
//
// Due dates fall on startDate + k months for k = 0..termMonths-1, so the
// first installment is due on the start date itself. Interest accrues on a
// daily basis: each row's interest is
//
//	openingBalance * annualRate/100/365 * daysInPeriod
//
// where daysInPeriod counts the actual calendar days since the previous due
// date, anchored by installment-number arithmetic on the start date. The
// first period therefore spans zero days and carries no interest; its EMI is
// applied entirely to principal. The last row's principal is forced to the
// remaining balance so the schedule closes at exactly zero, and its amount
// absorbs the accumulated rounding drift.
//
// All monetary values are rounded to 2 decimal places at the point they are
// stored on a row.
func GenerateSchedule(principal, annualRate decimal.Decimal, termMonths int, startDate time.Time) ([]Installment, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidArgument, principal)
	}

	monthlyRate := annualRate.Div(hundred).Div(twelve)
	emi, err := ComputeInstallment(principal, monthlyRate, termMonths)
	if err != nil {
		return nil, err
	}

	rows := make([]Installment, 0, termMonths)
	opening := principal.Round(2)

	for n := 1; n <= termMonths; n++ {
		dueDate := installmentDueDate(startDate, n)
		days := daysInPeriod(startDate, n)

		interest := accrueInterest(opening, annualRate, days)
		principalPart := emi.Sub(interest)
		amount := emi
		closing := opening.Sub(principalPart)

		if n == termMonths {
			principalPart = opening
			closing = decimal.Zero
			amount = principalPart.Add(interest)
		}

		rows = append(rows, Installment{
			Number:         n,
			DueDate:        dueDate,
			Amount:         amount,
			Principal:      principalPart,
			Interest:       interest,
			OpeningBalance: opening,
			ClosingBalance: closing,
			DaysInPeriod:   days,
			Status:         valueobject.InstallmentStatusPending,
		})

		opening = closing
	}

	return rows, nil
}

// installmentDueDate returns the due date of the n-th installment (1-based).
func installmentDueDate(startDate time.Time, n int) time.Time {
	return startDate.AddDate(0, n-1, 0)
}

// daysInPeriod returns the calendar days covered by the n-th installment.
// The period runs from the previous due date to the current one; installment
// 1 spans zero days because its due date is the start date itself.
func daysInPeriod(startDate time.Time, n int) int {
	if n <= 1 {
		return 0
	}
	prev := installmentDueDate(startDate, n-1)
	due := installmentDueDate(startDate, n)
	return int(due.Sub(prev).Hours() / 24)
}

// accrueInterest computes daily-basis interest on a balance, rounded to
// 2 decimal places.
func accrueInterest(balance, annualRate decimal.Decimal, days int) decimal.Decimal {
	dailyRate := annualRate.Div(hundred).Div(daysPerYear)
	return balance.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days))).Round(2)
}
