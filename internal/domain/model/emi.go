package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ComputeInstallment calculates the fixed periodic payment (EMI) for a loan.
//
// Parameters:
//   - principal:    the amount being amortized
//   - periodicRate: the per-period interest rate as a decimal fraction
//     (e.g. an annual rate of 12% paid monthly is 0.01)
//   - termPeriods:  number of payment periods
//
// A zero rate degenerates to an even split of the principal. Otherwise the
// standard annuity formula applies:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The power term is computed in float64 and the surrounding arithmetic in
// decimal; the result is rounded to 2 decimal places (half away from zero).
func ComputeInstallment(principal, periodicRate decimal.Decimal, termPeriods int) (decimal.Decimal, error) {
	if termPeriods <= 0 {
		return decimal.Zero, fmt.Errorf("%w: term periods must be positive, got %d", ErrInvalidArgument, termPeriods)
	}
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: principal must not be negative, got %s", ErrInvalidArgument, principal)
	}
	if periodicRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate must not be negative, got %s", ErrInvalidArgument, periodicRate)
	}

	if periodicRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termPeriods))).Round(2), nil
	}

	factor := math.Pow(decimal.NewFromInt(1).Add(periodicRate).InexactFloat64(), float64(termPeriods))
	factorDec := decimal.NewFromFloat(factor)

	payment := principal.
		Mul(periodicRate).
		Mul(factorDec).
		Div(factorDec.Sub(decimal.NewFromInt(1)))

	return payment.Round(2), nil
}
