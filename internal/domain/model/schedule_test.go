package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

func TestGenerateSchedule(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("twelve month schedule at twelve percent", func(t *testing.T) {
		rows, err := model.GenerateSchedule(decimal.NewFromInt(120000), decimal.NewFromInt(12), 12, start)
		require.NoError(t, err)
		require.Len(t, rows, 12)

		// First installment is due on the start date itself, so the
		// period spans zero days and accrues no interest.
		first := rows[0]
		assert.Equal(t, 1, first.Number)
		assert.True(t, first.DueDate.Equal(start))
		assert.Equal(t, 0, first.DaysInPeriod)
		assert.Equal(t, "0.00", first.Interest.StringFixed(2))
		assert.Equal(t, "120000.00", first.OpeningBalance.StringFixed(2))
		assert.Equal(t, "10661.85", first.Amount.StringFixed(2))
		assert.Equal(t, "109338.15", first.ClosingBalance.StringFixed(2))

		// 2024 is a leap year: Feb 1 to Mar 1 is 29 days.
		third := rows[2]
		assert.Equal(t, 29, third.DaysInPeriod)
		assert.Equal(t, "951.43", third.Interest.StringFixed(2))
		assert.Equal(t, "99790.65", third.OpeningBalance.StringFixed(2))
		assert.Equal(t, "90080.23", third.ClosingBalance.StringFixed(2))

		// Last row absorbs the residual balance.
		last := rows[11]
		assert.Equal(t, "9233.29", last.Principal.StringFixed(2))
		assert.Equal(t, "0.00", last.ClosingBalance.StringFixed(2))
		assert.Equal(t, "91.07", last.Interest.StringFixed(2))
		assert.Equal(t, "9324.36", last.Amount.StringFixed(2))
	})

	t.Run("principal components sum to the loan principal", func(t *testing.T) {
		principal := decimal.NewFromInt(500000)
		rows, err := model.GenerateSchedule(principal, decimal.NewFromFloat(8.5), 60, start)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, r := range rows {
			sum = sum.Add(r.Principal)
		}
		assert.True(t, sum.Equal(principal), "got %s", sum)
	})

	t.Run("balance chain is consistent", func(t *testing.T) {
		rows, err := model.GenerateSchedule(decimal.NewFromInt(250000), decimal.NewFromInt(10), 24, start)
		require.NoError(t, err)

		for i, r := range rows {
			assert.True(t, r.ClosingBalance.Equal(r.OpeningBalance.Sub(r.Principal)),
				"row %d: closing %s != opening %s - principal %s", r.Number, r.ClosingBalance, r.OpeningBalance, r.Principal)
			if i > 0 {
				assert.True(t, r.OpeningBalance.Equal(rows[i-1].ClosingBalance), "row %d opening", r.Number)
			}
			assert.Equal(t, valueobject.InstallmentStatusPending, r.Status)
			assert.Nil(t, r.PaidDate)
		}
	})

	t.Run("due dates advance by calendar month", func(t *testing.T) {
		rows, err := model.GenerateSchedule(decimal.NewFromInt(60000), decimal.NewFromInt(9), 6, start)
		require.NoError(t, err)

		for i, r := range rows {
			want := start.AddDate(0, i, 0)
			assert.True(t, r.DueDate.Equal(want), "row %d: got %s want %s", r.Number, r.DueDate, want)
		}
	})

	t.Run("zero rate loan has no interest on any row", func(t *testing.T) {
		rows, err := model.GenerateSchedule(decimal.NewFromInt(12000), decimal.Zero, 12, start)
		require.NoError(t, err)

		for _, r := range rows {
			assert.True(t, r.Interest.IsZero(), "row %d interest %s", r.Number, r.Interest)
			assert.Equal(t, "1000.00", r.Amount.StringFixed(2))
		}
		assert.Equal(t, "0.00", rows[11].ClosingBalance.StringFixed(2))
	})

	t.Run("invalid inputs are rejected", func(t *testing.T) {
		_, err := model.GenerateSchedule(decimal.NewFromInt(-1), decimal.NewFromInt(10), 12, start)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)

		_, err = model.GenerateSchedule(decimal.NewFromInt(1000), decimal.NewFromInt(10), 0, start)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})
}
