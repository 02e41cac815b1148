package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendstack/loan-servicing/internal/domain/model"
)

func TestComputeInstallment(t *testing.T) {
	monthly := func(annual string) decimal.Decimal {
		return decimal.RequireFromString(annual).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
	}

	t.Run("standard annuity", func(t *testing.T) {
		// 120000 at 12% annual over 12 months.
		emi, err := model.ComputeInstallment(decimal.NewFromInt(120000), monthly("12"), 12)
		require.NoError(t, err)
		assert.Equal(t, "10661.85", emi.StringFixed(2))
	})

	t.Run("zero rate divides principal evenly", func(t *testing.T) {
		emi, err := model.ComputeInstallment(decimal.NewFromInt(12000), decimal.Zero, 12)
		require.NoError(t, err)
		assert.Equal(t, "1000.00", emi.StringFixed(2))
	})

	t.Run("zero rate with remainder rounds to cents", func(t *testing.T) {
		emi, err := model.ComputeInstallment(decimal.NewFromInt(10000), decimal.Zero, 3)
		require.NoError(t, err)
		assert.Equal(t, "3333.33", emi.StringFixed(2))
	})

	t.Run("zero principal yields zero installment", func(t *testing.T) {
		emi, err := model.ComputeInstallment(decimal.Zero, monthly("12"), 12)
		require.NoError(t, err)
		assert.True(t, emi.IsZero())
	})

	t.Run("non-positive term is rejected", func(t *testing.T) {
		_, err := model.ComputeInstallment(decimal.NewFromInt(1000), monthly("12"), 0)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)

		_, err = model.ComputeInstallment(decimal.NewFromInt(1000), monthly("12"), -3)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("negative principal is rejected", func(t *testing.T) {
		_, err := model.ComputeInstallment(decimal.NewFromInt(-1), monthly("12"), 12)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		_, err := model.ComputeInstallment(decimal.NewFromInt(1000), monthly("-1"), 12)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := model.ComputeInstallment(decimal.NewFromInt(500000), monthly("8.5"), 240)
		require.NoError(t, err)
		b, err := model.ComputeInstallment(decimal.NewFromInt(500000), monthly("8.5"), 240)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})
}
