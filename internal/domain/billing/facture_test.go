package billing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/billing"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

func TestUnitPriceFor(t *testing.T) {
	p, ok := billing.UnitPriceFor(entity.TruckType10Roues)
	require.True(t, ok)
	assert.Equal(t, "45000", p.String())

	_, ok = billing.UnitPriceFor("CHARGEUSE")
	assert.False(t, ok)
}

func TestCompute(t *testing.T) {
	f, err := billing.Compute(decimal.NewFromInt(30000), 3, decimal.NewFromInt(100000))
	require.NoError(t, err)
	assert.Equal(t, "90000", f.TotalAmount.String())
	assert.Equal(t, "10000", f.Status.String())
	assert.Equal(t, billing.StatusPaid, billing.StatusLabel(f.Status))
}

func TestCompute_SaldoExacto(t *testing.T) {
	f, err := billing.Compute(decimal.NewFromInt(80000), 1, decimal.NewFromInt(80000))
	require.NoError(t, err)
	assert.True(t, f.Status.IsZero())
	assert.Equal(t, billing.StatusPending, billing.StatusLabel(f.Status))
}

func TestCompute_SaldoInsuficiente(t *testing.T) {
	f, err := billing.Compute(decimal.NewFromInt(45000), 2, decimal.NewFromInt(50000))
	assert.True(t, errors.Is(err, domain.ErrInsufficientBalance))
	assert.Equal(t, "-40000", f.Status.String(), "el status negativo se devuelve para informar el faltante")
	assert.Equal(t, billing.StatusOverdue, billing.StatusLabel(f.Status))
}

func TestCompute_EntradaInvalida(t *testing.T) {
	_, err := billing.Compute(decimal.NewFromInt(45000), 0, decimal.NewFromInt(50000))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	_, err = billing.Compute(decimal.NewFromInt(-1), 1, decimal.NewFromInt(50000))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
