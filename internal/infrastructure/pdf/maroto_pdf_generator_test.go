package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

func TestFormatFCFA(t *testing.T) {
	assert.Equal(t, "0 FCFA", formatFCFA(decimal.Zero))
	assert.Equal(t, "900 FCFA", formatFCFA(decimal.NewFromInt(900)))
	assert.Equal(t, "90 000 FCFA", formatFCFA(decimal.NewFromInt(90000)))
	assert.Equal(t, "1 250 000 FCFA", formatFCFA(decimal.NewFromInt(1250000)))
	assert.Equal(t, "-40 000 FCFA", formatFCFA(decimal.NewFromInt(-40000)))
}

func TestInvoiceNumber(t *testing.T) {
	inv := &entity.Invoice{ID: "3f2a9c1e-0000-4000-8000-000000000000", Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "FAC-20250105-3F2A9C1E", invoiceNumber(inv))
}

func TestGenerateInvoicePDF(t *testing.T) {
	inv := &entity.Invoice{
		ID:          "3f2a9c1e-0000-4000-8000-000000000000",
		Name:        "Camion Benne",
		TruckPlate:  "LT-4521-A",
		TruckType:   entity.TruckType10Roues,
		UnitPrice:   decimal.NewFromInt(45000),
		Trips:       2,
		TotalAmount: decimal.NewFromInt(90000),
		Balance:     decimal.NewFromInt(100000),
		Status:      decimal.NewFromInt(10000),
		Date:        time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv, "MineGest")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateInvoicePDF_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), nil, "MineGest")
	assert.Error(t, err)
}
