package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// Tariff precio por viaje (FCFA) según el tipo de camión.
var Tariff = map[string]decimal.Decimal{
	entity.TruckType6Roues:  decimal.NewFromInt(30000),
	entity.TruckType10Roues: decimal.NewFromInt(45000),
	entity.TruckType12Roues: decimal.NewFromInt(80000),
}

// UnitPriceFor tarifa del tipo de camión; ok=false si el tipo no tiene tarifa.
func UnitPriceFor(truckType string) (decimal.Decimal, bool) {
	p, ok := Tariff[truckType]
	return p, ok
}

// Facture importes calculados de una facture.
type Facture struct {
	UnitPrice   decimal.Decimal
	Trips       int
	TotalAmount decimal.Decimal
	Balance     decimal.Decimal
	Status      decimal.Decimal // Balance − TotalAmount
}

// Compute TotalAmount = UnitPrice × Trips; Status = Balance − TotalAmount.
// Devuelve ErrInsufficientBalance si el saldo no cubre el total.
func Compute(unitPrice decimal.Decimal, trips int, balance decimal.Decimal) (Facture, error) {
	if trips <= 0 || unitPrice.IsNegative() {
		return Facture{}, domain.ErrInvalidInput
	}
	total := unitPrice.Mul(decimal.NewFromInt(int64(trips)))
	f := Facture{
		UnitPrice:   unitPrice,
		Trips:       trips,
		TotalAmount: total,
		Balance:     balance,
		Status:      balance.Sub(total),
	}
	if f.Status.IsNegative() {
		return f, domain.ErrInsufficientBalance
	}
	return f, nil
}

// Etiquetas de estado mostradas en la facture.
const (
	StatusPaid    = "Payé"
	StatusPending = "Solde épuisé"
	StatusOverdue = "Impayé"
)

// StatusLabel etiqueta de un status: positivo queda saldo, cero agota el saldo, negativo es deuda.
func StatusLabel(status decimal.Decimal) string {
	switch {
	case status.IsPositive():
		return StatusPaid
	case status.IsZero():
		return StatusPending
	default:
		return StatusOverdue
	}
}
