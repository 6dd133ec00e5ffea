package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resupply approvisionnement: entrada de gasoil al stock desde un proveedor.
type Resupply struct {
	ID          string
	OwnerID     string
	Date        time.Time
	Supplier    string
	Quantity    decimal.Decimal // litros
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal // Quantity × UnitPrice, calculado en servidor
	Receiver    string
	CreatedAt   time.Time
}

// RecordDate fecha usada por los filtros diarios.
func (r Resupply) RecordDate() time.Time { return r.Date }
