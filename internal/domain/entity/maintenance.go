package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maintenance compra de repuestos o servicio de mantenimiento.
type Maintenance struct {
	ID         string
	OwnerID    string
	ItemName   string
	UnitPrice  decimal.Decimal
	Quantity   decimal.Decimal
	TotalPrice decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}
