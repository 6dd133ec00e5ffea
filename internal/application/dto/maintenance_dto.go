package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest compra de mantenimiento.
type CreateMaintenanceRequest struct {
	ItemName  string          `json:"itemName"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      *time.Time      `json:"date,omitempty"`
}

// MaintenanceResponse salida de una compra.
type MaintenanceResponse struct {
	ID         string          `json:"id"`
	ItemName   string          `json:"itemName"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   decimal.Decimal `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Date       time.Time       `json:"date"`
}
