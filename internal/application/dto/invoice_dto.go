package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest facture de viajes. Sin UnitPrice se aplica la tarifa del tipo de camión.
type CreateInvoiceRequest struct {
	MachineID  string           `json:"truckerId,omitempty"`
	TruckPlate string           `json:"truckPlate,omitempty"`
	UnitPrice  *decimal.Decimal `json:"unitPrice,omitempty"`
	Trips      int              `json:"trips"`
	Date       *time.Time       `json:"date,omitempty"`
}

// InvoiceResponse salida de una facture.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	MachineID   string          `json:"truckerId,omitempty"`
	Name        string          `json:"name"`
	TruckPlate  string          `json:"truckPlate"`
	TruckType   string          `json:"truckType"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Trips       int             `json:"trips"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Balance     decimal.Decimal `json:"balance"`
	Status      decimal.Decimal `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	Date        time.Time       `json:"date"`
}
