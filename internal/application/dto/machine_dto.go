package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMachineRequest alta de una máquina.
type CreateMachineRequest struct {
	Name       string          `json:"name"`
	TruckPlate string          `json:"truckPlate"`
	TruckType  string          `json:"truckType"`
	Balance    decimal.Decimal `json:"balance"`
}

// MachineResponse salida de una máquina.
type MachineResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	TruckPlate string          `json:"truckPlate"`
	TruckType  string          `json:"truckType"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CreateMachineResponse máquina creada más su QR (PNG data URL).
type CreateMachineResponse struct {
	Machine MachineResponse `json:"trucker"`
	QRCode  string          `json:"qrCode"`
}

// MachineQRPayload contenido codificado en el QR de la máquina.
type MachineQRPayload struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	TruckPlate string          `json:"truckPlate"`
	TruckType  string          `json:"truckType"`
	Balance    decimal.Decimal `json:"balance"`
}

// AddCreditRequest abono sobre el saldo; sin fecha se usa la actual.
type AddCreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   *time.Time      `json:"date,omitempty"`
}

// CreditResponse crédito registrado.
type CreditResponse struct {
	ID        string          `json:"id"`
	MachineID string          `json:"truckerId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

// CreditsBilanResponse total de créditos del dueño.
type CreditsBilanResponse struct {
	TotalCredits decimal.Decimal `json:"totalCredits"`
}
