package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de camión usados por la tarifa de factures.
const (
	TruckType6Roues  = "6 roues"
	TruckType10Roues = "10 roues"
	TruckType12Roues = "12 roues"
)

// Machine camión o engin de la flota (en la UI histórica "trucker").
// TruckPlate es única por gestionnaire y es la clave de agrupación de los reportes.
type Machine struct {
	ID         string
	OwnerID    string
	Name       string
	TruckPlate string
	TruckType  string
	Balance    decimal.Decimal // puede quedar negativo tras facturar
	CreatedAt  time.Time
}

// Credit abono registrado sobre el saldo de una máquina.
type Credit struct {
	ID        string
	MachineID string
	OwnerID   string
	Amount    decimal.Decimal
	Date      time.Time
}
