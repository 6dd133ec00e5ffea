package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice facture de viajes emitida a una máquina.
// Status = Balance − TotalAmount en el momento de emitir.
type Invoice struct {
	ID          string
	OwnerID     string
	MachineID   string
	Name        string
	TruckPlate  string
	TruckType   string
	UnitPrice   decimal.Decimal
	Trips       int
	TotalAmount decimal.Decimal
	Balance     decimal.Decimal
	Status      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}
