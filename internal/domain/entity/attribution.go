package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AttributionKind discrimina los dos tipos de registro que comparten la colección.
type AttributionKind string

const (
	KindAttribution AttributionKind = "attribution" // entrega de litros
	KindChrono      AttributionKind = "chrono"      // sesión cronometrada de uso
)

// ClassifyAttribution regla de ingesta para registros sin kind explícito:
// una sesión chrono es la que trae hora de inicio.
func ClassifyAttribution(startTime string) AttributionKind {
	if strings.TrimSpace(startTime) != "" {
		return KindChrono
	}
	return KindAttribution
}

// Attribution entrega de gasoil a una máquina o sesión chrono.
// Los campos numéricos opcionales son NullDecimal: inválido cuenta como cero.
type Attribution struct {
	ID            string
	OwnerID       string
	MachineID     string
	Kind          AttributionKind
	TruckPlate    string
	MachineName   string
	MachineType   string
	Liters        decimal.NullDecimal
	Date          time.Time // zero = fecha desconocida
	Operator      string
	Activity      string
	ChauffeurName string

	// Solo chrono.
	StartTime       string // hora local "15:04"
	EndTime         string
	DurationMinutes *int   // nil en registros anteriores a la migración
	DurationText    string // formato legado "{H}h {M}m"
	GasoilConsumed  decimal.NullDecimal
	VolumeSable     decimal.NullDecimal
	StartKmPhoto    string // clave en el photo store
	EndKmPhoto      string

	CreatedAt time.Time
}

// IsChrono indica si el registro es una sesión de uso.
func (a Attribution) IsChrono() bool { return a.Kind == KindChrono }

// RecordDate fecha usada por los filtros diarios.
func (a Attribution) RecordDate() time.Time { return a.Date }

// MachineKey placa usada para agrupar por máquina.
func (a Attribution) MachineKey() string { return a.TruckPlate }
