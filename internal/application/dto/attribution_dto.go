package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAttributionRequest entrega de litros a una máquina.
type CreateAttributionRequest struct {
	TruckPlate    string          `json:"truckPlate"`
	Liters        decimal.Decimal `json:"liters"`
	Date          *time.Time      `json:"date,omitempty"`
	Operator      string          `json:"operator,omitempty"`
	Activity      string          `json:"activity,omitempty"`
	MachineType   string          `json:"machineType,omitempty"`
	ChauffeurName string          `json:"chauffeurName,omitempty"`
}

// CreateChronoRequest cierre de una sesión cronometrada.
// La duración se toma de DurationMinutes o, si falta, de StartedAt/EndedAt.
// Las fotos llegan como data URL base64.
type CreateChronoRequest struct {
	TruckPlate      string              `json:"truckPlate"`
	MachineType     string              `json:"machineType,omitempty"`
	ChauffeurName   string              `json:"chauffeurName,omitempty"`
	Activity        string              `json:"activity,omitempty"`
	StartedAt       *time.Time          `json:"startedAt,omitempty"`
	EndedAt         *time.Time          `json:"endedAt,omitempty"`
	StartTime       string              `json:"startTime,omitempty"`
	EndTime         string              `json:"endTime,omitempty"`
	DurationMinutes *int                `json:"durationMinutes,omitempty"`
	GasoilConsumed  decimal.NullDecimal `json:"gasoilConsumed"`
	VolumeSable     decimal.NullDecimal `json:"volumeSable"`
	Date            *time.Time          `json:"date,omitempty"`
	StartKmPhoto    string              `json:"startKmPhoto,omitempty"`
	EndKmPhoto      string              `json:"endKmPhoto,omitempty"`
}

// AttributionResponse salida común de entregas y sesiones chrono.
type AttributionResponse struct {
	ID              string              `json:"id"`
	Kind            string              `json:"kind"`
	TruckPlate      string              `json:"truckPlate"`
	Name            string              `json:"name,omitempty"`
	MachineType     string              `json:"machineType,omitempty"`
	Liters          decimal.NullDecimal `json:"liters"`
	Date            *time.Time          `json:"date"`
	Operator        string              `json:"operator,omitempty"`
	Activity        string              `json:"activity,omitempty"`
	ChauffeurName   string              `json:"chauffeurName,omitempty"`
	StartTime       string              `json:"startTime,omitempty"`
	EndTime         string              `json:"endTime,omitempty"`
	DurationMinutes *int                `json:"durationMinutes,omitempty"`
	Duration        string              `json:"duration,omitempty"`
	GasoilConsumed  decimal.NullDecimal `json:"gasoilConsumed"`
	VolumeSable     decimal.NullDecimal `json:"volumeSable"`
	StartKmPhoto    string              `json:"startKmPhoto,omitempty"`
	EndKmPhoto      string              `json:"endKmPhoto,omitempty"`
}

// StockResponse stock restante tras una entrega.
type StockResponse struct {
	Remaining decimal.Decimal `json:"remaining"`
}

// CreateAttributionResponse entrega registrada y stock restante.
type CreateAttributionResponse struct {
	Attribution AttributionResponse `json:"attribution"`
	Remaining   decimal.Decimal     `json:"remaining"`
}
