package gasoil

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// Field extrae una cantidad de un registro. Un valor ausente debe devolver cero.
type Field[T any] func(T) decimal.Decimal

func valueOf(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// Liters litros entregados.
func Liters(a entity.Attribution) decimal.Decimal { return valueOf(a.Liters) }

// VolumeSable volumen de arena procesado en la sesión.
func VolumeSable(a entity.Attribution) decimal.Decimal { return valueOf(a.VolumeSable) }

// GasoilConsumed gasoil consumido (o viajes) reportado en la sesión.
func GasoilConsumed(a entity.Attribution) decimal.Decimal { return valueOf(a.GasoilConsumed) }

// Duration duración en minutos; un texto ilegible aporta 0.
func Duration(a entity.Attribution) decimal.Decimal {
	m, err := DurationMinutes(a)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(m))
}

// ResupplyQuantity litros de un approvisionnement.
func ResupplyQuantity(r entity.Resupply) decimal.Decimal { return r.Quantity }

// ResupplyAmount monto total de un approvisionnement.
func ResupplyAmount(r entity.Resupply) decimal.Decimal { return r.TotalAmount }

// SumField suma field sobre todos los registros.
func SumField[T any](records []T, field Field[T]) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(field(r))
	}
	return total
}
