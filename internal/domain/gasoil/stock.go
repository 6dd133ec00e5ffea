package gasoil

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// Bilan resumen de stock y, cuando se conoce, el resumen financiero.
type Bilan struct {
	TotalAppro decimal.Decimal `json:"totalAppro"`
	Financial  *FinancialBilan `json:"financial,omitempty"`
}

// Partition separa entregas de litros y sesiones chrono conservando el orden de entrada.
// Los registros sin kind se clasifican con la regla de ingesta.
func Partition(attrs []entity.Attribution) (plain, chrono []entity.Attribution) {
	plain = make([]entity.Attribution, 0, len(attrs))
	chrono = make([]entity.Attribution, 0)
	for _, a := range attrs {
		kind := a.Kind
		if kind != entity.KindAttribution && kind != entity.KindChrono {
			kind = entity.ClassifyAttribution(a.StartTime)
		}
		if kind == entity.KindChrono {
			chrono = append(chrono, a)
		} else {
			plain = append(plain, a)
		}
	}
	return plain, chrono
}

// TotalLiters litros entregados en total.
func TotalLiters(plain []entity.Attribution) decimal.Decimal {
	return SumField(plain, Liters)
}

// RemainingStock stock restante; negativo indica sobregiro. Sin bilan devuelve 0.
func RemainingStock(b *Bilan, totalLitersAllTime decimal.Decimal) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return b.TotalAppro.Sub(totalLitersAllTime)
}

// Etiquetas del gráfico de stock.
const (
	LabelTotalAppro    = "Total Approvisionné"
	LabelTotalAttribue = "Total Attribué"
	LabelStockRestant  = "Stock Restant"
)

// SeriesPoint entrada de una serie de gráfico.
type SeriesPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// BuildStockChartSeries las tres barras del gráfico de stock, aunque el stock sea negativo.
func BuildStockChartSeries(b *Bilan, totalLitersAllTime decimal.Decimal) []SeriesPoint {
	appro := decimal.Zero
	if b != nil {
		appro = b.TotalAppro
	}
	return []SeriesPoint{
		{Label: LabelTotalAppro, Value: appro},
		{Label: LabelTotalAttribue, Value: totalLitersAllTime},
		{Label: LabelStockRestant, Value: RemainingStock(b, totalLitersAllTime)},
	}
}
