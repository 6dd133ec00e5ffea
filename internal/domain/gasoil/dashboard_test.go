package gasoil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

func scenarioSnapshot() gasoil.Snapshot {
	return gasoil.Snapshot{
		Machines: []entity.Machine{
			{ID: "m1", TruckPlate: "CHARGEUSE", TruckType: entity.TruckType10Roues},
			{ID: "m2", TruckPlate: "GRANDE DRAGUE", TruckType: entity.TruckType12Roues},
		},
		Attributions: []entity.Attribution{
			plain("CHARGEUSE", 100, "2025-01-05T07:00:00Z"),
			plain("GRANDE DRAGUE", 150, "2025-01-04T07:00:00Z"),
			plain("CHARGEUSE", 50, "2025-01-03T07:00:00Z"),
			chrono("CHARGEUSE", 12, "1h 0m", "2025-01-05T09:00:00Z"),
			chrono("GRANDE DRAGUE", 8, "0h 45m", "2025-01-05T11:00:00Z"),
		},
		Resupplies: []entity.Resupply{
			{Date: at("2025-01-03T06:00:00Z"), Quantity: dec(1000), UnitPrice: dec(650), TotalAmount: dec(650000)},
		},
		Bilan: &gasoil.Bilan{TotalAppro: dec(1000)},
	}
}

// ── Escenario completo ───────────────────────────────────────────────────────

func TestBuildDashboard_Escenario(t *testing.T) {
	d := gasoil.BuildDashboard(scenarioSnapshot(), "2025-01-05", time.UTC)

	assertDec(t, 300, d.TotalLitersAttributed)
	assertDec(t, 700, d.RemainingStock)
	assertDec(t, 20, d.TotalSableDaily)
	assert.Equal(t, 105, d.TotalDurationDaily)
	assert.Equal(t, "1h 45m", d.TotalDurationDailyText)
	assertDec(t, 100, d.TotalLitersDaily)
	assert.Equal(t, 0, d.SkippedDurations)
	assert.Equal(t, 2, d.MachineCount)

	require.Len(t, d.DailySable, 2)
	assert.Equal(t, "CHARGEUSE", d.DailySable[0].Machine)
	assertDec(t, 12, d.DailySable[0].Total)
	assert.Equal(t, "GRANDE DRAGUE", d.DailySable[1].Machine)
	assertDec(t, 8, d.DailySable[1].Total)

	require.Len(t, d.DailyDuration, 2)
	assert.Equal(t, "CHARGEUSE", d.DailyDuration[0].Machine)
	assertDec(t, 60, d.DailyDuration[0].Total)

	require.Len(t, d.StockChart, 3)
	assertDec(t, 700, d.StockChart[2].Value)
}

func TestBuildDashboard_DuracionIlegibleNoCortaElCalculo(t *testing.T) {
	s := scenarioSnapshot()
	s.Attributions = append(s.Attributions, chrono("PETITE DRAGUE", 5, "garbage", "2025-01-05T12:00:00Z"))

	d := gasoil.BuildDashboard(s, "2025-01-05", time.UTC)
	assert.Equal(t, 105, d.TotalDurationDaily)
	assert.Equal(t, 1, d.SkippedDurations)
	assertDec(t, 25, d.TotalSableDaily, "el resto de métricas del registro sí cuenta")
}

func TestBuildDashboard_SinDatos(t *testing.T) {
	d := gasoil.BuildDashboard(gasoil.Snapshot{}, "2025-01-05", nil)
	assertDec(t, 0, d.RemainingStock)
	assertDec(t, 0, d.TotalLitersAttributed)
	assert.Len(t, d.StockChart, 3)
	assert.Empty(t, d.DailyConsumption)
	assert.Empty(t, d.DailyBalances)
	assert.Equal(t, "0h 0m", d.TotalDurationDailyText)
}
