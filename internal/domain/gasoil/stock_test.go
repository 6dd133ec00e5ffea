package gasoil_test

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func liters(v int64) decimal.NullDecimal { return decimal.NewNullDecimal(dec(v)) }

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func plain(plate string, l int64, date string) entity.Attribution {
	return entity.Attribution{Kind: entity.KindAttribution, TruckPlate: plate, Liters: liters(l), Date: at(date)}
}

func chrono(plate string, sable int64, duration, date string) entity.Attribution {
	return entity.Attribution{
		Kind:         entity.KindChrono,
		TruckPlate:   plate,
		StartTime:    "08:00",
		EndTime:      "09:00",
		DurationText: duration,
		VolumeSable:  liters(sable),
		Date:         at(date),
	}
}

func assertDec(t *testing.T, want int64, got decimal.Decimal, msg ...string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "esperado %d, obtenido %s %v", want, got.String(), msg)
}

// ── TotalLiters ──────────────────────────────────────────────────────────────

func TestTotalLiters(t *testing.T) {
	assertDec(t, 0, gasoil.TotalLiters(nil))
	assertDec(t, 0, gasoil.TotalLiters([]entity.Attribution{}))

	two := []entity.Attribution{{Liters: liters(10)}, {Liters: liters(5)}}
	assertDec(t, 15, gasoil.TotalLiters(two))

	missing := []entity.Attribution{{Liters: liters(10)}, {}}
	assertDec(t, 10, gasoil.TotalLiters(missing), "litros ausentes cuentan como 0")
}

// ── RemainingStock ───────────────────────────────────────────────────────────

func TestRemainingStock(t *testing.T) {
	assertDec(t, 0, gasoil.RemainingStock(nil, dec(100)), "sin bilan no hay stock")
	assertDec(t, 380, gasoil.RemainingStock(&gasoil.Bilan{TotalAppro: dec(500)}, dec(120)))
	assertDec(t, -50, gasoil.RemainingStock(&gasoil.Bilan{TotalAppro: dec(100)}, dec(150)), "el sobregiro es un valor válido")
}

func TestBuildStockChartSeries(t *testing.T) {
	series := gasoil.BuildStockChartSeries(&gasoil.Bilan{TotalAppro: dec(100)}, dec(150))
	require.Len(t, series, 3)
	assert.Equal(t, gasoil.LabelTotalAppro, series[0].Label)
	assert.Equal(t, gasoil.LabelTotalAttribue, series[1].Label)
	assert.Equal(t, gasoil.LabelStockRestant, series[2].Label)
	assertDec(t, 100, series[0].Value)
	assertDec(t, 150, series[1].Value)
	assertDec(t, -50, series[2].Value)

	empty := gasoil.BuildStockChartSeries(nil, dec(40))
	require.Len(t, empty, 3, "siempre tres entradas")
	assertDec(t, 0, empty[0].Value)
	assertDec(t, 40, empty[1].Value)
	assertDec(t, 0, empty[2].Value)
}

// ── Partition ────────────────────────────────────────────────────────────────

func TestPartition_RespetaKindYOrden(t *testing.T) {
	in := []entity.Attribution{
		{ID: "1", Kind: entity.KindAttribution},
		{ID: "2", Kind: entity.KindChrono},
		{ID: "3", Kind: entity.KindAttribution},
		{ID: "4", StartTime: "07:15"}, // sin kind: regla de ingesta
		{ID: "5"},
	}
	p, c := gasoil.Partition(in)

	ids := func(list []entity.Attribution) []string {
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}
	assert.Equal(t, []string{"1", "3", "5"}, ids(p))
	assert.Equal(t, []string{"2", "4"}, ids(c))
}

func TestPartition_KindExplicitoGanaSobreStartTime(t *testing.T) {
	p, c := gasoil.Partition([]entity.Attribution{{Kind: entity.KindAttribution, StartTime: "10:00"}})
	assert.Len(t, p, 1)
	assert.Empty(t, c)
}

// ── SumField ─────────────────────────────────────────────────────────────────

func TestSumField(t *testing.T) {
	in := []entity.Attribution{
		{VolumeSable: liters(12)},
		{},
		{VolumeSable: decimal.NullDecimal{}},
		{VolumeSable: liters(8)},
	}
	assertDec(t, 20, gasoil.SumField(in, gasoil.VolumeSable))

	res := []entity.Resupply{{Quantity: dec(100), TotalAmount: dec(65000)}, {Quantity: dec(50), TotalAmount: dec(32500)}}
	assertDec(t, 150, gasoil.SumField(res, gasoil.ResupplyQuantity))
	assertDec(t, 97500, gasoil.SumField(res, gasoil.ResupplyAmount))
}

// ── Idempotencia ─────────────────────────────────────────────────────────────

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestBuildDashboard_NoMutaEntradasYEsIdempotente(t *testing.T) {
	s := scenarioSnapshot()
	before := gasoil.Snapshot{
		Machines:     slices.Clone(s.Machines),
		Attributions: slices.Clone(s.Attributions),
		Resupplies:   slices.Clone(s.Resupplies),
		Bilan:        &gasoil.Bilan{TotalAppro: s.Bilan.TotalAppro},
	}
	beforeJSON := toJSON(t, s.Attributions)

	first := gasoil.BuildDashboard(s, "2025-01-05", time.UTC)
	second := gasoil.BuildDashboard(s, "2025-01-05", time.UTC)

	assert.Equal(t, toJSON(t, first), toJSON(t, second), "misma entrada, misma salida")
	assert.Equal(t, before.Machines, s.Machines)
	assert.Equal(t, before.Attributions, s.Attributions)
	assert.Equal(t, before.Resupplies, s.Resupplies)
	assert.True(t, before.Bilan.TotalAppro.Equal(s.Bilan.TotalAppro))
	assert.Equal(t, beforeJSON, toJSON(t, s.Attributions))
}

func TestGroupAndSumByMachine_NoReordenaEntrada(t *testing.T) {
	in := []entity.Attribution{
		{ID: "a", TruckPlate: "A", Liters: liters(1)},
		{ID: "b", TruckPlate: "B", Liters: liters(9)},
	}
	snapshot := slices.Clone(in)
	_ = gasoil.GroupAndSumByMachine(in, gasoil.Liters)
	_ = gasoil.GroupAndSumByMachine(in, gasoil.Liters)
	assert.Equal(t, snapshot, in)
}
