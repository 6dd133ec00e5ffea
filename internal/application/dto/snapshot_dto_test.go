package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

func TestLenientDecimal(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		want  string
	}{
		{`10`, true, "10"},
		{`"12.5"`, true, "12.5"},
		{`" 7 "`, true, "7"},
		{`null`, false, "0"},
		{`"abc"`, false, "0"},
		{`{"x":1}`, false, "0"},
		{`true`, false, "0"},
	}
	for _, c := range cases {
		var n dto.LenientDecimal
		require.NoError(t, json.Unmarshal([]byte(c.in), &n), c.in)
		assert.Equal(t, c.valid, n.Valid, c.in)
		if c.valid {
			assert.Equal(t, c.want, n.Decimal.String(), c.in)
		}
	}
}

func TestLenientTime(t *testing.T) {
	var v dto.LenientTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-05T10:00:00Z"`), &v))
	assert.True(t, v.Equal(time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)))

	require.NoError(t, json.Unmarshal([]byte(`"2025-01-05"`), &v))
	assert.Equal(t, "2025-01-05", v.UTC().Format(gasoil.DayLayout))

	require.NoError(t, json.Unmarshal([]byte(`1736071200000`), &v))
	assert.True(t, v.Equal(time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)))

	for _, bad := range []string{`"not-a-date"`, `null`, `{}`, `""`} {
		require.NoError(t, json.Unmarshal([]byte(bad), &v), bad)
		assert.True(t, v.IsZero(), "fecha ilegible queda en cero: %s", bad)
	}
}

func TestComputeDashboardRequest_ToSnapshot(t *testing.T) {
	body := `{
		"filterDate": "2025-01-05",
		"truckers": [{"_id": "m1", "name": "Chargeuse", "truckPlate": "CHARGEUSE", "balance": "150000"}],
		"attributions": [
			{"_id": "a1", "truckPlate": "CHARGEUSE", "liters": 100, "date": "2025-01-05T07:00:00Z"},
			{"_id": "a2", "truckPlate": "CHARGEUSE", "liters": "n/a", "date": "not-a-date"},
			{"_id": "c1", "truckPlate": "CHARGEUSE", "startTime": "08:00", "duration": "1h 0m", "volumeSable": "12", "date": "2025-01-05T09:00:00Z"},
			{"id": "c2", "kind": "chrono", "truckPlate": "GRANDE DRAGUE", "durationMinutes": 45, "volumeSable": 8, "date": "2025-01-05T11:00:00Z"}
		],
		"approvisionnements": [{"_id": "r1", "date": "2025-01-03", "quantite": "1000", "prixUnitaire": 650}],
		"bilan": {"totalAppro": 1000}
	}`
	var req dto.ComputeDashboardRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	s := req.ToSnapshot()
	require.Len(t, s.Machines, 1)
	assert.Equal(t, "m1", s.Machines[0].ID)
	assert.Equal(t, "150000", s.Machines[0].Balance.String())

	require.Len(t, s.Attributions, 4)
	assert.Equal(t, entity.KindAttribution, s.Attributions[0].Kind)
	assert.False(t, s.Attributions[1].Liters.Valid)
	assert.True(t, s.Attributions[1].Date.IsZero())
	assert.Equal(t, entity.KindChrono, s.Attributions[2].Kind, "startTime presente clasifica como chrono")
	require.NotNil(t, s.Attributions[3].DurationMinutes)
	assert.Equal(t, 45, *s.Attributions[3].DurationMinutes)

	require.Len(t, s.Resupplies, 1)
	assert.Equal(t, "650000", s.Resupplies[0].TotalAmount.String(), "montantTotal ausente se calcula")
	require.NotNil(t, s.Bilan)

	d := gasoil.BuildDashboard(s, req.FilterDate, time.UTC)
	assert.Equal(t, "900", d.RemainingStock.String())
	assert.Equal(t, "20", d.TotalSableDaily.String())
	assert.Equal(t, 105, d.TotalDurationDaily)
}

func TestComputeDashboardRequest_MinutosFueraDeRango(t *testing.T) {
	body := `{
		"attributions": [
			{"kind": "chrono", "truckPlate": "A", "durationMinutes": 1e30, "date": "2025-01-05T09:00:00Z"},
			{"kind": "chrono", "truckPlate": "B", "durationMinutes": -5, "duration": "0h 30m", "date": "2025-01-05T09:00:00Z"},
			{"kind": "chrono", "truckPlate": "C", "durationMinutes": 12.5, "date": "2025-01-05T09:00:00Z"},
			{"kind": "chrono", "truckPlate": "D", "durationMinutes": "15", "date": "2025-01-05T09:00:00Z"}
		]
	}`
	var req dto.ComputeDashboardRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	s := req.ToSnapshot()
	require.Len(t, s.Attributions, 4)
	assert.Nil(t, s.Attributions[0].DurationMinutes, "1e30 no cabe en minutos")
	assert.Nil(t, s.Attributions[1].DurationMinutes, "negativo usa el texto legado")
	assert.Nil(t, s.Attributions[2].DurationMinutes, "no entero")
	require.NotNil(t, s.Attributions[3].DurationMinutes)
	assert.Equal(t, 15, *s.Attributions[3].DurationMinutes)

	d := gasoil.BuildDashboard(s, "2025-01-05", time.UTC)
	assert.Equal(t, 45, d.TotalDurationDaily)
}
