package gasoil_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

func TestParseDuration(t *testing.T) {
	cases := map[string]int{
		"2h 30m":   150,
		"0h 45m":   45,
		"1h 0m":    60,
		"0h 0m":    0,
		" 3h 5m ":  185,
		"12h 59m":  779,
		"100h 10m": 6010,
	}
	for in, want := range cases {
		got, err := gasoil.ParseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseDuration_FormatError(t *testing.T) {
	for _, in := range []string{"garbage", "", "2h", "30m", "2h30m", "2 h 30 m", "-1h 5m", "1.5h 0m", "99999999999999999999h 0m"} {
		_, err := gasoil.ParseDuration(in)
		var fe *gasoil.FormatError
		require.True(t, errors.As(err, &fe), "se esperaba FormatError para %q", in)
		assert.Equal(t, in, fe.Input)
	}
}

func TestParseDuration_Desborde(t *testing.T) {
	_, err := gasoil.ParseDuration("153722867280912931h 0m")
	var fe *gasoil.FormatError
	require.True(t, errors.As(err, &fe), "horas que desbordan int deben dar FormatError")

	total, skipped := gasoil.TotalDurationMinutes([]entity.Attribution{
		{Kind: entity.KindChrono, DurationText: "1h 0m"},
		{Kind: entity.KindChrono, DurationText: "153722867280912931h 0m"},
	})
	assert.Equal(t, 60, total)
	assert.Equal(t, 1, skipped)
}

func TestFormatDuration_IdaYVuelta(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 61, 150, 1439} {
		s := gasoil.FormatDuration(m)
		back, err := gasoil.ParseDuration(s)
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
	assert.Equal(t, "0h 0m", gasoil.FormatDuration(-5))
}

func TestMinutesBetween(t *testing.T) {
	start := at("2025-01-05T08:00:00Z")
	assert.Equal(t, 150, gasoil.MinutesBetween(start, start.Add(150*time.Minute+59*time.Second)))
	assert.Equal(t, 0, gasoil.MinutesBetween(start, start.Add(-time.Hour)))
}

func TestDurationMinutes_PrefiereMinutosPersistidos(t *testing.T) {
	m := 42
	got, err := gasoil.DurationMinutes(entity.Attribution{DurationMinutes: &m, DurationText: "garbage"})
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = gasoil.DurationMinutes(entity.Attribution{})
	require.NoError(t, err)
	assert.Equal(t, 0, got, "sin duración no es un error")
}

func TestTotalDurationMinutes_DegradaACero(t *testing.T) {
	in := []entity.Attribution{
		{DurationText: "1h 0m"},
		{DurationText: "garbage"},
		{DurationText: "0h 45m"},
	}
	total, skipped := gasoil.TotalDurationMinutes(in)
	assert.Equal(t, 105, total, "el registro ilegible aporta 0 y no corta la suma")
	assert.Equal(t, 1, skipped)

	grouped := gasoil.GroupAndSumByMachine([]entity.Attribution{
		{TruckPlate: "A", DurationText: "garbage"},
		{TruckPlate: "B", DurationText: "0h 30m"},
	}, gasoil.Duration)
	require.Len(t, grouped, 1)
	assert.Equal(t, "B", grouped[0].Machine)
	assertDec(t, 30, grouped[0].Total)
}
