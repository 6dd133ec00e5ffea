package gasoil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

var durationPattern = regexp.MustCompile(`^(\d+)h (\d+)m$`)

// FormatError duración que no respeta el formato "{H}h {M}m".
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("durée invalide %q (format attendu \"{H}h {M}m\")", e.Input)
}

// ParseDuration convierte "2h 30m" en minutos (150).
func ParseDuration(s string) (int, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, &FormatError{Input: s}
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &FormatError{Input: s}
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, &FormatError{Input: s}
	}
	// hours*60 + minutes debe caber en un int.
	if hours > (math.MaxInt-minutes)/60 {
		return 0, &FormatError{Input: s}
	}
	return hours*60 + minutes, nil
}

// FormatDuration formato de presentación de una cantidad de minutos.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// MinutesBetween minutos completos entre inicio y fin; nunca negativo.
func MinutesBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// DurationMinutes duración de una sesión chrono. Usa los minutos persistidos y,
// para registros anteriores, parsea el texto legado. Sin duración devuelve 0.
func DurationMinutes(a entity.Attribution) (int, error) {
	if a.DurationMinutes != nil {
		if *a.DurationMinutes < 0 {
			return 0, nil
		}
		return *a.DurationMinutes, nil
	}
	if strings.TrimSpace(a.DurationText) == "" {
		return 0, nil
	}
	return ParseDuration(a.DurationText)
}

// TotalDurationMinutes suma las duraciones; las ilegibles aportan 0 y se cuentan en skipped.
func TotalDurationMinutes(records []entity.Attribution) (total, skipped int) {
	for _, a := range records {
		m, err := DurationMinutes(a)
		if err != nil {
			skipped++
			continue
		}
		total += m
	}
	return total, skipped
}
