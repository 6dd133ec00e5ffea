package gasoil

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DayLayout formato de filterDate.
const DayLayout = "2006-01-02"

// Dated registro con fecha.
type Dated interface {
	RecordDate() time.Time
}

// Keyed registro asociado a una máquina.
type Keyed interface {
	MachineKey() string
}

// FilterByDate registros cuyo día local (en loc) es filterDate.
// Fechas desconocidas quedan fuera sin error.
func FilterByDate[T Dated](records []T, filterDate string, loc *time.Location) []T {
	if loc == nil {
		loc = time.Local
	}
	out := make([]T, 0)
	for _, r := range records {
		t := r.RecordDate()
		if t.IsZero() {
			continue
		}
		if t.In(loc).Format(DayLayout) == filterDate {
			out = append(out, r)
		}
	}
	return out
}

// MachineTotal total agregado para una máquina.
type MachineTotal struct {
	Machine string          `json:"machine"`
	Total   decimal.Decimal `json:"total"`
}

// GroupAndSumByMachine agrupa por placa (sin espacios alrededor, respetando mayúsculas),
// suma field y ordena de mayor a menor; los empates conservan el orden de aparición.
// Registros sin placa o con cantidad cero no forman grupo.
func GroupAndSumByMachine[T Keyed](records []T, field Field[T]) []MachineTotal {
	index := make(map[string]int)
	out := make([]MachineTotal, 0)
	for _, r := range records {
		key := strings.TrimSpace(r.MachineKey())
		amount := field(r)
		if key == "" || amount.IsZero() {
			continue
		}
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, MachineTotal{Machine: key, Total: amount})
			continue
		}
		out[i].Total = out[i].Total.Add(amount)
	}
	slices.SortStableFunc(out, func(a, b MachineTotal) int {
		return b.Total.Cmp(a.Total)
	})
	return out
}
