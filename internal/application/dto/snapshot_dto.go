package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

// LenientDecimal número tolerante: acepta número o string numérico;
// cualquier otra cosa (null, texto, objeto) queda inválido y cuenta como cero.
type LenientDecimal struct {
	decimal.NullDecimal
}

// UnmarshalJSON nunca falla.
func (n *LenientDecimal) UnmarshalJSON(b []byte) error {
	n.NullDecimal = decimal.NullDecimal{}
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	n.NullDecimal = decimal.NewNullDecimal(d)
	return nil
}

// LenientTime fecha tolerante: RFC3339, "YYYY-MM-DD" (UTC) o epoch en milisegundos.
// Lo ilegible queda en zero time y los filtros por día lo excluyen.
type LenientTime struct {
	time.Time
}

var lenientLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	gasoil.DayLayout,
}

// UnmarshalJSON nunca falla.
func (t *LenientTime) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '"' {
		var ms int64
		if err := json.Unmarshal(raw, &ms); err == nil {
			t.Time = time.UnixMilli(ms).UTC()
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range lenientLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// SnapshotMachine máquina tal como la entrega un record store externo.
type SnapshotMachine struct {
	ID         string         `json:"id"`
	MongoID    string         `json:"_id"`
	Name       string         `json:"name"`
	TruckPlate string         `json:"truckPlate"`
	TruckType  string         `json:"truckType"`
	Balance    LenientDecimal `json:"balance"`
}

// SnapshotAttribution entrega o sesión chrono de un record store externo.
type SnapshotAttribution struct {
	ID              string         `json:"id"`
	MongoID         string         `json:"_id"`
	Kind            string         `json:"kind"`
	TruckPlate      string         `json:"truckPlate"`
	Name            string         `json:"name"`
	MachineType     string         `json:"machineType"`
	Liters          LenientDecimal `json:"liters"`
	Date            LenientTime    `json:"date"`
	Operator        string         `json:"operator"`
	Activity        string         `json:"activity"`
	ChauffeurName   string         `json:"chauffeurName"`
	StartTime       string         `json:"startTime"`
	EndTime         string         `json:"endTime"`
	Duration        string         `json:"duration"`
	DurationMinutes LenientDecimal `json:"durationMinutes"`
	GasoilConsumed  LenientDecimal `json:"gasoilConsumed"`
	VolumeSable     LenientDecimal `json:"volumeSable"`
}

// SnapshotResupply approvisionnement de un record store externo.
type SnapshotResupply struct {
	ID             string         `json:"id"`
	MongoID        string         `json:"_id"`
	Date           LenientTime    `json:"date"`
	Fournisseur    string         `json:"fournisseur"`
	Quantite       LenientDecimal `json:"quantite"`
	PrixUnitaire   LenientDecimal `json:"prixUnitaire"`
	MontantTotal   LenientDecimal `json:"montantTotal"`
	Receptionniste string         `json:"receptionniste"`
}

// SnapshotBilan bilan de stock de un record store externo.
type SnapshotBilan struct {
	TotalAppro LenientDecimal `json:"totalAppro"`
}

// ComputeDashboardRequest cuerpo de POST /api/dashboard/compute.
type ComputeDashboardRequest struct {
	FilterDate   string                `json:"filterDate"`
	Timezone     string                `json:"timezone,omitempty"`
	Machines     []SnapshotMachine     `json:"truckers"`
	Attributions []SnapshotAttribution `json:"attributions"`
	Resupplies   []SnapshotResupply    `json:"approvisionnements"`
	Bilan        *SnapshotBilan        `json:"bilan"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func decimalOrZero(n LenientDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// ToSnapshot convierte el cuerpo en el snapshot del motor. Aquí se fija el kind
// de los registros que no lo traen y se normaliza la duración a minutos.
func (r *ComputeDashboardRequest) ToSnapshot() gasoil.Snapshot {
	s := gasoil.Snapshot{
		Machines:     make([]entity.Machine, 0, len(r.Machines)),
		Attributions: make([]entity.Attribution, 0, len(r.Attributions)),
		Resupplies:   make([]entity.Resupply, 0, len(r.Resupplies)),
	}
	for _, m := range r.Machines {
		s.Machines = append(s.Machines, entity.Machine{
			ID:         firstNonEmpty(m.ID, m.MongoID),
			Name:       m.Name,
			TruckPlate: m.TruckPlate,
			TruckType:  m.TruckType,
			Balance:    decimalOrZero(m.Balance),
		})
	}
	for _, a := range r.Attributions {
		kind := entity.AttributionKind(a.Kind)
		if kind != entity.KindAttribution && kind != entity.KindChrono {
			kind = entity.ClassifyAttribution(a.StartTime)
		}
		rec := entity.Attribution{
			ID:             firstNonEmpty(a.ID, a.MongoID),
			Kind:           kind,
			TruckPlate:     a.TruckPlate,
			MachineName:    a.Name,
			MachineType:    a.MachineType,
			Liters:         a.Liters.NullDecimal,
			Date:           a.Date.Time,
			Operator:       a.Operator,
			Activity:       a.Activity,
			ChauffeurName:  a.ChauffeurName,
			StartTime:      a.StartTime,
			EndTime:        a.EndTime,
			DurationText:   a.Duration,
			GasoilConsumed: a.GasoilConsumed.NullDecimal,
			VolumeSable:    a.VolumeSable.NullDecimal,
		}
		if m, ok := wholeMinutes(a.DurationMinutes); ok {
			rec.DurationMinutes = &m
		}
		s.Attributions = append(s.Attributions, rec)
	}
	for _, res := range r.Resupplies {
		quantity := decimalOrZero(res.Quantite)
		price := decimalOrZero(res.PrixUnitaire)
		total := decimalOrZero(res.MontantTotal)
		if !res.MontantTotal.Valid {
			total = quantity.Mul(price)
		}
		s.Resupplies = append(s.Resupplies, entity.Resupply{
			ID:          firstNonEmpty(res.ID, res.MongoID),
			Date:        res.Date.Time,
			Supplier:    res.Fournisseur,
			Quantity:    quantity,
			UnitPrice:   price,
			TotalAmount: total,
			Receiver:    res.Receptionniste,
		})
	}
	if r.Bilan != nil {
		s.Bilan = &gasoil.Bilan{TotalAppro: decimalOrZero(r.Bilan.TotalAppro)}
	}
	return s
}

var maxMinutes = decimal.NewFromInt(math.MaxInt32)

// wholeMinutes acepta solo enteros en [0, MaxInt32]; el resto cae al texto legado o a 0.
func wholeMinutes(v LenientDecimal) (int, bool) {
	if !v.Valid || !v.Decimal.IsInteger() || v.Decimal.IsNegative() || v.Decimal.GreaterThan(maxMinutes) {
		return 0, false
	}
	return int(v.Decimal.IntPart()), true
}
