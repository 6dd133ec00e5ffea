package gasoil

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// MonthLayout clave de agrupación mensual.
const MonthLayout = "2006-01"

// DailyBalance movimientos de un día y saldo acumulado de stock al cierre.
type DailyBalance struct {
	Date        string          `json:"date"`
	Appro       decimal.Decimal `json:"appro"`
	Attribution decimal.Decimal `json:"attribution"`
	Solde       decimal.Decimal `json:"solde"`
}

// DailyBalances litros entrados y entregados por día, en orden ascendente,
// con el saldo acumulado desde el primer día.
func DailyBalances(plain []entity.Attribution, resupplies []entity.Resupply, loc *time.Location) []DailyBalance {
	if loc == nil {
		loc = time.Local
	}
	days := make(map[string]*DailyBalance)
	get := func(t time.Time) *DailyBalance {
		key := t.In(loc).Format(DayLayout)
		d, ok := days[key]
		if !ok {
			d = &DailyBalance{Date: key, Appro: decimal.Zero, Attribution: decimal.Zero}
			days[key] = d
		}
		return d
	}
	for _, r := range resupplies {
		if r.Date.IsZero() {
			continue
		}
		d := get(r.Date)
		d.Appro = d.Appro.Add(r.Quantity)
	}
	for _, a := range plain {
		if a.Date.IsZero() {
			continue
		}
		d := get(a.Date)
		d.Attribution = d.Attribution.Add(Liters(a))
	}

	out := make([]DailyBalance, 0, len(days))
	for _, d := range days {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b DailyBalance) int { return strings.Compare(a.Date, b.Date) })

	solde := decimal.Zero
	for i := range out {
		solde = solde.Add(out[i].Appro).Sub(out[i].Attribution)
		out[i].Solde = solde
	}
	return out
}

// MonthlyResupply litros y monto approvisionnés en un mes.
type MonthlyResupply struct {
	Month    string          `json:"month"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyTotal total mensual genérico.
type MonthlyTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MachinePerformance uso de una máquina en el mes.
type MachinePerformance struct {
	Machine       string          `json:"machine"`
	DurationHours decimal.Decimal `json:"durationHours"`
	Trips         decimal.Decimal `json:"trips"`
}

// MonthlyPerformance rendimiento de las máquinas en un mes, ordenado por viajes.
type MonthlyPerformance struct {
	Month    string               `json:"month"`
	Machines []MachinePerformance `json:"machines"`
}

// MonthlyResupplies approvisionnements agrupados por mes, ascendente.
func MonthlyResupplies(resupplies []entity.Resupply, loc *time.Location) []MonthlyResupply {
	if loc == nil {
		loc = time.Local
	}
	months := make(map[string]*MonthlyResupply)
	for _, r := range resupplies {
		if r.Date.IsZero() {
			continue
		}
		key := r.Date.In(loc).Format(MonthLayout)
		m, ok := months[key]
		if !ok {
			m = &MonthlyResupply{Month: key, Quantity: decimal.Zero, Amount: decimal.Zero}
			months[key] = m
		}
		m.Quantity = m.Quantity.Add(r.Quantity)
		m.Amount = m.Amount.Add(r.TotalAmount)
	}
	out := make([]MonthlyResupply, 0, len(months))
	for _, m := range months {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b MonthlyResupply) int { return strings.Compare(a.Month, b.Month) })
	return out
}

// MonthlyAttributions litros entregados por mes, ascendente.
func MonthlyAttributions(plain []entity.Attribution, loc *time.Location) []MonthlyTotal {
	if loc == nil {
		loc = time.Local
	}
	months := make(map[string]decimal.Decimal)
	for _, a := range plain {
		if a.Date.IsZero() {
			continue
		}
		key := a.Date.In(loc).Format(MonthLayout)
		months[key] = months[key].Add(Liters(a))
	}
	out := make([]MonthlyTotal, 0, len(months))
	for k, v := range months {
		out = append(out, MonthlyTotal{Month: k, Total: v})
	}
	slices.SortFunc(out, func(a, b MonthlyTotal) int { return strings.Compare(a.Month, b.Month) })
	return out
}

// MonthlyMachinePerformance horas de uso y viajes por máquina y mes (sesiones chrono).
func MonthlyMachinePerformance(chrono []entity.Attribution, loc *time.Location) []MonthlyPerformance {
	if loc == nil {
		loc = time.Local
	}
	type acc struct {
		minutes int64
		trips   decimal.Decimal
	}
	months := make(map[string]map[string]*acc)
	order := make(map[string][]string)
	for _, a := range chrono {
		plate := strings.TrimSpace(a.TruckPlate)
		if a.Date.IsZero() || plate == "" {
			continue
		}
		key := a.Date.In(loc).Format(MonthLayout)
		machines, ok := months[key]
		if !ok {
			machines = make(map[string]*acc)
			months[key] = machines
		}
		m, ok := machines[plate]
		if !ok {
			m = &acc{trips: decimal.Zero}
			machines[plate] = m
			order[key] = append(order[key], plate)
		}
		m.minutes += Duration(a).IntPart()
		m.trips = m.trips.Add(GasoilConsumed(a))
	}

	sixty := decimal.NewFromInt(60)
	out := make([]MonthlyPerformance, 0, len(months))
	for key, machines := range months {
		perf := MonthlyPerformance{Month: key, Machines: make([]MachinePerformance, 0, len(machines))}
		for _, plate := range order[key] {
			m := machines[plate]
			perf.Machines = append(perf.Machines, MachinePerformance{
				Machine:       plate,
				DurationHours: decimal.NewFromInt(m.minutes).DivRound(sixty, 2),
				Trips:         m.trips,
			})
		}
		slices.SortStableFunc(perf.Machines, func(a, b MachinePerformance) int { return b.Trips.Cmp(a.Trips) })
		out = append(out, perf)
	}
	slices.SortFunc(out, func(a, b MonthlyPerformance) int { return strings.Compare(a.Month, b.Month) })
	return out
}
