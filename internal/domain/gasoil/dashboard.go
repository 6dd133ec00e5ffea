package gasoil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// Snapshot colecciones leídas del record store. El motor nunca las modifica.
type Snapshot struct {
	Machines     []entity.Machine
	Attributions []entity.Attribution
	Resupplies   []entity.Resupply
	Bilan        *Bilan
}

// Dashboard view model del tablero para un día.
type Dashboard struct {
	FilterDate string `json:"filterDate"`

	TotalLitersAttributed decimal.Decimal `json:"totalLitersAttributed"`
	RemainingStock        decimal.Decimal `json:"remainingStock"`
	StockChart            []SeriesPoint   `json:"stockChart"`
	MachineCount          int             `json:"machineCount"`

	TotalLitersDaily       decimal.Decimal `json:"totalLitersDaily"`
	TotalApproDaily        decimal.Decimal `json:"totalApproDaily"`
	TotalMontantApproDaily decimal.Decimal `json:"totalMontantApproDaily"`
	TotalLitersUsedDaily   decimal.Decimal `json:"totalLitersUsedDaily"`
	TotalSableDaily        decimal.Decimal `json:"totalSableDaily"`
	TotalDurationDaily     int             `json:"totalDurationDaily"`
	TotalDurationDailyText string          `json:"totalDurationDailyText"`

	DailyConsumption []MachineTotal `json:"dailyConsumption"`
	DailySable       []MachineTotal `json:"dailySable"`
	DailyDuration    []MachineTotal `json:"dailyDuration"`
	DailyTrips       []MachineTotal `json:"dailyTrips"`

	DailyBalances             []DailyBalance       `json:"dailyBalances"`
	MonthlyResupply           []MonthlyResupply    `json:"monthlyResupply"`
	MonthlyAttribution        []MonthlyTotal       `json:"monthlyAttribution"`
	MonthlyMachinePerformance []MonthlyPerformance `json:"monthlyMachinePerformance"`

	// Sesiones del día cuya duración no se pudo leer (aportan 0).
	SkippedDurations int `json:"skippedDurations"`
}

// BuildDashboard calcula todas las métricas del tablero para filterDate.
func BuildDashboard(s Snapshot, filterDate string, loc *time.Location) Dashboard {
	if loc == nil {
		loc = time.Local
	}
	plain, chrono := Partition(s.Attributions)
	total := TotalLiters(plain)

	plainDay := FilterByDate(plain, filterDate, loc)
	chronoDay := FilterByDate(chrono, filterDate, loc)
	resupplyDay := FilterByDate(s.Resupplies, filterDate, loc)
	minutes, skipped := TotalDurationMinutes(chronoDay)

	return Dashboard{
		FilterDate: filterDate,

		TotalLitersAttributed: total,
		RemainingStock:        RemainingStock(s.Bilan, total),
		StockChart:            BuildStockChartSeries(s.Bilan, total),
		MachineCount:          len(s.Machines),

		TotalLitersDaily:       TotalLiters(plainDay),
		TotalApproDaily:        SumField(resupplyDay, ResupplyQuantity),
		TotalMontantApproDaily: SumField(resupplyDay, ResupplyAmount),
		TotalLitersUsedDaily:   SumField(chronoDay, GasoilConsumed),
		TotalSableDaily:        SumField(chronoDay, VolumeSable),
		TotalDurationDaily:     minutes,
		TotalDurationDailyText: FormatDuration(minutes),

		DailyConsumption: GroupAndSumByMachine(plainDay, Liters),
		DailySable:       GroupAndSumByMachine(chronoDay, VolumeSable),
		DailyDuration:    GroupAndSumByMachine(chronoDay, Duration),
		DailyTrips:       GroupAndSumByMachine(chronoDay, GasoilConsumed),

		DailyBalances:             DailyBalances(plain, s.Resupplies, loc),
		MonthlyResupply:           MonthlyResupplies(s.Resupplies, loc),
		MonthlyAttribution:        MonthlyAttributions(plain, loc),
		MonthlyMachinePerformance: MonthlyMachinePerformance(chrono, loc),

		SkippedDurations: skipped,
	}
}
