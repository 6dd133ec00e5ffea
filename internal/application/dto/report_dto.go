package dto

import "github.com/shopspring/decimal"

// DailyReportDTO datos del día para la exportación XLSX.
type DailyReportDTO struct {
	Date         string                `json:"date"`
	Attributions []AttributionResponse `json:"attributions"`
	Usages       []AttributionResponse `json:"usages"`
	Resupplies   []ResupplyResponse    `json:"resupplies"`

	TotalLiters       decimal.Decimal `json:"totalLiters"`
	TotalConsumed     decimal.Decimal `json:"totalConsumed"`
	TotalSable        decimal.Decimal `json:"totalSable"`
	TotalDuration     int             `json:"totalDuration"`
	TotalQuantite     decimal.Decimal `json:"totalQuantite"`
	TotalMontantAppro decimal.Decimal `json:"totalMontantAppro"`
}
