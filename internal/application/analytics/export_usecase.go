package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	appgasoil "github.com/jhoicas/minegest-api/internal/application/gasoil"
	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/application/usecase"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

// ExportUseCase reporte diario y su exportación XLSX.
type ExportUseCase struct {
	repos    Repos
	exporter ports.WorkbookExporter
	loc      *time.Location
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso. loc nil usa la zona local.
func NewExportUseCase(repos Repos, exporter ports.WorkbookExporter, loc *time.Location) *ExportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ExportUseCase{repos: repos, exporter: exporter, loc: loc, now: time.Now}
}

// DailyReport entregas, sesiones y approvisionnements del día con sus totales.
func (uc *ExportUseCase) DailyReport(ctx context.Context, ownerID, date string) (*dto.DailyReportDTO, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = uc.now().In(uc.loc).Format(gasoil.DayLayout)
	} else if _, err := time.ParseInLocation(gasoil.DayLayout, date, uc.loc); err != nil {
		return nil, domain.ErrInvalidInput
	}
	data, err := uc.repos.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	plain, chrono := gasoil.Partition(data.attributions)
	plainDay := gasoil.FilterByDate(plain, date, uc.loc)
	chronoDay := gasoil.FilterByDate(chrono, date, uc.loc)
	resupplyDay := gasoil.FilterByDate(data.resupplies, date, uc.loc)
	duration, _ := gasoil.TotalDurationMinutes(chronoDay)

	report := &dto.DailyReportDTO{
		Date:              date,
		Attributions:      make([]dto.AttributionResponse, 0, len(plainDay)),
		Usages:            make([]dto.AttributionResponse, 0, len(chronoDay)),
		Resupplies:        make([]dto.ResupplyResponse, 0, len(resupplyDay)),
		TotalLiters:       gasoil.TotalLiters(plainDay),
		TotalConsumed:     gasoil.SumField(chronoDay, gasoil.GasoilConsumed),
		TotalSable:        gasoil.SumField(chronoDay, gasoil.VolumeSable),
		TotalDuration:     duration,
		TotalQuantite:     gasoil.SumField(resupplyDay, gasoil.ResupplyQuantity),
		TotalMontantAppro: gasoil.SumField(resupplyDay, gasoil.ResupplyAmount),
	}
	for i := range plainDay {
		report.Attributions = append(report.Attributions, appgasoil.ToAttributionResponse(&plainDay[i]))
	}
	for i := range chronoDay {
		report.Usages = append(report.Usages, appgasoil.ToAttributionResponse(&chronoDay[i]))
	}
	for i := range resupplyDay {
		report.Resupplies = append(report.Resupplies, usecase.ToResupplyResponse(&resupplyDay[i]))
	}
	return report, nil
}

// ExportXLSX libro del reporte diario y su nombre de archivo.
func (uc *ExportUseCase) ExportXLSX(ctx context.Context, ownerID, date string) ([]byte, string, error) {
	report, err := uc.DailyReport(ctx, ownerID, date)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportDailyReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("export xlsx: %w", err)
	}
	return data, fmt.Sprintf("rapport_gasoil_%s.xlsx", report.Date), nil
}
