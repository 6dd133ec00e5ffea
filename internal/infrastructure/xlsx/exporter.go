// Package xlsx exporta el reporte diario de gasoil a un libro Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/ports"
)

var _ ports.WorkbookExporter = (*Exporter)(nil)

const (
	SheetAttributions = "Attributions"
	SheetUsages       = "Utilisations"
	SheetResupplies   = "Approvisionnements"
)

// Exporter implementa ports.WorkbookExporter con excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportDailyReport genera un libro con tres hojas y una fila de totales en cada una.
func (e *Exporter) ExportDailyReport(_ context.Context, report *dto.DailyReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("xlsx: reporte nil")
	}
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#925414"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
		total  []any
	}{
		{
			name:   SheetAttributions,
			header: []any{"Date", "Plaque", "Machine", "Type", "Litres", "Opérateur", "Activité"},
			rows:   attributionRows(report.Attributions),
			total:  []any{"TOTAL", "", "", "", num(report.TotalLiters), "", ""},
		},
		{
			name:   SheetUsages,
			header: []any{"Date", "Plaque", "Chauffeur", "Début", "Fin", "Durée", "Gasoil consommé", "Volume sable"},
			rows:   usageRows(report.Usages),
			total: []any{"TOTAL", "", "", "", "", fmt.Sprintf("%dh %dm", report.TotalDuration/60, report.TotalDuration%60),
				num(report.TotalConsumed), num(report.TotalSable)},
		},
		{
			name:   SheetResupplies,
			header: []any{"Date", "Fournisseur", "Quantité", "Prix unitaire", "Montant total", "Réceptionniste"},
			rows:   resupplyRows(report.Resupplies),
			total:  []any{"TOTAL", "", num(report.TotalQuantite), "", num(report.TotalMontantAppro), ""},
		},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, s.header, s.rows, s.total, headerStyle, totalStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, total []any, headerStyle, totalStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: encabezado %s: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	for i, r := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &r); err != nil {
			return fmt.Errorf("xlsx: fila %d de %s: %w", i+2, sheet, err)
		}
	}
	totalRow := len(rows) + 2
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", totalRow), &total); err != nil {
		return fmt.Errorf("xlsx: totales %s: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", lastCol, totalRow), totalStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func attributionRows(items []dto.AttributionResponse) [][]any {
	rows := make([][]any, 0, len(items))
	for _, a := range items {
		rows = append(rows, []any{day(a), a.TruckPlate, a.Name, a.MachineType, num(a.Liters.Decimal), a.Operator, a.Activity})
	}
	return rows
}

func usageRows(items []dto.AttributionResponse) [][]any {
	rows := make([][]any, 0, len(items))
	for _, a := range items {
		rows = append(rows, []any{day(a), a.TruckPlate, a.ChauffeurName, a.StartTime, a.EndTime, a.Duration,
			num(a.GasoilConsumed.Decimal), num(a.VolumeSable.Decimal)})
	}
	return rows
}

func resupplyRows(items []dto.ResupplyResponse) [][]any {
	rows := make([][]any, 0, len(items))
	for _, r := range items {
		rows = append(rows, []any{r.Date.Format("2006-01-02"), r.Fournisseur, num(r.Quantite), num(r.PrixUnitaire),
			num(r.MontantTotal), r.Receptionniste})
	}
	return rows
}

func day(a dto.AttributionResponse) string {
	if a.Date == nil {
		return ""
	}
	return a.Date.Format("2006-01-02")
}

// num convierte a float64 para que Excel trate la celda como número.
func num(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
