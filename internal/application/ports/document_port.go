package ports

import (
	"context"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// QRCodeGenerator genera un PNG de código QR como data URL.
type QRCodeGenerator interface {
	DataURL(payload string) (string, error)
}

// InvoicePDFGenerator renderiza una facture en PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, issuer string) ([]byte, error)
}

// WorkbookExporter genera el libro XLSX del reporte diario.
type WorkbookExporter interface {
	ExportDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, error)
}
