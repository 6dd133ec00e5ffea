// Package pdf genera la facture de viajes en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor               │  N° Facture + Date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CAMION: Nom + Plaque + Type                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Voyages | Prix unitaire | Montant                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Solde / Montant / Statut                           │
//	│  QR con la referencia de la facture                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain/billing"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

var _ ports.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 146, Green: 84, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoPDFGenerator implementa ports.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice, issuer string) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("pdf: facture nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Facture "+invoiceNumber(invoice), true).
		WithAuthor(issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(truckRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(), tableRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// invoiceNumber referencia corta y legible: FAC-<fecha>-<8 primeros del id>.
func invoiceNumber(invoice *entity.Invoice) string {
	id := strings.ReplaceAll(invoice.ID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("FAC-%s-%s", invoice.Date.Format("20060102"), strings.ToUpper(id))
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(invoice *entity.Invoice, issuer string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Gestion du transport et du gasoil", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(invoiceNumber(invoice), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7}),
			text.New("Date : "+invoice.Date.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func truckRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CAMION", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(invoice.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Plaque : %s   |   Type : %s", invoice.TruckPlate, nonEmpty(invoice.TruckType, "-")),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Désignation", 6, align.Left),
		h("Voyages", 2, align.Center),
		h("Prix unitaire", 2, align.Right),
		h("Montant", 2, align.Right),
	)
}

func tableRow(invoice *entity.Invoice) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Transport ("+nonEmpty(invoice.TruckType, "camion")+")",
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", invoice.Trips),
			props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(formatFCFA(invoice.UnitPrice),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(formatFCFA(invoice.TotalAmount),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}
	statusColor := colorPrimary
	if invoice.Status.IsNegative() {
		statusColor = colorRed
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Solde :"),
			label("Montant total :"),
			label("Reste :"),
		),
		col.New(3).Add(
			value(formatFCFA(invoice.Balance), nil),
			value(formatFCFA(invoice.TotalAmount), nil),
			value(formatFCFA(invoice.Status)+" ("+billing.StatusLabel(invoice.Status)+")", statusColor),
		),
	)
}

func qrRow(invoice *entity.Invoice) core.Row {
	payload := fmt.Sprintf("%s|%s|%s|%s", invoiceNumber(invoice), invoice.TruckPlate,
		invoice.TotalAmount.StringFixed(0), invoice.Date.Format("2006-01-02"))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(payload, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Scannez le code pour vérifier la facture.", props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New(invoiceNumber(invoice), props.Text{Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatFCFA redondea a unidades e inserta espacios de miles.
// Ej: 90000 → "90 000 FCFA", -40000 → "-40 000 FCFA".
func formatFCFA(d decimal.Decimal) string {
	s := d.StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + groupThousands(s) + " FCFA"
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
