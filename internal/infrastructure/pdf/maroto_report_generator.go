// Package pdf implementa la exportación del reporte histórico de gastos CFDI.
//
// Layout de la página Carta horizontal (rejilla de 22 columnas):
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│              Reporte Histórico de Gastos CFDI                    │
//	│              Fecha de Generación: 2006-01-02 15:04:05            │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  Proveedor (6) │ UUID (10)          │ Importe (3) │ Fecha (3)    │
//	│  fila alterna con fondo gris                                     │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/cfdi-conciliador/internal/application/report"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

// Asegura que MarotoReportGenerator implementa report.HistoryPDFGenerator.
var _ report.HistoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 52, Green: 73, Blue: 94}
	colorStripe = &props.Color{Red: 240, Green: 240, Blue: 240}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	gridSize        = 22 // 60/100/30/30 mm en la hoja Carta horizontal
	maxSupplierName = 40
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.HistoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador con formato de importes es-MX.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(language.MustParse("es-MX"))}
}

// GenerateHistoryPDF genera el listado completo de documentos conciliados y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateHistoryPDF(
	_ context.Context,
	rows []repository.DocumentHistoryRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte Histórico de Gastos CFDI", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(generatedAt)...)
	m.AddRows(tableHeaderRow())
	for i, r := range rows {
		m.AddRows(g.documentRow(r, i%2 == 1))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte histórico: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRows(generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(gridSize).Add(
			text.New("Reporte Histórico de Gastos CFDI", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(gridSize).Add(
			text.New("Fecha de Generación: "+generatedAt.Format("2006-01-02 15:04:05"), props.Text{
				Size: 10, Align: align.Center, Color: colorGray,
			}),
		)),
		row.New(5),
	}
}

// tableHeaderRow cabecera con fondo azul y texto blanco.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorWhite, Top: 1.5,
		}))
	}
	return row.New(7).Add(
		h("Proveedor", 6),
		h("UUID", 10),
		h("Importe (MXN)", 3),
		h("Fecha Pago", 3),
	).WithStyle(&props.Cell{
		BackgroundColor: colorHeader,
		BorderType:      border.Full,
		BorderColor:     colorHeader,
	})
}

// documentRow una fila por documento; striped alterna el fondo gris.
func (g *MarotoReportGenerator) documentRow(d repository.DocumentHistoryRow, striped bool) core.Row {
	fecha := "N/A"
	if d.PaymentDate != nil {
		fecha = d.PaymentDate.Format("2006-01-02")
	}
	r := row.New(6).Add(
		text.NewCol(6, truncate(d.SupplierName, maxSupplierName), props.Text{Align: align.Left, Left: 1, Top: 1}),
		text.NewCol(10, d.DocumentID, props.Text{Align: align.Left, Left: 1, Top: 1}),
		text.NewCol(3, g.formatAmount(d.PaidAmount), props.Text{Align: align.Right, Right: 1, Top: 1}),
		text.NewCol(3, fecha, props.Text{Align: align.Center, Top: 1}),
	)
	style := &props.Cell{BorderType: border.Full, BorderColor: colorGray, BorderThickness: 0.1}
	if striped {
		style.BackgroundColor = colorStripe
	}
	return r.WithStyle(style)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount importe con separador de miles es-MX y 2 decimales.
func (g *MarotoReportGenerator) formatAmount(d decimal.Decimal) string {
	return g.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// truncate corta s a n caracteres (runas, no bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
