// Package pdf genera la factura GST (tax invoice) en una página A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                 NOMBRE DEL NEGOCIO (negrita)                │
//	│  Dirección                                                  │
//	│  GSTIN: 29ABCDE1234F2Z5                                     │
//	│  ┌──────────────┬───────────────┬──────┬──────────────┐     │
//	│  │Invoice Number│ INV-001       │ Date │ 01-05-2024   │     │
//	│  │Customer      │ Ravi Kumar    │Phone │ 9876543210   │     │
//	│  └──────────────┴───────────────┴──────┴──────────────┘     │
//	│  Item | Qty | Unit Price | GST % | Line Total               │
//	│                              Subtotal / CGST / SGST / Total │
//	│  Signature: ________________________                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	"github.com/jhoicas/gst-invoice-api/internal/domain/gst"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader     = &props.Color{Red: 15, Green: 23, Blue: 42} // #0f172a
	colorWhite      = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorWhiteSmoke = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorLightGrey  = &props.Color{Red: 211, Green: 211, Blue: 211}
)

const (
	// DefaultCurrencySymbol prefijo de montos. Las fuentes base del PDF no incluyen el glifo ₹.
	DefaultCurrencySymbol = "Rs."
	// DefaultSignatureLabel etiqueta de la línea de firma.
	DefaultSignatureLabel = "Signature"

	dateLayout = "02-01-2006"
)

// Options personaliza el documento sin cambiar su estructura.
type Options struct {
	CurrencySymbol string
	SignatureLabel string
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	currency  string
	signature string
}

// NewMarotoPDFGenerator construye el generador; campos vacíos en opts toman el valor por defecto.
func NewMarotoPDFGenerator(opts Options) *MarotoPDFGenerator {
	g := &MarotoPDFGenerator{currency: opts.CurrencySymbol, signature: opts.SignatureLabel}
	if g.currency == "" {
		g.currency = DefaultCurrencySymbol
	}
	if g.signature == "" {
		g.signature = DefaultSignatureLabel
	}
	return g
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	totals entity.InvoiceTotals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(18).WithRightMargin(18).
		WithTopMargin(16).WithBottomMargin(16).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Tax Invoice "+invoice.Number, true).
		WithAuthor(invoice.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(businessRows(invoice)...)
	m.AddRows(row.New(4))
	m.AddRows(metadataRows(invoice)...)
	m.AddRows(row.New(5))
	m.AddRows(itemRows(invoice, totals, g.currency)...)
	m.AddRows(row.New(4))
	m.AddRows(summaryRows(summaryLines(invoice, totals, g.currency))...)
	m.AddRows(row.New(9))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(g.signature+": ________________________", props.Text{Size: 10, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// businessRows: nombre del negocio destacado, dirección y GSTIN.
func businessRows(invoice *entity.Invoice) []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(invoice.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 2,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(invoice.BusinessAddress, props.Text{Size: 10, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("GSTIN: "+invoice.BusinessGSTIN, props.Text{Size: 10, Top: 1}),
		)),
	}
}

// column describe una columna de tabla: ancho en la grilla de 12 y alineación.
type column struct {
	size  int
	align align.Type
}

var (
	metadataColumns = []column{{3, align.Left}, {4, align.Left}, {2, align.Left}, {3, align.Left}}
	itemColumns     = []column{{5, align.Left}, {1, align.Center}, {2, align.Center}, {2, align.Center}, {2, align.Center}}
)

// metadataRows: tabla 2x4 con número, fecha, cliente y teléfono.
// Las columnas 0 y 2 son etiquetas en negrita.
func metadataRows(invoice *entity.Invoice) []core.Row {
	data := [][]string{
		{"Invoice Number", invoice.Number, "Date", invoice.Date.Format(dateLayout)},
		{"Customer", invoice.CustomerName, "Phone", invoice.CustomerPhone},
	}
	rows := make([]core.Row, 0, len(data))
	for _, cells := range data {
		rows = append(rows, tableRow(8, metadataColumns, cells, func(i int) props.Text {
			p := props.Text{Size: 9, Top: 2, Left: 2, Right: 2}
			if i == 0 || i == 2 {
				p.Style = fontstyle.Bold
			}
			return p
		}, &props.Cell{
			BackgroundColor: colorWhiteSmoke,
			BorderType:      border.Full,
			BorderColor:     colorLightGrey,
			BorderThickness: 0.2,
		}))
	}
	return rows
}

// itemRows: cabecera oscura + una fila con el único ítem de la factura.
func itemRows(invoice *entity.Invoice, totals entity.InvoiceTotals, currency string) []core.Row {
	grid := &props.Cell{BorderType: border.Full, BorderColor: colorLightGrey, BorderThickness: 0.2}

	header := tableRow(8, itemColumns,
		[]string{"Item", "Qty", "Unit Price", "GST %", "Line Total"},
		func(int) props.Text {
			return props.Text{Style: fontstyle.Bold, Size: 9, Color: colorWhite, Top: 2, Left: 2, Right: 2}
		},
		&props.Cell{BackgroundColor: colorHeader, BorderType: border.Full, BorderColor: colorLightGrey, BorderThickness: 0.2},
	)

	item := tableRow(8, itemColumns,
		[]string{
			invoice.ItemName,
			formatQuantity(invoice.Quantity),
			FormatMoney(currency, invoice.UnitPrice),
			fmt.Sprintf("%d%%", invoice.GSTRate),
			FormatMoney(currency, totals.Subtotal),
		},
		func(int) props.Text { return props.Text{Size: 9, Top: 2, Left: 2, Right: 2} },
		grid,
	)

	return []core.Row{header, item}
}

// summaryLine fila del resumen de impuestos.
type summaryLine struct {
	Label string
	Value string
	Bold  bool
}

// summaryLines: Subtotal, un renglón por componente del GST (CGST/SGST) y Total.
func summaryLines(invoice *entity.Invoice, totals entity.InvoiceTotals, currency string) []summaryLine {
	lines := []summaryLine{{Label: "Subtotal", Value: FormatMoney(currency, totals.Subtotal)}}
	for _, c := range gst.TaxBreakdown(totals, invoice.GSTRate) {
		lines = append(lines, summaryLine{
			Label: fmt.Sprintf("%s (%s%%)", c.Label, c.Rate.StringFixed(1)),
			Value: FormatMoney(currency, c.Amount),
		})
	}
	return append(lines, summaryLine{Label: "Total", Value: FormatMoney(currency, totals.Total), Bold: true})
}

// summaryRows: tabla de resumen alineada a la derecha.
func summaryRows(lines []summaryLine) []core.Row {
	grid := &props.Cell{BorderType: border.Full, BorderColor: colorLightGrey, BorderThickness: 0.2}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		style := fontstyle.Normal
		if l.Bold {
			style = fontstyle.Bold
		}
		rows = append(rows, row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New(l.Label, props.Text{
				Style: style, Size: 9, Top: 1.5, Left: 2,
			})).WithStyle(grid),
			col.New(3).Add(text.New(l.Value, props.Text{
				Style: style, Size: 9, Align: align.Right, Top: 1.5, Right: 2,
			})).WithStyle(grid),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// tableRow arma una fila con una celda por columna; textProps recibe el índice de columna.
func tableRow(height float64, cols []column, cells []string, textProps func(int) props.Text, cell *props.Cell) core.Row {
	r := row.New(height)
	for i, c := range cols {
		p := textProps(i)
		p.Align = c.align
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		r = r.Add(col.New(c.size).Add(text.New(value, p)).WithStyle(cell))
	}
	return r
}

// formatQuantity muestra la cantidad con la escala con que llegó: "2.50" sigue siendo "2.50".
func formatQuantity(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// FormatMoney formatea un monto con separador de miles "," y 2 decimales,
// precedido del símbolo de moneda. Ej: ("Rs.", 1180) → "Rs. 1,180.00".
func FormatMoney(symbol string, d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return symbol + " " + sign + groupThousands(intPart) + "." + frac
}

// groupThousands inserta comas de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
