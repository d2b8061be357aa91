package gst

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	pkggst "github.com/jhoicas/gst-invoice-api/pkg/gst"
)

// MoneyPlaces decimales de todos los montos.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// roundHalfUp redondea a 2 decimales. decimal.Round redondea la mitad alejándose de cero,
// que para montos positivos equivale a half-up (10.005 -> 10.01).
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// CalculateTotals calcula subtotal, GST y total:
//
//	subtotal = round(Q × P)
//	gst      = round(subtotal × R / 100)
//	total    = round(subtotal + gst)
func CalculateTotals(quantity, unitPrice decimal.Decimal, rate int) entity.InvoiceTotals {
	subtotal := roundHalfUp(quantity.Mul(unitPrice))
	gstAmount := roundHalfUp(subtotal.Mul(decimal.NewFromInt(int64(rate))).Div(hundred))
	total := roundHalfUp(subtotal.Add(gstAmount))
	return entity.InvoiceTotals{
		Subtotal:  subtotal,
		GSTAmount: gstAmount,
		Total:     total,
	}
}

// TaxBreakdown reparte el GST en los componentes de la convención intra-estatal.
// Cada componente recibe GST / n; el valor no se redondea aquí (se formatea al mostrar).
func TaxBreakdown(totals entity.InvoiceTotals, rate int) []entity.TaxComponent {
	comps := pkggst.SplitComponents(rate)
	parts := decimal.NewFromInt(int64(len(comps)))
	out := make([]entity.TaxComponent, 0, len(comps))
	for _, c := range comps {
		out = append(out, entity.TaxComponent{
			Label:  c.Label,
			Rate:   c.Rate,
			Amount: totals.GSTAmount.Div(parts),
		})
	}
	return out
}
