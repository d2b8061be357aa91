// Package gst contiene catálogos y reglas de bajo nivel del Goods and Services Tax (India):
// tasas vigentes, formato del GSTIN y de números móviles, y la convención CGST/SGST.
package gst

import (
	"errors"

	"github.com/shopspring/decimal"
)

// =============================================================================
// Tasas GST (slabs) admitidas para una línea de factura.
// =============================================================================

const (
	Rate5  = 5
	Rate12 = 12
	Rate18 = 18
	Rate28 = 28
)

// Rates es la enumeración cerrada de tasas válidas, en orden ascendente.
var Rates = []int{Rate5, Rate12, Rate18, Rate28}

// ErrInvalidRate tasa fuera del catálogo.
var ErrInvalidRate = errors.New("gst: tasa no admitida")

// IsValidRate indica si rate pertenece al catálogo de tasas.
func IsValidRate(rate int) bool {
	for _, r := range Rates {
		if r == rate {
			return true
		}
	}
	return false
}

// =============================================================================
// Componentes de impuesto intra-estatal: CGST (central) + SGST (estatal).
// =============================================================================

const (
	ComponentCGST = "CGST"
	ComponentSGST = "SGST"
)

// Component describe una porción del impuesto con su tasa nominal.
type Component struct {
	Label string
	Rate  decimal.Decimal // porcentaje, ej. 9 para 9%
}

// SplitComponents aplica la convención intra-estatal: dos componentes co-iguales,
// cada uno a la mitad de la tasa nominal.
func SplitComponents(rate int) []Component {
	half := decimal.NewFromInt(int64(rate)).Div(decimal.NewFromInt(2))
	return []Component{
		{Label: ComponentCGST, Rate: half},
		{Label: ComponentSGST, Rate: half},
	}
}
