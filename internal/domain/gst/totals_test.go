package gst_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice-api/internal/domain/gst"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Caso de referencia: 2 × 500.00 al 18% → 1000.00 / 180.00 / 1180.00
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateTotals_CasoReferencia(t *testing.T) {
	totals := gst.CalculateTotals(dec("2"), dec("500.00"), 18)

	assert.Equal(t, "1000.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "180.00", totals.GSTAmount.StringFixed(2))
	assert.Equal(t, "1180.00", totals.Total.StringFixed(2))
}

// 10.005 está exactamente en la frontera: half-up lo lleva a 10.01 (banker's daría 10.00).
func TestCalculateTotals_RedondeoHalfUpEnFrontera(t *testing.T) {
	totals := gst.CalculateTotals(dec("1"), dec("10.005"), 5)
	assert.True(t, totals.Subtotal.Equal(dec("10.01")), "subtotal = %s", totals.Subtotal)

	// 0.125 → 0.13 (banker's daría 0.12)
	totals = gst.CalculateTotals(dec("0.5"), dec("0.25"), 5)
	assert.True(t, totals.Subtotal.Equal(dec("0.13")), "subtotal = %s", totals.Subtotal)
}

// El GST se calcula sobre el subtotal ya redondeado, no sobre Q × P crudo.
func TestCalculateTotals_GSTSobreSubtotalRedondeado(t *testing.T) {
	// Q×P = 33.333 → 33.33; 33.33 × 18% = 5.9994 → 6.00
	totals := gst.CalculateTotals(dec("3"), dec("11.111"), 18)
	assert.True(t, totals.Subtotal.Equal(dec("33.33")))
	assert.True(t, totals.GSTAmount.Equal(dec("6.00")))
	assert.True(t, totals.Total.Equal(dec("39.33")))

	// 0.05 × 5% = 0.0025 → 0.00
	totals = gst.CalculateTotals(dec("1"), dec("0.05"), 5)
	assert.True(t, totals.GSTAmount.Equal(decimal.Zero))
}

// Propiedad: para todo (Q, P, R) válido, subtotal + gst == total exacto y
// gst == round_half_up(subtotal × R / 100, 2).
func TestCalculateTotals_PropiedadesSobreRejilla(t *testing.T) {
	quantities := []string{"1", "2", "3", "0.5", "1.25", "7", "13.333", "100", "999.999"}
	prices := []string{"0.01", "0.99", "1.005", "10.005", "19.99", "333.335", "500.00", "1234.5678", "99999.99"}

	for _, q := range quantities {
		for _, p := range prices {
			for _, r := range []int{5, 12, 18, 28} {
				t.Run(fmt.Sprintf("%s×%s@%d", q, p, r), func(t *testing.T) {
					totals := gst.CalculateTotals(dec(q), dec(p), r)

					assert.True(t, totals.Subtotal.Add(totals.GSTAmount).Equal(totals.Total),
						"subtotal + gst debe ser igual a total")

					expectedGST := totals.Subtotal.Mul(decimal.NewFromInt(int64(r))).
						Div(decimal.NewFromInt(100)).Round(2)
					assert.True(t, expectedGST.Equal(totals.GSTAmount),
						"gst = %s, esperado %s", totals.GSTAmount, expectedGST)

					for _, m := range []decimal.Decimal{totals.Subtotal, totals.GSTAmount, totals.Total} {
						assert.LessOrEqual(t, -m.Exponent(), int32(2), "máximo 2 decimales: %s", m)
					}
				})
			}
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TaxBreakdown: CGST + SGST
// ──────────────────────────────────────────────────────────────────────────────

func TestTaxBreakdown_DosMitadesIguales(t *testing.T) {
	totals := gst.CalculateTotals(dec("2"), dec("500.00"), 18)
	comps := gst.TaxBreakdown(totals, 18)

	require.Len(t, comps, 2)
	assert.Equal(t, "CGST", comps[0].Label)
	assert.Equal(t, "SGST", comps[1].Label)
	for _, c := range comps {
		assert.Equal(t, "9.0", c.Rate.StringFixed(1))
		assert.Equal(t, "90.00", c.Amount.StringFixed(2))
	}
	assert.True(t, comps[0].Amount.Add(comps[1].Amount).Equal(totals.GSTAmount))
}

func TestTaxBreakdown_TasaImpar(t *testing.T) {
	totals := gst.CalculateTotals(dec("1"), dec("100"), 5)
	comps := gst.TaxBreakdown(totals, 5)

	require.Len(t, comps, 2)
	assert.Equal(t, "2.5", comps[0].Rate.StringFixed(1))
	assert.Equal(t, "2.50", comps[0].Amount.StringFixed(2))
}

// Centavo impar: las mitades no se redondean aquí, suman exactamente el GST.
func TestTaxBreakdown_CentavoImpar(t *testing.T) {
	totals := gst.CalculateTotals(dec("1"), dec("10.10"), 5)
	require.Equal(t, "0.51", totals.GSTAmount.StringFixed(2))

	comps := gst.TaxBreakdown(totals, 5)

	require.Len(t, comps, 2)
	assert.True(t, comps[0].Amount.Equal(dec("0.255")))
	assert.True(t, comps[0].Amount.Add(comps[1].Amount).Equal(totals.GSTAmount))
}
