package billing

import (
	"context"

	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
)

// InvoicePDFGenerator genera el PDF de una factura ya validada.
// Implementado por infrastructure/pdf.MarotoPDFGenerator.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, totals entity.InvoiceTotals) ([]byte, error)
}
