package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	"github.com/jhoicas/gst-invoice-api/internal/domain/gst"
	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

// InvoiceUseCase valida solicitudes de factura, calcula totales y genera el PDF.
// No guarda estado entre peticiones.
type InvoiceUseCase struct {
	generator InvoicePDFGenerator
	log       *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(generator InvoicePDFGenerator, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{generator: generator, log: log.With("component", "billing")}
}

// GeneratedInvoice resultado de GenerateInvoicePDF.
type GeneratedInvoice struct {
	PDF      []byte
	Filename string
	Totals   entity.InvoiceTotals
}

// Calculate valida la solicitud y devuelve solo los totales.
// Retorna *gst.ValidationError (envuelve domain.ErrInvalidInput) si algún campo es inválido.
func (uc *InvoiceUseCase) Calculate(_ context.Context, in dto.InvoiceRequest) (*dto.TotalsResponse, error) {
	inv, err := gst.ValidateInvoiceRequest(toInput(in))
	if err != nil {
		return nil, err
	}
	totals := gst.CalculateTotals(inv.Quantity, inv.UnitPrice, inv.GSTRate)
	return ToTotalsResponse(totals), nil
}

// GenerateInvoicePDF valida, calcula totales y genera el PDF de la factura.
//
// Retorna:
//   - (*GeneratedInvoice, nil)  si todo sale bien.
//   - *gst.ValidationError      si la solicitud es inválida.
//   - error envuelto            si falla la generación del documento.
func (uc *InvoiceUseCase) GenerateInvoicePDF(ctx context.Context, in dto.InvoiceRequest) (*GeneratedInvoice, error) {
	inv, err := gst.ValidateInvoiceRequest(toInput(in))
	if err != nil {
		return nil, err
	}
	totals := gst.CalculateTotals(inv.Quantity, inv.UnitPrice, inv.GSTRate)

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, totals)
	if err != nil {
		return nil, fmt.Errorf("billing: generación de PDF fallida: %w", err)
	}

	uc.log.Info().
		Str("invoice_number", inv.Number).
		Str("subtotal", totals.Subtotal.StringFixed(gst.MoneyPlaces)).
		Str("gst_amount", totals.GSTAmount.StringFixed(gst.MoneyPlaces)).
		Str("total", totals.Total.StringFixed(gst.MoneyPlaces)).
		Int("bytes", len(pdfBytes)).
		Msg("factura generada")

	return &GeneratedInvoice{
		PDF:      pdfBytes,
		Filename: PDFFilename(inv.Number),
		Totals:   totals,
	}, nil
}

// ToTotalsResponse expresa los totales como números JSON con exactamente 2 decimales.
func ToTotalsResponse(t entity.InvoiceTotals) *dto.TotalsResponse {
	return &dto.TotalsResponse{
		Subtotal:  json.Number(t.Subtotal.StringFixed(gst.MoneyPlaces)),
		GSTAmount: json.Number(t.GSTAmount.StringFixed(gst.MoneyPlaces)),
		Total:     json.Number(t.Total.StringFixed(gst.MoneyPlaces)),
	}
}

// PDFFilename nombre del adjunto: número de factura con espacios como "_".
// Se descartan comillas, barras invertidas y caracteres de control, que romperían
// el valor entre comillas de Content-Disposition.
func PDFFilename(invoiceNumber string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '"' || r == '\\' || unicode.IsControl(r):
			return -1
		}
		return r
	}, invoiceNumber)
	return name + ".pdf"
}

func toInput(in dto.InvoiceRequest) gst.InvoiceInput {
	return gst.InvoiceInput{
		BusinessName:    in.BusinessName,
		BusinessAddress: in.BusinessAddress,
		BusinessGSTIN:   in.BusinessGSTNumber,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		InvoiceNumber:   in.InvoiceNumber,
		InvoiceDate:     in.InvoiceDate,
		ItemName:        in.ItemName,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		GSTRate:         in.GSTRate,
	}
}
