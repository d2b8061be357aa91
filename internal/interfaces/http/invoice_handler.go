package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/domain"
	"github.com/jhoicas/gst-invoice-api/internal/domain/gst"
	"github.com/jhoicas/gst-invoice-api/pkg/logger"
)

// Cabeceras con los totales en la respuesta de /generate-invoice.
const (
	HeaderSubtotal  = "X-Subtotal"
	HeaderGSTAmount = "X-GST-Amount"
	HeaderTotal     = "X-Total"
)

// InvoiceHandler maneja cálculo de totales y generación del PDF (público, sin estado).
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// Calculate godoc
// @Summary      Calcular totales GST
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "datos de la factura"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /calculate [post]
func (h *InvoiceHandler) Calculate(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Calculate(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(out)
}

// GenerateInvoice godoc
// @Summary      Generar factura PDF
// @Description  Devuelve el PDF como adjunto; los totales viajan en X-Subtotal, X-GST-Amount y X-Total.
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.InvoiceRequest  true  "datos de la factura"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /generate-invoice [post]
func (h *InvoiceHandler) GenerateInvoice(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.GenerateInvoicePDF(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	c.Set(HeaderSubtotal, out.Totals.Subtotal.StringFixed(gst.MoneyPlaces))
	c.Set(HeaderGSTAmount, out.Totals.GSTAmount.StringFixed(gst.MoneyPlaces))
	c.Set(HeaderTotal, out.Totals.Total.StringFixed(gst.MoneyPlaces))
	return c.Status(fiber.StatusOK).Send(out.PDF)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "request body must be a valid JSON invoice"})
}

// respondError traduce errores de dominio a HTTP. Los errores no previstos se registran
// y se responden con un mensaje genérico.
func (h *InvoiceHandler) respondError(c *fiber.Ctx, err error) error {
	var vErr *gst.ValidationError
	if errors.As(err, &vErr) {
		detail := make([]dto.FieldDetail, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			detail = append(detail, dto.FieldDetail{Field: f.Field, Msg: f.Message, Type: f.Type})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "invalid invoice data",
			Detail:  detail,
		})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid invoice data"})
	}

	h.log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("path", c.Path()).
		Msg("error procesando factura")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
}
