// Package gst contiene las reglas de dominio de una factura GST: validación campo a
// campo de la solicitud y cálculo de totales con aritmética decimal.
package gst

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gst-invoice-api/internal/domain/entity"
	pkggst "github.com/jhoicas/gst-invoice-api/pkg/gst"
)

// DateLayout formato de invoice_date en la solicitud.
const DateLayout = "2006-01-02"

// Límites de quantity y unit_price. Se verifican antes de cualquier aritmética:
// un exponente enorme ("1e20000000") es barato de decodificar pero no de redondear.
const (
	MaxIntegerDigits  = 12
	MaxFractionDigits = 10
)

var maxAmount = decimal.New(1, MaxIntegerDigits)

// Nombres de campo tal como llegan en el JSON.
const (
	FieldBusinessName    = "business_name"
	FieldBusinessAddress = "business_address"
	FieldBusinessGSTIN   = "business_gst_number"
	FieldCustomerName    = "customer_name"
	FieldCustomerPhone   = "customer_phone"
	FieldInvoiceNumber   = "invoice_number"
	FieldInvoiceDate     = "invoice_date"
	FieldItemName        = "item_name"
	FieldQuantity        = "quantity"
	FieldUnitPrice       = "unit_price"
	FieldGSTRate         = "gst_rate"
)

// InvoiceInput valores crudos de la solicitud, antes de validar.
type InvoiceInput struct {
	BusinessName    string
	BusinessAddress string
	BusinessGSTIN   string
	CustomerName    string
	CustomerPhone   string
	InvoiceNumber   string
	InvoiceDate     string
	ItemName        string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	GSTRate         int
}

// ValidateInvoiceRequest valida cada campo y devuelve la factura normalizada.
// Si algún campo falla retorna *ValidationError con todos los campos inválidos,
// no solo el primero.
func ValidateInvoiceRequest(in InvoiceInput) (*entity.Invoice, error) {
	v := &fieldValidator{}

	inv := &entity.Invoice{
		BusinessName:    v.text(FieldBusinessName, in.BusinessName, 2, 120),
		BusinessAddress: v.text(FieldBusinessAddress, in.BusinessAddress, 5, 300),
		BusinessGSTIN:   v.gstin(FieldBusinessGSTIN, in.BusinessGSTIN),
		CustomerName:    v.text(FieldCustomerName, in.CustomerName, 2, 120),
		CustomerPhone:   v.phone(FieldCustomerPhone, in.CustomerPhone),
		Number:          v.text(FieldInvoiceNumber, in.InvoiceNumber, 3, 30),
		Date:            v.date(FieldInvoiceDate, in.InvoiceDate),
		ItemName:        v.text(FieldItemName, in.ItemName, 2, 120),
		Quantity:        v.positive(FieldQuantity, in.Quantity),
		UnitPrice:       v.positive(FieldUnitPrice, in.UnitPrice),
		GSTRate:         v.rate(FieldGSTRate, in.GSTRate),
	}

	if len(v.errs) > 0 {
		return nil, &ValidationError{Fields: v.errs}
	}
	return inv, nil
}

// fieldValidator acumula errores; cada método valida un campo y devuelve su valor normalizado.
type fieldValidator struct {
	errs []FieldError
}

func (v *fieldValidator) fail(field, typ, msg string) {
	v.errs = append(v.errs, FieldError{Field: field, Type: typ, Message: msg})
}

// cleanText recorta espacios y normaliza a NFC para que la longitud se cuente por runa visible.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func (v *fieldValidator) length(field, s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		v.fail(field, ErrTypeMissing, "Field required")
		return false
	case n < min:
		v.fail(field, ErrTypeTooShort, fmt.Sprintf("String should have at least %d characters", min))
		return false
	case n > max:
		v.fail(field, ErrTypeTooLong, fmt.Sprintf("String should have at most %d characters", max))
		return false
	}
	return true
}

func (v *fieldValidator) text(field, raw string, min, max int) string {
	s := cleanText(raw)
	v.length(field, s, min, max)
	return s
}

func (v *fieldValidator) gstin(field, raw string) string {
	s := pkggst.NormalizeGSTIN(raw)
	if !v.length(field, s, pkggst.GSTINLength, pkggst.GSTINLength) {
		return s
	}
	normalized, err := pkggst.ValidateGSTIN(s)
	if err != nil {
		v.fail(field, ErrTypeGSTIN, "Enter a valid 15-character GST number.")
		return s
	}
	return normalized
}

func (v *fieldValidator) phone(field, raw string) string {
	s := strings.TrimSpace(raw)
	if !v.length(field, s, 10, 14) {
		return s
	}
	mobile, err := pkggst.NormalizeMobile(s)
	if err != nil {
		v.fail(field, ErrTypePhone, "Enter a valid Indian mobile number.")
		return s
	}
	return mobile
}

func (v *fieldValidator) date(field, raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		v.fail(field, ErrTypeMissing, "Field required")
		return time.Time{}
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		v.fail(field, ErrTypeDate, "Input should be a valid date in YYYY-MM-DD format")
		return time.Time{}
	}
	return d
}

func (v *fieldValidator) positive(field string, d decimal.Decimal) decimal.Decimal {
	if !d.IsPositive() {
		v.fail(field, ErrTypeGreaterThan, "Input should be greater than 0")
		return d
	}
	// Orden importa: el exponente se acota antes de comparar, porque Cmp reescala.
	switch {
	case d.Exponent() < -MaxFractionDigits:
		v.fail(field, ErrTypeMaxPlaces, fmt.Sprintf("Decimal input should have no more than %d decimal places", MaxFractionDigits))
	case d.Exponent() > MaxIntegerDigits,
		d.Coefficient().BitLen() > 128,
		d.GreaterThanOrEqual(maxAmount):
		v.fail(field, ErrTypeTooLarge, fmt.Sprintf("Input should be less than 10^%d", MaxIntegerDigits))
	}
	return d
}

func (v *fieldValidator) rate(field string, rate int) int {
	if !pkggst.IsValidRate(rate) {
		v.fail(field, ErrTypeRate, "Input should be 5, 12, 18 or 28")
	}
	return rate
}
