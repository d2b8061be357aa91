package gst

import (
	"fmt"
	"strings"

	"github.com/jhoicas/gst-invoice-api/internal/domain"
)

// Tipos de error por campo (estables; el frontend puede depender de ellos).
const (
	ErrTypeMissing     = "missing"
	ErrTypeTooShort    = "string_too_short"
	ErrTypeTooLong     = "string_too_long"
	ErrTypeGSTIN       = "invalid_gstin"
	ErrTypePhone       = "invalid_phone"
	ErrTypeDate        = "invalid_date"
	ErrTypeGreaterThan = "greater_than"
	ErrTypeRate        = "invalid_rate"
	ErrTypeTooLarge    = "too_large"
	ErrTypeMaxPlaces   = "decimal_max_places"
)

// FieldError describe por qué un campo de la solicitud fue rechazado.
type FieldError struct {
	Field   string
	Message string
	Type    string
}

// ValidationError agrupa todos los campos inválidos de una solicitud.
// errors.Is(err, domain.ErrInvalidInput) es verdadero.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", domain.ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Has indica si el campo dado tiene al menos un error.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
