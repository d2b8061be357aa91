package gst

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// GSTINLength longitud fija del GSTIN.
const GSTINLength = 15

// gstinPattern: 2 dígitos (estado) + PAN (5 letras, 4 dígitos, 1 letra) + entidad + 'Z' + control.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]$`)

// ErrInvalidGSTIN el GSTIN no cumple el formato de 15 caracteres.
var ErrInvalidGSTIN = errors.New("gst: GSTIN inválido")

// NormalizeGSTIN elimina espacios alrededor y pasa a mayúsculas.
func NormalizeGSTIN(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidateGSTIN normaliza el GSTIN y verifica su formato.
// Retorna el valor normalizado listo para imprimir en la factura.
func ValidateGSTIN(raw string) (string, error) {
	v := NormalizeGSTIN(raw)
	if !gstinPattern.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGSTIN, v)
	}
	return v, nil
}
