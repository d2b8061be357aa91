package gst

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// mobilePattern: prefijo de país opcional (+91 o 91) y 10 dígitos que inician en 6-9.
var mobilePattern = regexp.MustCompile(`^(?:\+91|91)?[6-9]\d{9}$`)

// ErrInvalidMobile el número no es un móvil indio válido.
var ErrInvalidMobile = errors.New("gst: número móvil inválido")

// NormalizeMobile acepta "+919876543210", "919876543210" o "9876543210"
// (con espacios intermedios) y devuelve siempre los últimos 10 dígitos.
func NormalizeMobile(raw string) (string, error) {
	v := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if !mobilePattern.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMobile, raw)
	}
	return v[len(v)-10:], nil
}
