package gst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice-api/pkg/gst"
)

func TestValidateGSTIN_Valido(t *testing.T) {
	got, err := gst.ValidateGSTIN("29ABCDE1234F2Z5")
	require.NoError(t, err)
	assert.Equal(t, "29ABCDE1234F2Z5", got)
}

// El GSTIN se normaliza (trim + mayúsculas) antes de validar el patrón.
func TestValidateGSTIN_NormalizaMinusculasYEspacios(t *testing.T) {
	got, err := gst.ValidateGSTIN("  27aapfu0939f1zv ")
	require.NoError(t, err)
	assert.Equal(t, "27AAPFU0939F1ZV", got)
}

func TestValidateGSTIN_Rechazos(t *testing.T) {
	casos := map[string]string{
		"longitud corta":            "29ABCDE1234F2Z",
		"longitud larga":            "29ABCDE1234F2Z55",
		"estado con letras":         "A9ABCDE1234F2Z5",
		"PAN con dígito":            "29ABCD91234F2Z5",
		"dígitos PAN con letra":     "29ABCDE12X4F2Z5",
		"letra PAN final es dígito": "29ABCDE123452Z5",
		"sin Z literal":             "29ABCDE1234F2X5",
		"carácter especial":         "29ABCDE1234F2Z-",
		"vacío":                     "",
		"espacio interno":           "29ABCDE 234F2Z5",
	}
	for nombre, in := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := gst.ValidateGSTIN(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, gst.ErrInvalidGSTIN))
		})
	}
}

func TestNormalizeGSTIN(t *testing.T) {
	assert.Equal(t, "29ABCDE1234F2Z5", gst.NormalizeGSTIN(" 29abcde1234f2z5\t"))
}

func TestIsValidRate(t *testing.T) {
	for _, r := range []int{5, 12, 18, 28} {
		assert.True(t, gst.IsValidRate(r), "tasa %d debe ser válida", r)
	}
	for _, r := range []int{0, 1, 3, 10, 15, 20, 40, -18} {
		assert.False(t, gst.IsValidRate(r), "tasa %d no debe ser válida", r)
	}
}

func TestSplitComponents_MitadDeLaTasa(t *testing.T) {
	comps := gst.SplitComponents(18)
	require.Len(t, comps, 2)
	assert.Equal(t, gst.ComponentCGST, comps[0].Label)
	assert.Equal(t, gst.ComponentSGST, comps[1].Label)
	assert.Equal(t, "9.0", comps[0].Rate.StringFixed(1))
	assert.Equal(t, "9.0", comps[1].Rate.StringFixed(1))

	assert.Equal(t, "2.5", gst.SplitComponents(5)[0].Rate.StringFixed(1))
}
