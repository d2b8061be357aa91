package dto

// ErrorResponse cuerpo de error HTTP.
// Detail solo se incluye en errores de validación (uno por campo).
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Detail  []FieldDetail `json:"detail,omitempty"`
}

// FieldDetail error de un campo de la solicitud.
type FieldDetail struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
	Type  string `json:"type"`
}
