package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InvoiceRequest body para POST /calculate y POST /generate-invoice.
// quantity y unit_price aceptan número o string JSON; se decodifican a decimal sin pasar por float.
type InvoiceRequest struct {
	BusinessName      string          `json:"business_name"`
	BusinessAddress   string          `json:"business_address"`
	BusinessGSTNumber string          `json:"business_gst_number"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	InvoiceNumber     string          `json:"invoice_number"`
	InvoiceDate       string          `json:"invoice_date"` // YYYY-MM-DD
	ItemName          string          `json:"item_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	GSTRate           int             `json:"gst_rate"` // 5, 12, 18 o 28
}

// TotalsResponse totales como números JSON con 2 decimales (ej. 1180.00).
type TotalsResponse struct {
	Subtotal  json.Number `json:"subtotal"`
	GSTAmount json.Number `json:"gst_amount"`
	Total     json.Number `json:"total"`
}
