package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una solicitud de factura ya validada y normalizada.
// Se construye por petición y no se persiste.
type Invoice struct {
	BusinessName    string
	BusinessAddress string
	BusinessGSTIN   string // 15 caracteres, mayúsculas
	CustomerName    string
	CustomerPhone   string // últimos 10 dígitos del móvil
	Number          string
	Date            time.Time
	ItemName        string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	GSTRate         int // 5, 12, 18 o 28
}

// InvoiceTotals montos derivados, todos con 2 decimales (redondeo half-up).
type InvoiceTotals struct {
	Subtotal  decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal
}

// TaxComponent porción del GST mostrada en el resumen (CGST / SGST).
type TaxComponent struct {
	Label  string
	Rate   decimal.Decimal // porcentaje
	Amount decimal.Decimal
}
