package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale decimales con los que se normalizan y comparan los importes.
const AmountScale = 2

// PaymentRecord importe pagado registrado para un UUID de documento.
type PaymentRecord struct {
	DocumentID    string // UUID del CFDI (propio o relacionado)
	SupplierTaxID string
	PaidAmount    decimal.Decimal
	PaymentDate   *time.Time
}

// NormalizeAmount redondea un importe a la escala fija usada en almacenamiento y comparación.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// SameAmount compara dos importes de forma exacta tras normalizarlos (sin tolerancia).
func SameAmount(a, b decimal.Decimal) bool {
	return NormalizeAmount(a).Equal(NormalizeAmount(b))
}
