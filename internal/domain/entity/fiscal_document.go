package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UUIDNotFound valor centinela cuando el CFDI no trae TimbreFiscalDigital.
const UUIDNotFound = "UUID-NO-ENCONTRADO"

// CanonicalTimeLayout formato textual único de las fechas normalizadas.
const CanonicalTimeLayout = "2006-01-02 15:04:05"

// SchemaVersion versión declarada del CFDI (atributo Version).
type SchemaVersion string

const (
	SchemaV33 SchemaVersion = "3.3"
	SchemaV40 SchemaVersion = "4.0"
)

// DocumentType tipo de comprobante (atributo TipoDeComprobante).
type DocumentType string

const (
	DocumentTypeIncome            DocumentType = "I"
	DocumentTypePaymentComplement DocumentType = "P"
	DocumentTypeOther             DocumentType = "OTHER"
)

// DocumentTypeFromCode mapea el código SAT al tipo interno. Cualquier código distinto de I/P es Other.
func DocumentTypeFromCode(code string) DocumentType {
	switch code {
	case "I":
		return DocumentTypeIncome
	case "P":
		return DocumentTypePaymentComplement
	default:
		return DocumentTypeOther
	}
}

// RelatedDocument DoctoRelacionado de un complemento de pago.
type RelatedDocument struct {
	RelatedUUID string
	PaidAmount  decimal.Decimal
	PaymentDate *time.Time // FechaPago compartida del complemento
}

// FiscalDocument representación parseada de un CFDI. Vive solo durante una conciliación.
type FiscalDocument struct {
	SchemaVersion SchemaVersion
	DocumentType  DocumentType
	TypeCode      string // código original de TipoDeComprobante (I, E, P, T, N)
	EmitterTaxID  string
	EmitterName   string
	UUID          string // UUIDNotFound si no hay timbre
	Total         decimal.Decimal
	IssuedAt      *time.Time

	// Solo para complementos de pago.
	PaymentDate      *time.Time // FechaPago del primer nodo Pago; nil si falta
	HasPaymentNode   bool
	RelatedDocuments []RelatedDocument
}

// HasUUID indica si el documento trae su propio UUID de timbre.
func (d *FiscalDocument) HasUUID() bool {
	return d.UUID != "" && d.UUID != UUIDNotFound
}

// PayableEvent unidad de conciliación: un UUID con su importe y fecha.
type PayableEvent struct {
	DocumentID string
	Amount     decimal.Decimal
	EventDate  *time.Time
}

// FormatTime renderiza una fecha opcional en el formato canónico ("" si es nil).
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(CanonicalTimeLayout)
}
