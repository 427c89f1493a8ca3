package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChangeKind etiqueta de un evento reportable.
type ChangeKind string

const (
	ChangeNewSupplier        ChangeKind = "NEW_SUPPLIER"
	ChangeNewPayment         ChangeKind = "NEW_PAYMENT"
	ChangeAmountChanged      ChangeKind = "AMOUNT_CHANGED"
	ChangeVerificationResult ChangeKind = "VERIFICATION_RESULT"
	ChangeVerificationFailed ChangeKind = "VERIFICATION_FAILED"
	ChangeNoChange           ChangeKind = "NO_CHANGE"
	ChangeParseError         ChangeKind = "PARSE_ERROR"
	ChangeConnectionError    ChangeKind = "CONNECTION_ERROR"
	ChangeUnexpectedError    ChangeKind = "UNEXPECTED_ERROR"
)

// Severity tono de un evento individual (error / info / change).
type Severity string

const (
	SeverityError  Severity = "error"
	SeverityInfo   Severity = "info"
	SeverityChange Severity = "change"
)

// Severity clasifica el tipo de evento.
func (k ChangeKind) Severity() Severity {
	switch k {
	case ChangeParseError, ChangeConnectionError, ChangeUnexpectedError:
		return SeverityError
	case ChangeNewSupplier, ChangeNewPayment, ChangeAmountChanged:
		return SeverityChange
	default:
		return SeverityInfo
	}
}

// ChangeEvent resultado reportable con mensaje formateado y campos estructurados.
type ChangeEvent struct {
	Kind          ChangeKind
	Message       string
	DocumentID    string
	SupplierTaxID string
	OldAmount     decimal.NullDecimal
	NewAmount     decimal.NullDecimal
	HTTPStatus    int
	SATStatus     string
	SATCode       string
	// Connectivity marca un VerificationFailed causado por la red (timeout, DNS, conexión rechazada).
	Connectivity bool
}

// IsError indica si el evento es de error (aborta el pipeline).
func (e ChangeEvent) IsError() bool {
	return e.Kind.Severity() == SeverityError
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(AmountScale)
}

// NewSupplierEvent proveedor visto por primera vez.
func NewSupplierEvent(s Supplier) ChangeEvent {
	return ChangeEvent{
		Kind:          ChangeNewSupplier,
		Message:       fmt.Sprintf("🆕 PROVEEDOR NUEVO DETECTADO: %s (%s)", s.Name, s.TaxID),
		SupplierTaxID: s.TaxID,
	}
}

// NewPaymentEvent primer registro de un UUID.
func NewPaymentEvent(supplierTaxID, documentID string, amount decimal.Decimal) ChangeEvent {
	return ChangeEvent{
		Kind:          ChangeNewPayment,
		Message:       fmt.Sprintf("💰 NUEVO GASTO REGISTRADO: UUID %s = %s", documentID, money(amount)),
		DocumentID:    documentID,
		SupplierTaxID: supplierTaxID,
		NewAmount:     decimal.NewNullDecimal(amount),
	}
}

// AmountChangedEvent cambio de importe sobre un UUID ya registrado.
func AmountChangedEvent(supplierTaxID, documentID string, oldAmount, newAmount decimal.Decimal) ChangeEvent {
	return ChangeEvent{
		Kind: ChangeAmountChanged,
		Message: fmt.Sprintf("🔄 CAMBIO EN IMPORTE/PARCIALIDAD: UUID %s. Antes: %s | Ahora: %s",
			documentID, money(oldAmount), money(newAmount)),
		DocumentID:    documentID,
		SupplierTaxID: supplierTaxID,
		OldAmount:     decimal.NewNullDecimal(oldAmount),
		NewAmount:     decimal.NewNullDecimal(newAmount),
	}
}

// VerificationResultEvent respuesta 200 del verificador SAT, transmitida sin interpretar.
func VerificationResultEvent(documentID, status, code string) ChangeEvent {
	return ChangeEvent{
		Kind:       ChangeVerificationResult,
		Message:    fmt.Sprintf("🤖 Microservicio SAT: %s (Cód.: %s)", status, code),
		DocumentID: documentID,
		HTTPStatus: 200,
		SATStatus:  status,
		SATCode:    code,
	}
}

// VerificationHTTPFailedEvent respuesta distinta de 200 del verificador.
func VerificationHTTPFailedEvent(documentID string, httpStatus int) ChangeEvent {
	return ChangeEvent{
		Kind:       ChangeVerificationFailed,
		Message:    fmt.Sprintf("⚠️ Microservicio SAT Falló: HTTP %d. Revisar Logs de API Gateway.", httpStatus),
		DocumentID: documentID,
		HTTPStatus: httpStatus,
	}
}

// VerificationConnectionFailedEvent el verificador no respondió (timeout, DNS, conexión).
func VerificationConnectionFailedEvent(documentID string, err error) ChangeEvent {
	return ChangeEvent{
		Kind:         ChangeVerificationFailed,
		Message:      fmt.Sprintf("🚨 Error Conexión API: No se pudo contactar al API Gateway. %v", err),
		DocumentID:   documentID,
		Connectivity: true,
	}
}

// VerificationInvalidBodyEvent respuesta 200 cuyo cuerpo no es el JSON esperado.
func VerificationInvalidBodyEvent(documentID string, err error) ChangeEvent {
	return ChangeEvent{
		Kind:       ChangeVerificationFailed,
		Message:    fmt.Sprintf("⚠️ Microservicio SAT Falló: respuesta ilegible (%v). Revisar Logs de API Gateway.", err),
		DocumentID: documentID,
		HTTPStatus: 200,
	}
}

// NoChangeEvent documento procesado sin cambios.
func NoChangeEvent() ChangeEvent {
	return ChangeEvent{
		Kind:    ChangeNoChange,
		Message: "✅ INFO: Factura procesada y registrada sin cambios relevantes.",
	}
}

// NotReconciledEvent comprobante de un tipo que no se concilia (E, T, N...).
func NotReconciledEvent(typeCode, documentID string) ChangeEvent {
	return ChangeEvent{
		Kind:       ChangeNoChange,
		Message:    fmt.Sprintf("✅ INFO: Comprobante tipo %q no requiere conciliación.", typeCode),
		DocumentID: documentID,
	}
}

// MalformedDocumentEvent el XML no es well-formed.
func MalformedDocumentEvent() ChangeEvent {
	return ChangeEvent{
		Kind:    ChangeParseError,
		Message: "❌ ERROR DE FORMATO: El archivo XML está mal formado o no es un CFDI válido.",
	}
}

// UnsupportedStructureEvent XML válido pero sin los elementos fiscales requeridos.
func UnsupportedStructureEvent(err error) ChangeEvent {
	return ChangeEvent{
		Kind:    ChangeParseError,
		Message: fmt.Sprintf("❌ ERROR DE ESTRUCTURA: El CFDI no tiene la estructura esperada. %v", err),
	}
}

// ConnectionErrorEvent fallo del almacén de registros.
func ConnectionErrorEvent(err error) ChangeEvent {
	return ChangeEvent{
		Kind:    ChangeConnectionError,
		Message: fmt.Sprintf("❌ ERROR CRÍTICO DB: %v", err),
	}
}

// UnexpectedErrorEvent cualquier otro fallo.
func UnexpectedErrorEvent(err error) ChangeEvent {
	return ChangeEvent{
		Kind:    ChangeUnexpectedError,
		Message: fmt.Sprintf("❌ ERROR INESPERADO: Fallo en la lógica del programa. %v", err),
	}
}
