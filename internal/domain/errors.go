package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Errores del flujo de conciliación CFDI.
	ErrMalformedDocument       = errors.New("XML mal formado")
	ErrUnsupportedStructure    = errors.New("estructura CFDI no soportada")
	ErrStore                   = errors.New("error del almacén de registros")
	ErrVerificationUnavailable = errors.New("servicio de verificación SAT no disponible")
)

// ErrorKind clasificación cerrada de fallos del pipeline. Los callers hacen switch
// exhaustivo sobre este valor en lugar de depender del orden de errors.Is.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMalformedDocument
	KindUnsupportedStructure
	KindStore
	KindVerificationUnavailable
	KindUnexpected
)

// String devuelve el nombre estable del tipo de error (útil en logs).
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMalformedDocument:
		return "malformed_document"
	case KindUnsupportedStructure:
		return "unsupported_structure"
	case KindStore:
		return "store"
	case KindVerificationUnavailable:
		return "verification_unavailable"
	default:
		return "unexpected"
	}
}

// Classify traduce un error del pipeline a su ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedDocument):
		return KindMalformedDocument
	case errors.Is(err, ErrUnsupportedStructure):
		return KindUnsupportedStructure
	case errors.Is(err, ErrStore):
		return KindStore
	case errors.Is(err, ErrVerificationUnavailable):
		return KindVerificationUnavailable
	default:
		return KindUnexpected
	}
}
