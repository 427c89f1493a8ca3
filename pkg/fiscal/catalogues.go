// Package fiscal contiene catálogos y validaciones del SAT (México) usados al conciliar CFDI.
package fiscal

// =============================================================================
// c_TipoDeComprobante (Anexo 20, catálogos CFDI 3.3 / 4.0)
// =============================================================================

const (
	VoucherIncome   = "I" // Ingreso
	VoucherExpense  = "E" // Egreso
	VoucherTransfer = "T" // Traslado
	VoucherPayroll  = "N" // Nómina
	VoucherPayment  = "P" // Pago (complemento de recepción de pagos)
)

var voucherTypes = map[string]string{
	VoucherIncome:   "Ingreso",
	VoucherExpense:  "Egreso",
	VoucherTransfer: "Traslado",
	VoucherPayroll:  "Nómina",
	VoucherPayment:  "Pago",
}

// VoucherTypeDescription descripción del catálogo; "Desconocido" si el código no existe.
func VoucherTypeDescription(code string) string {
	if d, ok := voucherTypes[code]; ok {
		return d
	}
	return "Desconocido"
}

// =============================================================================
// RFC genéricos (Regla 2.7.1.26 RMF)
// =============================================================================

const (
	GenericRFCNational = "XAXX010101000" // Público en general
	GenericRFCForeign  = "XEXX010101000" // Residente en el extranjero
)
