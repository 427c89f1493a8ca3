// Package cfdi convierte el XML de un CFDI (3.3 / 4.0) en entity.FiscalDocument.
package cfdi

import "github.com/jhoicas/cfdi-conciliador/internal/domain/entity"

// Namespaces oficiales SAT (Anexo 20).
const (
	NsCFDI33 = "http://www.sat.gob.mx/cfd/3"
	NsCFDI40 = "http://www.sat.gob.mx/cfd/4"
	// Complemento de pagos 1.0 (CFDI 3.3) y 2.0 (CFDI 4.0).
	NsPagos10 = "http://www.sat.gob.mx/Pagos"
	NsPagos20 = "http://www.sat.gob.mx/Pagos20"
	// Timbre fiscal digital (igual en ambas versiones).
	NsTFD = "http://www.sat.gob.mx/TimbreFiscalDigital"
)

// namespaceSet URIs de los elementos lógicos para una versión de CFDI.
type namespaceSet struct {
	comprobante string
	pagos       string
	timbre      string
}

// namespacesFor selecciona el set según Version. Versiones desconocidas usan el de 4.0.
func namespacesFor(v entity.SchemaVersion) namespaceSet {
	if v == entity.SchemaV33 {
		return namespaceSet{comprobante: NsCFDI33, pagos: NsPagos10, timbre: NsTFD}
	}
	return namespaceSet{comprobante: NsCFDI40, pagos: NsPagos20, timbre: NsTFD}
}
