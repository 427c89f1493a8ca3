// Package cfdi contiene reglas de dominio sobre comprobantes CFDI ya parseados.
package cfdi

import (
	"fmt"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
)

// ExtractPayableEvents produce los eventos a conciliar, en orden de origen:
//   - Ingreso (I): un evento con UUID, Total y Fecha del propio comprobante.
//   - Complemento de pago (P): uno por DoctoRelacionado, todos con la FechaPago del complemento.
//   - Otros tipos: secuencia vacía (nada que conciliar, no es error).
//
// Un complemento sin nodo Pago o sin FechaPago es entrada inválida (ErrUnsupportedStructure).
func ExtractPayableEvents(doc *entity.FiscalDocument) ([]entity.PayableEvent, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: documento nulo", domain.ErrUnsupportedStructure)
	}
	switch doc.DocumentType {
	case entity.DocumentTypeIncome:
		return []entity.PayableEvent{{
			DocumentID: doc.UUID,
			Amount:     entity.NormalizeAmount(doc.Total),
			EventDate:  doc.IssuedAt,
		}}, nil

	case entity.DocumentTypePaymentComplement:
		if !doc.HasPaymentNode {
			return nil, fmt.Errorf("%w: complemento de pago sin nodo Pago", domain.ErrUnsupportedStructure)
		}
		if doc.PaymentDate == nil {
			return nil, fmt.Errorf("%w: complemento de pago sin FechaPago", domain.ErrUnsupportedStructure)
		}
		events := make([]entity.PayableEvent, 0, len(doc.RelatedDocuments))
		for _, rel := range doc.RelatedDocuments {
			events = append(events, entity.PayableEvent{
				DocumentID: rel.RelatedUUID,
				Amount:     entity.NormalizeAmount(rel.PaidAmount),
				EventDate:  doc.PaymentDate,
			})
		}
		return events, nil

	default:
		return nil, nil
	}
}
