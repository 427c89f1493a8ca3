package reconciliation

import (
	"context"

	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

// DocumentParser convierte bytes XML en un FiscalDocument.
type DocumentParser interface {
	Parse(raw []byte) (*entity.FiscalDocument, error)
}

// ReconciliationTxRunner ejecuta fn dentro de una transacción con los repos atados a ella.
// Si fn retorna error se hace rollback y no queda ninguna mutación parcial.
type ReconciliationTxRunner interface {
	RunReconciliation(ctx context.Context, fn func(
		suppliers repository.SupplierRepository,
		payments repository.PaymentRecordRepository,
	) error) error
}

// Verifier consulta el estado de un UUID en el verificador SAT externo.
// Nunca falla: cualquier problema se expresa como un evento VerificationFailed.
//
//go:generate mockgen -destination=mocks/mock_ports.go -package=mock_reconciliation -source=ports.go Verifier
type Verifier interface {
	Verify(ctx context.Context, documentUUID string) entity.ChangeEvent
}
