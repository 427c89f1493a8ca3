package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cfdi-conciliador/internal/application/reconciliation"
	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

// Ensure TxRunner implements reconciliation.ReconciliationTxRunner.
var _ reconciliation.ReconciliationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReconciliation inicia una transacción, ejecuta fn con los repos de proveedores e importes
// atados a la tx y hace Commit o Rollback. Un documento = una transacción.
func (r *TxRunner) RunReconciliation(ctx context.Context, fn func(
	suppliers repository.SupplierRepository,
	payments repository.PaymentRecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", domain.ErrStore, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSupplierRepository(tx), NewPaymentRecordRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %w", domain.ErrStore, err)
	}
	return nil
}
