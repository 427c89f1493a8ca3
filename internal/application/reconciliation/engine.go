// Package reconciliation implementa la conciliación de CFDI contra el almacén de registros:
// parseo → extracción → diff (insert/update/no-op) → verificación SAT → reporte.
package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

// Engine decide por cada PayableEvent si es nuevo, cambió o no cambió, y emite la mutación.
type Engine struct {
	txRunner ReconciliationTxRunner
}

// NewEngine construye el motor con el runner transaccional del almacén.
func NewEngine(txRunner ReconciliationTxRunner) *Engine {
	return &Engine{txRunner: txRunner}
}

// Reconcile concilia un documento completo dentro de una sola transacción.
// Si cualquier operación del almacén falla se descartan los eventos y se devuelve el error
// (envuelto con domain.ErrStore cuando proviene del almacén).
func (e *Engine) Reconcile(
	ctx context.Context,
	emitterTaxID, emitterName string,
	events []entity.PayableEvent,
) ([]entity.ChangeEvent, error) {
	var changes []entity.ChangeEvent
	err := e.txRunner.RunReconciliation(ctx, func(
		suppliers repository.SupplierRepository,
		payments repository.PaymentRecordRepository,
	) error {
		var err error
		changes, err = ReconcileWith(ctx, suppliers, payments, emitterTaxID, emitterName, events)
		return err
	})
	if err != nil {
		return nil, err
	}
	return changes, nil
}

// ReconcileWith aplica el algoritmo sobre repos ya resueltos. El orden es fijo:
//  1. Proveedor: si no existe → NewSupplier + insert. Si existe no se toca (el primer nombre gana).
//  2. Cada evento en orden: no existe → NewPayment + insert; mismo importe → nada;
//     importe distinto → AmountChanged + update de importe y fecha.
func ReconcileWith(
	ctx context.Context,
	suppliers repository.SupplierRepository,
	payments repository.PaymentRecordRepository,
	emitterTaxID, emitterName string,
	events []entity.PayableEvent,
) ([]entity.ChangeEvent, error) {
	var changes []entity.ChangeEvent

	existing, err := suppliers.FindByTaxID(ctx, emitterTaxID)
	if err != nil {
		return nil, storeErr("buscar proveedor "+emitterTaxID, err)
	}
	if existing == nil {
		supplier := &entity.Supplier{TaxID: emitterTaxID, Name: emitterName}
		changes = append(changes, entity.NewSupplierEvent(*supplier))
		if err := suppliers.Create(ctx, supplier); err != nil {
			return nil, storeErr("insertar proveedor "+emitterTaxID, err)
		}
	}

	for _, ev := range events {
		amount := entity.NormalizeAmount(ev.Amount)

		record, err := payments.FindByDocumentID(ctx, ev.DocumentID)
		if err != nil {
			return nil, storeErr("buscar documento "+ev.DocumentID, err)
		}

		switch {
		case record == nil:
			changes = append(changes, entity.NewPaymentEvent(emitterTaxID, ev.DocumentID, amount))
			if err := payments.Create(ctx, &entity.PaymentRecord{
				DocumentID:    ev.DocumentID,
				SupplierTaxID: emitterTaxID,
				PaidAmount:    amount,
				PaymentDate:   ev.EventDate,
			}); err != nil {
				return nil, storeErr("insertar documento "+ev.DocumentID, err)
			}

		case entity.SameAmount(record.PaidAmount, amount):
			// sin cambios

		default:
			changes = append(changes, entity.AmountChangedEvent(emitterTaxID, ev.DocumentID, record.PaidAmount, amount))
			record.PaidAmount = amount
			record.PaymentDate = ev.EventDate
			if err := payments.UpdateAmount(ctx, record); err != nil {
				return nil, storeErr("actualizar documento "+ev.DocumentID, err)
			}
		}
	}
	return changes, nil
}

func storeErr(op string, err error) error {
	if errors.Is(err, domain.ErrStore) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
}
