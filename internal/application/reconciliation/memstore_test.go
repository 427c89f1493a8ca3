package reconciliation_test

import (
	"context"
	"errors"

	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

// memStore almacén en memoria con semántica transaccional: cada RunReconciliation trabaja
// sobre una copia que solo se publica si fn no devuelve error.
type memStore struct {
	suppliers map[string]entity.Supplier
	payments  map[string]entity.PaymentRecord

	supplierInserts int
	paymentInserts  int
	paymentUpdates  int
	runs            int // transacciones abiertas

	failOn string // "find-supplier", "insert-payment", ...
}

func newMemStore() *memStore {
	return &memStore{
		suppliers: map[string]entity.Supplier{},
		payments:  map[string]entity.PaymentRecord{},
	}
}

func (s *memStore) calls() int {
	return s.supplierInserts + s.paymentInserts + s.paymentUpdates
}

func (s *memStore) RunReconciliation(ctx context.Context, fn func(
	suppliers repository.SupplierRepository,
	payments repository.PaymentRecordRepository,
) error) error {
	s.runs++
	tx := &memTx{store: s, suppliers: map[string]entity.Supplier{}, payments: map[string]entity.PaymentRecord{}}
	for k, v := range s.suppliers {
		tx.suppliers[k] = v
	}
	for k, v := range s.payments {
		tx.payments[k] = v
	}
	if err := fn(tx, (*memPayments)(tx)); err != nil {
		return err
	}
	s.suppliers, s.payments = tx.suppliers, tx.payments
	return nil
}

type memTx struct {
	store     *memStore
	suppliers map[string]entity.Supplier
	payments  map[string]entity.PaymentRecord
}

var errBoom = errors.New("conexión perdida")

func (t *memTx) fail(op string) error {
	if t.store.failOn == op {
		return errBoom
	}
	return nil
}

func (t *memTx) FindByTaxID(_ context.Context, taxID string) (*entity.Supplier, error) {
	if err := t.fail("find-supplier"); err != nil {
		return nil, err
	}
	s, ok := t.suppliers[taxID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (t *memTx) Create(_ context.Context, s *entity.Supplier) error {
	if err := t.fail("insert-supplier"); err != nil {
		return err
	}
	t.store.supplierInserts++
	t.suppliers[s.TaxID] = *s
	return nil
}

type memPayments memTx

func (p *memPayments) FindByDocumentID(_ context.Context, id string) (*entity.PaymentRecord, error) {
	if err := (*memTx)(p).fail("find-payment"); err != nil {
		return nil, err
	}
	r, ok := p.payments[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (p *memPayments) Create(_ context.Context, r *entity.PaymentRecord) error {
	if err := (*memTx)(p).fail("insert-payment"); err != nil {
		return err
	}
	p.store.paymentInserts++
	p.payments[r.DocumentID] = *r
	return nil
}

func (p *memPayments) UpdateAmount(_ context.Context, r *entity.PaymentRecord) error {
	if err := (*memTx)(p).fail("update-payment"); err != nil {
		return err
	}
	p.store.paymentUpdates++
	p.payments[r.DocumentID] = *r
	return nil
}
