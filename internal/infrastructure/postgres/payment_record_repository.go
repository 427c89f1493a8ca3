package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

var _ repository.PaymentRecordRepository = (*PaymentRecordRepo)(nil)

// PaymentRecordRepo persistencia de importes pagados por UUID (tabla precios_documentos).
type PaymentRecordRepo struct {
	q Querier
}

// NewPaymentRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRecordRepository(q Querier) *PaymentRecordRepo {
	return &PaymentRecordRepo{q: q}
}

// FindByDocumentID obtiene el registro y bloquea la fila hasta el fin de la transacción
// (FOR UPDATE), de modo que dos conciliaciones del mismo UUID no pisen su actualización.
// Fuera de una transacción el bloqueo se libera al terminar la sentencia.
func (r *PaymentRecordRepo) FindByDocumentID(ctx context.Context, documentID string) (*entity.PaymentRecord, error) {
	const query = `
		SELECT uuid_original, rfc_emisor, imp_pagado, fecha_pago
		FROM precios_documentos
		WHERE uuid_original = $1
		FOR UPDATE`
	var rec entity.PaymentRecord
	err := r.q.QueryRow(ctx, query, documentID).Scan(
		&rec.DocumentID, &rec.SupplierTaxID, &rec.PaidAmount, &rec.PaymentDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment record: %w", err)
	}
	return &rec, nil
}

// Create inserta el primer avistamiento de un UUID. Si una conciliación concurrente lo insertó
// antes, la llave primaria lo rechaza y se devuelve domain.ErrConflict.
func (r *PaymentRecordRepo) Create(ctx context.Context, rec *entity.PaymentRecord) error {
	const query = `
		INSERT INTO precios_documentos (uuid_original, rfc_emisor, imp_pagado, fecha_pago)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query,
		rec.DocumentID, rec.SupplierTaxID, entity.NormalizeAmount(rec.PaidAmount), rec.PaymentDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert payment record %s: %w", rec.DocumentID, domain.ErrConflict)
		}
		return fmt.Errorf("insert payment record: %w", err)
	}
	return nil
}

// UpdateAmount actualiza importe y fecha de pago.
func (r *PaymentRecordRepo) UpdateAmount(ctx context.Context, rec *entity.PaymentRecord) error {
	const query = `
		UPDATE precios_documentos
		SET imp_pagado = $2, fecha_pago = $3
		WHERE uuid_original = $1`
	tag, err := r.q.Exec(ctx, query, rec.DocumentID, entity.NormalizeAmount(rec.PaidAmount), rec.PaymentDate)
	if err != nil {
		return fmt.Errorf("update payment record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update payment record %s: %w", rec.DocumentID, domain.ErrNotFound)
	}
	return nil
}
