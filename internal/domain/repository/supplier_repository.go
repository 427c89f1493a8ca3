package repository

import (
	"context"

	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
// FindByTaxID devuelve (nil, nil) si no existe.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_repository -source=supplier_repository.go
type SupplierRepository interface {
	FindByTaxID(ctx context.Context, taxID string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
}

// PaymentRecordRepository define el puerto de persistencia para importes por UUID.
// FindByDocumentID devuelve (nil, nil) si no existe.
type PaymentRecordRepository interface {
	FindByDocumentID(ctx context.Context, documentID string) (*entity.PaymentRecord, error)
	Create(ctx context.Context, record *entity.PaymentRecord) error
	UpdateAmount(ctx context.Context, record *entity.PaymentRecord) error
}
