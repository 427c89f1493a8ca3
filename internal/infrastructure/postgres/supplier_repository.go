package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

// Asegura que SupplierRepo implementa repository.SupplierRepository.
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// FindByTaxID obtiene un proveedor por RFC. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) FindByTaxID(ctx context.Context, taxID string) (*entity.Supplier, error) {
	const query = `SELECT rfc, nombre FROM proveedores WHERE rfc = $1`
	var s entity.Supplier
	if err := r.q.QueryRow(ctx, query, taxID).Scan(&s.TaxID, &s.Name); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Create inserta el proveedor. Si otro proceso lo insertó primero no se hace nada:
// el nombre registrado primero se conserva.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	const query = `
		INSERT INTO proveedores (rfc, nombre)
		VALUES ($1, $2)
		ON CONFLICT (rfc) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, s.TaxID, s.Name); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}
