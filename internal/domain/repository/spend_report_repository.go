package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySpend gasto total de un mes (YYYY-MM).
type MonthlySpend struct {
	Month string
	Total decimal.Decimal
}

// SupplierSpend total pagado a un proveedor.
type SupplierSpend struct {
	SupplierName string
	Total        decimal.Decimal
}

// DocumentHistoryRow fila del histórico de documentos.
type DocumentHistoryRow struct {
	DocumentID   string
	SupplierName string
	PaidAmount   decimal.Decimal
	PaymentDate  *time.Time
}

// SpendReportRepository consultas de solo lectura sobre lo ya conciliado.
//
//go:generate mockgen -destination=mocks/mock_spend_report_repository.go -package=mock_repository -source=spend_report_repository.go
type SpendReportRepository interface {
	// MonthlySpend gasto por mes, del más reciente al más antiguo.
	MonthlySpend(ctx context.Context, months int) ([]MonthlySpend, error)
	// TopSuppliers proveedores con mayor importe pagado.
	TopSuppliers(ctx context.Context, limit int) ([]SupplierSpend, error)
	// DocumentHistory documentos por fecha de pago descendente; limit <= 0 devuelve todos.
	DocumentHistory(ctx context.Context, limit int) ([]DocumentHistoryRow, error)
}
