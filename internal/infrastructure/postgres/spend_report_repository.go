package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

var _ repository.SpendReportRepository = (*SpendReportRepo)(nil)

// SpendReportRepo consultas de solo lectura para el reporte histórico de gasto.
type SpendReportRepo struct {
	q Querier
}

// NewSpendReportRepository construye el adaptador del reporte histórico.
func NewSpendReportRepository(q Querier) *SpendReportRepo {
	return &SpendReportRepo{q: q}
}

// MonthlySpend gasto por mes (YYYY-MM), del más reciente al más antiguo.
// Los documentos sin fecha de pago no caen en ningún mes y se excluyen.
func (r *SpendReportRepo) MonthlySpend(ctx context.Context, months int) ([]repository.MonthlySpend, error) {
	const query = `
	SELECT
	    to_char(fecha_pago, 'YYYY-MM') AS mes,
	    COALESCE(SUM(imp_pagado), 0)   AS gasto_total
	FROM precios_documentos
	WHERE fecha_pago IS NOT NULL
	GROUP BY mes
	ORDER BY mes DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("report.MonthlySpend: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlySpend
	for rows.Next() {
		var row repository.MonthlySpend
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("report.MonthlySpend scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// TopSuppliers proveedores con mayor importe pagado, agrupados por nombre.
func (r *SpendReportRepo) TopSuppliers(ctx context.Context, limit int) ([]repository.SupplierSpend, error) {
	const query = `
	SELECT
	    p.nombre,
	    SUM(pd.imp_pagado) AS total_pagado
	FROM proveedores p
	JOIN precios_documentos pd ON p.rfc = pd.rfc_emisor
	GROUP BY p.nombre
	ORDER BY total_pagado DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopSuppliers: %w", err)
	}
	defer rows.Close()

	var out []repository.SupplierSpend
	for rows.Next() {
		var row repository.SupplierSpend
		if err := rows.Scan(&row.SupplierName, &row.Total); err != nil {
			return nil, fmt.Errorf("report.TopSuppliers scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DocumentHistory documentos por fecha de pago descendente (sin fecha al final).
// limit <= 0 devuelve todos (listado completo del PDF).
func (r *SpendReportRepo) DocumentHistory(ctx context.Context, limit int) ([]repository.DocumentHistoryRow, error) {
	query := `
	SELECT
	    pd.uuid_original,
	    p.nombre,
	    pd.imp_pagado,
	    pd.fecha_pago
	FROM precios_documentos pd
	JOIN proveedores p ON pd.rfc_emisor = p.rfc
	ORDER BY pd.fecha_pago DESC NULLS LAST, pd.uuid_original`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.q.Query(ctx, query+"\n\tLIMIT $1", limit)
	} else {
		rows, err = r.q.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("report.DocumentHistory: %w", err)
	}
	defer rows.Close()

	var out []repository.DocumentHistoryRow
	for rows.Next() {
		var row repository.DocumentHistoryRow
		if err := rows.Scan(&row.DocumentID, &row.SupplierName, &row.PaidAmount, &row.PaymentDate); err != nil {
			return nil, fmt.Errorf("report.DocumentHistory scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
