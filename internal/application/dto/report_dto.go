package dto

import "github.com/shopspring/decimal"

// ChartSeriesDTO serie para gráficas: etiquetas y valores en paralelo.
type ChartSeriesDTO struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data" swaggertype:"array,string"`
}

// DocumentHistoryDTO fila del histórico de documentos.
type DocumentHistoryDTO struct {
	DocumentID  string          `json:"id_documento"`
	Supplier    string          `json:"proveedor"`
	PaidAmount  decimal.Decimal `json:"importe_pagado" swaggertype:"string"`
	PaymentDate string          `json:"fecha_pago"` // 2006-01-02 15:04:05, vacío si no hay fecha
}

// HistoryReportDTO respuesta de GET /api/reports/history.
type HistoryReportDTO struct {
	MonthlySpend ChartSeriesDTO       `json:"gasto_mensual"`
	TopSuppliers ChartSeriesDTO       `json:"proveedores_top"`
	Documents    []DocumentHistoryDTO `json:"documentos_historico"`
}
