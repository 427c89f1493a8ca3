// Package report contiene el caso de uso del reporte histórico de gasto conciliado
// y su exportación a PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/cfdi-conciliador/internal/application/dto"
	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/repository"
)

const (
	historyMonths    = 12 // meses en la gráfica de gasto mensual
	historySuppliers = 5  // proveedores en el top
	historyDocuments = 20 // documentos recientes en la tabla
)

// HistoryPDFGenerator puerto de salida para renderizar el listado completo en PDF.
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, rows []repository.DocumentHistoryRow, generatedAt time.Time) ([]byte, error)
}

// HistoryUseCase arma el reporte histórico a partir de lo ya conciliado.
type HistoryUseCase struct {
	repo repository.SpendReportRepository
	pdf  HistoryPDFGenerator
	now  func() time.Time
}

// NewHistoryUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewHistoryUseCase(repo repository.SpendReportRepository, pdf HistoryPDFGenerator) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, pdf: pdf, now: time.Now}
}

// GetHistory ejecuta las tres consultas en paralelo:
//  1. MonthlySpend(12)     → gasto_mensual
//  2. TopSuppliers(5)      → proveedores_top
//  3. DocumentHistory(20)  → documentos_historico
//
// Si cualquiera falla se cancela el resto y se devuelve el error envuelto en domain.ErrStore.
func (uc *HistoryUseCase) GetHistory(ctx context.Context) (*dto.HistoryReportDTO, error) {
	var (
		monthly   []repository.MonthlySpend
		suppliers []repository.SupplierSpend
		documents []repository.DocumentHistoryRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		monthly, err = uc.repo.MonthlySpend(gctx, historyMonths)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = uc.repo.TopSuppliers(gctx, historySuppliers)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = uc.repo.DocumentHistory(gctx, historyDocuments)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: reporte histórico: %w", domain.ErrStore, err)
	}

	out := &dto.HistoryReportDTO{
		MonthlySpend: dto.ChartSeriesDTO{Labels: []string{}, Data: []decimal.Decimal{}},
		TopSuppliers: dto.ChartSeriesDTO{Labels: []string{}, Data: []decimal.Decimal{}},
		Documents:    make([]dto.DocumentHistoryDTO, 0, len(documents)),
	}
	for _, m := range monthly {
		out.MonthlySpend.Labels = append(out.MonthlySpend.Labels, m.Month)
		out.MonthlySpend.Data = append(out.MonthlySpend.Data, m.Total)
	}
	for _, s := range suppliers {
		out.TopSuppliers.Labels = append(out.TopSuppliers.Labels, s.SupplierName)
		out.TopSuppliers.Data = append(out.TopSuppliers.Data, s.Total)
	}
	for _, d := range documents {
		out.Documents = append(out.Documents, dto.DocumentHistoryDTO{
			DocumentID:  d.DocumentID,
			Supplier:    d.SupplierName,
			PaidAmount:  d.PaidAmount,
			PaymentDate: entity.FormatTime(d.PaymentDate),
		})
	}
	return out, nil
}

// GeneratePDF renderiza todos los documentos conciliados (sin límite) ordenados por fecha de pago.
func (uc *HistoryUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador PDF no configurado: %w", domain.ErrInvalidInput)
	}
	rows, err := uc.repo.DocumentHistory(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: listado para PDF: %w", domain.ErrStore, err)
	}
	return uc.pdf.GenerateHistoryPDF(ctx, rows, uc.now())
}
