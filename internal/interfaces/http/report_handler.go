package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cfdi-conciliador/internal/application/dto"
	"github.com/jhoicas/cfdi-conciliador/internal/domain"
)

// historyPDFName nombre de descarga del listado en PDF.
const historyPDFName = "Reporte_CFDI_Historico.pdf"

// HistoryReporter reporte histórico (report.HistoryUseCase).
type HistoryReporter interface {
	GetHistory(ctx context.Context) (*dto.HistoryReportDTO, error)
	GeneratePDF(ctx context.Context) ([]byte, error)
}

// ReportHandler expone el histórico de gasto conciliado.
type ReportHandler struct {
	uc HistoryReporter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc HistoryReporter) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// History godoc
// @Summary      Reporte histórico
// @Description  Gasto mensual (12 meses), top 5 de proveedores y últimos 20 documentos.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.HistoryReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.GetHistory(c.UserContext())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// HistoryPDF godoc
// @Summary      Reporte histórico en PDF
// @Description  Listado completo de documentos conciliados como descarga.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/history/pdf [get]
func (h *ReportHandler) HistoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GeneratePDF(c.UserContext())
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+historyPDFName+`"`)
	return c.Send(pdf)
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrStore) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Error de conexión a la base de datos: " + err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al generar reporte: " + err.Error()})
}
