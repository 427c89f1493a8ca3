package http

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cfdi-conciliador/internal/application/dto"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
)

// formFileField nombre del campo multipart con el XML.
const formFileField = "xml_file"

// DocumentProcessor pipeline de conciliación (reconciliation.Processor).
type DocumentProcessor interface {
	Process(ctx context.Context, raw []byte) *entity.Report
}

// CFDIHandler recibe un CFDI por multipart y devuelve el reporte de cambios.
type CFDIHandler struct {
	processor DocumentProcessor
}

// NewCFDIHandler construye el handler.
func NewCFDIHandler(processor DocumentProcessor) *CFDIHandler {
	return &CFDIHandler{processor: processor}
}

// Process godoc
// @Summary      Conciliar un CFDI
// @Description  Concilia el XML contra proveedores y pagos registrados y lo verifica ante el SAT.
// @Description  422 si el XML no es un CFDI procesable; 500 si falló el almacén. El cuerpo siempre incluye el reporte.
// @Tags         cfdi
// @Accept       multipart/form-data
// @Produce      json
// @Param        xml_file  formData  file  true  "CFDI 3.3 o 4.0 (.xml)"
// @Success      200  {object}  dto.ProcessCFDIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ProcessCFDIResponse
// @Failure      500  {object}  dto.ProcessCFDIResponse
// @Router       /api/cfdi [post]
func (h *CFDIHandler) Process(c *fiber.Ctx) error {
	fh, err := c.FormFile(formFileField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No se encontró el archivo en la solicitud."})
	}
	if fh.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "No se seleccionó ningún archivo."})
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xml") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "Formato de archivo no válido. Solo se permiten archivos .xml."})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	if len(raw) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_FILE", Message: "El archivo está vacío."})
	}

	report := h.processor.Process(c.UserContext(), raw)
	return c.Status(statusFor(report)).JSON(dto.NewProcessCFDIResponse(fh.Filename, report))
}

func statusFor(r *entity.Report) int {
	if len(r.Events) == 0 || !r.Events[0].IsError() {
		return fiber.StatusOK
	}
	switch r.Events[0].Kind {
	case entity.ChangeParseError:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
