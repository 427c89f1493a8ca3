package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cfdi-conciliador/internal/application/dto"
	"github.com/jhoicas/cfdi-conciliador/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Processor DocumentProcessor
	Reports   HistoryReporter
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	app.Get("/health", Health(deps.AppName))

	api := app.Group("/api")

	cfdiHandler := NewCFDIHandler(deps.Processor)
	api.Post("/cfdi", cfdiHandler.Process)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/history", reportHandler.History)
	reports.Get("/history/pdf", reportHandler.HistoryPDF)
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: appName})
	}
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		l.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
