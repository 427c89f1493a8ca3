// Servidor HTTP del conciliador de CFDI.
//
//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs --exclude ../../_examples --outputTypes go,json
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cfdi-conciliador/docs"
	"github.com/jhoicas/cfdi-conciliador/internal/application/reconciliation"
	"github.com/jhoicas/cfdi-conciliador/internal/application/report"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/cfdi"
	infrapdf "github.com/jhoicas/cfdi-conciliador/internal/infrastructure/pdf"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/postgres"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/sat"
	httpRouter "github.com/jhoicas/cfdi-conciliador/internal/interfaces/http"
	"github.com/jhoicas/cfdi-conciliador/pkg/config"
	"github.com/jhoicas/cfdi-conciliador/pkg/logger"
)

// @title        Conciliador CFDI API
// @version      1.0
// @description  Conciliación de CFDI (Ingreso y Complemento de Pago) contra proveedores e importes registrados, con verificación SAT y reporte histórico.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("verificacion_sat", cfg.SAT.VerificationEnabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Conciliación: parser → motor (una tx por documento) → verificador SAT
	var verifier reconciliation.Verifier
	if cfg.SAT.VerificationEnabled() {
		verifier = sat.NewClient(cfg.SAT, log)
	}
	processor := reconciliation.NewProcessor(
		cfdi.NewParser(),
		reconciliation.NewEngine(postgres.NewTxRunner(pool)),
		verifier,
		reconciliation.Options{WithVerification: cfg.SAT.VerificationEnabled()},
		log,
	)

	// Reporte histórico + PDF
	historyUC := report.NewHistoryUseCase(
		postgres.NewSpendReportRepository(pool),
		infrapdf.NewMarotoReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs. Sin SWAGGER_FILE en disco se sirve el spec embebido por swag.
	swaggerCfg := swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerFile,
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err != nil {
		swaggerCfg.FileContent = []byte(docs.SwaggerInfo.ReadDoc())
	}
	app.Use(swagger.New(swaggerCfg))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Processor: processor,
		Reports:   historyUC,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
