package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/postgres"
	"github.com/jhoicas/cfdi-conciliador/pkg/config"
	"github.com/jhoicas/cfdi-conciliador/pkg/logger"
)

var version = "1.0.0"

// app dependencias compartidas por los subcomandos, construidas en PersistentPreRunE.
type app struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

var current app

var rootCmd = &cobra.Command{
	Use:   "cfdictl",
	Short: "Conciliación de CFDI contra el almacén de proveedores e importes",
	Long: `cfdictl procesa CFDI (Ingreso y Complemento de Pago) desde archivos XML locales,
registra proveedores e importes en PostgreSQL y reporta los cambios detectados.

Usa la misma configuración que la API (DATABASE_URL, SAT_GATEWAY_BASE_URL, LOG_LEVEL...).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		current.cfg = cfg
		current.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: os.Stderr})

		pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		current.pool = pool
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if current.pool != nil {
			current.pool.Close()
		}
	},
}

// Execute ejecuta el comando raíz; sale con código 1 si falla.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if current.log != nil {
			current.log.Error().Err(err).Msg("ejecución del comando")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
