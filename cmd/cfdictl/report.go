package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cfdi-conciliador/internal/application/report"
	infrapdf "github.com/jhoicas/cfdi-conciliador/internal/infrastructure/pdf"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/postgres"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reporte histórico de gasto conciliado",
	Example: `  # Resumen en JSON (gasto mensual, top proveedores, últimos documentos)
  cfdictl report

  # Listado completo en PDF
  cfdictl report --pdf Reporte_CFDI_Historico.pdf`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("pdf", "", "Ruta del PDF a generar (vacío = resumen JSON por stdout)")
}

func runReport(cmd *cobra.Command, _ []string) error {
	pdfPath, _ := cmd.Flags().GetString("pdf")
	uc := report.NewHistoryUseCase(
		postgres.NewSpendReportRepository(current.pool),
		infrapdf.NewMarotoReportGenerator(),
	)

	if pdfPath == "" {
		out, err := uc.GetHistory(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	pdf, err := uc.GeneratePDF(cmd.Context())
	if err != nil {
		return err
	}
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", pdfPath, err)
	}
	current.log.Info().Str("file", pdfPath).Int("bytes", len(pdf)).Msg("reporte PDF generado")
	return nil
}
