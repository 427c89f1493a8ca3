package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/cfdi-conciliador/internal/application/reconciliation"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/cfdi"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/postgres"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/sat"
)

var processCmd = &cobra.Command{
	Use:   "process <archivo.xml>...",
	Short: "Concilia uno o más CFDI",
	Example: `  # Un documento con verificación SAT
  cfdictl process factura.xml

  # Lote sin verificación, 8 en paralelo
  cfdictl process --no-verify --workers 8 ./xml/*.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().Bool("no-verify", false, "No consultar al verificador SAT")
	processCmd.Flags().Int("workers", 4, "Documentos procesados en paralelo")
}

// fileResult reporte de un archivo; err solo si no se pudo leer.
type fileResult struct {
	path   string
	report *entity.Report
	err    error
}

func runProcess(cmd *cobra.Command, args []string) error {
	noVerify, _ := cmd.Flags().GetBool("no-verify")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		return fmt.Errorf("--workers debe ser positivo")
	}

	withVerification := !noVerify && current.cfg.SAT.VerificationEnabled()
	var verifier reconciliation.Verifier
	if withVerification {
		verifier = sat.NewClient(current.cfg.SAT, current.log)
	}
	processor := reconciliation.NewProcessor(
		cfdi.NewParser(),
		reconciliation.NewEngine(postgres.NewTxRunner(current.pool)),
		verifier,
		reconciliation.Options{WithVerification: withVerification},
		current.log,
	)

	results := processFiles(cmd.Context(), processor, args, workers)

	failed := printResults(cmd.OutOrStdout(), results)
	if failed > 0 {
		return fmt.Errorf("%d de %d documentos con error", failed, len(results))
	}
	return nil
}

// documentProcessor lo que processFiles necesita del pipeline.
type documentProcessor interface {
	Process(ctx context.Context, raw []byte) *entity.Report
}

// processFiles concilia los archivos con a lo más workers en paralelo.
// Los resultados conservan el orden de entrada.
func processFiles(ctx context.Context, p documentProcessor, paths []string, workers int) []fileResult {
	results := make([]fileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = processFile(gctx, p, path)
			return nil
		})
	}
	_ = g.Wait() // processFile no devuelve error al grupo: un archivo fallido no detiene el lote
	return results
}

func processFile(ctx context.Context, p documentProcessor, path string) fileResult {
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return fileResult{path: path, err: fmt.Errorf("formato de archivo no válido, solo .xml")}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}
	if len(raw) == 0 {
		return fileResult{path: path, err: fmt.Errorf("el archivo está vacío")}
	}
	return fileResult{path: path, report: p.Process(ctx, raw)}
}

// printResults imprime el reporte de cada archivo y devuelve cuántos fallaron.
func printResults(w io.Writer, results []fileResult) int {
	failed := 0
	for _, r := range results {
		fmt.Fprintf(w, "── %s\n", r.path)
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "   ❌ %v\n", r.err)
			continue
		}
		if r.report.Failed() {
			failed++
		}
		fmt.Fprintf(w, "   [%s] %s\n", r.report.Banner.Title, r.report.Banner.Text)
		for _, msg := range r.report.Messages() {
			fmt.Fprintf(w, "   %s\n", msg)
		}
	}
	return failed
}
