package reconciliation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cfdi-conciliador/internal/application/reconciliation"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
)

func TestBuildReport_VacioSintetizaNoChange(t *testing.T) {
	r := reconciliation.BuildReport(nil, nil)
	require.Len(t, r.Events, 1)
	assert.Equal(t, entity.ChangeNoChange, r.Events[0].Kind)
	assert.Equal(t, entity.SummaryInfo, r.Summary)
	assert.Equal(t, "Procesamiento Finalizado", r.Banner.Title)
}

func TestBuildReport_VerificacionAlFinal(t *testing.T) {
	changes := []entity.ChangeEvent{
		entity.NewSupplierEvent(entity.Supplier{TaxID: "RFC1", Name: "Acme"}),
		entity.NewPaymentEvent("RFC1", "U1", amount("10")),
	}
	ver := entity.VerificationResultEvent("U1", "Vigente", "S - Comprobante obtenido satisfactoriamente.")

	r := reconciliation.BuildReport(changes, &ver)
	require.Len(t, r.Events, 3)
	assert.Equal(t, entity.ChangeVerificationResult, r.Events[2].Kind)
	assert.Equal(t, entity.SummarySuccess, r.Summary)
	assert.Equal(t, "¡Procesamiento Exitoso con Cambios!", r.Banner.Title)
	assert.Equal(t, "Se detectaron 3 eventos. Revisa la sección de detalle.", r.Banner.Text)
}

// Solo la verificación, sin cambios: el reporte no lleva NoChange sintético.
func TestBuildReport_SoloVerificacion(t *testing.T) {
	ver := entity.VerificationResultEvent("U1", "Vigente", "S")
	r := reconciliation.BuildReport(nil, &ver)
	require.Len(t, r.Events, 1)
	assert.Equal(t, entity.SummaryInfo, r.Summary)
}

func TestSummarize(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		events []entity.ChangeEvent
		want   entity.Summary
	}{
		{"error de parseo", []entity.ChangeEvent{entity.MalformedDocumentEvent()}, entity.SummaryError},
		{"error del almacén", []entity.ChangeEvent{entity.ConnectionErrorEvent(boom)}, entity.SummaryError},
		{"inesperado", []entity.ChangeEvent{entity.UnexpectedErrorEvent(boom)}, entity.SummaryError},
		{"conectividad al inicio", []entity.ChangeEvent{entity.VerificationConnectionFailedEvent("U1", boom)}, entity.SummaryError},
		{"conectividad después de cambios", []entity.ChangeEvent{
			entity.NewPaymentEvent("RFC1", "U1", amount("1")),
			entity.VerificationConnectionFailedEvent("U1", boom),
		}, entity.SummarySuccess},
		{"HTTP 500 al inicio", []entity.ChangeEvent{entity.VerificationHTTPFailedEvent("U1", 500)}, entity.SummaryInfo},
		{"cambio de importe", []entity.ChangeEvent{entity.AmountChangedEvent("RFC1", "U1", amount("1"), amount("2"))}, entity.SummarySuccess},
		{"sin cambios", []entity.ChangeEvent{entity.NoChangeEvent()}, entity.SummaryInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconciliation.Summarize(tt.events))
		})
	}
}

func TestBuildReport_BannerDeError(t *testing.T) {
	r := reconciliation.BuildReport([]entity.ChangeEvent{entity.MalformedDocumentEvent()}, nil)
	assert.Equal(t, "¡Error Crítico!", r.Banner.Title)
	assert.Equal(t, r.Events[0].Message, r.Banner.Text)
	assert.True(t, r.Failed())
}
