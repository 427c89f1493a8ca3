package reconciliation

import (
	"fmt"

	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
)

// BuildReport agrega los eventos de conciliación y el de verificación (opcional) en un reporte
// ordenado. Si no hay ningún evento se sintetiza NoChange: el reporte nunca está vacío.
func BuildReport(reconciliation []entity.ChangeEvent, verification *entity.ChangeEvent) *entity.Report {
	events := make([]entity.ChangeEvent, 0, len(reconciliation)+1)
	events = append(events, reconciliation...)
	if verification != nil {
		events = append(events, *verification)
	}
	if len(events) == 0 {
		events = append(events, entity.NoChangeEvent())
	}
	summary := Summarize(events)
	return &entity.Report{
		Events:  events,
		Summary: summary,
		Banner:  banner(summary, events),
	}
}

// Summarize deriva el tono global:
//   - Error   si hay algún evento de error, o el primero es un fallo de conexión al verificador.
//   - Success si hay proveedor nuevo, gasto nuevo o cambio de importe.
//   - Info    en cualquier otro caso.
func Summarize(events []entity.ChangeEvent) entity.Summary {
	if len(events) > 0 && events[0].Kind == entity.ChangeVerificationFailed && events[0].Connectivity {
		return entity.SummaryError
	}
	hasChange := false
	for _, e := range events {
		switch e.Kind.Severity() {
		case entity.SeverityError:
			return entity.SummaryError
		case entity.SeverityChange:
			hasChange = true
		}
	}
	if hasChange {
		return entity.SummarySuccess
	}
	return entity.SummaryInfo
}

func banner(summary entity.Summary, events []entity.ChangeEvent) entity.Banner {
	switch summary {
	case entity.SummaryError:
		return entity.Banner{Type: summary, Title: "¡Error Crítico!", Text: events[0].Message}
	case entity.SummarySuccess:
		return entity.Banner{
			Type:  summary,
			Title: "¡Procesamiento Exitoso con Cambios!",
			Text:  fmt.Sprintf("Se detectaron %d eventos. Revisa la sección de detalle.", len(events)),
		}
	default:
		return entity.Banner{Type: summary, Title: "Procesamiento Finalizado", Text: events[0].Message}
	}
}
