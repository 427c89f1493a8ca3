package entity

// Summary clasificación global del reporte, usada para el tono del banner.
type Summary string

const (
	SummaryError   Summary = "error"
	SummarySuccess Summary = "success"
	SummaryInfo    Summary = "info"
)

// Banner mensaje de resumen para la UI.
type Banner struct {
	Type  Summary
	Title string
	Text  string
}

// Report resultado ordenado de procesar un CFDI. Nunca está vacío.
type Report struct {
	Events  []ChangeEvent
	Summary Summary
	Banner  Banner
}

// Messages devuelve las líneas legibles en orden.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Message
	}
	return out
}

// Failed indica que el primer evento es de error: el procesamiento falló por completo.
func (r *Report) Failed() bool {
	return len(r.Events) > 0 && r.Events[0].IsError()
}
