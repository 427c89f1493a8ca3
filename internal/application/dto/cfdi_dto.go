package dto

import "github.com/jhoicas/cfdi-conciliador/internal/domain/entity"

// ChangeEventDTO evento del reporte de conciliación.
type ChangeEventDTO struct {
	Kind          string  `json:"kind"`
	Severity      string  `json:"severity"`
	Message       string  `json:"message"`
	DocumentID    string  `json:"document_id,omitempty"`
	SupplierTaxID string  `json:"supplier_rfc,omitempty"`
	OldAmount     *string `json:"old_amount,omitempty"`
	NewAmount     *string `json:"new_amount,omitempty"`
	HTTPStatus    int     `json:"http_status,omitempty"`
	SATStatus     string  `json:"sat_status,omitempty"`
	SATCode       string  `json:"sat_code,omitempty"`
}

// BannerDTO mensaje global para la UI.
type BannerDTO struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ProcessCFDIResponse respuesta de POST /api/cfdi.
type ProcessCFDIResponse struct {
	FileName string           `json:"file_name"`
	Summary  string           `json:"summary"`
	Banner   BannerDTO        `json:"banner"`
	Messages []string         `json:"messages"`
	Events   []ChangeEventDTO `json:"events"`
}

// NewProcessCFDIResponse proyecta el reporte del dominio a la respuesta HTTP.
func NewProcessCFDIResponse(fileName string, r *entity.Report) ProcessCFDIResponse {
	out := ProcessCFDIResponse{
		FileName: fileName,
		Summary:  string(r.Summary),
		Banner:   BannerDTO{Type: string(r.Banner.Type), Title: r.Banner.Title, Text: r.Banner.Text},
		Messages: r.Messages(),
		Events:   make([]ChangeEventDTO, 0, len(r.Events)),
	}
	for _, e := range r.Events {
		ev := ChangeEventDTO{
			Kind:          string(e.Kind),
			Severity:      string(e.Kind.Severity()),
			Message:       e.Message,
			DocumentID:    e.DocumentID,
			SupplierTaxID: e.SupplierTaxID,
			HTTPStatus:    e.HTTPStatus,
			SATStatus:     e.SATStatus,
			SATCode:       e.SATCode,
		}
		if e.OldAmount.Valid {
			s := e.OldAmount.Decimal.StringFixed(entity.AmountScale)
			ev.OldAmount = &s
		}
		if e.NewAmount.Valid {
			s := e.NewAmount.Decimal.StringFixed(entity.AmountScale)
			ev.NewAmount = &s
		}
		out.Events = append(out.Events, ev)
	}
	return out
}
