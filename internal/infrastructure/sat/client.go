// Package sat es el adaptador del microservicio externo de verificación de CFDI ante el SAT.
package sat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/pkg/config"
	"github.com/jhoicas/cfdi-conciliador/pkg/logger"
)

const (
	verifyPath     = "/v1/validar_sat"
	defaultTimeout = 5 * time.Second
	// maxBodyBytes límite de lectura de la respuesta; el verificador devuelve un JSON pequeño.
	maxBodyBytes = 1 << 20
)

// ── Estructuras JSON ──────────────────────────────────────────────────────────

type verifyRequest struct {
	UUID string `json:"uuid"`
}

type verifyResponse struct {
	Status string `json:"validacion_status"`
	Code   string `json:"codigo_sat"`
}

// ── Cliente ───────────────────────────────────────────────────────────────────

// Client implementa reconciliation.Verifier contra POST {base}/v1/validar_sat.
// Usa net/http de la stdlib con timeout acotado; no reintenta.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente a partir de la configuración del verificador.
func NewClient(cfg config.SATConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("sat"),
	}
}

// Verify consulta el estado del UUID. Nunca devuelve error: cualquier fallo se traduce a un
// evento VerificationFailed para que el reporte conserve la conciliación ya confirmada.
func (c *Client) Verify(ctx context.Context, documentUUID string) entity.ChangeEvent {
	requestID := uuid.NewString()
	log := c.log.With().Str("uuid", documentUUID).Str("request_id", requestID).Logger()

	status, body, err := c.post(ctx, documentUUID, requestID)
	if err != nil {
		log.Warn().Err(err).Msg("verificador SAT inaccesible")
		return entity.VerificationConnectionFailedEvent(documentUUID, err)
	}
	if status != http.StatusOK {
		log.Warn().Int("status", status).Msg("verificador SAT respondió con error")
		return entity.VerificationHTTPFailedEvent(documentUUID, status)
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Warn().Err(err).Msg("respuesta del verificador SAT ilegible")
		return entity.VerificationInvalidBodyEvent(documentUUID, err)
	}
	log.Debug().Str("status", resp.Status).Str("codigo", resp.Code).Msg("verificación SAT")
	return entity.VerificationResultEvent(documentUUID, resp.Status, resp.Code)
}

// post envía la petición y devuelve status + cuerpo. Un error aquí es siempre de conectividad
// (DNS, conexión rechazada, timeout, cuerpo truncado) y va envuelto en ErrVerificationUnavailable.
func (c *Client) post(ctx context.Context, documentUUID, requestID string) (int, []byte, error) {
	payload, err := json.Marshal(verifyRequest{UUID: documentUUID})
	if err != nil {
		return 0, nil, fmt.Errorf("%w: serializar petición: %w", domain.ErrVerificationUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+verifyPath, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: crear petición: %w", domain.ErrVerificationUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", domain.ErrVerificationUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: leer respuesta: %w", domain.ErrVerificationUnavailable, err)
	}
	return resp.StatusCode, body, nil
}
