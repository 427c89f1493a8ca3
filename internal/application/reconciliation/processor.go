package reconciliation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/cfdi"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/pkg/fiscal"
	"github.com/jhoicas/cfdi-conciliador/pkg/logger"
)

// Options capacidades del pipeline. Sustituye a las dos variantes (con y sin verificación SAT).
type Options struct {
	WithVerification bool
}

// Processor ejecuta el pipeline completo para un CFDI de forma síncrona:
//
//	bytes → FiscalDocument → PayableEvents → decisiones en el almacén → verificación SAT → Report
//
// Process siempre devuelve un reporte; los fallos se traducen a un único evento de error.
type Processor struct {
	parser   DocumentParser
	engine   *Engine
	verifier Verifier // nil deshabilita la verificación
	opts     Options
	log      *logger.Logger
}

// NewProcessor construye el pipeline. verifier puede ser nil.
func NewProcessor(parser DocumentParser, engine *Engine, verifier Verifier, opts Options, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Nop()
	}
	return &Processor{
		parser:   parser,
		engine:   engine,
		verifier: verifier,
		opts:     opts,
		log:      log.Component("reconciliation"),
	}
}

// Process concilia un CFDI y devuelve el reporte de cambios.
func (p *Processor) Process(ctx context.Context, raw []byte) (report *entity.Report) {
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("pánico durante la conciliación")
			report = BuildReport([]entity.ChangeEvent{entity.UnexpectedErrorEvent(fmt.Errorf("%v", r))}, nil)
		}
	}()

	doc, err := p.parser.Parse(raw)
	if err != nil {
		return p.fail(log.Warn(), err, "parseo de CFDI")
	}
	log = log.With().
		Str("rfc", doc.EmitterTaxID).
		Str("uuid", doc.UUID).
		Str("tipo", doc.TypeCode).
		Str("tipo_desc", fiscal.VoucherTypeDescription(doc.TypeCode)).
		Str("version", string(doc.SchemaVersion)).
		Bool("rfc_generico", fiscal.IsGenericRFC(doc.EmitterTaxID)).
		Logger()

	if err := fiscal.ValidateRFC(doc.EmitterTaxID); err != nil {
		log.Warn().Err(err).Msg("RFC del emisor con estructura atípica; se concilia tal cual")
	}
	if doc.HasUUID() {
		if _, err := uuid.Parse(doc.UUID); err != nil {
			log.Warn().Msg("UUID del timbre con formato no estándar")
		}
	}

	if doc.DocumentType == entity.DocumentTypeOther {
		log.Info().Msg("tipo de comprobante sin conciliación")
		return BuildReport([]entity.ChangeEvent{entity.NotReconciledEvent(doc.TypeCode, doc.UUID)}, nil)
	}

	events, err := cfdi.ExtractPayableEvents(doc)
	if err != nil {
		return p.fail(log.Warn(), err, "extracción de eventos")
	}

	changes, err := p.engine.Reconcile(ctx, doc.EmitterTaxID, doc.EmitterName, events)
	if err != nil {
		return p.fail(log.Error(), err, "conciliación")
	}
	log.Info().Int("eventos", len(events)).Int("cambios", len(changes)).Msg("conciliación aplicada")

	var verification *entity.ChangeEvent
	if p.opts.WithVerification && p.verifier != nil && doc.HasUUID() {
		ev := p.verifier.Verify(ctx, doc.UUID)
		verification = &ev
		log.Info().Str("kind", string(ev.Kind)).Msg("verificación SAT")
	}
	return BuildReport(changes, verification)
}

// fail registra el error y produce un reporte con un único evento de error según su ErrorKind.
func (p *Processor) fail(ev *zerolog.Event, err error, step string) *entity.Report {
	kind := domain.Classify(err)
	ev.Err(err).Str("kind", kind.String()).Msg(step)
	return BuildReport([]entity.ChangeEvent{FailureEvent(kind, err)}, nil)
}

// FailureEvent traduce un ErrorKind al evento de error que encabeza el reporte.
func FailureEvent(kind domain.ErrorKind, err error) entity.ChangeEvent {
	switch kind {
	case domain.KindMalformedDocument:
		return entity.MalformedDocumentEvent()
	case domain.KindUnsupportedStructure:
		return entity.UnsupportedStructureEvent(err)
	case domain.KindStore:
		return entity.ConnectionErrorEvent(err)
	case domain.KindVerificationUnavailable, domain.KindUnexpected, domain.KindNone:
		return entity.UnexpectedErrorEvent(err)
	default:
		return entity.UnexpectedErrorEvent(err)
	}
}
