package cfdi

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/pkg/fiscal"
)

// Formatos de fecha aceptados (ISO 8601 tal como aparecen en Fecha / FechaPago).
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Un importe CFDI cabe en NUMERIC(18,2): a lo más 16 dígitos enteros.
const maxIntegerDigits = 16

// Parser lee CFDI con etree. No tiene estado; es seguro para uso concurrente.
type Parser struct{}

// NewParser construye el parser.
func NewParser() *Parser { return &Parser{} }

// Parse convierte bytes XML en FiscalDocument.
//
// Errores:
//   - domain.ErrMalformedDocument     si el XML no es well-formed.
//   - domain.ErrUnsupportedStructure  si faltan atributos raíz, el Emisor o hay valores inválidos.
//
// La ausencia del timbre o del complemento no es error: UUID queda en entity.UUIDNotFound.
func (p *Parser) Parse(raw []byte) (*entity.FiscalDocument, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if err := singleRoot(doc); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root.Tag != "Comprobante" {
		return nil, unsupported("elemento raíz %q, se esperaba Comprobante", root.Tag)
	}

	version := attr(root, "Version")
	if version == "" {
		return nil, unsupported("Comprobante sin atributo Version")
	}
	typeCode := attr(root, "TipoDeComprobante")
	if typeCode == "" {
		return nil, unsupported("Comprobante sin atributo TipoDeComprobante")
	}
	out := &entity.FiscalDocument{
		SchemaVersion: entity.SchemaVersion(version),
		DocumentType:  entity.DocumentTypeFromCode(typeCode),
		TypeCode:      typeCode,
		UUID:          entity.UUIDNotFound,
	}
	ns := namespacesFor(out.SchemaVersion)

	emisor := child(root, ns.comprobante, "Emisor")
	if emisor == nil {
		return nil, unsupported("no se encontró el nodo Emisor (Version %s)", version)
	}
	out.EmitterTaxID = fiscal.NormalizeRFC(attr(emisor, "Rfc"))
	if out.EmitterTaxID == "" {
		return nil, unsupported("Emisor sin atributo Rfc")
	}
	out.EmitterName = attr(emisor, "Nombre")
	if out.EmitterName == "" {
		out.EmitterName = "RFC: " + out.EmitterTaxID
	}

	if timbre := first(root, ns.timbre, "TimbreFiscalDigital"); timbre != nil {
		if uuid := attr(timbre, "UUID"); uuid != "" {
			out.UUID = uuid
		}
	}

	var err error
	if out.Total, err = parseAmount(attr(root, "Total"), "Total"); err != nil {
		return nil, err
	}
	if out.IssuedAt, err = parseTime(attr(root, "Fecha"), "Fecha"); err != nil {
		return nil, err
	}

	if out.DocumentType == entity.DocumentTypePaymentComplement {
		if err := parsePayments(root, ns, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parsePayments llena PaymentDate (del primer Pago) y los DoctoRelacionado en orden de aparición.
func parsePayments(root *etree.Element, ns namespaceSet, out *entity.FiscalDocument) error {
	if pago := first(root, ns.pagos, "Pago"); pago != nil {
		out.HasPaymentNode = true
		fecha, err := parseTime(attr(pago, "FechaPago"), "FechaPago")
		if err != nil {
			return err
		}
		out.PaymentDate = fecha
	}
	for i, rel := range all(root, ns.pagos, "DoctoRelacionado") {
		id := attr(rel, "IdDocumento")
		if id == "" {
			return unsupported("DoctoRelacionado #%d sin IdDocumento", i+1)
		}
		amount, err := parseAmount(attr(rel, "ImpPagado"), "ImpPagado")
		if err != nil {
			return err
		}
		out.RelatedDocuments = append(out.RelatedDocuments, entity.RelatedDocument{
			RelatedUUID: id,
			PaidAmount:  amount,
			PaymentDate: out.PaymentDate,
		})
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrUnsupportedStructure, fmt.Sprintf(format, args...))
}

func attr(e *etree.Element, key string) string {
	return strings.TrimSpace(e.SelectAttrValue(key, ""))
}

func matches(e *etree.Element, ns, local string) bool {
	return e.Tag == local && e.NamespaceURI() == ns
}

// child busca un hijo directo por namespace URI y nombre local (independiente del prefijo).
func child(parent *etree.Element, ns, local string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if matches(c, ns, local) {
			return c
		}
	}
	return nil
}

// first primer descendiente (en orden de documento) que coincide.
func first(root *etree.Element, ns, local string) *etree.Element {
	for _, c := range root.ChildElements() {
		if matches(c, ns, local) {
			return c
		}
		if found := first(c, ns, local); found != nil {
			return found
		}
	}
	return nil
}

// all todos los descendientes que coinciden, en orden de documento.
func all(root *etree.Element, ns, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range root.ChildElements() {
		if matches(c, ns, local) {
			out = append(out, c)
		}
		out = append(out, all(c, ns, local)...)
	}
	return out
}

// singleRoot exige exactamente un elemento de nivel superior y nada de texto fuera de él.
// etree tolera contenido después de la raíz; un CFDI así no es well-formed.
func singleRoot(doc *etree.Document) error {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return fmt.Errorf("%w: texto fuera del elemento raíz", domain.ErrMalformedDocument)
			}
		}
	}
	switch {
	case elements == 0:
		return fmt.Errorf("%w: documento sin elemento raíz", domain.ErrMalformedDocument)
	case elements > 1:
		return fmt.Errorf("%w: contenido después del elemento raíz", domain.ErrMalformedDocument)
	}
	return nil
}

// parseAmount importe no negativo en notación decimal simple; vacío equivale a cero.
func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, unsupported("%s en notación exponencial %q", field, s)
	}
	intPart, _, _ := strings.Cut(strings.TrimLeft(s, "+-"), ".")
	if len(strings.TrimLeft(intPart, "0")) > maxIntegerDigits {
		return decimal.Zero, unsupported("%s excede %d dígitos enteros %q", field, maxIntegerDigits, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, unsupported("%s inválido %q", field, s)
	}
	if d.IsNegative() {
		return decimal.Zero, unsupported("%s negativo %q", field, s)
	}
	return d, nil
}

// parseTime fecha opcional; vacío devuelve nil. Se conserva la hora de reloj del CFDI.
func parseTime(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, unsupported("%s con formato inválido %q", field, s)
}
