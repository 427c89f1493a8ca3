package cfdi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
	"github.com/jhoicas/cfdi-conciliador/internal/domain/entity"
	"github.com/jhoicas/cfdi-conciliador/internal/infrastructure/cfdi"
)

const ingreso40 = `<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" xmlns:tfd="http://www.sat.gob.mx/TimbreFiscalDigital"
    Version="4.0" TipoDeComprobante="I" Total="1500.00" Fecha="2024-03-15T10:20:30">
  <cfdi:Emisor Rfc="AAA010101AAA" Nombre="Acme SA de CV"/>
  <cfdi:Receptor Rfc="XAXX010101000"/>
  <cfdi:Complemento>
    <tfd:TimbreFiscalDigital Version="1.1" UUID="ABC-1"/>
  </cfdi:Complemento>
</cfdi:Comprobante>`

const ingreso33SinNombre = `<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/3" Version="3.3" TipoDeComprobante="I" Total="99.5">
  <cfdi:Emisor Rfc="BBB020202BBB"/>
</cfdi:Comprobante>`

const pago40 = `<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" xmlns:pago20="http://www.sat.gob.mx/Pagos20"
    xmlns:tfd="http://www.sat.gob.mx/TimbreFiscalDigital" Version="4.0" TipoDeComprobante="P" Total="0" Fecha="2024-04-01T09:00:00">
  <cfdi:Emisor Rfc="CCC030303CCC" Nombre="Pagos SA"/>
  <cfdi:Complemento>
    <pago20:Pagos Version="2.0">
      <pago20:Pago FechaPago="2024-04-01T12:00:00" Monto="300.00">
        <pago20:DoctoRelacionado IdDocumento="REL-1" ImpPagado="100.00"/>
        <pago20:DoctoRelacionado IdDocumento="REL-2" ImpPagado="200.00"/>
      </pago20:Pago>
    </pago20:Pagos>
    <tfd:TimbreFiscalDigital UUID="PAGO-UUID"/>
  </cfdi:Complemento>
</cfdi:Comprobante>`

func TestParse_Ingreso40(t *testing.T) {
	doc, err := cfdi.NewParser().Parse([]byte(ingreso40))
	require.NoError(t, err)

	assert.Equal(t, entity.SchemaV40, doc.SchemaVersion)
	assert.Equal(t, entity.DocumentTypeIncome, doc.DocumentType)
	assert.Equal(t, "AAA010101AAA", doc.EmitterTaxID)
	assert.Equal(t, "Acme SA de CV", doc.EmitterName)
	assert.Equal(t, "ABC-1", doc.UUID)
	assert.True(t, doc.HasUUID())
	assert.Equal(t, "1500.00", doc.Total.StringFixed(2))
	assert.Equal(t, "2024-03-15 10:20:30", entity.FormatTime(doc.IssuedAt))
	assert.Empty(t, doc.RelatedDocuments)
}

func TestParse_Version33_NombrePorDefectoYSinTimbre(t *testing.T) {
	doc, err := cfdi.NewParser().Parse([]byte(ingreso33SinNombre))
	require.NoError(t, err)

	assert.Equal(t, entity.SchemaV33, doc.SchemaVersion)
	assert.Equal(t, "RFC: BBB020202BBB", doc.EmitterName)
	assert.Equal(t, entity.UUIDNotFound, doc.UUID, "sin timbre el UUID es el centinela, no un error")
	assert.False(t, doc.HasUUID())
	assert.Nil(t, doc.IssuedAt)
}

// El namespace se elige por Version: un CFDI que declara 3.3 pero usa el namespace 4.0 no tiene Emisor.
func TestParse_NamespaceSegunVersion(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" Version="3.3" TipoDeComprobante="I">
  <cfdi:Emisor Rfc="AAA010101AAA"/>
</cfdi:Comprobante>`
	_, err := cfdi.NewParser().Parse([]byte(xml))
	assert.ErrorIs(t, err, domain.ErrUnsupportedStructure)
}

func TestParse_PrefijoIrrelevante(t *testing.T) {
	xml := `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="10">
  <Emisor Rfc="AAA010101AAA" Nombre="X"/>
</Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "AAA010101AAA", doc.EmitterTaxID)
}

func TestParse_ComplementoDePago(t *testing.T) {
	doc, err := cfdi.NewParser().Parse([]byte(pago40))
	require.NoError(t, err)

	assert.Equal(t, entity.DocumentTypePaymentComplement, doc.DocumentType)
	assert.Equal(t, "PAGO-UUID", doc.UUID)
	require.True(t, doc.HasPaymentNode)
	assert.Equal(t, "2024-04-01 12:00:00", entity.FormatTime(doc.PaymentDate))
	require.Len(t, doc.RelatedDocuments, 2)
	assert.Equal(t, "REL-1", doc.RelatedDocuments[0].RelatedUUID)
	assert.Equal(t, "100.00", doc.RelatedDocuments[0].PaidAmount.StringFixed(2))
	assert.Equal(t, "REL-2", doc.RelatedDocuments[1].RelatedUUID)
	assert.Equal(t, doc.PaymentDate, doc.RelatedDocuments[1].PaymentDate)
}

func TestParse_ComplementoSinFechaPago(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" xmlns:pago20="http://www.sat.gob.mx/Pagos20" Version="4.0" TipoDeComprobante="P">
  <cfdi:Emisor Rfc="CCC030303CCC"/>
  <cfdi:Complemento><pago20:Pagos><pago20:Pago><pago20:DoctoRelacionado IdDocumento="R" ImpPagado="1"/></pago20:Pago></pago20:Pagos></cfdi:Complemento>
</cfdi:Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err, "el parser no decide; el extractor rechaza la falta de FechaPago")
	assert.True(t, doc.HasPaymentNode)
	assert.Nil(t, doc.PaymentDate)
}

func TestParse_Errores(t *testing.T) {
	cases := []struct {
		name string
		xml  string
		want error
	}{
		{"xml roto", `<cfdi:Comprobante Version="4.0"><cfdi:Emisor>`, domain.ErrMalformedDocument},
		{"texto plano", `no soy xml`, domain.ErrMalformedDocument},
		{"vacío", ``, domain.ErrMalformedDocument},
		{"raíz distinta", `<Factura Version="4.0"/>`, domain.ErrUnsupportedStructure},
		{"sin Version", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" TipoDeComprobante="I"/>`, domain.ErrUnsupportedStructure},
		{"sin Emisor", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I"/>`, domain.ErrUnsupportedStructure},
		{"fecha inválida", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Fecha="15/03/2024">
			<Emisor Rfc="A"/></Comprobante>`, domain.ErrUnsupportedStructure},
		{"total inválido", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="mil">
			<Emisor Rfc="A"/></Comprobante>`, domain.ErrUnsupportedStructure},
		{"total negativo", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="-1">
			<Emisor Rfc="A"/></Comprobante>`, domain.ErrUnsupportedStructure},
		{"elemento después de la raíz", `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="10">
			<cfdi:Emisor Rfc="AAA010101AAA"/></cfdi:Comprobante><x/>`, domain.ErrMalformedDocument},
		{"texto después de la raíz", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I">
			<Emisor Rfc="A"/></Comprobante>basura`, domain.ErrMalformedDocument},
		{"total exponencial", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="1e400">
			<Emisor Rfc="A"/></Comprobante>`, domain.ErrUnsupportedStructure},
		{"total demasiado grande", `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="12345678901234567.00">
			<Emisor Rfc="A"/></Comprobante>`, domain.ErrUnsupportedStructure},
		{"ImpPagado exponencial", `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" xmlns:pago20="http://www.sat.gob.mx/Pagos20" Version="4.0" TipoDeComprobante="P">
			<cfdi:Emisor Rfc="CCC030303CCC"/>
			<cfdi:Complemento><pago20:Pagos><pago20:Pago FechaPago="2024-04-01T12:00:00"><pago20:DoctoRelacionado IdDocumento="R" ImpPagado="1E3"/></pago20:Pago></pago20:Pagos></cfdi:Complemento>
			</cfdi:Comprobante>`, domain.ErrUnsupportedStructure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cfdi.NewParser().Parse([]byte(tc.xml))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_TotalAusenteEsCero(t *testing.T) {
	xml := `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="E"><Emisor Rfc="A"/></Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err)
	assert.True(t, doc.Total.IsZero())
	assert.Equal(t, entity.DocumentTypeOther, doc.DocumentType)
	assert.Equal(t, "E", doc.TypeCode)
}

func TestParse_RFCNormalizado(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="1">
  <cfdi:Emisor Rfc=" aaa010101aaa "/>
</cfdi:Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "AAA010101AAA", doc.EmitterTaxID)
	assert.Equal(t, "RFC: AAA010101AAA", doc.EmitterName)
}

func TestParse_ImporteEnElLimite(t *testing.T) {
	xml := `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="0001234567890123456.99">
  <Emisor Rfc="A"/></Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err, "los ceros a la izquierda no cuentan como dígitos")
	assert.Equal(t, "1234567890123456.99", doc.Total.StringFixed(2))
}

func TestParse_FechaSinSegundos(t *testing.T) {
	xml := `<Comprobante xmlns="http://www.sat.gob.mx/cfd/4" Version="4.0" TipoDeComprobante="I" Total="1" Fecha="2024-01-15T10:00">
  <Emisor Rfc="A"/></Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 10:00:00", entity.FormatTime(doc.IssuedAt))
}

func TestParse_ComplementoPagos10EnCFDI33(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/3" xmlns:pago10="http://www.sat.gob.mx/Pagos"
    xmlns:tfd="http://www.sat.gob.mx/TimbreFiscalDigital" Version="3.3" TipoDeComprobante="P" Total="0">
  <cfdi:Emisor Rfc="DDD040404DDD" Nombre="Pagos 33"/>
  <cfdi:Complemento>
    <pago10:Pagos Version="1.0">
      <pago10:Pago FechaPago="2023-06-30T08:15:00" Monto="75.50">
        <pago10:DoctoRelacionado IdDocumento="REL-33" ImpPagado="75.50"/>
      </pago10:Pago>
    </pago10:Pagos>
    <tfd:TimbreFiscalDigital UUID="PAGO-33"/>
  </cfdi:Complemento>
</cfdi:Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err)

	assert.Equal(t, entity.SchemaV33, doc.SchemaVersion)
	assert.Equal(t, "PAGO-33", doc.UUID)
	require.True(t, doc.HasPaymentNode)
	assert.Equal(t, "2023-06-30 08:15:00", entity.FormatTime(doc.PaymentDate))
	require.Len(t, doc.RelatedDocuments, 1)
	assert.Equal(t, "REL-33", doc.RelatedDocuments[0].RelatedUUID)
	assert.Equal(t, "75.50", doc.RelatedDocuments[0].PaidAmount.StringFixed(2))
}

// Un 3.3 con el complemento de Pagos 2.0 no aporta documentos relacionados.
func TestParse_CFDI33IgnoraPagos20(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/3" xmlns:pago20="http://www.sat.gob.mx/Pagos20" Version="3.3" TipoDeComprobante="P">
  <cfdi:Emisor Rfc="DDD040404DDD"/>
  <cfdi:Complemento><pago20:Pagos><pago20:Pago FechaPago="2023-06-30T08:15:00"><pago20:DoctoRelacionado IdDocumento="R" ImpPagado="1"/></pago20:Pago></pago20:Pagos></cfdi:Complemento>
</cfdi:Comprobante>`
	doc, err := cfdi.NewParser().Parse([]byte(xml))
	require.NoError(t, err)
	assert.False(t, doc.HasPaymentNode)
	assert.Empty(t, doc.RelatedDocuments)
}
