package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRFC(t *testing.T) {
	assert.Equal(t, "AAA010101AAA", NormalizeRFC(" aaa-010101-aaa "))
}

func TestValidateRFC(t *testing.T) {
	tests := []struct {
		rfc   string
		valid bool
	}{
		{"AAA010101AAA", true},  // persona moral
		{"GODE561231GR8", true}, // persona física
		{"ÑAÑ010101AB1", true},  // Ñ permitida
		{GenericRFCNational, true},
		{"AAA011301AAA", false}, // mes 13
		{"AAA010100AAA", false}, // día 00
		{"AA0101010AAA", false}, // letras insuficientes
		{"AAA010101AA", false},  // corto
		{"AAAA0101011AAAA", false},
	}
	for _, tt := range tests {
		t.Run(tt.rfc, func(t *testing.T) {
			err := ValidateRFC(tt.rfc)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsGenericRFC(t *testing.T) {
	assert.True(t, IsGenericRFC("XEXX010101000"))
	assert.False(t, IsGenericRFC("AAA010101AAA"))
}

func TestVoucherTypeDescription(t *testing.T) {
	assert.Equal(t, "Pago", VoucherTypeDescription("P"))
	assert.Equal(t, "Desconocido", VoucherTypeDescription("Z"))
}
