package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cfdi-conciliador/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.ErrorKind
	}{
		{"nil", nil, domain.KindNone},
		{"xml roto", fmt.Errorf("parse: %w", domain.ErrMalformedDocument), domain.KindMalformedDocument},
		{"sin emisor", fmt.Errorf("%w: falta Emisor", domain.ErrUnsupportedStructure), domain.KindUnsupportedStructure},
		{"store envuelto dos veces", fmt.Errorf("tx: %w", fmt.Errorf("%w: insert: boom", domain.ErrStore)), domain.KindStore},
		{"verificación", domain.ErrVerificationUnavailable, domain.KindVerificationUnavailable},
		{"cualquier otro", errors.New("boom"), domain.KindUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.Classify(tc.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "store", domain.KindStore.String())
	assert.Equal(t, "unexpected", domain.ErrorKind(99).String())
}
