package owners

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		wantMsg string
	}{
		{name: "ok sin email", form: Form{Nombre: "Ana"}},
		{name: "ok con email", form: Form{Nombre: "Ana", Email: "ana@example.com"}},
		{name: "sin nombre", form: Form{Email: "ana@example.com"}, wantMsg: "El nombre es requerido"},
		{name: "email sin dominio", form: Form{Nombre: "Ana", Email: "ana@example"}, wantMsg: "El formato del email no es válido"},
		{name: "email con espacios", form: Form{Nombre: "Ana", Email: "a na@x.com"}, wantMsg: "El formato del email no es válido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestPayload_NullsEmptyOptionals(t *testing.T) {
	f := FormFromValues(url.Values{"nombre": {" Ana "}, "telefono": {"  "}, "email": {"ana@example.com"}})

	b, err := json.Marshal(f.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Ana","direccion":null,"telefono":null,"email":"ana@example.com"}`, string(b))
}

func TestRow(t *testing.T) {
	email := "ana@example.com"
	r := Definition().Row(Owner{ID: 2, Nombre: "Ana", Email: &email})
	assert.Equal(t, "Ana", r.Title)
	assert.Equal(t, []string{email}, r.Notes)
	assert.False(t, r.HasHistory)
}
