package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

func TestSchemaValidator_SeedYAML(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid seed",
			data: `
users:
  - {id: gm, name: GM, role: gm}
inventories:
  - id: box
    name: Box
    money: 10
    categories:
      Mochila:
        - name: Chaves
          items:
            - {name: Corda, qty: 1}
stands:
  - {id: s1, name: S1, slots: 2}
`,
		},
		{
			name: "empty document",
			data: "",
		},
		{
			name:      "unknown top-level key",
			data:      "players: []\n",
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name:      "inventory without id",
			data:      "inventories:\n  - {name: A}\n",
			wantError: true,
			errorMsg:  "/inventories/0",
		},
		{
			name:      "money is not a number",
			data:      "inventories:\n  - {id: a, money: lots}\n",
			wantError: true,
			errorMsg:  "/inventories/0/money",
		},
		{
			name:      "unknown role",
			data:      "users:\n  - {id: u, role: admin}\n",
			wantError: true,
			errorMsg:  "/users/0/role",
		},
		{
			name:      "negative stand slots",
			data:      "stands:\n  - {id: s, slots: -1}\n",
			wantError: true,
			errorMsg:  "/stands/0/slots",
		},
		{
			name:      "malformed YAML",
			data:      "users: [unclosed",
			wantError: true,
			errorMsg:  "parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateYAML([]byte(tt.data), SchemaSeed)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateBytes([]byte(`{"weapons": [{"id": "w1", "name": "Glock", "price": 10}]}`), SchemaSeed))

	err := v.ValidateBytes([]byte(`{"weapons": [{"id": "w1", "name": "Glock", "price": -1}]}`), SchemaSeed)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = v.ValidateBytes([]byte(`{"weapons": }`), SchemaSeed)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{}`), SchemaSeed))
	require.NoError(t, v.ValidateBytes([]byte(`{}`), SchemaSeed))
	assert.Len(t, v.schemas, 1)
}
