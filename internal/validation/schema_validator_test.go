package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	fsys := fstest.MapFS{
		"test.schema.json": &fstest.MapFile{Data: []byte(`{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"age": {"type": "integer", "minimum": 0}
			},
			"required": ["name"]
		}`)},
	}
	validator := NewSchemaValidatorFS(fsys)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "test.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	validator := NewSchemaValidatorFS(fstest.MapFS{})

	err := validator.Validate(map[string]any{}, "missing.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
	assert.NotErrorIs(t, err, ErrSchemaValidation)
}

func TestSchemaValidator_ConfigSchema(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name     string
		value    any
		errorMsg string
	}{
		{
			name: "full document",
			value: map[string]any{
				"default_fuel_consumption_intervall": "30s",
				"recipes":                            map[string]any{"r": map[string]any{"type": "PRODUCTION"}},
				"factories":                          []any{map[string]any{"name": "F"}},
			},
		},
		{
			name: "factories as mapping and empty recipes",
			value: map[string]any{
				"default_fuel_consumption_intervall": "30s",
				"recipes":                            nil,
				"factories":                          map[string]any{"f": map[string]any{}},
			},
		},
		{
			name: "malformed recipe entries are left to the linker",
			value: map[string]any{
				"default_fuel_consumption_intervall": "30s",
				"recipes":                            map[string]any{"r": "not a mapping"},
			},
		},
		{
			name:     "missing default fuel interval",
			value:    map[string]any{"recipes": map[string]any{}},
			errorMsg: "required",
		},
		{
			name:     "default fuel interval without unit",
			value:    map[string]any{"default_fuel_consumption_intervall": "30"},
			errorMsg: "/default_fuel_consumption_intervall",
		},
		{
			name: "recipes as list",
			value: map[string]any{
				"default_fuel_consumption_intervall": "30s",
				"recipes":                            []any{"r"},
			},
			errorMsg: "/recipes",
		},
		{
			name:     "document is a list",
			value:    []any{"a"},
			errorMsg: "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.value, SchemaConfig)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaValidation)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.Validate(map[string]any{"default_fuel_consumption_intervall": "1s"}, SchemaConfig))
	first := v.schemas[SchemaConfig]
	require.NoError(t, v.Validate(map[string]any{"default_fuel_consumption_intervall": "2s"}, SchemaConfig))

	assert.Same(t, first, v.schemas[SchemaConfig])
}
