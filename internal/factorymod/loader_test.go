package factorymod

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
	"github.com/osse101/FactoryModExplorer_Go/internal/validation"
)

type stubValidator struct {
	err    error
	calls  int
	schema string
	value  any
}

func (s *stubValidator) Validate(value any, schemaName string) error {
	s.calls++
	s.schema = schemaName
	s.value = value
	return s.err
}

func (s *stubValidator) ValidateBytes([]byte, string) error {
	return errors.New("not used")
}

func TestLoader_LoadFile(t *testing.T) {
	l := NewLoader(validation.NewSchemaValidator())

	m, err := l.LoadFile(context.Background(), filepath.Join("testdata", "config.yml"))

	require.NoError(t, err)
	assert.Len(t, m.Recipes, 8)
	assert.Len(t, m.Factories, 3)
}

func TestLoader_LoadFileMissing(t *testing.T) {
	l := NewLoader(nil)

	_, err := l.LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoader_SchemaRejectsDocument(t *testing.T) {
	l := NewLoader(validation.NewSchemaValidator())

	_, err := l.Load(context.Background(), []byte("recipes: [a, b]\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrSchemaValidation)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestLoader_PassesDocumentToValidator(t *testing.T) {
	stub := &stubValidator{}
	l := NewLoader(stub)

	_, err := l.Load(context.Background(), []byte("default_fuel_consumption_intervall: 30s\nrecipes:\n  r: {name: R}\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, validation.SchemaConfig, stub.schema)
	assert.Equal(t, map[string]any{
		"default_fuel_consumption_intervall": "30s",
		"recipes": map[string]any{
			"r": map[string]any{"name": "R"},
		},
	}, stub.value)
}

func TestLoader_RejectsAliasExpansion(t *testing.T) {
	stub := &stubValidator{}
	l := NewLoader(stub)

	m, err := l.Load(context.Background(), []byte(nestedAliases(8, 10)))

	assert.Nil(t, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedValue)
	assert.Zero(t, stub.calls, "the document is rejected before it is expanded for the validator")
}

func TestLoader_ValidatorErrorStopsBuild(t *testing.T) {
	stub := &stubValidator{err: errors.New("boom")}
	l := NewLoader(stub)

	m, err := l.Load(context.Background(), []byte("default_fuel_consumption_intervall: 30s\n"))

	assert.Nil(t, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestLoader_EmptyAndInvalidText(t *testing.T) {
	stub := &stubValidator{}
	l := NewLoader(stub)

	_, err := l.Load(context.Background(), []byte("  \n"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = l.Load(context.Background(), []byte("a: [b"))
	assert.Error(t, err)
	assert.Zero(t, stub.calls, "the validator only sees parsed documents")
}
