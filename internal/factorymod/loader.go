package factorymod

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
	"github.com/osse101/FactoryModExplorer_Go/internal/validation"
)

// Loader turns config text into a Model, checking the document shape first.
type Loader interface {
	Load(ctx context.Context, text []byte) (*Model, error)
	LoadFile(ctx context.Context, path string) (*Model, error)
}

type loader struct {
	schemas validation.SchemaValidator
}

// NewLoader creates a Loader. A nil validator skips the schema check.
func NewLoader(schemas validation.SchemaValidator) Loader {
	return &loader{schemas: schemas}
}

// Load parses and links config text.
func (l *loader) Load(ctx context.Context, text []byte) (*Model, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(text, &root); err != nil {
		return nil, fmt.Errorf(ErrMsgParseYAMLFailed, err)
	}
	if isNull(&root) {
		return nil, ErrEmptyDocument
	}
	if err := checkExpansion(&root); err != nil {
		return nil, err
	}

	if l.schemas != nil {
		if err := l.schemas.Validate(toValue(&root), validation.SchemaConfig); err != nil {
			logger.FromContext(ctx).Warn(LogMsgSchemaRejected, "error", err)
			return nil, fmt.Errorf(ErrMsgSchemaFailed, err)
		}
	}
	return BuildDocument(ctx, &root)
}

// LoadFile reads a config file from disk and loads it.
func (l *loader) LoadFile(ctx context.Context, path string) (*Model, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Load(ctx, text)
}
