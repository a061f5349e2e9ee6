package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Value errors
	ErrMsgMalformedValue = "malformed value"

	// Variant errors
	ErrMsgUnknownVariant = "unknown variant"
	ErrMsgTypeMismatch   = "type mismatch"

	// Reference errors
	ErrMsgUnknownAlias         = "unknown custom item alias"
	ErrMsgDanglingReference    = "dangling reference"
	ErrMsgMissingUpgradeRecipe = "missing upgrade recipe"
	ErrMsgDuplicateKey         = "duplicate key"

	// Lookup errors
	ErrMsgRecipeNotFound  = "recipe not found"
	ErrMsgFactoryNotFound = "factory not found"
	ErrMsgItemNotFound    = "item not found"

	// Catalog errors
	ErrMsgModelNotLoaded = "model not loaded"
)

// Configuration parse errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrMalformedValue: a field has the wrong type or format
	ErrMalformedValue = errors.New(ErrMsgMalformedValue)

	// ErrUnknownVariant: an entity's `type` tag is not recognised
	ErrUnknownVariant = errors.New(ErrMsgUnknownVariant)

	// ErrUnknownAlias: a `custom-key` has no entry in the alias table
	ErrUnknownAlias = errors.New(ErrMsgUnknownAlias)

	// ErrDanglingReference: a factory lists a recipe id that was not parsed
	ErrDanglingReference = errors.New(ErrMsgDanglingReference)

	// ErrTypeMismatch: an upgrade recipe targets a factory that is not FCCUPGRADE
	ErrTypeMismatch = errors.New(ErrMsgTypeMismatch)

	// ErrMissingUpgradeRecipe: an FCCUPGRADE factory has no upgrade recipe
	ErrMissingUpgradeRecipe = errors.New(ErrMsgMissingUpgradeRecipe)

	// ErrDuplicateKey: a recipe id or factory name is declared twice
	ErrDuplicateKey = errors.New(ErrMsgDuplicateKey)
)

// Lookup errors
var (
	ErrRecipeNotFound  = errors.New(ErrMsgRecipeNotFound)
	ErrFactoryNotFound = errors.New(ErrMsgFactoryNotFound)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrModelNotLoaded  = errors.New(ErrMsgModelNotLoaded)
)

// Parse error kinds, as reported by ParseError.Kind
const (
	KindMalformedValue       = "MalformedValue"
	KindUnknownVariant       = "UnknownVariant"
	KindUnknownAlias         = "UnknownAlias"
	KindDanglingReference    = "DanglingReference"
	KindTypeMismatch         = "TypeMismatch"
	KindMissingUpgradeRecipe = "MissingUpgradeRecipe"
	KindDuplicateKey         = "DuplicateKey"
	KindUnknown              = "Unknown"
)

var parseErrorKinds = []struct {
	err  error
	kind string
}{
	{ErrMalformedValue, KindMalformedValue},
	{ErrUnknownVariant, KindUnknownVariant},
	{ErrUnknownAlias, KindUnknownAlias},
	{ErrDanglingReference, KindDanglingReference},
	{ErrTypeMismatch, KindTypeMismatch},
	{ErrMissingUpgradeRecipe, KindMissingUpgradeRecipe},
	{ErrDuplicateKey, KindDuplicateKey},
}

// ErrorKind names the parse error sentinel wrapped by err.
func ErrorKind(err error) string {
	for _, k := range parseErrorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
