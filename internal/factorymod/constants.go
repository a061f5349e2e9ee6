package factorymod

// ==================== Configuration Keys ====================

// Top-level document keys
const (
	KeyDefaultFuelInterval = "default_fuel_consumption_intervall"
	KeyRecipes             = "recipes"
	KeyFactories           = "factories"
)

// Recipe declaration keys
const (
	KeyName           = "name"
	KeyType           = "type"
	KeyProductionTime = "production_time"
	KeyFuelInterval   = "fuel_consumption_intervall"
	KeyInput          = "input"
	KeyOutput         = "output"
	KeyHealthGained   = "health_gained"
	KeyCompactLore    = "compact_lore"
	KeyUpgradeFactory = "factory"
)

// Factory declaration keys
const (
	KeySetupCost      = "setupcost"
	KeyFactoryRecipes = "recipes"
)

// Item declaration keys
const (
	KeyCustomItem  = "custom-key"
	KeyMaterial    = "type"
	KeyMeta        = "meta"
	KeyDisplayName = "display-name"
	KeyLore        = "lore"
	KeyAmount      = "amount"
)

// ==================== Parse Error Messages ====================

// Messages attached to collected parse errors
const (
	MsgFailedParsingRecipe  = "Failed parsing recipe"
	MsgFailedParsingFactory = "Failed parsing factory"
)

// Format strings used with fmt.Errorf to wrap domain sentinels
const (
	ErrFmtNotString          = "%w: not a string: %s"
	ErrFmtNotNumber          = "%w: not a number: %s"
	ErrFmtNotInteger         = "%w: not an integer: %s"
	ErrFmtNotMapping         = "%w: not a mapping: %s"
	ErrFmtNotList            = "%w: not a list: %s"
	ErrFmtInvalidDuration    = "%w: invalid duration: %s"
	ErrFmtUnknownUnit        = "%w: unknown duration unit %q in %s"
	ErrFmtInvalidItems       = "%w: invalid items: %s"
	ErrFmtInvalidItem        = "%w: invalid item: %s"
	ErrFmtInvalidLore        = "%w: lore line %d: %s"
	ErrFmtLineBreak          = "%w: contains a line break: %q"
	ErrFmtEmptyMaterial      = "%w: empty material"
	ErrFmtInvalidRecipeID    = "%w: recipe id is not a string: %s"
	ErrFmtTooManyNodes       = "%w: document expands to more than %d nodes through aliases"
	ErrFmtUnknownAlias       = "%w: %q"
	ErrFmtUnknownRecipeType  = "%w: unknown recipe type %q"
	ErrFmtUnknownFactoryType = "%w: unknown factory type %q"
	ErrFmtNoSuchRecipe       = "%w: no such recipe %q"
	ErrFmtCannotUpgradeTo    = "%w: cannot upgrade to factory type %q"
	ErrFmtNoUpgradeRecipe    = "%w: found no upgrade recipe to factory %q"
	ErrFmtDuplicateRecipe    = "%w: recipe %q is declared more than once"
	ErrFmtDuplicateFactory   = "%w: factory %q is declared more than once"
	ErrFmtField              = "%s: %w"
)

// Document level errors
const (
	ErrMsgParseYAMLFailed      = "failed to parse config yaml: %w"
	ErrMsgEmptyDocument        = "config document is empty"
	ErrMsgSchemaFailed         = "config document does not match schema: %w"
	ErrMsgDefaultFuelInterval  = "invalid " + KeyDefaultFuelInterval + ": %w"
	ErrMsgReadConfigFileFailed = "failed to read config file: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgParseError       = "Config declaration skipped"
	LogMsgBuildStarted     = "Building FactoryMod model"
	LogMsgBuildComplete    = "FactoryMod model built"
	LogMsgUnmatchedUpgrade = "Upgrade recipe targets a factory that was not linked"
	LogMsgSchemaRejected   = "Config document rejected by schema"
)
