package factorymod

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
)

// ErrEmptyDocument is returned for a config text without any content.
var ErrEmptyDocument = errors.New(ErrMsgEmptyDocument)

// builder is the state of one Build call. Every parsing helper hangs off it,
// so no index outlives the build that created it.
type builder struct {
	log   *slog.Logger
	model *Model
	// batch stages the items of the declaration being parsed
	batch *itemBatch
	// pendingUpgrades holds UPGRADE recipes by the factory name they declare,
	// until pass 2 reaches that factory
	pendingUpgrades map[string][]*domain.Recipe
}

// Build parses FactoryMod config text and links it into a Model.
// Declarations that fail to parse are skipped and listed in Model.ParseErrors;
// only document level problems make Build return an error.
func Build(ctx context.Context, text []byte) (*Model, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(text, &root); err != nil {
		return nil, fmt.Errorf(ErrMsgParseYAMLFailed, err)
	}
	return BuildDocument(ctx, &root)
}

// BuildDocument links an already parsed YAML document.
func BuildDocument(ctx context.Context, root *yaml.Node) (*Model, error) {
	doc := resolve(root)
	if isNull(doc) {
		return nil, ErrEmptyDocument
	}
	if err := checkExpansion(root); err != nil {
		return nil, err
	}
	if !isMapping(doc) {
		return nil, fmt.Errorf(ErrFmtNotMapping, domain.ErrMalformedValue, describe(doc))
	}

	defaultFuelSec, err := parseDuration(field(doc, KeyDefaultFuelInterval))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDefaultFuelInterval, err)
	}
	recipes := field(doc, KeyRecipes)
	if !isNull(recipes) && !isMapping(recipes) {
		return nil, fieldError(KeyRecipes, fmt.Errorf(ErrFmtNotMapping, domain.ErrMalformedValue, describe(recipes)))
	}
	factories := field(doc, KeyFactories)
	if !isNull(factories) && !isMapping(factories) && !isSequence(factories) {
		return nil, fieldError(KeyFactories, fmt.Errorf(ErrFmtNotList, domain.ErrMalformedValue, describe(factories)))
	}

	b := &builder{
		log:             logger.FromContext(ctx),
		model:           newModel(defaultFuelSec),
		pendingUpgrades: make(map[string][]*domain.Recipe),
	}
	b.log.Debug(LogMsgBuildStarted, "default_fuel_sec", defaultFuelSec)

	b.linkRecipes(recipes)
	b.linkFactories(factories)
	b.reportUnmatchedUpgrades()

	stats := b.model.Stats()
	b.log.Debug(LogMsgBuildComplete,
		"recipes", stats.Recipes,
		"factories", stats.Factories,
		"items", stats.Items,
		"parse_errors", stats.ParseErrors)
	return b.model, nil
}

// linkRecipes is pass 1.
func (b *builder) linkRecipes(recipes *yaml.Node) {
	for _, kv := range pairs(recipes) {
		decl := resolve(kv.Value)
		id, err := requireString(kv.Key)
		if err != nil {
			err = fmt.Errorf(ErrFmtInvalidRecipeID, domain.ErrMalformedValue, describe(kv.Key))
			b.recordError(err, MsgFailedParsingRecipe, kv.Key.Value, declNode(kv.Value, decl))
			continue
		}
		if err := b.addRecipe(id, decl); err != nil {
			b.recordError(err, MsgFailedParsingRecipe, id, declNode(kv.Value, decl))
		}
	}
}

func (b *builder) addRecipe(id string, n *yaml.Node) error {
	b.batch = newItemBatch(b.model.Items)
	if _, exists := b.model.Recipes[id]; exists {
		return fmt.Errorf(ErrFmtDuplicateRecipe, domain.ErrDuplicateKey, id)
	}
	recipe, err := b.parseRecipe(n, id)
	if err != nil {
		return err
	}

	b.batch.commit()
	b.model.Recipes[id] = recipe
	if input, ok := recipe.Input(); ok {
		for _, key := range input.Keys() {
			item := b.mustItem(key)
			item.UsedInRecipes = append(item.UsedInRecipes, recipe)
		}
	}
	if output, ok := recipe.Output(); ok {
		for _, key := range output.Keys() {
			item := b.mustItem(key)
			item.MadeInRecipes = append(item.MadeInRecipes, recipe)
		}
	}
	if upgrade, ok := recipe.Variant.(*domain.UpgradeRecipe); ok {
		b.pendingUpgrades[upgrade.TargetFactory] = append(b.pendingUpgrades[upgrade.TargetFactory], recipe)
	}
	return nil
}

// linkFactories is pass 2.
func (b *builder) linkFactories(factories *yaml.Node) {
	var decls []keyValue
	if isSequence(factories) {
		for _, c := range resolve(factories).Content {
			decls = append(decls, keyValue{Value: c})
		}
	} else {
		decls = pairs(factories)
	}

	for _, kv := range decls {
		decl := resolve(kv.Value)
		if err := b.addFactory(decl); err != nil {
			b.recordError(err, MsgFailedParsingFactory, factoryLabel(kv.Key, decl), declNode(kv.Value, decl))
		}
	}
}

// addFactory runs every check before touching the model, so a failing
// factory leaves no links behind.
func (b *builder) addFactory(n *yaml.Node) error {
	b.batch = newItemBatch(b.model.Items)
	f, err := b.parseFactory(n)
	if err != nil {
		return err
	}
	if _, exists := b.model.Factories[f.Name]; exists {
		return fmt.Errorf(ErrFmtDuplicateFactory, domain.ErrDuplicateKey, f.Name)
	}
	recipes, err := b.factoryRecipes(n)
	if err != nil {
		return err
	}
	upgrades, err := b.upgradeLinks(f)
	if err != nil {
		return err
	}

	b.batch.commit()
	b.model.Factories[f.Name] = f
	for _, r := range recipes {
		if _, listed := f.Recipes.Get(r.ID); listed {
			continue
		}
		f.Recipes.Set(r.ID, r)
		r.Factories = append(r.Factories, f)
	}
	if cost, ok := f.SetupCost(); ok {
		for _, key := range cost.Keys() {
			item := b.mustItem(key)
			item.UsedInFactoryCreations = append(item.UsedInFactoryCreations, f)
		}
	}
	if uf, ok := f.Variant.(*domain.UpgradeFactory); ok {
		uf.UpgradeRecipes = upgrades
		for _, r := range upgrades {
			r.Variant.(*domain.UpgradeRecipe).UpgradesTo = f
		}
	}
	return nil
}

// reportUnmatchedUpgrades logs upgrade recipes whose target factory was never
// linked. The recipes stay in the model without a target.
func (b *builder) reportUnmatchedUpgrades() {
	for target, recipes := range b.pendingUpgrades {
		if _, ok := b.model.Factories[target]; ok {
			continue
		}
		for _, r := range recipes {
			b.log.Warn(LogMsgUnmatchedUpgrade, "recipe", r.ID, "factory", target)
		}
	}
}

// mustItem returns a committed item. Item counts only hold keys of items
// resolved through the batch, so a miss is a bug in the builder.
func (b *builder) mustItem(key string) *domain.Item {
	item, ok := b.model.Items.Get(key)
	if !ok {
		panic(fmt.Sprintf("factorymod: item %q missing from index", key))
	}
	return item
}

func (b *builder) recordError(err error, msg, entity string, n *yaml.Node) {
	pe := domain.ParseError{
		Err:     err,
		Message: msg,
		Entity:  entity,
		Raw:     toValue(n),
	}
	if n != nil {
		pe.Line, pe.Column = n.Line, n.Column
	}
	b.model.ParseErrors = append(b.model.ParseErrors, pe)
	b.log.Warn(LogMsgParseError,
		"message", msg,
		"entity", entity,
		"kind", pe.Kind(),
		"line", pe.Line,
		"error", err)
}

// declNode prefers the resolved declaration but keeps the alias position
// when the declaration is an alias to nothing.
func declNode(original, resolved *yaml.Node) *yaml.Node {
	if resolved != nil {
		return resolved
	}
	return original
}

// factoryLabel names a factory declaration for error reports: its name when
// readable, else its mapping key.
func factoryLabel(key, decl *yaml.Node) string {
	if name, err := requireString(field(decl, KeyName)); err == nil {
		return name
	}
	if key != nil {
		return key.Value
	}
	return ""
}
