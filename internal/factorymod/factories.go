package factorymod

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// parseFactory reads the type-dependent part of a factory declaration. The
// recipe table and upgrade links are wired by the assembler.
func (b *builder) parseFactory(n *yaml.Node) (*domain.Factory, error) {
	if !isMapping(n) {
		return nil, fmt.Errorf(ErrFmtNotMapping, domain.ErrMalformedValue, describe(n))
	}
	factoryType, err := requireString(field(n, KeyType))
	if err != nil {
		return nil, fieldError(KeyType, err)
	}
	name, err := requireString(field(n, KeyName))
	if err != nil {
		return nil, fieldError(KeyName, err)
	}

	switch domain.FactoryType(factoryType) {
	case domain.FactoryFCC:
		setupCost, err := b.batch.parseItemCounts(field(n, KeySetupCost))
		if err != nil {
			return nil, fieldError(KeySetupCost, err)
		}
		return domain.NewFactory(name, &domain.FCCFactory{SetupCost: setupCost}), nil
	case domain.FactoryFCCUpgrade:
		return domain.NewFactory(name, &domain.UpgradeFactory{}), nil
	}
	return nil, fieldError(KeyType, fmt.Errorf(ErrFmtUnknownFactoryType, domain.ErrUnknownVariant, factoryType))
}

// factoryRecipes resolves the recipe ids listed by a factory declaration.
func (b *builder) factoryRecipes(n *yaml.Node) ([]*domain.Recipe, error) {
	list := field(n, KeyFactoryRecipes)
	if isNull(list) {
		return nil, nil
	}
	if !isSequence(list) {
		return nil, fieldError(KeyFactoryRecipes, fmt.Errorf(ErrFmtNotList, domain.ErrMalformedValue, describe(list)))
	}
	var recipes []*domain.Recipe
	for _, idNode := range elements(list) {
		id, err := requireString(idNode)
		if err != nil {
			return nil, fieldError(KeyFactoryRecipes, err)
		}
		recipe, ok := b.model.Recipes[id]
		if !ok {
			return nil, fieldError(KeyFactoryRecipes, fmt.Errorf(ErrFmtNoSuchRecipe, domain.ErrDanglingReference, id))
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// upgradeLinks checks the factory against the pending upgrade table and
// returns the upgrade recipes to pair with it.
func (b *builder) upgradeLinks(f *domain.Factory) ([]*domain.Recipe, error) {
	pending := b.pendingUpgrades[f.Name]
	_, isUpgrade := f.Variant.(*domain.UpgradeFactory)
	switch {
	case len(pending) > 0 && !isUpgrade:
		return nil, fmt.Errorf(ErrFmtCannotUpgradeTo, domain.ErrTypeMismatch, f.Type)
	case len(pending) == 0 && isUpgrade:
		return nil, fmt.Errorf(ErrFmtNoUpgradeRecipe, domain.ErrMissingUpgradeRecipe, f.Name)
	}
	return pending, nil
}
