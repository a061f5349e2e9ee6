package factorymod

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// todoRecipeTypes are recipe types the plugin supports but the model does not
// describe yet. They parse into a TodoRecipe instead of failing.
var todoRecipeTypes = map[string]bool{
	"RANDOM":            true,
	"WORDBANK":          true,
	"PRINTINGPLATE":     true,
	"PRINTINGPLATEJSON": true,
	"PRINTBOOK":         true,
	"PRINTNOTE":         true,
	"HELIODOR_CREATE":   true,
	"HELIODOR_REFILL":   true,
	"HELIODOR_FINISH":   true,
}

// parseRecipe reads one recipe declaration. Items it references are staged on
// the current batch; nothing is added to the model here.
func (b *builder) parseRecipe(n *yaml.Node, id string) (*domain.Recipe, error) {
	if !isMapping(n) {
		return nil, fmt.Errorf(ErrFmtNotMapping, domain.ErrMalformedValue, describe(n))
	}

	name, err := requireString(field(n, KeyName))
	if err != nil {
		return nil, fieldError(KeyName, err)
	}
	runSec, err := parseDuration(field(n, KeyProductionTime))
	if err != nil {
		return nil, fieldError(KeyProductionTime, err)
	}
	fuelSec := b.model.DefaultFuelConsumeSec
	if fuelNode := field(n, KeyFuelInterval); !isNull(fuelNode) {
		if fuelSec, err = parseDuration(fuelNode); err != nil {
			return nil, fieldError(KeyFuelInterval, err)
		}
	}
	recipeType, err := requireString(field(n, KeyType))
	if err != nil {
		return nil, fieldError(KeyType, err)
	}

	recipe := &domain.Recipe{
		ID:             id,
		Name:           name,
		RunSec:         runSec,
		FuelConsumeSec: fuelSec,
		Type:           domain.RecipeType(recipeType),
	}
	if recipe.Variant, err = b.parseRecipeVariant(n, recipeType); err != nil {
		return nil, err
	}
	if _, ok := recipe.Variant.(*domain.TodoRecipe); ok {
		recipe.Type = domain.RecipeTODO
	}
	return recipe, nil
}

func (b *builder) parseRecipeVariant(n *yaml.Node, recipeType string) (domain.RecipeVariant, error) {
	switch domain.RecipeType(recipeType) {
	case domain.RecipeProduction:
		input, err := b.itemCountsField(n, KeyInput)
		if err != nil {
			return nil, err
		}
		output, err := b.itemCountsField(n, KeyOutput)
		if err != nil {
			return nil, err
		}
		return &domain.ProductionRecipe{Input: input, Output: output}, nil

	case domain.RecipeUpgrade:
		input, err := b.itemCountsField(n, KeyInput)
		if err != nil {
			return nil, err
		}
		target, err := requireString(field(n, KeyUpgradeFactory))
		if err != nil {
			return nil, fieldError(KeyUpgradeFactory, err)
		}
		return &domain.UpgradeRecipe{Input: input, TargetFactory: target}, nil

	case domain.RecipeRepair:
		input, err := b.itemCountsField(n, KeyInput)
		if err != nil {
			return nil, err
		}
		health, err := requireNumber(field(n, KeyHealthGained))
		if err != nil {
			return nil, fieldError(KeyHealthGained, err)
		}
		return &domain.RepairRecipe{Input: input, HealthGained: health}, nil

	case domain.RecipeCompact, domain.RecipeDecompact:
		input, err := b.itemCountsField(n, KeyInput)
		if err != nil {
			return nil, err
		}
		lore, err := requireString(field(n, KeyCompactLore))
		if err != nil {
			return nil, fieldError(KeyCompactLore, err)
		}
		return &domain.CompactRecipe{Input: input, CompactLore: lore}, nil
	}

	if todoRecipeTypes[recipeType] {
		return &domain.TodoRecipe{SourceType: recipeType}, nil
	}
	return nil, fieldError(KeyType, fmt.Errorf(ErrFmtUnknownRecipeType, domain.ErrUnknownVariant, recipeType))
}

func (b *builder) itemCountsField(n *yaml.Node, key string) (*domain.ItemCounts, error) {
	counts, err := b.batch.parseItemCounts(field(n, key))
	if err != nil {
		return nil, fieldError(key, err)
	}
	return counts, nil
}
