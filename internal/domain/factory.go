package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FactoryType is the `type` tag of a factory declaration
type FactoryType string

const (
	FactoryFCC        FactoryType = "FCC"
	FactoryFCCUpgrade FactoryType = "FCCUPGRADE"
)

// Icon materials used when a factory has no production output to show
const (
	IconMaterialCompactor = "chest"
	IconMaterialUnknown   = "air"
)

// Factory is one factory declaration. Its name identifies it, including in
// upgrade recipe references.
type Factory struct {
	Name    string
	Recipes *orderedmap.OrderedMap[string, *Recipe]

	Type    FactoryType
	Variant FactoryVariant
}

// FactoryVariant holds the fields that depend on the factory type.
// Implementations: *FCCFactory and *UpgradeFactory.
type FactoryVariant interface {
	isFactoryVariant()
}

// FCCFactory is built directly from its setup cost.
type FCCFactory struct {
	SetupCost *ItemCounts
}

// UpgradeFactory is reached by running an upgrade recipe in another factory.
type UpgradeFactory struct {
	// UpgradeRecipes are all UPGRADE recipes targeting this factory, in declaration order
	UpgradeRecipes []*Recipe
}

func (*FCCFactory) isFactoryVariant()     {}
func (*UpgradeFactory) isFactoryVariant() {}

// UpgradeRecipe returns the first recipe that upgrades into this factory.
func (u *UpgradeFactory) UpgradeRecipe() *Recipe {
	if len(u.UpgradeRecipes) == 0 {
		return nil
	}
	return u.UpgradeRecipes[0]
}

// NewFactory creates a factory with an empty recipe table.
func NewFactory(name string, variant FactoryVariant) *Factory {
	f := &Factory{
		Name:    name,
		Recipes: orderedmap.New[string, *Recipe](),
		Variant: variant,
	}
	switch variant.(type) {
	case *FCCFactory:
		f.Type = FactoryFCC
	case *UpgradeFactory:
		f.Type = FactoryFCCUpgrade
	}
	return f
}

// RecipeList returns the factory's recipes in declaration order.
func (f *Factory) RecipeList() []*Recipe {
	recipes := make([]*Recipe, 0, f.Recipes.Len())
	for pair := f.Recipes.Oldest(); pair != nil; pair = pair.Next() {
		recipes = append(recipes, pair.Value)
	}
	return recipes
}

// SetupCost returns the construction cost of an FCC factory.
func (f *Factory) SetupCost() (*ItemCounts, bool) {
	switch v := f.Variant.(type) {
	case *FCCFactory:
		return v.SetupCost, true
	case *UpgradeFactory:
		return nil, false
	}
	return nil, false
}

// IconMaterial picks a material to represent the factory: the first output of
// its first recipe for production factories, a chest for compactors.
func (f *Factory) IconMaterial() string {
	first := f.Recipes.Oldest()
	if first == nil {
		return IconMaterialUnknown
	}
	switch v := first.Value.Variant.(type) {
	case *ProductionRecipe:
		keys := v.Output.Keys()
		if len(keys) == 0 {
			return IconMaterialUnknown
		}
		return MaterialFromKey(keys[0])
	case *CompactRecipe:
		return IconMaterialCompactor
	case *UpgradeRecipe, *RepairRecipe, *TodoRecipe:
		return IconMaterialUnknown
	}
	return IconMaterialUnknown
}
