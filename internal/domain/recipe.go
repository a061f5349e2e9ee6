package domain

// RecipeType is the `type` tag of a recipe declaration
type RecipeType string

const (
	RecipeProduction RecipeType = "PRODUCTION"
	RecipeUpgrade    RecipeType = "UPGRADE"
	RecipeRepair     RecipeType = "REPAIR"
	RecipeCompact    RecipeType = "COMPACT"
	RecipeDecompact  RecipeType = "DECOMPACT"
	// RecipeTODO marks recipe types that are recognised but not modelled yet
	RecipeTODO RecipeType = "TODO"
)

// Recipe is one entry of the configuration's `recipes` mapping.
type Recipe struct {
	// ID is the mapping key, e.g. "upgrade_to_adv_ore_smelter"
	ID   string
	Name string
	// Factories lists where this recipe can run, filled while factories are linked
	Factories []*Factory
	// RunSec is `production_time`
	RunSec int
	// FuelConsumeSec is `fuel_consumption_intervall` or the model default
	FuelConsumeSec int

	Type    RecipeType
	Variant RecipeVariant
}

// RecipeVariant holds the fields that depend on the recipe type.
// Implementations: *ProductionRecipe, *UpgradeRecipe, *RepairRecipe,
// *CompactRecipe and *TodoRecipe.
type RecipeVariant interface {
	isRecipeVariant()
}

// ProductionRecipe turns input items into output items.
type ProductionRecipe struct {
	Input  *ItemCounts
	Output *ItemCounts
}

// UpgradeRecipe turns the factory it runs in into another factory.
type UpgradeRecipe struct {
	Input *ItemCounts
	// TargetFactory is the factory name given in the declaration
	TargetFactory string
	// UpgradesTo is set together with the factory's upgrade recipe link
	UpgradesTo *Factory
}

// RepairRecipe restores factory health.
type RepairRecipe struct {
	Input        *ItemCounts
	HealthGained float64
}

// CompactRecipe covers both COMPACT and DECOMPACT recipes.
type CompactRecipe struct {
	Input       *ItemCounts
	CompactLore string
}

// TodoRecipe is a recipe type that is parsed but not modelled.
type TodoRecipe struct {
	SourceType string
}

func (*ProductionRecipe) isRecipeVariant() {}
func (*UpgradeRecipe) isRecipeVariant()    {}
func (*RepairRecipe) isRecipeVariant()     {}
func (*CompactRecipe) isRecipeVariant()    {}
func (*TodoRecipe) isRecipeVariant()       {}

// Input returns the consumed items, if the variant has any.
func (r *Recipe) Input() (*ItemCounts, bool) {
	switch v := r.Variant.(type) {
	case *ProductionRecipe:
		return v.Input, true
	case *UpgradeRecipe:
		return v.Input, true
	case *RepairRecipe:
		return v.Input, true
	case *CompactRecipe:
		return v.Input, true
	case *TodoRecipe:
		return nil, false
	}
	return nil, false
}

// Output returns the produced items, if the variant has any.
func (r *Recipe) Output() (*ItemCounts, bool) {
	switch v := r.Variant.(type) {
	case *ProductionRecipe:
		return v.Output, true
	case *UpgradeRecipe, *RepairRecipe, *CompactRecipe, *TodoRecipe:
		return nil, false
	}
	return nil, false
}

// UpgradesTo returns the target factory of an upgrade recipe.
func (r *Recipe) UpgradesTo() *Factory {
	if v, ok := r.Variant.(*UpgradeRecipe); ok {
		return v.UpgradesTo
	}
	return nil
}

// FactoryNames returns the names of the factories this recipe runs in.
func (r *Recipe) FactoryNames() []string {
	names := make([]string, 0, len(r.Factories))
	for _, f := range r.Factories {
		names = append(names, f.Name)
	}
	return names
}
