package handler

import (
	"time"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
	"github.com/osse101/FactoryModExplorer_Go/internal/factorymod"
)

// Response shapes. Entities refer to each other by id or name, never by
// embedding, so the model's back-links don't recurse.

type ItemDTO struct {
	ID          string   `json:"id"`
	Material    string   `json:"material"`
	CustomName  string   `json:"custom_name,omitempty"`
	Lore        []string `json:"lore,omitempty"`
	DisplayName string   `json:"display_name"`
	Compacted   bool     `json:"compacted,omitempty"`
}

type ItemCountDTO struct {
	Item   ItemDTO `json:"item"`
	Amount int     `json:"amount"`
}

type RecipeRefDTO struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Type domain.RecipeType `json:"type"`
}

type FactoryRefDTO struct {
	Name string             `json:"name"`
	Slug string             `json:"slug"`
	Type domain.FactoryType `json:"type"`
}

type RecipeDTO struct {
	RecipeRefDTO
	RunSec         int             `json:"production_time_sec"`
	FuelConsumeSec int             `json:"fuel_consumption_sec"`
	Factories      []FactoryRefDTO `json:"factories"`

	Input         []ItemCountDTO `json:"input,omitempty"`
	Output        []ItemCountDTO `json:"output,omitempty"`
	TargetFactory string         `json:"target_factory,omitempty"`
	UpgradesTo    *FactoryRefDTO `json:"upgrades_to,omitempty"`
	HealthGained  float64        `json:"health_gained,omitempty"`
	CompactLore   string         `json:"compact_lore,omitempty"`
	SourceType    string         `json:"source_type,omitempty"`
}

type FactorySummaryDTO struct {
	FactoryRefDTO
	IconMaterial string `json:"icon_material"`
	RecipeCount  int    `json:"recipe_count"`
}

type FactoryDTO struct {
	FactorySummaryDTO
	Recipes        []RecipeRefDTO `json:"recipes"`
	SetupCost      []ItemCountDTO `json:"setup_cost,omitempty"`
	UpgradeRecipes []RecipeRefDTO `json:"upgrade_recipes,omitempty"`
}

type ItemUsageDTO struct {
	Items                  []ItemDTO       `json:"items"`
	MadeInRecipes          []RecipeRefDTO  `json:"made_in_recipes"`
	UsedInRecipes          []RecipeRefDTO  `json:"used_in_recipes"`
	UsedInFactoryCreations []FactoryRefDTO `json:"used_in_factory_creations"`
}

type ParseErrorDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Entity  string `json:"entity,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Raw     any    `json:"raw,omitempty"`
}

type SummaryDTO struct {
	Location              string                    `json:"location"`
	Digest                string                    `json:"digest"`
	FetchedAt             time.Time                 `json:"fetched_at"`
	BuiltAt               time.Time                 `json:"built_at"`
	BuildDurationMs       int64                     `json:"build_duration_ms"`
	DefaultFuelConsumeSec int                       `json:"default_fuel_consumption_sec"`
	Stats                 factorymod.Stats          `json:"stats"`
	RecipesByType         map[domain.RecipeType]int `json:"recipes_by_type"`
	ParseErrorsByKind     map[string]int            `json:"parse_errors_by_kind"`
}

func newItemDTO(item *domain.Item) ItemDTO {
	return ItemDTO{
		ID:          item.Key,
		Material:    item.Material,
		CustomName:  item.CustomName,
		Lore:        item.Lore,
		DisplayName: item.DisplayName(),
		Compacted:   item.IsCompacted(),
	}
}

func newItemDTOs(items []*domain.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, newItemDTO(item))
	}
	return dtos
}

func newItemCountDTOs(m *factorymod.Model, counts *domain.ItemCounts) []ItemCountDTO {
	entries := counts.Entries()
	if len(entries) == 0 {
		return nil
	}
	dtos := make([]ItemCountDTO, 0, len(entries))
	for _, e := range entries {
		item, ok := m.ItemForID(e.ItemKey)
		if !ok {
			// Counts only ever hold indexed keys; keep the raw key if that breaks
			item = &domain.Item{Key: e.ItemKey, Material: domain.MaterialFromKey(e.ItemKey)}
		}
		dtos = append(dtos, ItemCountDTO{Item: newItemDTO(item), Amount: e.Amount})
	}
	return dtos
}

func newRecipeRef(r *domain.Recipe) RecipeRefDTO {
	return RecipeRefDTO{ID: r.ID, Name: r.Name, Type: r.Type}
}

func newRecipeRefs(recipes []*domain.Recipe) []RecipeRefDTO {
	refs := make([]RecipeRefDTO, 0, len(recipes))
	for _, r := range recipes {
		refs = append(refs, newRecipeRef(r))
	}
	return refs
}

func newFactoryRef(f *domain.Factory) FactoryRefDTO {
	return FactoryRefDTO{Name: f.Name, Slug: factorymod.FactorySlug(f.Name), Type: f.Type}
}

func newFactoryRefs(factories []*domain.Factory) []FactoryRefDTO {
	refs := make([]FactoryRefDTO, 0, len(factories))
	for _, f := range factories {
		refs = append(refs, newFactoryRef(f))
	}
	return refs
}

func newRecipeDTO(m *factorymod.Model, r *domain.Recipe) RecipeDTO {
	dto := RecipeDTO{
		RecipeRefDTO:   newRecipeRef(r),
		RunSec:         r.RunSec,
		FuelConsumeSec: r.FuelConsumeSec,
		Factories:      newFactoryRefs(r.Factories),
	}
	if input, ok := r.Input(); ok {
		dto.Input = newItemCountDTOs(m, input)
	}
	if output, ok := r.Output(); ok {
		dto.Output = newItemCountDTOs(m, output)
	}

	switch v := r.Variant.(type) {
	case *domain.UpgradeRecipe:
		dto.TargetFactory = v.TargetFactory
		if v.UpgradesTo != nil {
			ref := newFactoryRef(v.UpgradesTo)
			dto.UpgradesTo = &ref
		}
	case *domain.RepairRecipe:
		dto.HealthGained = v.HealthGained
	case *domain.CompactRecipe:
		dto.CompactLore = v.CompactLore
	case *domain.TodoRecipe:
		dto.SourceType = v.SourceType
	case *domain.ProductionRecipe:
	}
	return dto
}

func newFactorySummary(f *domain.Factory) FactorySummaryDTO {
	return FactorySummaryDTO{
		FactoryRefDTO: newFactoryRef(f),
		IconMaterial:  f.IconMaterial(),
		RecipeCount:   f.Recipes.Len(),
	}
}

func newFactoryDTO(m *factorymod.Model, f *domain.Factory) FactoryDTO {
	dto := FactoryDTO{
		FactorySummaryDTO: newFactorySummary(f),
		Recipes:           newRecipeRefs(f.RecipeList()),
	}
	switch v := f.Variant.(type) {
	case *domain.FCCFactory:
		dto.SetupCost = newItemCountDTOs(m, v.SetupCost)
	case *domain.UpgradeFactory:
		dto.UpgradeRecipes = newRecipeRefs(v.UpgradeRecipes)
	}
	return dto
}

func newItemUsageDTO(u *factorymod.ItemUsage) ItemUsageDTO {
	return ItemUsageDTO{
		Items:                  newItemDTOs(u.Items),
		MadeInRecipes:          newRecipeRefs(u.MadeInRecipes),
		UsedInRecipes:          newRecipeRefs(u.UsedInRecipes),
		UsedInFactoryCreations: newFactoryRefs(u.UsedInFactoryCreations),
	}
}

func newParseErrorDTO(pe domain.ParseError) ParseErrorDTO {
	dto := ParseErrorDTO{
		Kind:    pe.Kind(),
		Message: pe.Message,
		Entity:  pe.Entity,
		Line:    pe.Line,
		Column:  pe.Column,
		Raw:     pe.Raw,
	}
	if pe.Err != nil {
		dto.Error = pe.Err.Error()
	}
	return dto
}

func newSummaryDTO(snap *catalog.Snapshot) SummaryDTO {
	m := snap.Model
	return SummaryDTO{
		Location:              snap.Location,
		Digest:                snap.Digest,
		FetchedAt:             snap.FetchedAt,
		BuiltAt:               snap.BuiltAt,
		BuildDurationMs:       snap.BuildDuration.Milliseconds(),
		DefaultFuelConsumeSec: m.DefaultFuelConsumeSec,
		Stats:                 m.Stats(),
		RecipesByType:         m.RecipesByType(),
		ParseErrorsByKind:     m.ParseErrorsByKind(),
	}
}
