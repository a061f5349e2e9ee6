package factorymod

import (
	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// Model is the linked form of a FactoryMod config. It is not modified after
// Build returns and may be shared between goroutines.
type Model struct {
	// Recipes by id, e.g. "upgrade_to_adv_ore_smelter"
	Recipes map[string]*domain.Recipe
	// Factories by name, e.g. "Advanced Ore Smelter"
	Factories map[string]*domain.Factory
	// Items by material, then identity key
	Items ItemIndex

	DefaultFuelConsumeSec int

	// ParseErrors lists the declarations that were skipped, in document order
	ParseErrors []domain.ParseError
}

func newModel(defaultFuelSec int) *Model {
	return &Model{
		Recipes:               make(map[string]*domain.Recipe),
		Factories:             make(map[string]*domain.Factory),
		Items:                 make(ItemIndex),
		DefaultFuelConsumeSec: defaultFuelSec,
	}
}

// ItemForID looks up an item by its identity key.
func (m *Model) ItemForID(key string) (*domain.Item, bool) {
	return m.Items.Get(key)
}

// Recipe looks up a recipe by id.
func (m *Model) Recipe(id string) (*domain.Recipe, error) {
	r, ok := m.Recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return r, nil
}

// Factory looks up a factory by name.
func (m *Model) Factory(name string) (*domain.Factory, error) {
	f, ok := m.Factories[name]
	if !ok {
		return nil, domain.ErrFactoryNotFound
	}
	return f, nil
}

// Stats holds entity counts for summaries and metrics.
type Stats struct {
	Recipes     int `json:"recipes"`
	Factories   int `json:"factories"`
	Items       int `json:"items"`
	Materials   int `json:"materials"`
	ParseErrors int `json:"parse_errors"`
}

// Stats counts the model's entities.
func (m *Model) Stats() Stats {
	return Stats{
		Recipes:     len(m.Recipes),
		Factories:   len(m.Factories),
		Items:       m.Items.Len(),
		Materials:   len(m.Items),
		ParseErrors: len(m.ParseErrors),
	}
}

// ParseErrorsByKind counts parse errors per error kind.
func (m *Model) ParseErrorsByKind() map[string]int {
	counts := make(map[string]int)
	for _, pe := range m.ParseErrors {
		counts[pe.Kind()]++
	}
	return counts
}
