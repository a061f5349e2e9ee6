package factorymod

import (
	"sort"
	"strings"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// SortedRecipes returns all recipes ordered by name, then id.
func (m *Model) SortedRecipes() []*domain.Recipe {
	recipes := make([]*domain.Recipe, 0, len(m.Recipes))
	for _, r := range m.Recipes {
		recipes = append(recipes, r)
	}
	sortRecipes(recipes)
	return recipes
}

// SortedFactories returns all factories ordered by name.
func (m *Model) SortedFactories() []*domain.Factory {
	factories := make([]*domain.Factory, 0, len(m.Factories))
	for _, f := range m.Factories {
		factories = append(factories, f)
	}
	sortFactories(factories)
	return factories
}

// SortedItems returns all items ordered by identity key.
func (m *Model) SortedItems() []*domain.Item {
	items := make([]*domain.Item, 0, m.Items.Len())
	for _, bucket := range m.Items {
		for _, item := range bucket {
			items = append(items, item)
		}
	}
	sortItems(items)
	return items
}

// SearchItems returns the items whose lower-cased identity key contains every
// whitespace separated word of query. An empty query matches everything.
func (m *Model) SearchItems(query string) []*domain.Item {
	words := strings.Fields(strings.ToLower(query))
	all := m.SortedItems()
	if len(words) == 0 {
		return all
	}
	matches := all[:0:0]
	for _, item := range all {
		key := strings.ToLower(item.Key)
		if containsAll(key, words) {
			matches = append(matches, item)
		}
	}
	return matches
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

// ItemsByName returns the items of a material that carry the given custom
// name, whatever their lore. An empty name selects the unnamed items.
func (m *Model) ItemsByName(material, customName string) []*domain.Item {
	var items []*domain.Item
	for _, item := range m.Items[strings.ToLower(material)] {
		if item.CustomName == customName {
			items = append(items, item)
		}
	}
	sortItems(items)
	return items
}

// ItemUsage collects where a group of items is produced and consumed.
type ItemUsage struct {
	Items                  []*domain.Item
	MadeInRecipes          []*domain.Recipe
	UsedInRecipes          []*domain.Recipe
	UsedInFactoryCreations []*domain.Factory
}

// ItemUsage aggregates the back-references of all items returned by
// ItemsByName. Each recipe and factory is listed once, sorted by name.
func (m *Model) ItemUsage(material, customName string) (*ItemUsage, error) {
	items := m.ItemsByName(material, customName)
	if len(items) == 0 {
		return nil, domain.ErrItemNotFound
	}
	usage := &ItemUsage{Items: items}
	for _, item := range items {
		usage.MadeInRecipes = append(usage.MadeInRecipes, item.MadeInRecipes...)
		usage.UsedInRecipes = append(usage.UsedInRecipes, item.UsedInRecipes...)
		usage.UsedInFactoryCreations = append(usage.UsedInFactoryCreations, item.UsedInFactoryCreations...)
	}
	usage.MadeInRecipes = uniqueRecipes(usage.MadeInRecipes)
	usage.UsedInRecipes = uniqueRecipes(usage.UsedInRecipes)
	usage.UsedInFactoryCreations = uniqueFactories(usage.UsedInFactoryCreations)
	return usage, nil
}

// FactorySlug turns a factory name into a URL path segment.
func FactorySlug(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// FactoryBySlug looks up a factory by its FactorySlug.
func (m *Model) FactoryBySlug(slug string) (*domain.Factory, error) {
	return m.Factory(strings.ReplaceAll(slug, "_", " "))
}

// FactoryIconMaterial returns the material used as the factory's icon.
func (m *Model) FactoryIconMaterial(name string) (string, error) {
	f, err := m.Factory(name)
	if err != nil {
		return "", err
	}
	return f.IconMaterial(), nil
}

// RecipesByType counts recipes per type tag.
func (m *Model) RecipesByType() map[domain.RecipeType]int {
	counts := make(map[domain.RecipeType]int)
	for _, r := range m.Recipes {
		counts[r.Type]++
	}
	return counts
}

func uniqueRecipes(recipes []*domain.Recipe) []*domain.Recipe {
	seen := make(map[string]bool, len(recipes))
	out := recipes[:0]
	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	sortRecipes(out)
	return out
}

func uniqueFactories(factories []*domain.Factory) []*domain.Factory {
	seen := make(map[string]bool, len(factories))
	out := factories[:0]
	for _, f := range factories {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	sortFactories(out)
	return out
}

func sortRecipes(recipes []*domain.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		if recipes[i].Name != recipes[j].Name {
			return recipes[i].Name < recipes[j].Name
		}
		return recipes[i].ID < recipes[j].ID
	})
}

func sortFactories(factories []*domain.Factory) {
	sort.Slice(factories, func(i, j int) bool {
		return factories[i].Name < factories[j].Name
	})
}

func sortItems(items []*domain.Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Key < items[j].Key
	})
}
