package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ItemKeySeparator joins the identity fields of an item. The parser rejects
// materials, display names and lore lines that contain it.
const ItemKeySeparator = "\n"

// Compaction constants used by the compactor factories
const (
	CompactedLore      = "Compacted Item"
	CompactedStackSize = 64
)

// Item is one logical item referenced by the configuration. Two declarations
// with the same material, custom name and lore resolve to the same *Item.
type Item struct {
	Key        string   `json:"id"`
	Material   string   `json:"material"`
	CustomName string   `json:"custom_name,omitempty"`
	Lore       []string `json:"lore,omitempty"`

	// Back-references, appended while the model is assembled
	MadeInRecipes          []*Recipe  `json:"-"`
	UsedInRecipes          []*Recipe  `json:"-"`
	UsedInFactoryCreations []*Factory `json:"-"`
}

// NewItem creates an item and derives its identity key.
func NewItem(material, customName string, lore []string) *Item {
	return &Item{
		Key:        ItemKey(material, customName, lore),
		Material:   material,
		CustomName: customName,
		Lore:       lore,
	}
}

// ItemKey derives the identity key for the given identity fields.
// An item with neither a name nor lore is keyed by its bare material. Every
// other field is kept, empty ones included, so distinct identities never share
// a key.
func ItemKey(material, customName string, lore []string) string {
	if customName == "" && len(lore) == 0 {
		return material
	}
	parts := make([]string, 0, 2+len(lore))
	parts = append(parts, material, customName)
	parts = append(parts, lore...)
	return strings.Join(parts, ItemKeySeparator)
}

// MaterialFromKey returns the material prefix of an identity key.
func MaterialFromKey(key string) string {
	material, _, _ := strings.Cut(key, ItemKeySeparator)
	return material
}

// IsCompacted reports whether the item is the compacted form of a stack.
func (i *Item) IsCompacted() bool {
	return len(i.Lore) == 1 && i.Lore[0] == CompactedLore
}

// DecompactedCount converts a count of this item to the number of plain items.
// TODO: tools and potions stack to less than 64.
func (i *Item) DecompactedCount(count int) int {
	if i.IsCompacted() {
		return count * CompactedStackSize
	}
	return count
}

// DisplayName returns the custom name, or a title-cased material name.
func (i *Item) DisplayName() string {
	if i.CustomName != "" {
		return i.CustomName
	}
	return MaterialDisplayName(i.Material)
}

// MaterialDisplayName turns "iron_ingot" into "Iron Ingot".
func MaterialDisplayName(material string) string {
	words := strings.ReplaceAll(material, "_", " ")
	return cases.Title(language.English).String(words)
}
