package factorymod

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

// ItemIndex stores items by material, then by identity key.
type ItemIndex map[string]map[string]*domain.Item

// Get returns the item stored under an identity key.
func (idx ItemIndex) Get(key string) (*domain.Item, bool) {
	item, ok := idx[domain.MaterialFromKey(key)][key]
	return item, ok
}

// put inserts an item unless one with the same key is already stored, and
// returns the stored instance.
func (idx ItemIndex) put(item *domain.Item) *domain.Item {
	bucket, ok := idx[item.Material]
	if !ok {
		bucket = make(map[string]*domain.Item)
		idx[item.Material] = bucket
	}
	if existing, ok := bucket[item.Key]; ok {
		return existing
	}
	bucket[item.Key] = item
	return item
}

// Len returns the number of items across all materials.
func (idx ItemIndex) Len() int {
	n := 0
	for _, bucket := range idx {
		n += len(bucket)
	}
	return n
}

// itemBatch holds the items first seen while parsing one declaration. They
// become visible in the index only when the declaration is committed.
type itemBatch struct {
	index  ItemIndex
	staged ItemIndex
}

func newItemBatch(index ItemIndex) *itemBatch {
	return &itemBatch{index: index, staged: make(ItemIndex)}
}

// getOrCreate returns the committed or staged item with the given identity,
// staging a new one when neither exists.
func (b *itemBatch) getOrCreate(material, customName string, lore []string) *domain.Item {
	key := domain.ItemKey(material, customName, lore)
	if item, ok := b.index.Get(key); ok {
		return item
	}
	return b.staged.put(domain.NewItem(material, customName, lore))
}

// commit moves the staged items into the index.
func (b *itemBatch) commit() int {
	n := 0
	for _, bucket := range b.staged {
		for _, item := range bucket {
			if b.index.put(item) == item {
				n++
			}
		}
	}
	b.staged = make(ItemIndex)
	return n
}

// resolveItem turns an item declaration into the shared *Item for its identity.
func (b *itemBatch) resolveItem(n *yaml.Node) (*domain.Item, error) {
	if !isMapping(n) {
		return nil, fmt.Errorf(ErrFmtInvalidItem, domain.ErrMalformedValue, describe(n))
	}

	if aliasNode := field(n, KeyCustomItem); !isNull(aliasNode) {
		alias, err := requireString(aliasNode)
		if err != nil {
			return nil, fieldError(KeyCustomItem, err)
		}
		t, ok := lookupAlias(alias)
		if !ok {
			return nil, fmt.Errorf(ErrFmtUnknownAlias, domain.ErrUnknownAlias, alias)
		}
		return b.getOrCreate(t.Material, t.CustomName, t.Lore), nil
	}

	material, err := requireString(field(n, KeyMaterial))
	if err != nil {
		return nil, fieldError(KeyMaterial, err)
	}
	material = strings.ToLower(strings.TrimSpace(material))
	if material == "" {
		return nil, fieldError(KeyMaterial, fmt.Errorf(ErrFmtEmptyMaterial, domain.ErrMalformedValue))
	}
	if err := checkSingleLine(material); err != nil {
		return nil, fieldError(KeyMaterial, err)
	}

	customName, lore, err := parseItemMeta(field(n, KeyMeta))
	if err != nil {
		return nil, fieldError(KeyMeta, err)
	}
	return b.getOrCreate(material, customName, lore), nil
}

// parseItemMeta reads the optional display name and lore of an item.
func parseItemMeta(meta *yaml.Node) (string, []string, error) {
	if isNull(meta) {
		return "", nil, nil
	}
	if !isMapping(meta) {
		return "", nil, fmt.Errorf(ErrFmtNotMapping, domain.ErrMalformedValue, describe(meta))
	}
	customName, err := optionalString(field(meta, KeyDisplayName))
	if err != nil {
		return "", nil, fieldError(KeyDisplayName, err)
	}
	if err := checkSingleLine(customName); err != nil {
		return "", nil, fieldError(KeyDisplayName, err)
	}

	loreNode := field(meta, KeyLore)
	if isNull(loreNode) {
		return customName, nil, nil
	}
	if !isSequence(loreNode) {
		return "", nil, fieldError(KeyLore, fmt.Errorf(ErrFmtNotList, domain.ErrMalformedValue, describe(loreNode)))
	}
	var lore []string
	for i, line := range elements(loreNode) {
		text, err := requireString(line)
		if err != nil {
			return "", nil, fieldError(KeyLore, fmt.Errorf(ErrFmtInvalidLore, domain.ErrMalformedValue, i, describe(line)))
		}
		if err := checkSingleLine(text); err != nil {
			return "", nil, fieldError(KeyLore, err)
		}
		lore = append(lore, text)
	}
	return customName, lore, nil
}

// checkSingleLine rejects identity fields that would be ambiguous inside an
// item key.
func checkSingleLine(s string) error {
	if strings.Contains(s, domain.ItemKeySeparator) {
		return fmt.Errorf(ErrFmtLineBreak, domain.ErrMalformedValue, s)
	}
	return nil
}
