package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ItemCount is one entry of an ItemCounts table.
type ItemCount struct {
	ItemKey string `json:"item"`
	Amount  int    `json:"amount"`
}

// ItemCounts maps item identity keys to quantities, keeping declaration order.
// Setting a key again overwrites the quantity in place.
type ItemCounts struct {
	m *orderedmap.OrderedMap[string, int]
}

// NewItemCounts returns an empty table.
func NewItemCounts() *ItemCounts {
	return &ItemCounts{m: orderedmap.New[string, int]()}
}

// Set stores the amount for an item key.
func (c *ItemCounts) Set(itemKey string, amount int) {
	c.m.Set(itemKey, amount)
}

// Get returns the amount stored for an item key.
func (c *ItemCounts) Get(itemKey string) (int, bool) {
	if c == nil {
		return 0, false
	}
	return c.m.Get(itemKey)
}

// Len returns the number of distinct items.
func (c *ItemCounts) Len() int {
	if c == nil {
		return 0
	}
	return c.m.Len()
}

// Keys returns the item keys in declaration order.
func (c *ItemCounts) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Entries returns the table as a slice in declaration order.
func (c *ItemCounts) Entries() []ItemCount {
	if c == nil {
		return nil
	}
	entries := make([]ItemCount, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, ItemCount{ItemKey: pair.Key, Amount: pair.Value})
	}
	return entries
}
