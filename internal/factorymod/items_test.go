package factorymod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

func TestResolveItem_SameIdentitySameInstance(t *testing.T) {
	index := make(ItemIndex)
	batch := newItemBatch(index)

	a, err := batch.resolveItem(node(t, `{type: IRON_INGOT, meta: {display-name: Steel, lore: [Hard]}}`))
	require.NoError(t, err)
	b, err := batch.resolveItem(node(t, `{type: iron_ingot, amount: 3, meta: {display-name: Steel, lore: [Hard]}}`))
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, "iron_ingot", a.Material)

	batch.commit()
	c, err := newItemBatch(index).resolveItem(node(t, `{type: iron_ingot, meta: {display-name: Steel, lore: [Hard]}}`))
	require.NoError(t, err)
	assert.Same(t, a, c, "committed items are shared with later declarations")
}

func TestResolveItem_DistinctIdentities(t *testing.T) {
	batch := newItemBatch(make(ItemIndex))
	decls := []string{
		`{type: stone}`,
		`{type: stone, meta: {display-name: Marble}}`,
		`{type: stone, meta: {lore: [Marble]}}`,
		`{type: stone, meta: {display-name: Marble, lore: [Polished]}}`,
		`{type: stone, meta: {display-name: Marble, lore: [Polished, Smooth]}}`,
		`{type: stone, meta: {lore: [a]}}`,
		`{type: stone, meta: {lore: [a, ""]}}`,
		`{type: stone, meta: {lore: [""]}}`,
		`{type: stone, meta: {display-name: a}}`,
		`{type: stone, meta: {display-name: a, lore: [""]}}`,
	}

	seen := make(map[*domain.Item]string)
	keys := make(map[string]bool)
	for _, decl := range decls {
		item, err := batch.resolveItem(node(t, decl))
		require.NoError(t, err)
		if prev, ok := seen[item]; ok {
			t.Fatalf("%s and %s resolved to the same item", prev, decl)
		}
		seen[item] = decl
		keys[item.Key] = true
		assert.Equal(t, "stone", item.Material)
	}
	assert.Len(t, keys, len(decls))
}

func TestResolveItem_KeyRoundTrip(t *testing.T) {
	batch := newItemBatch(make(ItemIndex))
	decls := []string{
		`{type: stone}`,
		`{type: stone, meta: {display-name: Marble}}`,
		`{type: stone, meta: {lore: [a, b]}}`,
		`{custom-key: backpack}`,
	}
	for _, decl := range decls {
		item, err := batch.resolveItem(node(t, decl))
		require.NoError(t, err)
		assert.Equal(t, item.Key, domain.ItemKey(item.Material, item.CustomName, item.Lore), decl)
		assert.Equal(t, item.Material, domain.MaterialFromKey(item.Key), decl)
	}
}

func TestResolveItem_Alias(t *testing.T) {
	batch := newItemBatch(make(ItemIndex))

	alias, err := batch.resolveItem(node(t, `{custom-key: factory_upgrade}`))
	require.NoError(t, err)
	assert.Equal(t, "redstone_torch", alias.Material)
	assert.Equal(t, "Factory Upgrade", alias.CustomName)
	assert.Len(t, alias.Lore, 3)

	plain, err := batch.resolveItem(node(t, `
type: redstone_torch
meta:
  display-name: Factory Upgrade
  lore:
    - Factories can be upgraded with one of two paths
    - "Charcoal consumption: 1/4 -> 1/8 -> 1/12 -> 1/16"
    - "Factory speed: x2 -> x3 -> x4 -> x5"
`))
	require.NoError(t, err)
	assert.Same(t, alias, plain)

	again, err := batch.resolveItem(node(t, `{custom-key: factory_upgrade, type: ignored}`))
	require.NoError(t, err)
	assert.Same(t, alias, again)
}

func TestResolveItem_AliasesShareIdentity(t *testing.T) {
	batch := newItemBatch(make(ItemIndex))

	a, err := batch.resolveItem(node(t, `{custom-key: meteoric_iron_sword}`))
	require.NoError(t, err)
	b, err := batch.resolveItem(node(t, `{custom-key: meteoric_iron_sword_knockback1}`))
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestResolveItem_AliasTemplateIsNotShared(t *testing.T) {
	batch := newItemBatch(make(ItemIndex))
	item, err := batch.resolveItem(node(t, `{custom-key: meteoric_iron_nugget}`))
	require.NoError(t, err)

	item.Lore[0] = "changed"

	tmpl, ok := lookupAlias("meteoric_iron_nugget")
	require.True(t, ok)
	assert.Equal(t, "A buried fragment from another world", tmpl.Lore[0])
}

func TestResolveItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		decl    string
		wantErr error
		msg     string
	}{
		{"scalar", `stone`, domain.ErrMalformedValue, "invalid item"},
		{"list", `[stone]`, domain.ErrMalformedValue, "invalid item"},
		{"unknown alias", `{custom-key: flux_capacitor}`, domain.ErrUnknownAlias, "flux_capacitor"},
		{"alias not a string", `{custom-key: 12}`, domain.ErrMalformedValue, KeyCustomItem},
		{"missing type", `{amount: 2}`, domain.ErrMalformedValue, KeyMaterial},
		{"numeric type", `{type: 5}`, domain.ErrMalformedValue, KeyMaterial},
		{"meta not a mapping", `{type: stone, meta: shiny}`, domain.ErrMalformedValue, KeyMeta},
		{"display name not a string", `{type: stone, meta: {display-name: [a]}}`, domain.ErrMalformedValue, KeyDisplayName},
		{"lore not a list", `{type: stone, meta: {lore: single}}`, domain.ErrMalformedValue, KeyLore},
		{"lore line not a string", `{type: stone, meta: {lore: [ok, 3]}}`, domain.ErrMalformedValue, "lore line 1"},
		{"empty type", `{type: ""}`, domain.ErrMalformedValue, "empty material"},
		{"blank type", `{type: "   "}`, domain.ErrMalformedValue, "empty material"},
		{"line break in type", `{type: "stone\nMarble"}`, domain.ErrMalformedValue, "line break"},
		{"line break in display name", `{type: stone, meta: {display-name: "a\nb"}}`, domain.ErrMalformedValue, KeyDisplayName},
		{"line break in lore", `{type: stone, meta: {lore: ["a\nb"]}}`, domain.ErrMalformedValue, KeyLore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newItemBatch(make(ItemIndex)).resolveItem(node(t, tt.decl))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestItemBatch_StagesUntilCommit(t *testing.T) {
	index := make(ItemIndex)
	batch := newItemBatch(index)

	item, err := batch.resolveItem(node(t, `{type: stone}`))
	require.NoError(t, err)
	_, ok := index.Get(item.Key)
	assert.False(t, ok, "staged items stay out of the index")

	assert.Equal(t, 1, batch.commit())
	got, ok := index.Get(item.Key)
	require.True(t, ok)
	assert.Same(t, item, got)

	dropped := newItemBatch(index)
	_, err = dropped.resolveItem(node(t, `{type: dirt}`))
	require.NoError(t, err)
	assert.Equal(t, 1, index.Len(), "an uncommitted batch adds nothing")
}

func TestParseItemCounts(t *testing.T) {
	t.Run("absent and null yield an empty table", func(t *testing.T) {
		batch := newItemBatch(make(ItemIndex))

		counts, err := batch.parseItemCounts(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, counts.Len())

		counts, err = batch.parseItemCounts(node(t, `null`))
		require.NoError(t, err)
		assert.Equal(t, 0, counts.Len())
	})

	t.Run("amount defaults to one and order is kept", func(t *testing.T) {
		counts, err := newItemBatch(make(ItemIndex)).parseItemCounts(node(t, `
b: {type: stone, amount: 4}
a: {type: dirt}
`))
		require.NoError(t, err)
		assert.Equal(t, []domain.ItemCount{
			{ItemKey: "stone", Amount: 4},
			{ItemKey: "dirt", Amount: 1},
		}, counts.Entries())
	})

	t.Run("same item twice keeps the last amount", func(t *testing.T) {
		counts, err := newItemBatch(make(ItemIndex)).parseItemCounts(node(t, `
first: {type: iron_ingot, amount: 3}
other: {type: stone}
second: {type: IRON_INGOT, amount: 5}
`))
		require.NoError(t, err)
		amount, ok := counts.Get("iron_ingot")
		require.True(t, ok)
		assert.Equal(t, 5, amount)
		assert.Equal(t, []string{"iron_ingot", "stone"}, counts.Keys())
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := newItemBatch(make(ItemIndex)).parseItemCounts(node(t, `[stone]`))
		assert.ErrorIs(t, err, domain.ErrMalformedValue)
		assert.Contains(t, err.Error(), "invalid items")
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		_, err := newItemBatch(make(ItemIndex)).parseItemCounts(node(t, `ore: {type: stone, amount: many}`))
		assert.ErrorIs(t, err, domain.ErrMalformedValue)
		assert.Contains(t, err.Error(), "ore: amount")
	})

	t.Run("bad entry names its label", func(t *testing.T) {
		_, err := newItemBatch(make(ItemIndex)).parseItemCounts(node(t, `gem: {custom-key: nope}`))
		assert.ErrorIs(t, err, domain.ErrUnknownAlias)
		assert.Contains(t, err.Error(), "gem: ")
	})
}
