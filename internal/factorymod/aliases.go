package factorymod

// itemTemplate is the identity of an aliased item.
type itemTemplate struct {
	Material   string
	CustomName string
	Lore       []string
}

var (
	loreMeteoricIron = []string{
		"A buried fragment from another world",
		"Used for its unique magical properties",
	}
	loreMeteoricPickaxe = []string{
		"Instantly breaks deepslate and stone,",
		"and otherwise equivalent to diamond",
	}
	loreMeteoricAxe = []string{
		"Deals 2.5x reinforcement damage on wood products",
		"Deals 2x reinforcement damage on iron and copper products",
	}
	loreMeteoricSword = []string{
		"Deals 1 second of Slowness I on hit",
		"Instantly breaks cobwebs",
	}
)

// customItems maps `custom-key` values to the items the server plugin defines
// outside of the config. Keep in sync with the plugin's custom item registry.
var customItems = map[string]itemTemplate{
	"backpack": {
		Material:   "ender_chest",
		CustomName: "Backpack",
		Lore: []string{
			"Can be placed and used like an ender chest,",
			"but drops its items when you die",
			"Cannot contain certain PvP items",
		},
	},
	"meteoric_iron_nugget": {Material: "iron_nugget", CustomName: "Meteoric Iron Nugget", Lore: loreMeteoricIron},
	"meteoric_iron_ingot":  {Material: "heavy_weighted_pressure_plate", CustomName: "Meteoric Iron Ingot", Lore: loreMeteoricIron},
	"factory_upgrade": {
		Material:   "redstone_torch",
		CustomName: "Factory Upgrade",
		Lore: []string{
			"Factories can be upgraded with one of two paths",
			"Charcoal consumption: 1/4 -> 1/8 -> 1/12 -> 1/16",
			"Factory speed: x2 -> x3 -> x4 -> x5",
		},
	},
	"meteoric_iron_helmet":          {Material: "iron_helmet", CustomName: "Meteoric Iron Helmet"},
	"meteoric_iron_chestplate":      {Material: "iron_chestplate", CustomName: "Meteoric Iron Chestplate"},
	"meteoric_iron_leggings":        {Material: "iron_leggings", CustomName: "Meteoric Iron Leggings"},
	"meteoric_iron_boots":           {Material: "iron_boots", CustomName: "Meteoric Iron Boots"},
	"meteoric_iron_pickaxe_silk":    {Material: "iron_pickaxe", CustomName: "Meteoric Iron Pickaxe", Lore: loreMeteoricPickaxe},
	"meteoric_iron_pickaxe":         {Material: "iron_pickaxe", CustomName: "Meteoric Iron Pickaxe", Lore: loreMeteoricPickaxe},
	"meteoric_iron_axe_silk":        {Material: "iron_axe", CustomName: "Meteoric Iron Axe", Lore: loreMeteoricAxe},
	"meteoric_iron_axe":             {Material: "iron_axe", CustomName: "Meteoric Iron Axe", Lore: loreMeteoricAxe},
	"meteoric_iron_sword_knockback": {Material: "iron_sword", CustomName: "Meteoric Iron Sword", Lore: loreMeteoricSword},
	// the plugin registers the knockback sword under both keys
	"meteoric_iron_sword_knockback1": {Material: "iron_sword", CustomName: "Meteoric Iron Sword", Lore: loreMeteoricSword},
	"meteoric_iron_sword":            {Material: "iron_sword", CustomName: "Meteoric Iron Sword", Lore: loreMeteoricSword},
}

// lookupAlias returns the template registered for a custom item key.
func lookupAlias(key string) (itemTemplate, bool) {
	t, ok := customItems[key]
	if !ok {
		return itemTemplate{}, false
	}
	// callers keep the lore slice on the item; hand out a copy
	t.Lore = append([]string(nil), t.Lore...)
	return t, true
}

// AliasKeys returns the registered custom item keys.
func AliasKeys() []string {
	keys := make([]string, 0, len(customItems))
	for k := range customItems {
		keys = append(keys, k)
	}
	return keys
}
