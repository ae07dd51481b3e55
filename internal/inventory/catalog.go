package inventory

import "github.com/Zobiii/WurstelbudenSimulator/internal/model"

// starterCatalog is the fixed stand assortment seeded into new or
// loaded states. Condiments carry no sell price; they never enter the
// daily demand loop.
var starterCatalog = []model.Item{
	{Name: "Würstel", SellPrice: 3.50, BuyPrice: 1.20, ShelfLifeDays: 3},
	{Name: "Semmeln", SellPrice: 0.80, BuyPrice: 0.25, ShelfLifeDays: 2},
	{Name: "Getränke", SellPrice: 2.80, BuyPrice: 0.90},
	{Name: "Ketchup", BuyPrice: 0.05},
	{Name: "Senf", BuyPrice: 0.05},
}

// EnsureCatalogDefaults seeds missing starter items into the catalog.
// Additive and idempotent; existing entries are never overwritten, so
// a loaded save keeps its own prices.
func EnsureCatalogDefaults(state *model.GameState) {
	if state.Catalog == nil {
		state.Catalog = map[string]model.Item{}
	}
	for _, item := range starterCatalog {
		if _, ok := state.Catalog[item.Name]; !ok {
			state.Catalog[item.Name] = item
		}
	}
}
