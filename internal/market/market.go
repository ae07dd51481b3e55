// Package market is the purchasing side of the stand: it composes the
// bank debit and the inventory credit into one atomic buy.
package market

import (
	"github.com/Zobiii/WurstelbudenSimulator/internal/bank"
	"github.com/Zobiii/WurstelbudenSimulator/internal/inventory"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

// TryBuy purchases quantity units of an item at its catalog buy price.
// The withdrawal and the batch credit never partially apply: when the
// item is unknown, the quantity non-positive, or the balance too low,
// nothing changes and false is returned.
func TryBuy(state *model.GameState, itemName string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	item, ok := state.Catalog[itemName]
	if !ok {
		return false
	}

	cost := model.Round2(item.BuyPrice * float64(quantity))
	if !bank.TryWithdraw(state, cost) {
		return false
	}

	inventory.AddBatch(state, itemName, quantity)
	return true
}

// PriceList returns a read-only snapshot of current buy prices.
func PriceList(state *model.GameState) map[string]float64 {
	prices := make(map[string]float64, len(state.Catalog))
	for name, item := range state.Catalog {
		prices[name] = item.BuyPrice
	}
	return prices
}
