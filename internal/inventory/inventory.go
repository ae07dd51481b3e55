// Package inventory manages perishable stock as batches. A batch is a
// cohort of identical stock sharing one expiry day; batches are never
// merged so distinct expiry cohorts stay visible.
package inventory

import (
	"sort"

	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

// Quantity returns the total live stock for an item across all
// batches, 0 when none exist.
func Quantity(state *model.GameState, itemName string) int {
	total := 0
	for _, b := range state.InventoryBatches {
		if b.ItemName == itemName {
			total += b.Quantity
		}
	}
	return total
}

// AddBatch appends a new batch for a cataloged item. The expiry day is
// the current day plus the item's shelf life; items without a shelf
// life get the NeverExpires sentinel. Unknown items and non-positive
// quantities are a defensive no-op (the market checks first).
func AddBatch(state *model.GameState, itemName string, quantity int) {
	if quantity <= 0 {
		return
	}
	item, ok := state.Catalog[itemName]
	if !ok {
		return
	}

	expiry := model.NeverExpires
	if item.ShelfLifeDays > 0 {
		expiry = state.Day + item.ShelfLifeDays
	}

	state.InventoryBatches = append(state.InventoryBatches, model.InventoryBatch{
		ItemName:  itemName,
		Quantity:  quantity,
		ExpiryDay: expiry,
	})
}

// Consume removes up to quantity units of an item, always draining the
// soonest-to-expire batch first. Batches that reach zero are pruned.
// Returns how many units were actually removed.
func Consume(state *model.GameState, itemName string, quantity int) int {
	if quantity <= 0 {
		return 0
	}

	// Indexes of this item's batches, oldest-expiring first.
	idx := make([]int, 0, 4)
	for i, b := range state.InventoryBatches {
		if b.ItemName == itemName {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return state.InventoryBatches[idx[a]].ExpiryDay < state.InventoryBatches[idx[b]].ExpiryDay
	})

	consumed := 0
	for _, i := range idx {
		if consumed >= quantity {
			break
		}
		take := quantity - consumed
		if take > state.InventoryBatches[i].Quantity {
			take = state.InventoryBatches[i].Quantity
		}
		state.InventoryBatches[i].Quantity -= take
		consumed += take
	}

	pruneEmpty(state)
	return consumed
}

// SweepExpired removes every batch whose expiry day has passed and
// reports the lost quantity per item. Idempotent: a second sweep on
// the same day finds nothing.
func SweepExpired(state *model.GameState, currentDay int) map[string]int {
	lost := map[string]int{}
	kept := state.InventoryBatches[:0]
	for _, b := range state.InventoryBatches {
		if b.Expired(currentDay) {
			lost[b.ItemName] += b.Quantity
			continue
		}
		kept = append(kept, b)
	}
	state.InventoryBatches = kept
	return lost
}

func pruneEmpty(state *model.GameState) {
	kept := state.InventoryBatches[:0]
	for _, b := range state.InventoryBatches {
		if b.Quantity > 0 {
			kept = append(kept, b)
		}
	}
	state.InventoryBatches = kept
}
