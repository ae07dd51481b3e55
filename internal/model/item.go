package model

// NeverExpires is the expiry-day sentinel for items with no shelf life.
// Large enough that no realistic day counter ever reaches it, yet safe
// to round-trip through JSON.
const NeverExpires = 1<<31 - 1

// Item is a static catalog entry for something that can be bought and
// sold. A zero SellPrice means the item never participates in daily
// demand (condiments are stocked, not sold on their own).
type Item struct {
	Name          string  `json:"name"`
	SellPrice     float64 `json:"sellPrice"`
	BuyPrice      float64 `json:"buyPrice"`
	ShelfLifeDays int     `json:"shelfLifeDays"` // 0 = never expires
}

// InventoryBatch is a cohort of identical stock sharing one expiry day.
// Batches are created by purchases and shrunk or destroyed by sales and
// the expiry sweep; a batch with quantity <= 0 must never persist.
type InventoryBatch struct {
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	ExpiryDay int    `json:"expiryDay"`
}

// Expired reports whether the batch is worthless on the given day.
func (b InventoryBatch) Expired(day int) bool {
	return b.ExpiryDay <= day
}
