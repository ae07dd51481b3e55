package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

func newState() *model.GameState {
	st := &model.GameState{Day: 1, SchemaVersion: model.CurrentSchemaVersion}
	EnsureCatalogDefaults(st)
	return st
}

func TestQuantity_SumsAcrossBatches(t *testing.T) {
	st := newState()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 5},
		{ItemName: "Würstel", Quantity: 2, ExpiryDay: 7},
		{ItemName: "Semmeln", Quantity: 9, ExpiryDay: 4},
	}

	assert.Equal(t, 5, Quantity(st, "Würstel"))
	assert.Equal(t, 9, Quantity(st, "Semmeln"))
	assert.Equal(t, 0, Quantity(st, "Getränke"))
}

func TestAddBatch_ExpiryFromShelfLife(t *testing.T) {
	st := newState()
	st.Day = 4

	AddBatch(st, "Würstel", 10)

	require.Len(t, st.InventoryBatches, 1)
	b := st.InventoryBatches[0]
	assert.Equal(t, "Würstel", b.ItemName)
	assert.Equal(t, 10, b.Quantity)
	assert.Equal(t, 7, b.ExpiryDay) // day 4 + 3 days shelf life
}

func TestAddBatch_NoShelfLifeNeverExpires(t *testing.T) {
	st := newState()

	AddBatch(st, "Getränke", 5)

	require.Len(t, st.InventoryBatches, 1)
	assert.Equal(t, model.NeverExpires, st.InventoryBatches[0].ExpiryDay)
}

func TestAddBatch_UnknownItemIsNoop(t *testing.T) {
	st := newState()

	AddBatch(st, "Kaviar", 10)
	AddBatch(st, "Würstel", 0)
	AddBatch(st, "Würstel", -2)

	assert.Empty(t, st.InventoryBatches)
}

func TestAddBatch_NeverMergesCohorts(t *testing.T) {
	st := newState()

	AddBatch(st, "Würstel", 3)
	st.Day = 2
	AddBatch(st, "Würstel", 4)

	require.Len(t, st.InventoryBatches, 2)
	assert.Equal(t, 7, Quantity(st, "Würstel"))
}

func TestConsume_DrainsSoonestExpiryFirst(t *testing.T) {
	st := newState()
	// Insertion order deliberately newest-first: consumption must go
	// by ascending expiry day, not insertion order.
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 2, ExpiryDay: 7},
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 5},
	}

	got := Consume(st, "Würstel", 4)

	assert.Equal(t, 4, got)
	require.Len(t, st.InventoryBatches, 1)
	assert.Equal(t, 7, st.InventoryBatches[0].ExpiryDay)
	assert.Equal(t, 1, st.InventoryBatches[0].Quantity)
}

func TestConsume_ShortStockReturnsActual(t *testing.T) {
	st := newState()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 5},
	}

	got := Consume(st, "Würstel", 10)

	assert.Equal(t, 3, got)
	assert.Empty(t, st.InventoryBatches)
}

func TestConsume_LeavesOtherItemsAlone(t *testing.T) {
	st := newState()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 5},
		{ItemName: "Semmeln", Quantity: 8, ExpiryDay: 4},
	}

	Consume(st, "Würstel", 3)

	assert.Equal(t, 8, Quantity(st, "Semmeln"))
}

func TestConsume_NonPositiveRequest(t *testing.T) {
	st := newState()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 5},
	}

	assert.Equal(t, 0, Consume(st, "Würstel", 0))
	assert.Equal(t, 0, Consume(st, "Würstel", -1))
	assert.Equal(t, 3, Quantity(st, "Würstel"))
}

func TestSweepExpired(t *testing.T) {
	st := newState()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 2},
		{ItemName: "Würstel", Quantity: 2, ExpiryDay: 9},
		{ItemName: "Semmeln", Quantity: 4, ExpiryDay: 3},
		{ItemName: "Getränke", Quantity: 6, ExpiryDay: model.NeverExpires},
	}

	lost := SweepExpired(st, 3)

	assert.Equal(t, map[string]int{"Würstel": 3, "Semmeln": 4}, lost)
	assert.Equal(t, 2, Quantity(st, "Würstel"))
	assert.Equal(t, 6, Quantity(st, "Getränke"))
}

func TestSweepExpired_Idempotent(t *testing.T) {
	st := newState()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 3, ExpiryDay: 2},
	}

	first := SweepExpired(st, 2)
	second := SweepExpired(st, 2)

	assert.Equal(t, map[string]int{"Würstel": 3}, first)
	assert.Empty(t, second)
}

func TestEnsureCatalogDefaults_Idempotent(t *testing.T) {
	st := &model.GameState{}

	EnsureCatalogDefaults(st)
	require.Len(t, st.Catalog, 5)

	EnsureCatalogDefaults(st)
	assert.Len(t, st.Catalog, 5)
}

func TestEnsureCatalogDefaults_NeverOverwrites(t *testing.T) {
	st := &model.GameState{
		Catalog: map[string]model.Item{
			"Würstel": {Name: "Würstel", SellPrice: 9.99, BuyPrice: 5.00, ShelfLifeDays: 1},
		},
	}

	EnsureCatalogDefaults(st)

	assert.Equal(t, 9.99, st.Catalog["Würstel"].SellPrice)
	assert.Len(t, st.Catalog, 5)
}
