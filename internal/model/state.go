package model

// GameState is the serializable root aggregate for one play session.
// It is owned exclusively by the active session; every engine operation
// takes it by pointer and mutates it in place. There are no hidden
// module-level singletons.
type GameState struct {
	Day               int              `json:"day"`
	Balance           float64          `json:"balance"`
	SavingsBalance    float64          `json:"savingsBalance"`
	LoanBalance       float64          `json:"loanBalance"`
	SavingsRateAnnual float64          `json:"savingsRateAnnual"`
	LoanRateAnnual    float64          `json:"loanRateAnnual"`
	Forecast          []Weather        `json:"forecast"`
	Catalog           map[string]Item  `json:"catalog"`
	InventoryBatches  []InventoryBatch `json:"inventoryBatches"`

	// SchemaVersion is carried through saves but never interpreted by
	// the engine.
	SchemaVersion int `json:"schemaVersion"`
}

// ForecastDays is the fixed length of the rolling weather window:
// today plus the next four days.
const ForecastDays = 5

// CurrentSchemaVersion tags freshly created states.
const CurrentSchemaVersion = 1

// DaySummary reports what happened while closing one day. The shell
// renders it and the history recorder persists it; the engine itself
// keeps no copy.
type DaySummary struct {
	Day     int            `json:"day"`     // the day that was closed
	Weather Weather        `json:"weather"` // weather of the closed day
	Sold    map[string]int `json:"sold"`
	Revenue float64        `json:"revenue"`
	Expired map[string]int `json:"expired"`
}

// UnitsSold sums sold quantities across all items.
func (s DaySummary) UnitsSold() int {
	total := 0
	for _, n := range s.Sold {
		total += n
	}
	return total
}

// UnitsExpired sums spoiled quantities across all items.
func (s DaySummary) UnitsExpired() int {
	total := 0
	for _, n := range s.Expired {
		total += n
	}
	return total
}
