package game

import (
	"errors"
	"fmt"

	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

// Integrity violations indicate a corrupted state, not user error.
// Callers must not continue a session that fails validation.
var (
	ErrNegativeBalance  = errors.New("negative money balance")
	ErrBadForecast      = errors.New("forecast window corrupt")
	ErrOrphanBatch      = errors.New("batch references unknown catalog item")
	ErrEmptyBatch       = errors.New("batch with non-positive quantity")
	ErrNegativePrice    = errors.New("catalog entry with negative price")
	ErrInvalidDayNumber = errors.New("day counter below 1")
)

// Validate checks every structural invariant of a game state. It is
// run before each day close and after every load.
func Validate(st *model.GameState) error {
	if st.Day < 1 {
		return fmt.Errorf("%w: day %d", ErrInvalidDayNumber, st.Day)
	}
	if st.Balance < 0 {
		return fmt.Errorf("%w: balance %.2f", ErrNegativeBalance, st.Balance)
	}
	if st.SavingsBalance < 0 {
		return fmt.Errorf("%w: savings %.2f", ErrNegativeBalance, st.SavingsBalance)
	}
	if st.LoanBalance < 0 {
		return fmt.Errorf("%w: loan %.2f", ErrNegativeBalance, st.LoanBalance)
	}

	if len(st.Forecast) != model.ForecastDays {
		return fmt.Errorf("%w: length %d, want %d", ErrBadForecast, len(st.Forecast), model.ForecastDays)
	}
	for i, w := range st.Forecast {
		if !w.Valid() {
			return fmt.Errorf("%w: unknown weather %q at index %d", ErrBadForecast, w, i)
		}
	}

	for name, item := range st.Catalog {
		if item.SellPrice < 0 || item.BuyPrice < 0 {
			return fmt.Errorf("%w: %s", ErrNegativePrice, name)
		}
	}

	for _, b := range st.InventoryBatches {
		if b.Quantity <= 0 {
			return fmt.Errorf("%w: %s qty %d", ErrEmptyBatch, b.ItemName, b.Quantity)
		}
		if _, ok := st.Catalog[b.ItemName]; !ok {
			return fmt.Errorf("%w: %s", ErrOrphanBatch, b.ItemName)
		}
	}

	return nil
}
