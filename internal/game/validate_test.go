package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zobiii/WurstelbudenSimulator/internal/entropy"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

func validState(t *testing.T) *model.GameState {
	t.Helper()
	st := newEngineForTest(entropy.NewSeeded(1)).NewState()
	require.NoError(t, Validate(st))
	return st
}

func TestValidate_NegativeBalances(t *testing.T) {
	for name, mutate := range map[string]func(*model.GameState){
		"balance": func(st *model.GameState) { st.Balance = -0.01 },
		"savings": func(st *model.GameState) { st.SavingsBalance = -1 },
		"loan":    func(st *model.GameState) { st.LoanBalance = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			st := validState(t)
			mutate(st)
			assert.ErrorIs(t, Validate(st), ErrNegativeBalance)
		})
	}
}

func TestValidate_ForecastWindow(t *testing.T) {
	st := validState(t)
	st.Forecast = st.Forecast[:4]
	assert.ErrorIs(t, Validate(st), ErrBadForecast)

	st = validState(t)
	st.Forecast[2] = model.Weather("hail")
	assert.ErrorIs(t, Validate(st), ErrBadForecast)
}

func TestValidate_OrphanBatch(t *testing.T) {
	st := validState(t)
	st.InventoryBatches = append(st.InventoryBatches, model.InventoryBatch{
		ItemName: "Kaviar", Quantity: 2, ExpiryDay: 9,
	})
	assert.ErrorIs(t, Validate(st), ErrOrphanBatch)
}

func TestValidate_EmptyBatch(t *testing.T) {
	st := validState(t)
	st.InventoryBatches = append(st.InventoryBatches, model.InventoryBatch{
		ItemName: "Würstel", Quantity: 0, ExpiryDay: 9,
	})
	assert.ErrorIs(t, Validate(st), ErrEmptyBatch)
}

func TestValidate_DayCounter(t *testing.T) {
	st := validState(t)
	st.Day = 0
	assert.ErrorIs(t, Validate(st), ErrInvalidDayNumber)
}
