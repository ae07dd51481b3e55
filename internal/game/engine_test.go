package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zobiii/WurstelbudenSimulator/internal/config"
	"github.com/Zobiii/WurstelbudenSimulator/internal/entropy"
	"github.com/Zobiii/WurstelbudenSimulator/internal/inventory"
	"github.com/Zobiii/WurstelbudenSimulator/internal/market"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
	"github.com/Zobiii/WurstelbudenSimulator/internal/weather"
)

// scriptedSource pins the jitter and forecast draws so day closes are
// fully deterministic.
type scriptedSource struct {
	float  float64
	jitter int
}

func (s *scriptedSource) Float64() float64 { return s.float }
func (s *scriptedSource) Intn(n int) int   { return s.jitter % n }

var _ entropy.Source = (*scriptedSource)(nil)

func newEngineForTest(src entropy.Source) Engine {
	return New(config.Default().Balance, weather.New(src), src)
}

func cloudyWindow() []model.Weather {
	return []model.Weather{model.Cloudy, model.Cloudy, model.Cloudy, model.Cloudy, model.Cloudy}
}

func TestNewState(t *testing.T) {
	e := newEngineForTest(entropy.NewSeeded(1))

	st := e.NewState()

	assert.Equal(t, 1, st.Day)
	assert.Equal(t, 100.0, st.Balance)
	assert.Equal(t, 0.05, st.SavingsRateAnnual)
	assert.Len(t, st.Forecast, model.ForecastDays)
	assert.Len(t, st.Catalog, 5)
	require.NoError(t, Validate(st))
}

func TestCloseDay_EndToEnd(t *testing.T) {
	// Cloudy weather: every demand factor is 1.0. Jitter pinned to 0,
	// so want = baseWant = 8 for each sellable item.
	src := &scriptedSource{float: 0.5, jitter: 0}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = cloudyWindow()

	require.True(t, market.TryBuy(st, "Würstel", 10))
	assert.Equal(t, 88.0, st.Balance)
	require.Len(t, st.InventoryBatches, 1)

	sum, err := e.CloseDay(st)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Day)
	assert.Equal(t, model.Cloudy, sum.Weather)
	// want 8, available 10 -> sold 8 at 3.50 each.
	assert.Equal(t, 8, sum.Sold["Würstel"])
	assert.Equal(t, 0, sum.Sold["Semmeln"])
	assert.Equal(t, 28.0, sum.Revenue)
	assert.Equal(t, 116.0, st.Balance)

	assert.Equal(t, 2, st.Day)
	assert.Len(t, st.Forecast, model.ForecastDays)
	assert.Equal(t, 2, inventory.Quantity(st, "Würstel"))
	assert.Empty(t, sum.Expired)
}

func TestCloseDay_SellsAllAvailableWhenShort(t *testing.T) {
	src := &scriptedSource{float: 0.5, jitter: 0}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = cloudyWindow()
	require.True(t, market.TryBuy(st, "Würstel", 3))

	sum, err := e.CloseDay(st)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Sold["Würstel"])
	assert.Empty(t, st.InventoryBatches)
}

func TestCloseDay_JitterRaisesWant(t *testing.T) {
	src := &scriptedSource{float: 0.5, jitter: 5}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = cloudyWindow()
	require.True(t, market.TryBuy(st, "Würstel", 20))

	sum, err := e.CloseDay(st)
	require.NoError(t, err)

	// want = round(8 * 1.0 + 5) = 13
	assert.Equal(t, 13, sum.Sold["Würstel"])
}

func TestCloseDay_StormySuppressesDemand(t *testing.T) {
	src := &scriptedSource{float: 0.5, jitter: 0}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = []model.Weather{model.Stormy, model.Cloudy, model.Cloudy, model.Cloudy, model.Cloudy}
	require.True(t, market.TryBuy(st, "Würstel", 20))

	sum, err := e.CloseDay(st)
	require.NoError(t, err)

	// want = round(8 * 0.4) = 3
	assert.Equal(t, 3, sum.Sold["Würstel"])
	assert.Equal(t, model.Stormy, sum.Weather)
}

func TestCloseDay_AppliesInterestAfterDayAdvance(t *testing.T) {
	src := &scriptedSource{float: 0.5, jitter: 0}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = cloudyWindow()
	st.SavingsBalance = 1000

	_, err := e.CloseDay(st)
	require.NoError(t, err)

	assert.Equal(t, 1000.14, st.SavingsBalance)
}

func TestCloseDay_SweepsAgainstNewDay(t *testing.T) {
	src := &scriptedSource{float: 0.5, jitter: 0}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = cloudyWindow()
	// A batch expiring on day 2 survives day 1 but is swept when the
	// close advances the counter to 2, even though sales already drew
	// from it.
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Würstel", Quantity: 10, ExpiryDay: 2},
	}

	sum, err := e.CloseDay(st)
	require.NoError(t, err)

	assert.Equal(t, 8, sum.Sold["Würstel"])
	assert.Equal(t, map[string]int{"Würstel": 2}, sum.Expired)
	assert.Empty(t, st.InventoryBatches)
}

func TestCloseDay_ForecastShiftsByOne(t *testing.T) {
	src := &scriptedSource{float: 0.99, jitter: 0} // appended day is Stormy
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = []model.Weather{model.Sunny, model.Cloudy, model.Rainy, model.Cold, model.Stormy}

	_, err := e.CloseDay(st)
	require.NoError(t, err)

	assert.Equal(t, []model.Weather{model.Cloudy, model.Rainy, model.Cold, model.Stormy, model.Stormy}, st.Forecast)
}

func TestCloseDay_RefusesCorruptState(t *testing.T) {
	src := &scriptedSource{float: 0.5, jitter: 0}
	e := newEngineForTest(src)

	st := e.NewState()
	st.Forecast = cloudyWindow()
	st.InventoryBatches = []model.InventoryBatch{
		{ItemName: "Kaviar", Quantity: 1, ExpiryDay: 9},
	}

	_, err := e.CloseDay(st)
	assert.ErrorIs(t, err, ErrOrphanBatch)
}

func TestCloseDay_SeededSessionIsReproducible(t *testing.T) {
	run := func() (*model.GameState, []model.DaySummary) {
		src := entropy.NewSeeded(1234)
		e := New(config.Default().Balance, weather.New(src), src)
		st := e.NewState()
		require.True(t, market.TryBuy(st, "Würstel", 30))
		require.True(t, market.TryBuy(st, "Semmeln", 40))

		var sums []model.DaySummary
		for i := 0; i < 5; i++ {
			sum, err := e.CloseDay(st)
			require.NoError(t, err)
			sums = append(sums, sum)
		}
		return st, sums
	}

	stA, sumsA := run()
	stB, sumsB := run()

	assert.Equal(t, sumsA, sumsB)
	assert.Equal(t, stA, stB)
}

func TestPrepare_FillsForecastAndCatalog(t *testing.T) {
	e := newEngineForTest(entropy.NewSeeded(1))
	st := &model.GameState{Day: 3, Balance: 50, SchemaVersion: model.CurrentSchemaVersion}

	require.NoError(t, e.Prepare(st))

	assert.Len(t, st.Forecast, model.ForecastDays)
	assert.Len(t, st.Catalog, 5)
}
