// Package game wires the subsystems together and owns the end-of-day
// transition, the only place where bank, inventory, weather and market
// interact.
package game

import (
	"math"
	"sort"

	"github.com/Zobiii/WurstelbudenSimulator/internal/bank"
	"github.com/Zobiii/WurstelbudenSimulator/internal/config"
	"github.com/Zobiii/WurstelbudenSimulator/internal/entropy"
	"github.com/Zobiii/WurstelbudenSimulator/internal/inventory"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
	"github.com/Zobiii/WurstelbudenSimulator/internal/weather"
)

// Engine drives the daily simulation. It holds no game state of its
// own; every operation takes the caller-owned GameState.
type Engine struct {
	cfg        config.Balance
	forecaster *weather.Forecaster
	src        entropy.Source
}

// New builds an engine. The forecaster and the jitter share src, so
// one seed reproduces a whole session.
func New(cfg config.Balance, forecaster *weather.Forecaster, src entropy.Source) Engine {
	return Engine{cfg: cfg, forecaster: forecaster, src: src}
}

// NewState creates a playable day-1 state: starting cash, seeded
// catalog and a filled forecast window.
func (e Engine) NewState() *model.GameState {
	st := &model.GameState{
		Day:               1,
		Balance:           model.Round2(e.cfg.StartingBalance),
		SavingsRateAnnual: e.cfg.SavingsRateAnnual,
		LoanRateAnnual:    e.cfg.LoanRateAnnual,
		SchemaVersion:     model.CurrentSchemaVersion,
	}
	inventory.EnsureCatalogDefaults(st)
	e.forecaster.EnsureForecast(st)
	return st
}

// Prepare makes a freshly loaded state playable again: seeds missing
// catalog defaults, fills an empty forecast and validates integrity.
func (e Engine) Prepare(st *model.GameState) error {
	inventory.EnsureCatalogDefaults(st)
	e.forecaster.EnsureForecast(st)
	return Validate(st)
}

// CloseDay runs the end-of-day transition. The step order is a
// contract: weather resolution, demand and sales against today's
// stock, forecast advance, day increment, interest accrual, then the
// expiry sweep against the new day. It runs to completion; the only
// failure mode is a corrupted precondition.
func (e Engine) CloseDay(st *model.GameState) (model.DaySummary, error) {
	e.forecaster.EnsureForecast(st)
	if err := Validate(st); err != nil {
		return model.DaySummary{}, err
	}
	today := st.Forecast[0]

	sold := map[string]int{}
	revenue := 0.0
	for _, name := range sellableItems(st) {
		item := st.Catalog[name]

		factor := weather.DemandFactor(today, name)
		jitter := e.src.Intn(e.cfg.JitterBound)
		want := int(math.Round(float64(e.cfg.BaseWant)*factor + float64(jitter)))

		available := inventory.Quantity(st, name)
		canSell := want
		if available < canSell {
			canSell = available
		}

		if canSell > 0 {
			inventory.Consume(st, name, canSell)
			revenue = model.Round2(revenue + model.Round2(float64(canSell)*item.SellPrice))
		}
		sold[name] = canSell
	}
	// Revenue is credited in aggregate, not per item.
	st.Balance = model.Round2(st.Balance + revenue)

	e.forecaster.Advance(st)
	closedDay := st.Day
	st.Day++

	bank.ApplyDailyInterest(st)

	expired := inventory.SweepExpired(st, st.Day)

	return model.DaySummary{
		Day:     closedDay,
		Weather: today,
		Sold:    sold,
		Revenue: revenue,
		Expired: expired,
	}, nil
}

// sellableItems returns catalog names with a positive sell price in
// stable order, so a seeded session consumes jitter draws
// deterministically.
func sellableItems(st *model.GameState) []string {
	names := make([]string, 0, len(st.Catalog))
	for name, item := range st.Catalog {
		if item.SellPrice > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
