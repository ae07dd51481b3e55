// Package weather generates the rolling 5-day forecast and maps each
// weather kind to per-item demand multipliers.
package weather

import (
	"github.com/Zobiii/WurstelbudenSimulator/internal/entropy"
	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

// Forecaster draws weather from a fixed discrete distribution over a
// shared session random stream.
type Forecaster struct {
	src entropy.Source
}

func New(src entropy.Source) *Forecaster {
	return &Forecaster{src: src}
}

// EnsureForecast fills an empty forecast window with 5 fresh days.
// A non-empty window is left untouched.
func (f *Forecaster) EnsureForecast(state *model.GameState) {
	if len(state.Forecast) == 0 {
		state.Forecast = f.Generate(model.ForecastDays)
	}
}

// Generate draws n independent days. Cumulative thresholds:
// Sunny 35%, Cloudy 25%, Rainy 20%, Cold 12%, Stormy 8%.
func (f *Forecaster) Generate(n int) []model.Weather {
	out := make([]model.Weather, 0, n)
	for i := 0; i < n; i++ {
		roll := f.src.Float64()
		switch {
		case roll < 0.35:
			out = append(out, model.Sunny)
		case roll < 0.60:
			out = append(out, model.Cloudy)
		case roll < 0.80:
			out = append(out, model.Rainy)
		case roll < 0.92:
			out = append(out, model.Cold)
		default:
			out = append(out, model.Stormy)
		}
	}
	return out
}

// Advance drops today from the window and appends one fresh day, so
// the window length stays at 5.
func (f *Forecaster) Advance(state *model.GameState) {
	if len(state.Forecast) == 0 {
		state.Forecast = f.Generate(model.ForecastDays)
		return
	}
	state.Forecast = append(state.Forecast[1:], f.Generate(1)...)
}

// demandTables maps each weather kind to its per-item multipliers.
// Items not listed sell at factor 1.0.
var demandTables = map[model.Weather]map[string]float64{
	model.Sunny:  {"Würstel": 1.1, "Semmeln": 1.1, "Getränke": 1.6},
	model.Cloudy: {"Würstel": 1.0, "Semmeln": 1.0, "Getränke": 1.0},
	model.Rainy:  {"Würstel": 0.8, "Semmeln": 0.8, "Getränke": 0.6},
	model.Cold:   {"Würstel": 1.2, "Semmeln": 1.1, "Getränke": 0.5},
	model.Stormy: {"Würstel": 0.4, "Semmeln": 0.4, "Getränke": 0.3},
}

// DemandFactor returns the demand multiplier for an item under the
// given weather. Total: unknown weather/item combinations yield 1.0.
func DemandFactor(w model.Weather, itemName string) float64 {
	table, ok := demandTables[w]
	if !ok {
		return 1.0
	}
	factor, ok := table[itemName]
	if !ok {
		return 1.0
	}
	return factor
}

// DemandFactors returns a copy of the multiplier table for a weather
// kind, for display purposes.
func DemandFactors(w model.Weather) map[string]float64 {
	out := map[string]float64{}
	for name, factor := range demandTables[w] {
		out[name] = factor
	}
	return out
}
