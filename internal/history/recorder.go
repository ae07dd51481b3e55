// Package history records closed-day summaries for later analysis.
package history

import "github.com/Zobiii/WurstelbudenSimulator/internal/model"

// Recorder persists one row per closed day.
type Recorder interface {
	RecordDay(sum model.DaySummary, st *model.GameState) error
	Close() error
}

// Noop discards everything. Used when history is disabled and in
// tests.
type Noop struct{}

func (Noop) RecordDay(model.DaySummary, *model.GameState) error { return nil }
func (Noop) Close() error                                       { return nil }
