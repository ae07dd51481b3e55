package history

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Zobiii/WurstelbudenSimulator/internal/model"
)

// SQLiteRecorder appends day rows to a SQLite database. Rows are
// grouped by a session id generated per recorder, so several runs
// against the same database stay distinguishable.
type SQLiteRecorder struct {
	db      *sqlx.DB
	session string
	mu      sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs
// migrations.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	r := &SQLiteRecorder{db: db, session: uuid.NewString()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	slog.Info("history recorder opened", "path", path, "session", r.session)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS day_records (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		session       TEXT NOT NULL,
		day           INTEGER NOT NULL,
		weather       TEXT NOT NULL,
		revenue       REAL NOT NULL,
		units_sold    INTEGER NOT NULL,
		units_expired INTEGER NOT NULL,
		balance_after REAL NOT NULL,
		loan_after    REAL NOT NULL,
		recorded_at   INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_day_records_session ON day_records(session, day);
	`
	_, err := r.db.Exec(schema)
	return err
}

// RecordDay appends one row for a closed day.
func (r *SQLiteRecorder) RecordDay(sum model.DaySummary, st *model.GameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO day_records
		 (session, day, weather, revenue, units_sold, units_expired, balance_after, loan_after, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.session, sum.Day, string(sum.Weather), sum.Revenue,
		sum.UnitsSold(), sum.UnitsExpired(), st.Balance, st.LoanBalance,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record day %d: %w", sum.Day, err)
	}
	return nil
}

// DayCount returns how many days this session has recorded.
func (r *SQLiteRecorder) DayCount() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM day_records WHERE session = ?`, r.session)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
