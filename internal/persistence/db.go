// Package persistence provides the SQLite run archive. The simulation core
// never depends on it; callers save results after a run completes.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/urban-sandbox/internal/engine"
)

// ErrNotFound is returned when a run or meta key does not exist.
var ErrNotFound = errors.New("not found")

// DB wraps a SQLite connection for the run archive.
type DB struct {
	conn *sqlx.DB
}

// RunSummary is one archived run without its full payload.
type RunSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Policy    string    `json:"policy"`
	Locale    string    `json:"locale"`
	Years     int       `json:"years"`
	Seed      int64     `json:"seed"`
	Support   int       `json:"support"`
}

type runRow struct {
	ID        string `db:"id"`
	CreatedAt string `db:"created_at"`
	Policy    string `db:"policy"`
	Locale    string `db:"locale"`
	Years     int    `db:"years"`
	Seed      int64  `db:"seed"`
	Support   int    `db:"support"`
}

func (r runRow) summary() RunSummary {
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		slog.Warn("bad created_at in archive", "run_id", r.ID, "value", r.CreatedAt)
	}
	return RunSummary{
		ID:        r.ID,
		CreatedAt: created,
		Policy:    r.Policy,
		Locale:    r.Locale,
		Years:     r.Years,
		Seed:      r.Seed,
		Support:   r.Support,
	}
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		policy TEXT NOT NULL,
		locale TEXT NOT NULL,
		years INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		support INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS region_results (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		region TEXT NOT NULL,
		support INTEGER NOT NULL,
		PRIMARY KEY (run_id, region)
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun archives a result and its regional figures in one transaction.
// Saving the same run ID again replaces it.
func (db *DB) SaveRun(res *engine.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode run %s: %w", res.RunID, err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO runs
		(id, created_at, policy, locale, years, seed, support, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID, res.CreatedAt.UTC().Format(time.RFC3339Nano), res.Policy, string(res.Locale),
		res.Years, res.Seed, res.SupportPercentage, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", res.RunID, err)
	}

	if _, err := tx.Exec("DELETE FROM region_results WHERE run_id = ?", res.RunID); err != nil {
		return err
	}

	if len(res.RegionalSupport) > 0 {
		stmt, err := tx.Preparex("INSERT INTO region_results (run_id, region, support) VALUES (?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for region, support := range res.RegionalSupport {
			if _, err := stmt.Exec(res.RunID, region, support); err != nil {
				return fmt.Errorf("insert region %s: %w", region, err)
			}
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('last_run_id', ?)", res.RunID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetRun loads the full result of an archived run.
func (db *DB) GetRun(id string) (*engine.Result, error) {
	var payload string
	err := db.conn.Get(&payload, "SELECT result_json FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var res engine.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("decode run %s: %w", id, err)
	}
	return &res, nil
}

// RecentRuns returns the most recent N runs, newest first.
func (db *DB) RecentRuns(limit int) ([]RunSummary, error) {
	var rows []runRow
	err := db.conn.Select(&rows,
		`SELECT id, created_at, policy, locale, years, seed, support
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}

	out := make([]RunSummary, len(rows))
	for i, r := range rows {
		out[i] = r.summary()
	}
	return out, nil
}

// CountRuns returns the number of archived runs.
func (db *DB) CountRuns() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM runs")
	return n, err
}

// RegionResults returns the regional figures stored with a run.
func (db *DB) RegionResults(runID string) (map[string]int, error) {
	var rows []struct {
		Region  string `db:"region"`
		Support int    `db:"support"`
	}
	err := db.conn.Select(&rows, "SELECT region, support FROM region_results WHERE run_id = ?", runID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Region] = r.Support
	}
	return out, nil
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("meta %s: %w", key, ErrNotFound)
	}
	return value, err
}
