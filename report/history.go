package report

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History is an append-only SQLite-backed journal of solve runs, opened via
// the CLI's optional `--history` flag (spec §6.5 is silent on this; it is a
// supplemented convenience for comparing runs over time, not required by
// any invariant).
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if absent) a history database at path and
// ensures its schema exists.
func OpenHistory(path string) (*History, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: cannot open database: %w", err)
	}
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			best_solution_size INTEGER NOT NULL,
			proved_optimal INTEGER NOT NULL,
			nodes_expanded INTEGER NOT NULL,
			wall_time_seconds REAL NOT NULL,
			report_json TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: cannot create schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// Record appends r as one run to the history, stamped with recordedAt.
// recordedAt is taken as a parameter rather than computed internally so
// callers (and tests) control the timestamp deterministically.
func (h *History) Record(r Report, recordedAt time.Time) error {
	body, err := MarshalReport(r)
	if err != nil {
		return fmt.Errorf("history: cannot encode report: %w", err)
	}
	_, err = h.db.Exec(
		`INSERT INTO runs (recorded_at, fingerprint, best_solution_size, proved_optimal, nodes_expanded, wall_time_seconds, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		recordedAt.UTC().Format(time.RFC3339Nano),
		r.Fingerprint,
		r.BestSolutionSize,
		boolToInt(r.ProvedOptimal),
		r.NodesExpanded,
		r.WallTimeSeconds,
		string(body),
	)
	if err != nil {
		return fmt.Errorf("history: cannot insert run: %w", err)
	}
	return nil
}

// RunCountForFingerprint reports how many recorded runs share the given
// instance fingerprint. The CLI only records runs; it does not call this.
func (h *History) RunCountForFingerprint(fingerprint string) (int, error) {
	var n int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE fingerprint = ?`, fingerprint).Scan(&n)
	return n, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
