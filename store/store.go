// Package store manages SQLite persistence of run results.
//
// The simulator itself is a closed deterministic computation; the store is a
// harness-side record of RunResults so staffing comparisons can be made
// across invocations without re-running scenarios.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/callcenter-sim/callcenter-sim/sim"
)

// Store manages all SQLite operations with WAL mode.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(2)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS run_results (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		scenario           TEXT NOT NULL,
		seed               INTEGER NOT NULL,
		num_agents         INTEGER NOT NULL,
		arrival_rate       REAL NOT NULL,
		mean_service_hours REAL NOT NULL,
		run_hours          REAL NOT NULL,
		avg_wait_hours     REAL NOT NULL,
		p90_wait_hours     REAL NOT NULL,
		p95_wait_hours     REAL NOT NULL,
		utilization        REAL NOT NULL,
		avg_queue_length   REAL NOT NULL,
		customers_served   INTEGER NOT NULL,
		created_at         TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_run_results_scenario ON run_results(scenario);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ResultRow is one persisted run result.
type ResultRow struct {
	ID        int64
	Scenario  string
	Seed      int64
	Config    sim.ScenarioConfig
	Result    sim.RunResult
	CreatedAt string
}

// InsertResult appends one run's result for the given scenario and seed.
// Returns the row ID.
func (s *Store) InsertResult(cfg sim.ScenarioConfig, seed int64, res sim.RunResult) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := s.db.Exec(
		`INSERT INTO run_results (scenario, seed, num_agents, arrival_rate, mean_service_hours,
			run_hours, avg_wait_hours, p90_wait_hours, p95_wait_hours, utilization,
			avg_queue_length, customers_served, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cfg.Name, seed, cfg.NumAgents, cfg.ArrivalRate, cfg.MeanServiceTime,
		cfg.RunDuration, res.AvgWaitTime, res.P90WaitTime, res.P95WaitTime, res.AvgUtilization,
		res.AvgQueueLength, res.CustomersServed, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	return out.LastInsertId()
}

// ListResults returns persisted results, newest first. An empty scenario
// name returns results for all scenarios.
func (s *Store) ListResults(scenario string) ([]ResultRow, error) {
	query := `SELECT id, scenario, seed, num_agents, arrival_rate, mean_service_hours,
		run_hours, avg_wait_hours, p90_wait_hours, p95_wait_hours, utilization,
		avg_queue_length, customers_served, created_at
		FROM run_results`
	var args []any
	if scenario != "" {
		query += ` WHERE scenario = ?`
		args = append(args, scenario)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []ResultRow
	for rows.Next() {
		var r ResultRow
		if err := rows.Scan(
			&r.ID, &r.Scenario, &r.Seed, &r.Config.NumAgents, &r.Config.ArrivalRate,
			&r.Config.MeanServiceTime, &r.Config.RunDuration, &r.Result.AvgWaitTime,
			&r.Result.P90WaitTime, &r.Result.P95WaitTime, &r.Result.AvgUtilization,
			&r.Result.AvgQueueLength, &r.Result.CustomersServed, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Config.Name = r.Scenario
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountResults returns the total number of persisted results.
func (s *Store) CountResults() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM run_results`).Scan(&n)
	return n, err
}
