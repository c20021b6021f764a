package snapstore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/franchops/storesense/internal/contract"
	"github.com/franchops/storesense/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// StoreImpl handles durable snapshot storage using various database backends.
type StoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.SnapshotStore = &StoreImpl{} // Compile-time check

// NewStore initializes and returns a snapshot store for the backend type.
// NoneBackend yields a no-op store: saves are dropped, loads return empty.
func NewStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite snapshots at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL snapshots: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL snapshots: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return &StoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	store := &StoreImpl{db: db, backend: backend}
	for _, query := range createTableQueries(backend) {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create snapshot tables: %w", err)
		}
	}
	return store, nil
}

// createTableQueries returns the CREATE TABLE statements for the backend.
func createTableQueries(backend schema.DatabaseBackend) []string {
	scoreType := "DOUBLE PRECISION"
	if backend == schema.MySQLBackend {
		scoreType = "DOUBLE"
	}
	return []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS inspections (
				store_id VARCHAR(64) NOT NULL,
				template_id VARCHAR(64) NOT NULL,
				template_version VARCHAR(64) NOT NULL,
				evaluated_at BIGINT NOT NULL,
				total_score %s NOT NULL,
				grade VARCHAR(8) NOT NULL,
				passed BOOLEAN NOT NULL,
				PRIMARY KEY (store_id, evaluated_at)
			);
		`, scoreType),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS risk_snapshots (
				store_id VARCHAR(64) NOT NULL,
				evaluated_at BIGINT NOT NULL,
				score %s NOT NULL,
				level VARCHAR(16) NOT NULL,
				PRIMARY KEY (store_id, evaluated_at)
			);
		`, scoreType),
	}
}

// placeholders rewrites ? placeholders to $1..$n for PostgreSQL.
func (s *StoreImpl) placeholders(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

// SaveInspection persists one scored inspection. Re-saving the same store
// and instant replaces the row: recomputes are full, never incremental.
func (s *StoreImpl) SaveInspection(res *schema.InspectionResult) error {
	if s.db == nil {
		return nil
	}
	query := s.upsertQuery(
		"inspections",
		"store_id, template_id, template_version, evaluated_at, total_score, grade, passed",
		"?, ?, ?, ?, ?, ?, ?",
		"store_id, evaluated_at",
	)
	_, err := s.db.Exec(s.placeholders(query),
		res.StoreID, res.TemplateID, res.TemplateVersion,
		res.EvaluatedAt.Unix(), res.TotalScore, string(res.Grade), res.Passed)
	return err
}

// SaveRiskSnapshot persists one risk score snapshot.
func (s *StoreImpl) SaveRiskSnapshot(storeID string, snap schema.RiskSnapshot) error {
	if s.db == nil {
		return nil
	}
	query := s.upsertQuery(
		"risk_snapshots",
		"store_id, evaluated_at, score, level",
		"?, ?, ?, ?",
		"store_id, evaluated_at",
	)
	_, err := s.db.Exec(s.placeholders(query),
		storeID, snap.EvaluatedAt.Unix(), snap.Score, string(snap.Level))
	return err
}

// upsertQuery builds a backend-specific UPSERT statement. Every backend
// replaces the conflicting row so a re-save always wins over stale data.
func (s *StoreImpl) upsertQuery(table, columns, values, conflict string) string {
	switch s.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`REPLACE INTO %s (%s) VALUES (%s)`, table, columns, values)
	case schema.PostgreSQLBackend:
		keys := make(map[string]bool)
		for _, c := range strings.Split(conflict, ", ") {
			keys[c] = true
		}
		var assignments []string
		for _, c := range strings.Split(columns, ", ") {
			if keys[c] {
				continue
			}
			assignments = append(assignments, c+" = EXCLUDED."+c)
		}
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s`,
			table, columns, values, conflict, strings.Join(assignments, ", "))
	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s) VALUES (%s)`, table, columns, values)
	}
}

// LoadRiskHistory returns a store's risk snapshots, most recent first,
// capped at limit (0 = all).
func (s *StoreImpl) LoadRiskHistory(storeID string, limit int) ([]schema.RiskSnapshot, error) {
	if s.db == nil {
		return nil, nil
	}
	query := `SELECT evaluated_at, score, level FROM risk_snapshots WHERE store_id = ? ORDER BY evaluated_at DESC`
	args := []any{storeID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(s.placeholders(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []schema.RiskSnapshot
	for rows.Next() {
		var at int64
		var snap schema.RiskSnapshot
		var level string
		if err := rows.Scan(&at, &snap.Score, &level); err != nil {
			return nil, err
		}
		snap.EvaluatedAt = time.Unix(at, 0).UTC()
		snap.Level = schema.RiskLevel(level)
		history = append(history, snap)
	}
	return history, rows.Err()
}

// LoadScoredEvents returns a store's inspection scores as a scored event
// series in chronological order, ready for trend aggregation. An empty
// storeID loads all stores.
func (s *StoreImpl) LoadScoredEvents(storeID string) ([]schema.ScoredEvent, error) {
	if s.db == nil {
		return nil, nil
	}
	query := `SELECT store_id, evaluated_at, total_score FROM inspections`
	var args []any
	if storeID != "" {
		query += ` WHERE store_id = ?`
		args = append(args, storeID)
	}
	query += ` ORDER BY evaluated_at ASC`

	rows, err := s.db.Query(s.placeholders(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load scored events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []schema.ScoredEvent
	for rows.Next() {
		var ev schema.ScoredEvent
		var at int64
		if err := rows.Scan(&ev.StoreID, &at, &ev.Score); err != nil {
			return nil, err
		}
		ev.OccurredAt = time.Unix(at, 0).UTC()
		events = append(events, ev)
	}
	return events, rows.Err()
}

// LatestRiskScores returns each store's most recent risk score, one row
// per store, suitable as a ranking population.
func (s *StoreImpl) LatestRiskScores() ([]schema.StoreScore, error) {
	if s.db == nil {
		return nil, nil
	}
	query := `
		SELECT r.store_id, r.score FROM risk_snapshots r
		INNER JOIN (
			SELECT store_id, MAX(evaluated_at) AS latest
			FROM risk_snapshots GROUP BY store_id
		) m ON r.store_id = m.store_id AND r.evaluated_at = m.latest
		ORDER BY r.store_id`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest risk scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scores []schema.StoreScore
	for rows.Next() {
		var sc schema.StoreScore
		if err := rows.Scan(&sc.StoreID, &sc.Metric); err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// Status returns status information about the snapshot store.
func (s *StoreImpl) Status() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}
	if s.db == nil {
		return status, nil
	}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM inspections`).Scan(&status.TotalInspections); err != nil {
		return status, fmt.Errorf("failed to count inspections: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM risk_snapshots`).Scan(&status.TotalRiskEntries); err != nil {
		return status, fmt.Errorf("failed to count risk snapshots: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT store_id) FROM risk_snapshots`).Scan(&status.DistinctStores); err != nil {
		return status, fmt.Errorf("failed to count stores: %w", err)
	}
	if status.TotalRiskEntries == 0 {
		return status, nil
	}

	var last, oldest int64
	if err := s.db.QueryRow(`SELECT MAX(evaluated_at), MIN(evaluated_at) FROM risk_snapshots`).Scan(&last, &oldest); err != nil {
		return status, fmt.Errorf("failed to get snapshot time range: %w", err)
	}
	status.LastEvaluatedAt = time.Unix(last, 0).UTC()
	status.OldestEvaluatedAt = time.Unix(oldest, 0).UTC()
	return status, nil
}

// Clear removes all persisted snapshots.
func (s *StoreImpl) Clear() error {
	if s.db == nil {
		return nil
	}
	for _, table := range []string{"inspections", "risk_snapshots"} {
		if _, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Close closes the underlying DB connection.
func (s *StoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
