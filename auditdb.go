package questionbank

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// AuditDB records one row per generation request. It is an operational
// trail (what was asked, which model, how long, what failed), not a
// question store; generated records are never persisted here.
type AuditDB struct {
	db *sql.DB
}

// AuditEntry is one generation request as recorded in the audit trail.
type AuditEntry struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Topic          string    `json:"topic"`
	QuestionType   string    `json:"question_type"`
	Model          string    `json:"model"`
	Difficulty     string    `json:"difficulty"`
	CountRequested int       `json:"count_requested"`
	CountReturned  int       `json:"count_returned"`
	LatencyMS      int64     `json:"latency_ms"`
	Error          string    `json:"error,omitempty"`
}

// OpenAuditDB opens the audit database, creating the table if needed.
func OpenAuditDB(dbPath string) (*AuditDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS generation_log (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		topic TEXT NOT NULL,
		question_type TEXT NOT NULL,
		model TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		count_requested INTEGER NOT NULL,
		count_returned INTEGER NOT NULL,
		latency_ms INTEGER NOT NULL,
		error TEXT
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create generation_log table: %w", err)
	}

	return &AuditDB{db: db}, nil
}

// Record inserts one audit row.
func (a *AuditDB) Record(entry AuditEntry) error {
	_, err := a.db.Exec(
		"INSERT INTO generation_log (id, created_at, topic, question_type, model, difficulty, count_requested, count_returned, latency_ms, error) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		entry.ID, entry.CreatedAt, entry.Topic, entry.QuestionType, entry.Model, entry.Difficulty, entry.CountRequested, entry.CountReturned, entry.LatencyMS, entry.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

// Recent returns the newest audit rows, most recent first.
func (a *AuditDB) Recent(limit int) ([]AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.db.Query(
		"SELECT id, created_at, topic, question_type, model, difficulty, count_requested, count_returned, latency_ms, error FROM generation_log ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation_log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Topic, &e.QuestionType, &e.Model, &e.Difficulty, &e.CountRequested, &e.CountReturned, &e.LatencyMS, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit rows: %w", err)
	}
	return entries, nil
}

// Close closes the database connection
func (a *AuditDB) Close() error {
	return a.db.Close()
}
