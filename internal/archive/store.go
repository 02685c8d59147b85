// Package archive persists generated cases to SQLite so they can be listed,
// reopened and browsed after the process exits. Persistence happens strictly
// after generation; the generator core never touches the database.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"caseforge/internal/casegen"
	"caseforge/internal/logging"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Record is one archived case plus its storage identity. The ID is assigned
// at save time, outside the deterministic generation core.
type Record struct {
	ID        string       `json:"id"`
	Seed      int64        `json:"seed"`
	CreatedAt time.Time    `json:"created_at"`
	Case      casegen.Case `json:"case"`
}

// Store manages the case archive database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// NewStore creates or opens a case archive at dbPath.
func NewStore(dbPath string) (*Store, error) {
	// Ensure directory exists
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Archive("archive opened at %s", dbPath)
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// initSchema creates the database schema.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cases (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		case_type TEXT NOT NULL,
		case_number TEXT NOT NULL,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		difficulty REAL NOT NULL,
		witnesses_json TEXT NOT NULL,
		evidence_json TEXT NOT NULL,
		traits_json TEXT,
		conditions_json TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_cases_type ON cases(case_type);
	CREATE INDEX IF NOT EXISTS idx_cases_created ON cases(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save archives a generated case and returns its record.
func (s *Store) Save(c *casegen.Case, seed int64) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &Record{
		ID:        uuid.New().String(),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Case:      *c,
	}

	witnesses, err := json.Marshal(c.Witnesses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal witnesses: %w", err)
	}
	evidence, err := json.Marshal(c.Evidence)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evidence: %w", err)
	}
	traits, err := json.Marshal(c.Traits)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal traits: %w", err)
	}
	conditions, err := json.Marshal(c.SpecialConditions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conditions: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO cases (id, seed, created_at, case_type, case_number, title,
			summary, difficulty, witnesses_json, evidence_json, traits_json, conditions_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Seed, rec.CreatedAt, string(c.Type), c.Number, c.Title,
		c.Summary, c.Difficulty, string(witnesses), string(evidence),
		string(traits), string(conditions))
	if err != nil {
		return nil, fmt.Errorf("failed to insert case: %w", err)
	}

	logging.Archive("archived case %s (%s, difficulty %.2f)", rec.ID, c.Title, c.Difficulty)
	return rec, nil
}

// Get retrieves one archived case by ID.
func (s *Store) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, seed, created_at, case_type, case_number, title, summary,
			difficulty, witnesses_json, evidence_json, traits_json, conditions_json
		FROM cases WHERE id = ?`, id)
	return scanRecord(row)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var caseType, witnesses, evidence string
	var traits, conditions sql.NullString

	err := row.Scan(&rec.ID, &rec.Seed, &rec.CreatedAt, &caseType,
		&rec.Case.Number, &rec.Case.Title, &rec.Case.Summary,
		&rec.Case.Difficulty, &witnesses, &evidence, &traits, &conditions)
	if err != nil {
		return nil, err
	}

	rec.Case.Type = casegen.CaseType(caseType)
	if err := json.Unmarshal([]byte(witnesses), &rec.Case.Witnesses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal witnesses: %w", err)
	}
	if err := json.Unmarshal([]byte(evidence), &rec.Case.Evidence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evidence: %w", err)
	}
	if traits.Valid && traits.String != "" && traits.String != "null" {
		if err := json.Unmarshal([]byte(traits.String), &rec.Case.Traits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal traits: %w", err)
		}
	}
	if conditions.Valid && conditions.String != "" && conditions.String != "null" {
		if err := json.Unmarshal([]byte(conditions.String), &rec.Case.SpecialConditions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conditions: %w", err)
		}
	}
	return &rec, nil
}

// List returns the most recently archived cases, newest first.
func (s *Store) List(limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, seed, created_at, case_type, case_number, title, summary,
			difficulty, witnesses_json, evidence_json, traits_json, conditions_json
		FROM cases ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountByType returns how many archived cases exist per case type.
func (s *Store) CountByType() (map[casegen.CaseType]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT case_type, COUNT(*) FROM cases GROUP BY case_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}
	defer rows.Close()

	counts := make(map[casegen.CaseType]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[casegen.CaseType(t)] = n
	}
	return counts, rows.Err()
}
