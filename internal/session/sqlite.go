package session

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultRetention is how long an untouched session survives in SQLite.
const DefaultRetention = 24 * time.Hour

// SQLiteManager persists session values in a SQLite database so they
// survive server restarts for as long as the browser keeps its cookie.
type SQLiteManager struct {
	db     *sql.DB
	logger *log.Logger
	stop   chan struct{}
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string, logger *log.Logger) (*SQLiteManager, error) {
	if logger == nil {
		logger = log.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// ":memory:" databases exist per connection
	db.SetMaxOpenConns(1)

	createTable := `
	CREATE TABLE IF NOT EXISTS session_values (
		session_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL, -- unix milliseconds
		PRIMARY KEY (session_id, key)
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create session_values table: %w", err)
	}

	createIndex := `CREATE INDEX IF NOT EXISTS idx_session_values_updated ON session_values (updated_at)`
	if _, err := db.Exec(createIndex); err != nil {
		logger.Printf("Warning: could not create session index: %v", err)
	}

	return &SQLiteManager{db: db, logger: logger, stop: make(chan struct{})}, nil
}

func (m *SQLiteManager) Open(id string) Store {
	return &sqliteStore{m: m, id: id}
}

// Purge removes values not written since olderThan ago and returns how
// many rows went.
func (m *SQLiteManager) Purge(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UnixMilli()
	result, err := m.db.Exec(`DELETE FROM session_values WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return result.RowsAffected()
}

// StartCleanup purges stale sessions now and then every interval until
// Close.
func (m *SQLiteManager) StartCleanup(retention, interval time.Duration) {
	cleanup := func() {
		n, err := m.Purge(retention)
		if err != nil {
			m.logger.Printf("Error cleaning up sessions: %v", err)
			return
		}
		if n > 0 {
			m.logger.Printf("Session cleanup: removed %d values older than %s", n, retention)
		}
	}

	go func() {
		cleanup()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cleanup()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *SQLiteManager) Close() error {
	select {
	case <-m.stop:
	default:
		close(m.stop)
	}
	return m.db.Close()
}

// sqliteStore logs storage failures and reports them as absent values,
// which keeps every gate closed.
type sqliteStore struct {
	m  *SQLiteManager
	id string
}

func (s *sqliteStore) Get(key string) (string, bool) {
	var value string
	err := s.m.db.QueryRow(
		`SELECT value FROM session_values WHERE session_id = ? AND key = ?`,
		s.id, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.m.logger.Printf("Error reading session value %s: %v", key, err)
		return "", false
	}
	return value, true
}

func (s *sqliteStore) Set(key, value string) {
	_, err := s.m.db.Exec(`
		INSERT INTO session_values (session_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.id, key, value, time.Now().UnixMilli())
	if err != nil {
		s.m.logger.Printf("Error writing session value %s: %v", key, err)
	}
}

func (s *sqliteStore) Delete(key string) {
	_, err := s.m.db.Exec(`DELETE FROM session_values WHERE session_id = ? AND key = ?`, s.id, key)
	if err != nil {
		s.m.logger.Printf("Error deleting session value %s: %v", key, err)
	}
}
