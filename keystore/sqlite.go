package keystore

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/PaynestHQ/paynest-mobile/utils"
)

// SQLite persists keys in a local database file. With an encryption key set,
// values are sealed with AES-GCM before they touch disk.
type SQLite struct {
	db  *sql.DB
	key []byte
}

// SQLiteOption configures the store.
type SQLiteOption func(*SQLite)

// WithEncryptionKey enables at-rest encryption. The key must be 32 bytes.
func WithEncryptionKey(key []byte) SQLiteOption {
	return func(s *SQLite) {
		s.key = key
	}
}

// OpenSQLite opens (or creates) the keystore at the given path. Use
// ":memory:" for a throwaway store.
func OpenSQLite(path string, opts ...SQLiteOption) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS keystore (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize keystore: %w", err)
	}

	s := &SQLite{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SQLite) Set(key, value string) error {
	if s.key != nil {
		sealed, err := utils.Encrypt(s.key, []byte(value))
		if err != nil {
			return err
		}
		value = sealed
	}

	_, err := s.db.Exec(`
		INSERT INTO keystore (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *SQLite) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM keystore WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if s.key != nil {
		plain, err := utils.Decrypt(s.key, value)
		if err != nil {
			return "", err
		}
		return string(plain), nil
	}
	return value, nil
}

func (s *SQLite) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM keystore WHERE key = ?`, key)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
