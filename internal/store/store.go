package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// Fixed keys in the kv table. Bumping cardsKey invalidates previously saved
// collections: old data is simply orphaned under its old key, not migrated.
const (
	cardsKey      = "cards/v2"
	credentialKey = "credential/openai"

	// quarantineKey receives a corrupt collection payload before the store
	// fails open to an empty collection, so nothing is silently destroyed.
	quarantineKey = "cards/quarantine"
)

// Store is the persistence adapter. All access goes through a mutex: the
// expected collection is a small personal vocabulary list and every call is
// a full read or full write.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultPath returns the database location under the user state directory.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "lexicarte", "lexicarte.db")
}

// Open opens (and if needed creates) the store at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCards reads the whole collection from the fixed key. A missing key
// yields an empty collection. A corrupt payload is moved to the quarantine
// key and the store fails open to an empty collection.
func (s *Store) LoadCards() (card.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.get(cardsKey)
	if err == sql.ErrNoRows {
		return card.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	var cards card.Collection
	if err := json.Unmarshal(data, &cards); err != nil {
		fmt.Printf("Warning: stored collection is corrupt, starting empty: %v\n", err)
		if qerr := s.set(quarantineKey, data); qerr == nil {
			_ = s.delete(cardsKey)
		}
		return card.Collection{}, nil
	}

	return cards, nil
}

// SaveCards overwrites the whole collection under the fixed key.
func (s *Store) SaveCards(cards card.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cards == nil {
		cards = card.Collection{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	if err := s.set(cardsKey, data); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}

// Credential returns the stored generation-service credential, empty if none
// has been configured yet.
func (s *Store) Credential() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.get(credentialKey)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return string(data), nil
}

// SetCredential stores the generation-service credential.
func (s *Store) SetCredential(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set(credentialKey, []byte(key)); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

// Backup writes the current collection JSON to a timestamped file in dir and
// returns the file path.
func (s *Store) Backup(dir string) (string, error) {
	s.mu.Lock()
	data, err := s.get(cardsKey)
	s.mu.Unlock()

	if err == sql.ErrNoRows {
		data = []byte("[]")
	} else if err != nil {
		return "", fmt.Errorf("failed to read collection: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("lexicarte-cards-%s.json", timestamp))

	// Unlikely, but keep backups unique within the same second
	if _, err := os.Stat(path); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		path = filepath.Join(dir, fmt.Sprintf("lexicarte-cards-%s.json", timestamp))
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

func (s *Store) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	return value, err
}

func (s *Store) set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

func (s *Store) delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
