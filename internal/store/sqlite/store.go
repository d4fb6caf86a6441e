// Package sqlite implements the durable Event/Snapshot Store (C9) plus the
// games, lobbies, users, and sessions tables from §6's persisted state
// layout, on top of a pure-Go SQLite driver. Adapted from
// internal/services/auth/storage/sqlite's Store shape (sql.DB + WAL pragmas
// + embedded-migration bootstrap), but migrations run through
// internal/platform/storage/sqlitemigrate instead of a hand-rolled re-run
// loop, since that package already exists and is shared across the other
// services' stores in the teacher tree.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/btuckerc/traderoads/internal/platform/storage/sqlitemigrate"
	"github.com/btuckerc/traderoads/internal/store/integrity"
	"github.com/btuckerc/traderoads/internal/store/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed implementation of the game core's persistence
// contracts: event/snapshot store, game and lobby records, and the user and
// session tables backing gateway authentication.
type Store struct {
	db      *sql.DB
	keyring *integrity.Keyring
}

// SetKeyring attaches the HMAC keyring used to sign each event's chain
// hash (§12 event chain hashing). Signing is optional: a Store with no
// keyring still computes and stores the unsigned content/chain hash, only
// the signature and signing_key_id columns stay empty.
func (s *Store) SetKeyring(k *integrity.Keyring) {
	s.keyring = k
}

// Open opens (creating if necessary) a SQLite database at path and applies
// every pending embedded migration.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying *sql.DB, used by tests that need to seed or
// inspect rows directly.
func (s *Store) DB() *sql.DB {
	return s.db
}
