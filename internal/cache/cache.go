package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the key/value contract shared by the saved-articles collection and
// the enrichment cache. Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// DB is a Store backed by a single SQLite file.
type DB struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

var _ Store = (*DB)(nil)

func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	db := &DB{writeDB: writeDB}
	if err := db.init(); err != nil {
		db.Close()
		return nil, err
	}

	// The read handle is opened after the schema exists so mode=ro never
	// sees a missing file.
	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}
	db.readDB = readDB
	return db, nil
}

func (d *DB) init() error {
	_, err := d.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (d *DB) Close() error {
	var errs []error
	if d.readDB != nil {
		errs = append(errs, d.readDB.Close())
	}
	if d.writeDB != nil {
		errs = append(errs, d.writeDB.Close())
	}
	return errors.Join(errs...)
}

func (d *DB) Get(key string) (string, bool, error) {
	var value string
	err := d.readDB.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (d *DB) Set(key, value string) error {
	_, err := d.writeDB.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// CountPrefix returns how many keys start with prefix.
func (d *DB) CountPrefix(prefix string) (int, error) {
	var n int
	err := d.readDB.QueryRow("SELECT COUNT(*) FROM kv WHERE substr(key, 1, ?) = ?", len(prefix), prefix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s keys: %w", prefix, err)
	}
	return n, nil
}

// Size returns the on-disk size of the database file in bytes.
func Size(dbPath string) (int64, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
