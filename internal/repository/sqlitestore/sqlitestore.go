package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB holds collection blobs in a SQLite database, one row per collection.
// Each collection keeps the same load-all/save-all contract as the flat-file
// backend; SQLite only makes the individual save durable and atomic, it does
// not add isolation between concurrent read-modify-write sequences.
type DB struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the database at path and prepares the collections
// table. It enables WAL mode and limits the pool to a single connection.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(),
		`CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			data BLOB NOT NULL
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sqlDB.Close()
}

// Collection returns the named collection. Collections spring into existence
// on first save.
func (d *DB) Collection(name string) *Collection {
	return &Collection{db: d.sqlDB, name: name}
}

// Collection implements domain.Collection backed by a single SQLite row.
type Collection struct {
	db   *sql.DB
	name string
}

func (c *Collection) LoadAll(ctx context.Context) ([]byte, error) {
	var data []byte
	err := c.db.QueryRowContext(ctx,
		"SELECT data FROM collections WHERE name = ?", c.name,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", c.name, err)
	}
	return data, nil
}

func (c *Collection) SaveAll(ctx context.Context, data []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO collections (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		c.name, data,
	)
	if err != nil {
		return fmt.Errorf("save collection %s: %w", c.name, err)
	}
	return nil
}
