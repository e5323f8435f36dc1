package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SlotStore is a durable key-value store holding one value per key.
// Get returns (nil, nil) when the key is absent; Delete of a missing key is not an error.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SQLiteSlots stores slots in the slots table
type SQLiteSlots struct {
	db *DB
}

// NewSQLiteSlots creates a new slot repository
func NewSQLiteSlots(db *DB) *SQLiteSlots {
	return &SQLiteSlots{db: db}
}

// Get retrieves the value stored under key
func (r *SQLiteSlots) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot %s: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces the value stored under key
func (r *SQLiteSlots) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set slot %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *SQLiteSlots) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
