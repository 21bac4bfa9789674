// package repositories provides persistence layer implementations for the showcase.
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KeyValueRepository stores string values by key in the local_storage table.
type KeyValueRepository struct {
	db *sql.DB
}

// StoredValue is a row of the local_storage table.
type StoredValue struct {
	Key       string    `json:"key"`
	Value     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewKeyValueRepository creates a new KeyValueRepository with the given database connection
func NewKeyValueRepository(db *sql.DB) *KeyValueRepository {
	return &KeyValueRepository{db: db}
}

// Get returns the value stored under key. ok is false when the key has never been set.
func (r *KeyValueRepository) Get(key string) (value string, ok bool, err error) {
	err = r.db.QueryRow("SELECT value FROM local_storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Describe returns the full row for key, including timestamps.
func (r *KeyValueRepository) Describe(key string) (*StoredValue, error) {
	var sv StoredValue
	err := r.db.QueryRow(
		"SELECT key, value, created_at, updated_at FROM local_storage WHERE key = ?", key,
	).Scan(&sv.Key, &sv.Value, &sv.CreatedAt, &sv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return &sv, nil
}

// Set overwrites the value stored under key, creating the row when needed.
func (r *KeyValueRepository) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("storage key must not be empty")
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO local_storage (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, value, now, now); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *KeyValueRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM local_storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order.
func (r *KeyValueRepository) Keys() ([]string, error) {
	rows, err := r.db.Query("SELECT key FROM local_storage ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return keys, nil
}
