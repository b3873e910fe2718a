// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-art-vault/internal/logger"
)

// sqliteKV is the [KVStore] backed by the "kv" table of the record
// database.
type sqliteKV struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteKV constructs a [KVStore] over db. The schema must already be
// migrated.
func NewSQLiteKV(db *DB, logger *logger.Logger) KVStore {
	return &sqliteKV{
		DB:     db,
		logger: logger,
	}
}

// Get implements [KVStore].
func (s *sqliteKV) Get(ctx context.Context, key string) (Entry, error) {
	query, args, err := buildGetQuery(key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Get").
			Str("key", key).
			Msg("failed to create query")
		return Entry{}, err
	}

	var (
		value     []byte
		expiresAt sql.NullInt64
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Get").
			Str("key", key).
			Msg("failed to read kv row")
		return Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	e := Entry{Value: value}
	if expiresAt.Valid {
		e.ExpiresAt = time.UnixMilli(expiresAt.Int64)
	}

	return e, nil
}

// Put implements [KVStore]. An existing key is overwritten in place.
func (s *sqliteKV) Put(ctx context.Context, key string, e Entry) error {
	query, args, err := buildPutQuery(key, e)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Put").
			Str("key", key).
			Msg("failed to create query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Put").
			Str("key", key).
			Msg("failed to upsert kv row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete implements [KVStore].
func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteQuery(key)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.Delete").
			Str("key", key).
			Msg("failed to delete kv row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// PurgeExpired implements [KVStore].
func (s *sqliteKV) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildPurgeQuery(now)
	if err != nil {
		return 0, err
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKV.PurgeExpired").
			Time("now", now).
			Msg("failed to purge expired kv rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}
