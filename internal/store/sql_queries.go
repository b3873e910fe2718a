// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable         = "kv"
	kvKeyColumn     = "key"
	kvValueColumn   = "value"
	kvExpiresColumn = "expires_at"

	kvUpsertSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at"
)

// expiresAtArg converts an expiry to the stored form: unix milliseconds, or
// NULL for entries that never expire.
func expiresAtArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixMilli()
}

func buildGetQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Select(kvValueColumn, kvExpiresColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildPutQuery(key string, e Entry) (string, []any, error) {
	query, args, err := sq.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvExpiresColumn).
		Values(key, e.Value, expiresAtArg(e.ExpiresAt)).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildPurgeQuery(now time.Time) (string, []any, error) {
	query, args, err := sq.
		Delete(kvTable).
		Where(sq.And{
			sq.NotEq{kvExpiresColumn: nil},
			sq.LtOrEq{kvExpiresColumn: now.UnixMilli()},
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
