// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteKV(t *testing.T) (KVStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteKV(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

var (
	getSQL    = regexp.QuoteMeta("SELECT value, expires_at FROM kv WHERE key = ?")
	putSQL    = regexp.QuoteMeta("INSERT INTO kv (key,value,expires_at) VALUES (?,?,?) ON CONFLICT(key)")
	deleteSQL = regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")
	purgeSQL  = regexp.QuoteMeta("DELETE FROM kv WHERE (expires_at IS NOT NULL AND expires_at <= ?)")
)

// ── Get ─────────────────────────────────────────────────────────────────────

func TestSQLiteKV_Get_WithExpiry(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(getSQL).
		WithArgs("ensCache_0xabc").
		WillReturnRows(sqlmock.NewRows([]string{"value", "expires_at"}).
			AddRow([]byte(`{"name":"alice.eth"}`), int64(1700000000000)))

	e, err := kv.Get(context.Background(), "ensCache_0xabc")

	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"alice.eth"}`), e.Value)
	assert.True(t, e.ExpiresAt.Equal(time.UnixMilli(1700000000000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_NoExpiry(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(getSQL).
		WithArgs("vaultRoot_0xabc").
		WillReturnRows(sqlmock.NewRows([]string{"value", "expires_at"}).
			AddRow([]byte(`{}`), nil))

	e, err := kv.Get(context.Background(), "vaultRoot_0xabc")

	require.NoError(t, err)
	assert.True(t, e.ExpiresAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_NotFound(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(getSQL).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value", "expires_at"}))

	_, err := kv.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_QueryError(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectQuery(getSQL).WillReturnError(sql.ErrConnDone)

	_, err := kv.Get(context.Background(), "k")

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

// ── Put ─────────────────────────────────────────────────────────────────────

func TestSQLiteKV_Put(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)
	expires := time.UnixMilli(1700000000000)

	mock.ExpectExec(putSQL).
		WithArgs("ensCache_0xabc", []byte(`{}`), int64(1700000000000)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Put(context.Background(), "ensCache_0xabc", Entry{Value: []byte(`{}`), ExpiresAt: expires})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Put_NoExpiry(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(putSQL).
		WithArgs("vaultRoot_0xabc", []byte(`{}`), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Put(context.Background(), "vaultRoot_0xabc", Entry{Value: []byte(`{}`)})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Put_Error(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(putSQL).WillReturnError(assert.AnError)

	err := kv.Put(context.Background(), "k", Entry{Value: []byte(`1`)})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── Delete / PurgeExpired ───────────────────────────────────────────────────

func TestSQLiteKV_Delete(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(deleteSQL).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_PurgeExpired(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)
	now := time.UnixMilli(5000)

	mock.ExpectExec(purgeSQL).
		WithArgs(int64(5000)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := kv.PurgeExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_PurgeExpired_Error(t *testing.T) {
	kv, mock := newTestSQLiteKV(t)

	mock.ExpectExec(purgeSQL).WillReturnError(assert.AnError)

	_, err := kv.PurgeExpired(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
