// Package testutil provides helpers shared by package tests.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"usersvc/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a throwaway SQLite database with the service schema applied.
// A single connection is used so transactions serialize the way a row-locking
// database would for the tests' access patterns.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "usersvc.db")
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

// FailOn installs a trigger that aborts every matching statement on table,
// e.g. FailOn(t, db, "INSERT", "profiles"). The returned func removes it.
func FailOn(t testing.TB, db *gorm.DB, op, table string) func() {
	t.Helper()

	name := fmt.Sprintf("fail_%s_%s", op, table)
	stmt := fmt.Sprintf(
		"CREATE TRIGGER %s BEFORE %s ON %s BEGIN SELECT RAISE(ABORT, 'injected failure'); END",
		name, op, table,
	)
	require.NoError(t, db.Exec(stmt).Error)

	return func() {
		require.NoError(t, db.Exec("DROP TRIGGER IF EXISTS "+name).Error)
	}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)

	return n
}
