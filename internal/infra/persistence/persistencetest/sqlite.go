// Package persistencetest opens migrated in-memory databases for repository tests.
package persistencetest

import (
	"context"
	"testing"
	"time"

	"madr/internal/infra/persistence/migrations"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a GORM handle over a private in-memory SQLite database with
// foreign keys enforced and every migration applied. It is closed when the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = migrations.Up(context.Background(), sqlDB, "sqlite3", nil)
	require.NoError(t, err)

	return db
}
