// Package sqlitetest opens an in-memory database carrying the service schema,
// for query and HTTP tests that do not need a postgres container.
package sqlitetest

import (
	"testing"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated database private to the calling test.
// It is closed when the test finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgresadapter.AutoMigrate(db))
	return db
}
