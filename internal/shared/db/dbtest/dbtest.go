// Package dbtest opens throwaway in-memory SQLite stores for repository and
// handler tests. TranslateError keeps the duplicate guard behavior identical
// to Postgres; foreign keys are switched on so cascades fire.
package dbtest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gassama94/drf-api/internal/migrate"
	"github.com/gassama94/drf-api/internal/shared/db"
)

func Open(t *testing.T) *db.Store {
	t.Helper()
	g, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// A single connection pins the pool to the one in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := &db.Store{DB: g}
	if err := migrate.AutoMigrateAll(store); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}
