// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns an isolated in-memory sqlite database migrated with models.
func Open(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// keep the shared in-memory database alive for the whole test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) > 0 {
		if err := conn.AutoMigrate(models...); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
	}
	return conn
}

// SeedIDs inserts bare rows with ids into table, creating it with only an id
// column when it does not exist. It stands in for referenced tables a test
// does not otherwise need.
func SeedIDs(t testing.TB, db *gorm.DB, table string, ids ...uint64) {
	t.Helper()

	if !db.Migrator().HasTable(table) {
		if err := db.Exec(fmt.Sprintf("CREATE TABLE %q (id INTEGER PRIMARY KEY)", table)).Error; err != nil {
			t.Fatalf("failed to create %s: %v", table, err)
		}
	}
	for _, id := range ids {
		if err := db.Table(table).Create(map[string]any{"id": id}).Error; err != nil {
			t.Fatalf("failed to seed %s: %v", table, err)
		}
	}
}
