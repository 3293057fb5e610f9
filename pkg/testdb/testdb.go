// Package testdb opens isolated in-memory databases for tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mayaya-dev/3awan-caferesto-api/configs"
	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var nameCleaner = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// Open returns a migrated sqlite database private to t. A single
// connection keeps the in-memory database alive for the whole test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", nameCleaner.Replace(t.Name()))
	db, err := configs.OpenDB(sqlite.Open(dsn), logger.Silent)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func Category(t testing.TB, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{CategoryName: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func Menu(t testing.TB, db *gorm.DB, categoryID uint, name string, price int64) *entity.Menu {
	t.Helper()
	m := &entity.Menu{MenuName: name, CategoryID: categoryID, Price: decimal.NewFromInt(price)}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create menu: %v", err)
	}
	return m
}

// SoftDelete marks a row deleted through gorm's soft-delete scope.
func SoftDelete(t testing.TB, db *gorm.DB, row any) {
	t.Helper()
	if err := db.Delete(row).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
}
