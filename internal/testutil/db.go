// Package testutil holds helpers shared by the package test suites.
package testutil

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MustOpenDB opens an in-memory SQLite database for handler tests and
// migrates the given models. The pool is pinned to a single connection:
// every pooled connection to ":memory:" would otherwise see its own
// empty database.
func MustOpenDB(models ...interface{}) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal("failed to open test database: ", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB: ", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := gdb.AutoMigrate(models...); err != nil {
			log.Fatal("failed to migrate test models: ", err)
		}
	}
	return gdb
}
