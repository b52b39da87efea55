// Package storage opens the application's SQLite database with the
// connection settings shared by every module-owned handle.
package storage

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN appends the connection parameters used by all modules. WAL lets the
// per-module handles read while another writes, and the busy timeout covers
// the remaining write-write contention.
func DSN(path string) string {
	return path + "?_journal_mode=WAL&_busy_timeout=5000"
}

// Open opens the SQLite database at path with the application-wide GORM
// configuration. Unique violations are translated to gorm.ErrDuplicatedKey.
func Open(path string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	return gorm.Open(sqlite.Open(DSN(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
}
