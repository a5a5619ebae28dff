// Package database owns the process-wide persistence gateway: a single GORM
// handle over one pgx connection pool, shared by every request handler.
package database

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	db       *gorm.DB
	initOnce sync.Once
	initErr  error
)

// Init constructs the shared database handle and probes connectivity once.
// Safe to call multiple times; only the first call connects. The caller
// treats a returned error as fatal — there is no per-request retry.
func Init(databaseURL string, development bool) error {
	initOnce.Do(func() {
		logLevel := gormlogger.Warn
		if development {
			logLevel = gormlogger.Info
		}

		gormDB, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(logLevel),
		})
		if err != nil {
			initErr = fmt.Errorf("open database: %w", err)
			return
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			initErr = fmt.Errorf("unwrap sql.DB: %w", err)
			return
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(time.Hour)

		// One-shot startup probe. Failure here terminates the process.
		if err := sqlDB.Ping(); err != nil {
			initErr = fmt.Errorf("database connectivity probe: %w", err)
			return
		}

		db = gormDB
	})
	return initErr
}

// Get returns the shared handle. Panics when Init has not succeeded; every
// caller runs after Init in main, so a panic here is a programming error.
func Get() *gorm.DB {
	if db == nil {
		panic("database: Get called before successful Init")
	}
	return db
}
