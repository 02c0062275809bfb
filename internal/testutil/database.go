// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"movie-demo/internal/config"
	"movie-demo/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
)

// NewDatabase returns a migrated in-memory SQLite store. The pool is pinned
// to a single connection so every query sees the same memory database.
func NewDatabase(t testing.TB) *database.Database {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	}, Logger())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// Logger returns a logger that discards everything below error level.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.ErrorLevel)
	return log
}
