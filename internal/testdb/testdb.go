// Package testdb hands out isolated in-memory SQLite databases for tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/monocle-dev/notebook/db"
	"gorm.io/gorm"
)

var counter atomic.Int64

// New returns a migrated database that lives until the test ends. Every call
// gets its own named in-memory database, so tests never see each other's rows.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:notebook_test_%d?mode=memory&cache=shared", counter.Add(1))

	conn, err := db.Connect(db.DriverSQLite, name)
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}

	if err := db.MigrateDatabase(conn); err != nil {
		t.Fatalf("migrate in-memory database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close(conn)
	})

	return conn
}
