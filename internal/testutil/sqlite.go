// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync/atomic"
	"testing"

	"modernc.org/sqlite"

	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/enttest"
)

// The cgo-free sqlite driver registers itself as "sqlite", but the ent
// sqlite dialect dials "sqlite3". This shim bridges the two names and
// turns foreign key enforcement on, which sqlite leaves off per
// connection.
type sqlite3Driver struct {
	*sqlite.Driver
}

func (d sqlite3Driver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqlite3Driver{Driver: &sqlite.Driver{}})
}

var dbSeq atomic.Int64

// OpenEnt returns an ent client over a fresh in-memory database with
// the schema created. The client closes with the test.
func OpenEnt(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
