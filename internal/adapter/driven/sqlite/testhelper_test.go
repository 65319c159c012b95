package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated ledger database that lives in memory for the
// duration of the test. The writer and reader pools reach the same database
// through a shared cache named after the test.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Subtest names contain slashes; escape them for the URI.
	dsn := fmt.Sprintf(
		"file:ledger-%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(t.Name()),
	)

	open := func(maxConns int) *sql.DB {
		conn, err := sql.Open("sqlite", dsn)
		require.NoError(t, err)
		conn.SetMaxOpenConns(maxConns)
		require.NoError(t, conn.PingContext(t.Context()))
		return conn
	}

	db := &DB{Writer: open(1), path: dsn}
	db.Reader = open(4)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer))
	return db
}
