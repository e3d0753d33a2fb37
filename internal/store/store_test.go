package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-server/internal/logger"
)

// newMockDB opens a sqlmock connection wrapped for dialect. monitorPings
// requires explicit ExpectPing calls.
func newMockDB(t *testing.T, dialect string, monitorPings bool) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(monitorPings))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, dialect, logger.Nop()), mock
}

func withZeroBackOff(t *testing.T) {
	t.Helper()

	prev := connectBackOff
	connectBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	t.Cleanup(func() { connectBackOff = prev })
}
