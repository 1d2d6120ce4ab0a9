package testutil

import (
	"context"
	"testing"
	"time"
)

// ExportTimeout bounds a single test that opens DuckDB files.
const ExportTimeout = 10 * time.Second

// Context returns a context cancelled when t ends or after ExportTimeout.
func Context(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), ExportTimeout)
	t.Cleanup(cancel)
	return ctx
}
