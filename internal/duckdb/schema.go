// Package duckdb snapshots a generated question dataset into a DuckDB file.
package duckdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
)

// schemaDDL holds the DuckDB schema definition. Tables are recreated on
// every export so a database file always holds exactly one run.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing DuckDB databases.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the schema DDL on the provided connection.
func EnsureSchema(ctx context.Context, conn *sql.Conn) error {
	if conn == nil {
		return errors.New("duckdb: conn is nil")
	}
	_, err := conn.ExecContext(ctx, schemaDDL)
	return err
}
