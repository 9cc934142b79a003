// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Supported DATABASE_TYPE values
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open opens a connection pool for the given database type.
// The SQLite driver is chosen at build time (see sqlite_native.go and sqlite_cgo.go).
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
		return sql.Open("postgres", url)
	case TypeSQLite:
		conn, err := sql.Open(sqliteDriver, url)
		if err != nil {
			return nil, err
		}
		// One writer at a time; also keeps ":memory:" databases on a single connection
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}
