// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and reads polls.

# Opening

Open picks a driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go), or github.com/mattn/go-sqlite3
    when built with -tags cgo_sqlite

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

  - poll: id, question, pub_date

Rows are written by an external admin tool. This package never inserts,
updates or deletes.

# Queries

PollStore.LatestPolls backs the "latest polls" sidebar:

	polls, err := db.NewPollStore(conn).LatestPolls(ctx, models.SidebarLimit)

Ordering is pub_date descending, then id descending for equal dates.
*/
package db
