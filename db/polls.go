// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/draem/models"
)

// PollStore is the read-only query side of the poll table
type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// LatestPolls returns up to limit polls, newest pub_date first.
// Polls sharing a pub_date are ordered by id, highest first.
func (s *PollStore) LatestPolls(ctx context.Context, limit int) ([]models.Poll, error) {
	polls := []models.Poll{}
	if limit <= 0 {
		return polls, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, pub_date
		FROM poll
		ORDER BY pub_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question, &p.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	return polls, nil
}
