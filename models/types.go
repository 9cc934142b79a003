// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// SidebarLimit is how many polls the "latest polls" sidebar shows
const SidebarLimit = 5

// Domain types

// Poll is managed by an external admin tool; this service only reads it.
type Poll struct {
	ID       int64     `json:"id"`
	Question string    `json:"question"`
	PubDate  time.Time `json:"pub_date"`
}
