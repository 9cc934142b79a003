// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by the store and the views.

# Domain Types

  - Poll: id, question and publication date. Read-only here; rows are
    created and deleted by an external admin interface.

# Constants

	SidebarLimit = 5

SidebarLimit caps the "latest polls" list attached to sidebar pages.
*/
package models
