// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// funcMap returns the helpers available to both HTML and XML templates
func funcMap() map[string]any {
	return map[string]any{
		"naturaltime": humanize.Time,  // "3 days ago"
		"intcomma":    humanize.Comma, // 1234567 -> "1,234,567"
		"date":        formatDate,
		"rfc3339":     rfc3339,
		"lower":       strings.ToLower,
		"upper":       strings.ToUpper,
	}
}

// formatDate formats t with a Go layout, e.g. {{date "Jan 2, 2006" .PubDate}}
func formatDate(layout string, t time.Time) string {
	return t.Format(layout)
}

// Atom <updated> values
func rfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
