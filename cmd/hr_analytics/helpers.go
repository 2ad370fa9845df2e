package main

import (
	"fmt"
	"time"

	"github.com/jonathan/hr-analytics/internal/types"
)

// parseAsOf parses a YYYY-MM-DD reference date. An empty value means
// today in UTC, truncated to midnight.
func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse(types.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of value %q: expected YYYY-MM-DD", raw)
	}
	return t, nil
}
