package repository

import (
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

// ErrNotFound is returned, wrapped, when a lookup matches no row.
var ErrNotFound = domain.ErrNotFound

// formatDay converts a date to its YYYY-MM-DD storage form.
func formatDay(t time.Time) string {
	return domain.Day(t).Format(domain.DateLayout)
}

// parseDay parses a stored YYYY-MM-DD column.
func parseDay(column, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// formatTimestamp converts a timestamp to RFC3339 UTC for storage.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamp parses a stored RFC3339 column.
func parseTimestamp(column, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
