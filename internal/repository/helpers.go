package repository

import "time"

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

// timeToString formats a time for SQLite storage.
func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// stringToTime parses a stored RFC3339 timestamp, zero time on failure.
func stringToTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
