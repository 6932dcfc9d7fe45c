package postgres

import "time"

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

// clampLimit bounds pageable feeds at 200 rows. A negative limit selects an
// unbounded scan (SQL LIMIT NULL), used for full-day aggregation.
func clampLimit(limit int) interface{} {
	if limit < 0 {
		return nil
	}
	if limit == 0 || limit > 200 {
		return 200
	}
	return limit
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
