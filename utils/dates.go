// utils/dates.go
package utils

import "time"

// DateString formats t as the YYYY-MM-DD form stored on service logs,
// usage records and notes.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}
