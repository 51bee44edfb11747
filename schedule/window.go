// Package schedule holds the route and report logic: calendar windows,
// day-group ordering, today's roster, missed-service detection and the
// weekly/monthly report tables. Everything here is pure; callers pass the
// reference time explicitly so behavior is deterministic under test.
package schedule

import "time"

const dateLayout = "2006-01-02"

// Window is a closed calendar-date interval used to bucket service logs and
// chemical usage records by week or month.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeekWindow returns the Monday..Sunday week containing now shifted by
// offset whole weeks. Offset 0 is the current week, negative offsets reach
// into the past.
func WeekWindow(now time.Time, offset int) Window {
	base := now.AddDate(0, 0, offset*7)
	wd := int(base.Weekday())
	if wd == 0 {
		wd = 7 // Sunday closes the week, it does not start one
	}
	start := time.Date(base.Year(), base.Month(), base.Day()-(wd-1), 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthWindow returns the first..last day of the month offset months from
// now's month.
func MonthWindow(now time.Time, offset int) Window {
	start := time.Date(now.Year(), time.Month(int(now.Month())+offset), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}

// ParseDate parses a YYYY-MM-DD string as a literal calendar date. The
// components are taken as-is; no time zone conversion is applied.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// ContainsDate reports whether the YYYY-MM-DD string falls inside the
// window, inclusive at both ends. Unparsable strings never match; callers
// skip the record rather than aborting the batch.
func (w Window) ContainsDate(s string) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

func (w Window) String() string {
	return w.Start.Format(dateLayout) + ".." + w.End.Format(dateLayout)
}
