package utils

import (
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// CivilDate returns the calendar day of t as seen in loc, encoded as midnight UTC.
// This is the form stored in DATE columns and compared for equality.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDay reads raw as a calendar day. A plain YYYY-MM-DD value is taken
// as that day; a timestamp is converted to its day in loc. The result is a civil
// date as returned by CivilDate.
func ParseCalendarDay(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, true
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		// no offset: the wall clock is already in loc
		if t, err = time.ParseInLocation(localDateTimeLayout, raw, loc); err != nil {
			return time.Time{}, false
		}
	}
	return CivilDate(t, loc), true
}

// StartOfDay returns the instant at which t's calendar day begins in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// MonthBounds returns [start, end) of the calendar month containing t in loc.
func MonthBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, _ := t.In(loc).Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// InclusiveDays counts the calendar days spanned by [start, end], both ends included.
// A partial day of difference rounds up to a whole day.
func InclusiveDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// RangesOverlap reports whether the closed intervals [aStart, aEnd] and [bStart, bEnd]
// share at least one instant.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr is FormatDate for optional values.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// FormatTimestamp renders t as RFC3339 in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTimestampPtr is FormatTimestamp for optional values.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}
