package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO-8601, no time of day).
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = fmt.Errorf("invalid date: expected %s format", DateLayout)
	ErrInvalidRange = fmt.Errorf("invalid range: start date is after end date")
)

// DateRange is a closed calendar-date interval. Both bounds are inclusive:
// a record dated exactly on a boundary is inside the range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses two ISO-8601 date strings into a DateRange.
// Returns ErrInvalidDate for malformed dates and ErrInvalidRange when the
// start date is after the end date.
func NewDateRange(startDate, endDate string) (DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return DateRange{}, err
	}
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, startDate, endDate)
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDate parses an ISO-8601 calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// Contains reports whether t falls within the range, inclusive on both ends.
// Time-of-day components are truncated before comparison.
func (r DateRange) Contains(t time.Time) bool {
	day := t.UTC().Truncate(24 * time.Hour)
	return !day.Before(r.Start) && !day.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
