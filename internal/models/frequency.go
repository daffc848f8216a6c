package models

import (
	"fmt"
	"time"
)

// Frequency is the bucket size used to resample registrations over time.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func NewFrequencyFromString(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("invalid frequency: %q (expected daily, weekly or monthly)", s)
	}
}

// BucketStart truncates t to the start of its bucket: the calendar day for
// daily, the Monday of the ISO week for weekly, the first of the month for
// monthly.
func (f Frequency) BucketStart(t time.Time) time.Time {
	utc := t.UTC()

	switch f {
	case FrequencyDaily:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	case FrequencyWeekly:
		day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week started the previous Monday
		}
		return day.AddDate(0, 0, -(weekday - 1))

	case FrequencyMonthly:
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	panic(fmt.Sprintf("invalid Frequency: %q", f))
}

// BucketKey formats the bucket start as the period key used in results.
func (f Frequency) BucketKey(t time.Time) string {
	return f.BucketStart(t).Format(DateLayout)
}
