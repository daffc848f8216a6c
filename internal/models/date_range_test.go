package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	t.Parallel()

	r, err := NewDateRange("2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), r.End)
}

func TestNewDateRange_SingleDay(t *testing.T) {
	t.Parallel()

	r, err := NewDateRange("2024-06-01", "2024-06-01")
	require.NoError(t, err)
	assert.True(t, r.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNewDateRange_InvalidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "malformed start", start: "June 1st", end: "2024-06-30"},
		{name: "malformed end", start: "2024-06-01", end: "30/06/2024"},
		{name: "empty start", start: "", end: "2024-06-30"},
		{name: "timestamp instead of date", start: "2024-06-01T10:00:00Z", end: "2024-06-30"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewDateRange(tt.start, tt.end)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestNewDateRange_StartAfterEnd(t *testing.T) {
	t.Parallel()

	_, err := NewDateRange("2024-07-01", "2024-06-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDateRange_Contains(t *testing.T) {
	t.Parallel()

	r, err := NewDateRange("2024-06-01", "2024-06-30")
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{
			name:     "inside the range",
			input:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "on the start boundary",
			input:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "on the end boundary",
			input:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "end boundary with time of day",
			input:    time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
			expected: true,
		},
		{
			name:     "day before the range",
			input:    time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "day after the range",
			input:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, r.Contains(tt.input))
		})
	}
}
