package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAppointmentTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{
			name:     "offset date times",
			start:    "2024-01-15T09:00:00+05:30",
			end:      "2024-01-15T10:00:00+05:30",
			expected: "09:00 AM - 10:00 AM",
		},
		{
			name:     "afternoon in utc",
			start:    "2024-01-15T13:30:00Z",
			end:      "2024-01-15T14:15:00Z",
			expected: "01:30 PM - 02:15 PM",
		},
		{
			name:     "offset date times without seconds",
			start:    "2025-02-28T09:00Z",
			end:      "2025-02-28T10:30+05:30",
			expected: "09:00 AM - 10:30 AM",
		},
		{
			name:     "bare dates fall back to midnight",
			start:    "2024-01-15",
			end:      "2024-01-16",
			expected: "12:00 AM - 12:00 AM",
		},
		{
			name:     "invalid start",
			start:    "not-a-date",
			end:      "2024-01-15T10:00:00+05:30",
			expected: "Invalid start time - 10:00 AM",
		},
		{
			name:     "invalid end",
			start:    "2024-01-15T09:00:00+05:30",
			end:      "",
			expected: "09:00 AM - Invalid end time",
		},
		{
			name:     "both invalid",
			start:    "yesterday",
			end:      "tomorrow",
			expected: "Invalid date range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAppointmentTimeRange(tt.start, tt.end))
		})
	}
}

func TestParseAppointmentTime(t *testing.T) {
	parsed, err := ParseAppointmentTime(" 2024-01-15 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseAppointmentTime("2025-02-28T09:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 28, 9, 0, 0, 0, time.UTC), parsed.UTC())

	_, err = ParseAppointmentTime("15/01/2024")
	assert.Error(t, err)
}
