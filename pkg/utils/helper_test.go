package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		expected     int
	}{
		{"valid number", "5", 1, 5},
		{"empty uses default", "", 10, 10},
		{"garbage uses default", "abc", 10, 10},
		{"zero uses default", "0", 10, 10},
		{"negative uses default", "-3", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseInt(tc.value, tc.defaultValue))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDate("2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, 2025, date.Year())
		assert.Equal(t, time.June, date.Month())
		assert.Equal(t, 2, date.Day())
	})

	t.Run("wrong format", func(t *testing.T) {
		_, err := ParseDate("02-06-2025")
		assert.ErrorContains(t, err, "invalid date")
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date     string
		expected int
	}{
		{"2025-06-01", 0}, // Sunday
		{"2025-06-02", 1}, // Monday
		{"2025-06-07", 6}, // Saturday
	}

	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			date, err := ParseDate(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, Weekday(date))
		})
	}
}
