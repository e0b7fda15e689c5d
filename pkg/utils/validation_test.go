package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClockTime(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"09-30", false},
		{"09:3a", false},
		{"", false},
		{"09:30:00", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidClockTime(tc.value))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Name string `validate:"required,min=2"`
		Slot string `validate:"required,hhmm"`
	}

	t.Run("valid struct", func(t *testing.T) {
		errs := ValidateStruct(&sample{Name: "ok", Slot: "09:00"})
		assert.Nil(t, errs)
	})

	t.Run("invalid fields are reported by name", func(t *testing.T) {
		errs := ValidateStruct(&sample{Name: "x", Slot: "25:00"})
		assert.Contains(t, errs, "Name")
		assert.Contains(t, errs, "Slot")
	})
}
