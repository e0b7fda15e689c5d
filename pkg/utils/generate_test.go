package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingCode(t *testing.T) {
	pattern := regexp.MustCompile(`^GRG-\d{8}-\d{6}-\d{4}$`)

	for i := 0; i < 10; i++ {
		code := GenerateBookingCode()
		assert.Regexp(t, pattern, code)
	}
}
