package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateBookingCode creates a human-readable booking reference.
// Format: GRG-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingCode() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("GRG-%s-%s-%s", datePart, timePart, randomPart)
}
