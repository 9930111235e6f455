package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{5}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	// 5 random digits: 100 draws colliding would mean a broken generator.
	assert.Greater(t, len(seen), 95)
}

func TestGenerateUserID_Deterministic(t *testing.T) {
	assert.Equal(t, "USR-9876543210", GenerateUserID("9876543210"))
	assert.Equal(t, GenerateUserID("9876543210"), GenerateUserID("9876543210"))
}

func TestFormatSheetTime(t *testing.T) {
	// 07:35 UTC = 13:05 IST.
	instant := time.Date(2026, 8, 28, 7, 35, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28 1:05 PM", FormatSheetTime(instant))

	// Midnight IST renders as 12 AM, hour unpadded, minutes padded.
	midnight := time.Date(2026, 8, 27, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28 12:00 AM", FormatSheetTime(midnight))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "918695902696", DigitsOnly("+91 86959-02696"))
	assert.Equal(t, "", DigitsOnly("abc"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 70.0, Round2(70.004))
	assert.Equal(t, 70.01, Round2(70.006))
	assert.Equal(t, 685.5, Round2(685.5))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "40", FormatAmount(40))
	assert.Equal(t, "40.5", FormatAmount(40.5))
	assert.Equal(t, "685.55", FormatAmount(685.55))
}
