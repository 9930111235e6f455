package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"
)

// IST is the fixed storefront time zone (UTC+5:30). Every customer-facing and
// sheet-facing timestamp is rendered in it, regardless of server locale: the
// sheet-side automation parses these strings.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// GenerateOrderID returns an id of the form ORD-YYYYMMDD-XXXXX: the IST date
// stamp plus a 5-digit random suffix. Sortable by day, unique per day with
// overwhelming probability for a single storefront's volume.
func GenerateOrderID() string {
	date := time.Now().In(IST).Format("20060102")
	return fmt.Sprintf("ORD-%s-%05d", date, randomInt(100000))
}

// GenerateUserID derives the Users-sheet key from a phone number. Same phone,
// same id: the sheet upserts on it.
func GenerateUserID(phone string) string {
	return "USR-" + phone
}

// FormatSheetTime renders a timestamp the way the Orders/Users sheets expect:
// YYYY-MM-DD H:MM AM/PM in IST, hour unpadded.
func FormatSheetTime(t time.Time) string {
	return t.In(IST).Format("2006-01-02 3:04 PM")
}

// DigitsOnly strips everything but 0-9, for WhatsApp addresses.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken; fall
		// back to a time-derived suffix rather than a constant.
		return time.Now().UnixNano() % max
	}
	return n.Int64()
}
