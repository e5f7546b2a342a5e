package utils

import (
	"os"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats a phone number to E.164 when it can be parsed.
// Input that cannot be parsed is returned verbatim: intake must never
// reject a booking over a phone number it cannot read.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	region := os.Getenv("PHONE_REGION")
	if region == "" {
		region = "US"
	}

	num, err := phonenumbers.Parse(trimmed, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return trimmed
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
