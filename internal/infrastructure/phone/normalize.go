package phone

import (
	"os"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "BR"

// NormalizeE164 formats a phone number to E.164 using PHONE_DEFAULT_REGION
// for numbers without a country code. Unparseable or invalid input is
// returned trimmed.
func NormalizeE164(input string) string {
	region := strings.ToUpper(strings.TrimSpace(os.Getenv("PHONE_DEFAULT_REGION")))
	if region == "" {
		region = defaultRegion
	}
	return NormalizeE164InRegion(input, region)
}

func NormalizeE164InRegion(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
