package phone

import (
	"fmt"
	"strings"

	"stayledger/shared/failure"

	"github.com/ttacon/libphonenumber"
)

// Normalize returns the E.164 form of raw, reading national numbers in defaultRegion.
// An empty input normalizes to an empty string.
func Normalize(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	num, err := libphonenumber.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", failure.BadRequestFromString(fmt.Sprintf("invalid phone number %q", raw))
	}

	if !libphonenumber.IsValidNumber(num) {
		return "", failure.BadRequestFromString(fmt.Sprintf("invalid phone number %q", raw))
	}

	return libphonenumber.Format(num, libphonenumber.E164), nil
}
