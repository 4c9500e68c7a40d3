// Package rule holds the field-level validity checks for booking input.
//
// Every check is a pure function of its input, except ValidateDate which
// compares against the current day in the application timezone and can
// therefore give different answers on different days. None of the checks
// return errors: malformed input is simply invalid.
package rule

import (
	"propbook/shared/constant"
	"propbook/shared/timezone"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const phoneNumberLength = 10

// AllowedCities is the fixed set of cities bookings can be made in.
var AllowedCities = []string{"Delhi", "Bangalore"}

// ValidatePhone reports whether phoneNumber is exactly ten decimal digits.
func ValidatePhone(phoneNumber string) bool {
	if utf8.RuneCountInString(phoneNumber) != phoneNumberLength {
		return false
	}

	for _, r := range phoneNumber {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// NormalizeCity trims city and converts it to title case.
func NormalizeCity(city string) string {
	// cases.Caser is stateful, so a new one is built per call.
	return cases.Title(language.Und).String(strings.TrimSpace(city))
}

// ValidateCity reports whether the normalized city is one of AllowedCities.
func ValidateCity(city string) bool {
	return slices.Contains(AllowedCities, NormalizeCity(city))
}

// ValidateDate reports whether dateText is a DD-MM-YYYY calendar date that is
// today or later in the application timezone.
func ValidateDate(dateText string) bool {
	return ValidateDateAt(dateText, timezone.Today())
}

// ValidateDateAt is ValidateDate evaluated against the given clock reading.
func ValidateDateAt(dateText string, now time.Time) bool {
	date, err := timezone.Parse(constant.DateFormat, dateText)
	if err != nil {
		return false
	}

	return !date.Before(timezone.StartOfDay(now))
}

// ValidateName accepts any decoded JSON value. Only strings that are
// non-empty after trimming are valid; the trimmed string is returned.
func ValidateName(name any) (bool, string) {
	text, ok := name.(string)
	if !ok {
		return false, constant.Empty
	}

	trimmed := strings.TrimSpace(text)

	return len(trimmed) > 0, trimmed
}
