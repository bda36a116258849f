package query

import (
	"regexp"
	"time"

	"github.com/obsnetwork/geomagws/internal/errs"
)

// dataTypes are the processing levels a request may name instead of a raw
// location code.
var dataTypes = []string{"variation", "adjusted", "quasi-definitive", "definitive"}

// locationCodePattern matches direct two-character location code overrides.
var locationCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]$`)

// validateEnumerated checks that value is a member of allowed. Callers
// normalize case before calling.
func validateEnumerated(field, value string, allowed []string) (string, error) {
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", errs.BadRequestf("Bad %s value %q", field, value)
}

// timeLayouts are tried in order when parsing user supplied times. All
// inputs are interpreted as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102150405",
	"20060102",
}

// parseTime converts a user supplied time string into a UTC instant.
func parseTime(field, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.BadRequestf("Bad %s value %q: unable to parse time", field, value)
}
