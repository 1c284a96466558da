package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// UUID validation (any RFC 4122 version)
func IsValidUUID(id string) bool {
	return uuidRegex.MatchString(strings.ToLower(id))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// NormalizePhone strips the separators people type into phone fields
// (spaces, dashes, dots, parentheses). It does not validate the result.
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
	return replacer.Replace(phone)
}

// IsValidPhone reports whether phone normalizes to exactly 10 digits.
func IsValidPhone(phone string) bool {
	normalized := NormalizePhone(phone)
	return len(normalized) == 10 && IsNumeric(normalized)
}

// ParseAmount parses a decimal money string. Empty input is allowed and
// reported via the second return so callers can treat it as "not provided".
func ParseAmount(s string) (decimal.Decimal, bool, error) {
	if IsEmpty(s) {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false, err
	}
	return d, true, nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
