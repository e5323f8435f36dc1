package validation

import "regexp"

// Keystroke filters. The name filter keeps ASCII letters, Latin-1 accented
// letters (U+00C0..U+00FF) and whitespace; the phone filter keeps the same
// characters Phone accepts.
var (
	nameRejected  = regexp.MustCompile(`[^a-zA-Z\x{00C0}-\x{00FF}\s]`)
	phoneRejected = regexp.MustCompile(`[^\d\s()+-]`)
)

// SanitizeName strips everything but letters and whitespace.
func SanitizeName(value string) string {
	return nameRejected.ReplaceAllString(value, "")
}

// SanitizePhone strips everything but digits, spaces, parentheses, hyphens and plus signs.
func SanitizePhone(value string) string {
	return phoneRejected.ReplaceAllString(value, "")
}

// Sanitize applies the filter registered for field. Fields without a
// filter are returned unchanged.
func Sanitize(field Field, value string) string {
	switch field {
	case FieldName:
		return SanitizeName(value)
	case FieldPhone:
		return SanitizePhone(value)
	default:
		return value
	}
}
