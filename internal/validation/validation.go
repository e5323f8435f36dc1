// Package validation checks registration input field by field.
//
// Every rule is a pure function over the raw string the user typed. Form
// types run the rules in a fixed order and stop at the first failure, so a
// single message is surfaced per attempt.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// MinPhoneDigits is the fewest digits a phone number may carry.
const MinPhoneDigits = 10

// Age and year bounds for birth dates.
const (
	MinAge  = 10
	MaxAge  = 120
	MinYear = 1900
)

// DateLayout is the calendar date format birth dates are entered in.
const DateLayout = time.DateOnly

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s()+-]+$`)
)

// FullName accepts a name made of at least two whitespace-separated words.
func FullName(name string) bool {
	words := strings.Fields(strings.TrimSpace(name))
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if w == "" {
			return false
		}
	}
	return true
}

// Email accepts local@domain.tld with no spaces and a single @.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Phone accepts digits, spaces, parentheses, hyphens and plus signs, with
// at least MinPhoneDigits digits.
func Phone(phone string) bool {
	return phonePattern.MatchString(phone) && countDigits(phone) >= MinPhoneDigits
}

// BirthDate accepts a YYYY-MM-DD date not after now, in [MinYear, now's
// year], for someone aged MinAge to MaxAge years on now's date.
func BirthDate(value string, now time.Time) bool {
	if value == "" {
		return false
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return false
	}

	year, month, day := parsed.Date()
	if year < MinYear || year > now.Year() {
		return false
	}

	age := Age(parsed, now)
	if age < MinAge || age > MaxAge {
		return false
	}

	birth := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return !birth.After(now)
}

// Age returns completed years between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Password accepts passwords of at least MinPasswordLength characters.
func Password(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// PasswordConfirmation accepts a confirmation equal to the password.
func PasswordConfirmation(password, confirmation string) bool {
	return password == confirmation
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
