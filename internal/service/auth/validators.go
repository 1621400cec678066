package auth

import (
	"regexp"
	"strings"
	"time"
)

const (
	minPasswordLength = 6
	minClientAge      = 13
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Zimbabwean mobile numbers: nine digits starting with a known mobile prefix,
// optionally preceded by +263 or a leading zero.
var phonePrefixes = []string{"71", "73", "77", "78"}

func isValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func isValidPhone(phone string) bool {
	digits := strings.TrimPrefix(phone, "+263")
	digits = strings.TrimPrefix(digits, "0")

	if len(digits) != 9 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	for _, prefix := range phonePrefixes {
		if strings.HasPrefix(digits, prefix) {
			return true
		}
	}
	return false
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}

// ageAt computes full years between a yyyy-mm-dd birth date and now.
func ageAt(dateOfBirth string, now time.Time) (int, bool) {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0, false
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age, true
}
