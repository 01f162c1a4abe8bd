// Package contact validates and normalizes contact form submissions.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length limits, in runes.
const (
	NameMin     = 2
	NameMax     = 100
	EmailMax    = 254
	ServiceMax  = 100
	MessageMin  = 10
	MessageMax  = 1000
	PhoneDigits = 10
)

// Form is a raw contact form submission. Website is the honeypot field: it is
// hidden from people and only bots fill it in.
type Form struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
	Website string `json:"website" form:"website"`
}

// FieldErrors maps a form field name to a human-readable problem.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks field constraints and returns nil when the form is acceptable.
func Validate(f Form) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errs["name"] = "Please enter your name."
	case n < NameMin:
		errs["name"] = fmt.Sprintf("Name must be at least %d characters.", NameMin)
	case n > NameMax:
		errs["name"] = fmt.Sprintf("Name must be at most %d characters.", NameMax)
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = "Please enter your email address."
	case len(email) > EmailMax || !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address."
	}

	if strings.TrimSpace(f.Phone) != "" {
		if _, ok := PhoneDigitsOf(f.Phone); !ok {
			errs["phone"] = "Please enter a 10-digit phone number."
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.Service)) > ServiceMax {
		errs["service"] = fmt.Sprintf("Service must be at most %d characters.", ServiceMax)
	}

	message := strings.TrimSpace(f.Message)
	switch n := utf8.RuneCountInString(message); {
	case n == 0:
		errs["message"] = "Please enter a message."
	case n < MessageMin:
		errs["message"] = fmt.Sprintf("Message must be at least %d characters.", MessageMin)
	case n > MessageMax:
		errs["message"] = fmt.Sprintf("Message must be at most %d characters.", MessageMax)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// PhoneDigitsOf strips common formatting and an optional US country code,
// returning the 10 remaining digits.
func PhoneDigitsOf(phone string) (string, bool) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		case r == '+' && i == 0:
		default:
			return "", false
		}
	}
	digits := b.String()
	if len(digits) == PhoneDigits+1 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != PhoneDigits {
		return "", false
	}
	return digits, true
}

// Normalize trims every field and formats a valid phone as (XXX) XXX-XXXX.
// Callers should Validate first.
func Normalize(f Form) Form {
	out := Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Service: strings.TrimSpace(f.Service),
		Message: strings.TrimSpace(f.Message),
		Website: strings.TrimSpace(f.Website),
	}
	if d, ok := PhoneDigitsOf(out.Phone); ok {
		out.Phone = fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	}
	return out
}

// IsSpam reports whether the honeypot field was filled in.
func IsSpam(f Form) bool {
	return strings.TrimSpace(f.Website) != ""
}
