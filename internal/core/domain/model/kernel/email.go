package kernel

import (
	"regexp"
	"strings"

	"logistics/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks that a value looks like an RFC-shaped email address.
func ValidateEmail(paramName, email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError(paramName)
	}
	return nil
}

// ValidateOptionalEmail applies ValidateEmail only when a value is present.
func ValidateOptionalEmail(paramName, email string) error {
	if email == "" {
		return nil
	}
	return ValidateEmail(paramName, email)
}

// EmailDomain returns the lower-cased domain part of an address, or an
// empty string when the address has no @.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
