package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

const (
	minPhoneLength = 7
	maxPhoneLength = 20
)

// ValidatePhone checks the shared phone rules: 7–20 characters and a
// charset of digits plus the usual separators (+, -, space, parentheses).
func ValidatePhone(paramName, phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(phone) < minPhoneLength || len(phone) > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError(paramName, len(phone), minPhoneLength, maxPhoneLength)
	}

	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return errs.NewValueIsInvalidErrorWithCause(
				paramName,
				fmt.Errorf("character %q is not allowed in a phone number", r),
			)
		}
	}
	return nil
}

// ValidateOptionalPhone applies ValidatePhone only when a value is present.
func ValidateOptionalPhone(paramName, phone string) error {
	if phone == "" {
		return nil
	}
	return ValidatePhone(paramName, phone)
}
