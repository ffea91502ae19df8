package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the driver duty state.
type Status int

const (
	StatusUnknown Status = iota
	Available
	OnRoute
	OffDuty
	OnLeave
)

func statusNames() map[Status]string {
	return map[Status]string{
		Available: "Available",
		OnRoute:   "OnRoute",
		OffDuty:   "OffDuty",
		OnLeave:   "OnLeave",
	}
}

// ParseStatus resolves a driver status from its display name.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames() {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"driver status",
		fmt.Errorf("%q is not a valid driver status (Available, OnRoute, OffDuty, OnLeave)", name),
	)
}

// Validate rejects values outside the duty-state set.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver status",
			fmt.Errorf("%d is not a valid driver status", s),
		)
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (s Status) String() string {
	if n, ok := statusNames()[s]; ok {
		return n
	}
	return "Unknown"
}
