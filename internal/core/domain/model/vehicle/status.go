package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the operational state of a vehicle.
type Status int

const (
	StatusUnknown Status = iota
	Available
	InTransit
	UnderMaintenance
	OutOfService
)

func statusNames() map[Status]string {
	return map[Status]string{
		Available:        "Available",
		InTransit:        "InTransit",
		UnderMaintenance: "UnderMaintenance",
		OutOfService:     "OutOfService",
	}
}

// ParseStatus resolves a vehicle status from its display name.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames() {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle status",
		fmt.Errorf("%q is not a valid vehicle status (Available, InTransit, UnderMaintenance, OutOfService)", name),
	)
}

// Validate rejects values outside the operational-state set.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status",
			fmt.Errorf("%d is not a valid vehicle status", s),
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
