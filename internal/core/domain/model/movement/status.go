package movement

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the handling state of a movement record. Only two transitions
// are enforced in practice: a record is Received on entry and Dispatched on
// exit; InStorage and Processing are informational intermediate states.
type Status int

const (
	StatusUnknown Status = iota
	Received
	InStorage
	Processing
	Dispatched
)

func statusNames() map[Status]string {
	return map[Status]string{
		Received:   "Received",
		InStorage:  "InStorage",
		Processing: "Processing",
		Dispatched: "Dispatched",
	}
}

// ParseStatus resolves a movement status from its display name.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames() {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"movement status",
		fmt.Errorf("%q is not a valid movement status (Received, InStorage, Processing, Dispatched)", name),
	)
}

// Validate rejects values outside the handling-state set.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"movement status",
			fmt.Errorf("%d is not a valid movement status", s),
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
