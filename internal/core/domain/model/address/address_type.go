package address

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type distinguishes pickup from delivery addresses. The default-address
// invariant holds per (customer, Type) pair.
type Type int

const (
	TypeUnknown Type = iota
	Pickup
	Delivery
)

func typeNames() map[Type]string {
	return map[Type]string{
		Pickup:   "Pickup",
		Delivery: "Delivery",
	}
}

// ParseType resolves an address type from its display name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames() {
		if n == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"address type",
		fmt.Errorf("%q is not a valid address type (Pickup, Delivery)", name),
	)
}

// Validate rejects any value outside the Pickup/Delivery set.
func (t Type) Validate() error {
	if _, ok := typeNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"address type",
			fmt.Errorf("%d is not a valid address type", t),
		)
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (t Type) String() string {
	if n, ok := typeNames()[t]; ok {
		return n
	}
	return "Unknown"
}
