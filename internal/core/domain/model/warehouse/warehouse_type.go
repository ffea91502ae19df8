package warehouse

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type places a warehouse in the distribution hierarchy.
type Type int

const (
	TypeUnknown Type = iota
	Central
	Regional
	Local
)

func typeNames() map[Type]string {
	return map[Type]string{
		Central:  "Central",
		Regional: "Regional",
		Local:    "Local",
	}
}

// ParseType resolves a warehouse type from its display name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames() {
		if n == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"warehouse type",
		fmt.Errorf("%q is not a valid warehouse type (Central, Regional, Local)", name),
	)
}

// Validate rejects values outside the hierarchy set.
func (t Type) Validate() error {
	if _, ok := typeNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse type",
			fmt.Errorf("%d is not a valid warehouse type", t),
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
