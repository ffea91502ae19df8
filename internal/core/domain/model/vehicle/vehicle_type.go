package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type classifies a vehicle and carries its weight ceiling: the maximum
// weight capacity a vehicle of that type may declare.
type Type int

const (
	TypeUnknown Type = iota
	Motorcycle
	Van
	Pickup
	Truck
)

func typeNames() map[Type]string {
	return map[Type]string{
		Motorcycle: "Motorcycle",
		Van:        "Van",
		Pickup:     "Pickup",
		Truck:      "Truck",
	}
}

func typeWeightCeilings() map[Type]float64 {
	return map[Type]float64{
		Motorcycle: 300,
		Van:        3000,
		Pickup:     5000,
		Truck:      50000,
	}
}

// ParseType resolves a vehicle type from its display name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames() {
		if n == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type",
		fmt.Errorf("%q is not a valid vehicle type (Motorcycle, Van, Pickup, Truck)", name),
	)
}

// Validate rejects values outside the type set.
func (t Type) Validate() error {
	if _, ok := typeNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle type",
			fmt.Errorf("%d is not a valid vehicle type", t),
		)
	}
	return nil
}

// MaxWeightKg returns the weight ceiling for the type, 0 for invalid types.
func (t Type) MaxWeightKg() float64 {
	return typeWeightCeilings()[t]
}

// String returns the display name, or "Unknown" for invalid values.
func (t Type) String() string {
	if n, ok := typeNames()[t]; ok {
		return n
	}
	return "Unknown"
}
