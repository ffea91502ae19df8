package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the shipment lifecycle state.
//
// The intended flow is linear:
//
//	Pending ──> InTransit ──> Delivered
//
// Only one transition rule is actually enforced: Delivered may only be
// reached from InTransit. Other transitions, including regressions, pass
// unchecked; administrative corrections rely on that freedom.
type Status int

const (
	StatusUnknown Status = iota
	Pending
	InTransit
	Delivered
)

func statusNames() map[Status]string {
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In transit",
		Delivered: "Delivered",
	}
}

// ParseStatus resolves a shipment status from its display name.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames() {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a valid shipment status (Pending, In transit, Delivered)", name),
	)
}

// Validate rejects values outside the lifecycle set.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// ValidateTransition applies the single enforced rule: a shipment may only
// become Delivered when its current persisted state is InTransit.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == Delivered && s != InTransit {
		return errs.NewBusinessRuleErrorf(
			"a shipment can only be delivered from the In transit state, current state is %s", s)
	}
	return nil
}

// IsTerminalForEdits reports whether packages and the shipment itself are
// frozen: Delivered shipments cannot be modified or deleted.
func (s Status) IsTerminalForEdits() bool {
	return s == Delivered
}

// String returns the display name, or "Unknown" for invalid values.
func (s Status) String() string {
	if n, ok := statusNames()[s]; ok {
		return n
	}
	return "Unknown"
}
