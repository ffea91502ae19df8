// Package shipment contains the shipment aggregate and its package child
// entity. A shipment belongs to a customer, travels a route and moves
// through the Pending → In transit → Delivered lifecycle; packages are the
// goods it carries, capped at MaxPackagesPerShipment.
package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	maxTrackingLength = 50

	// MaxActivePerCustomer caps simultaneous non-Delivered shipments.
	MaxActivePerCustomer = 3

	// MaxPackagesPerShipment caps the goods one shipment can carry.
	MaxPackagesPerShipment = 50
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root for a customer shipment.
type Shipment struct {
	id             kernel.UUID
	customerID     kernel.UUID
	routeID        kernel.UUID
	trackingNumber string
	status         Status
	totalCost      float64
	createdAt      time.Time

	isConstructed bool
}

// NewShipment creates a validated shipment in Pending status. Callers that
// accept a requested initial status must reject anything but Pending before
// getting here; the constructor does not take a status at all.
func NewShipment(id, customerID, routeID kernel.UUID, trackingNumber string, totalCost float64) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		s.setRouteID(routeID),
		s.setTrackingNumber(trackingNumber),
		s.setTotalCost(totalCost),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence in its stored status.
func RestoreShipment(
	id, customerID, routeID kernel.UUID,
	trackingNumber string,
	status Status,
	totalCost float64,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, customerID, routeID, trackingNumber, totalCost)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.createdAt = createdAt
	return s, nil
}

// Validate ensures the shipment was produced by a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// CustomerID returns the owning customer.
func (s *Shipment) CustomerID() kernel.UUID { return s.customerID }

// RouteID returns the route the shipment travels.
func (s *Shipment) RouteID() kernel.UUID { return s.routeID }

// TrackingNumber returns the globally unique tracking number.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// Status returns the lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// TotalCost returns the shipment price.
func (s *Shipment) TotalCost() float64 { return s.totalCost }

// CreatedAt returns when the shipment was registered.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// IsActive reports whether the shipment still counts against the
// per-customer active limit (anything not yet Delivered).
func (s *Shipment) IsActive() bool {
	return s.status != Delivered
}

// ChangeStatus moves the shipment to a new lifecycle state, applying the
// single enforced transition rule (see Status.ValidateTransition).
func (s *Shipment) ChangeStatus(target Status) error {
	if err := s.status.ValidateTransition(target); err != nil {
		return err
	}
	s.status = target
	return nil
}

// UpdateTotalCost re-validates and applies a new price.
func (s *Shipment) UpdateTotalCost(totalCost float64) error {
	return s.setTotalCost(totalCost)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	s.customerID = id
	return nil
}

func (s *Shipment) setRouteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeId", err)
	}
	s.routeID = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if len(trackingNumber) > maxTrackingLength {
		return errs.NewValueIsOutOfRangeError("trackingNumber length", len(trackingNumber), 1, maxTrackingLength)
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setTotalCost(totalCost float64) error {
	if totalCost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost", errors.New("total cost must be greater than 0"))
	}
	s.totalCost = totalCost
	return nil
}
