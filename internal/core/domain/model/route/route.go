// Package route contains the route aggregate: a priced origin→destination
// pair. The (origin, destination) pair is unique across routes and frozen
// once shipments reference the route; both rules span records and are
// enforced by the application service.
package route

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minEndpointLength = 3
	maxEndpointLength = 100
)

// ErrRouteIsNotConstructed is returned when a Route was not created
// through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route is the aggregate root for a transport route.
type Route struct {
	id          kernel.UUID
	origin      string
	destination string
	distanceKm  float64
	baseCost    float64
	isActive    bool

	isConstructed bool
}

// NewRoute creates a validated active route.
func NewRoute(id kernel.UUID, origin, destination string, distanceKm, baseCost float64) (*Route, error) {
	r := &Route{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setEndpoints(origin, destination),
		r.setDistance(distanceKm),
		r.setBaseCost(baseCost),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a route from persistence.
func RestoreRoute(id kernel.UUID, origin, destination string, distanceKm, baseCost float64, isActive bool) (*Route, error) {
	r, err := NewRoute(id, origin, destination, distanceKm, baseCost)
	if err != nil {
		return nil, err
	}
	r.isActive = isActive
	return r, nil
}

// Validate ensures the route was produced by a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares routes by identity.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// Origin returns the starting point.
func (r *Route) Origin() string { return r.origin }

// Destination returns the end point.
func (r *Route) Destination() string { return r.destination }

// DistanceKm returns the route length.
func (r *Route) DistanceKm() float64 { return r.distanceKm }

// BaseCost returns the base shipping cost for the route.
func (r *Route) BaseCost() float64 { return r.baseCost }

// IsActive reports whether shipments may use the route.
func (r *Route) IsActive() bool { return r.isActive }

// Update re-validates and applies new values. hasShipments freezes the
// endpoints: once any shipment references the route, origin and destination
// can no longer change.
func (r *Route) Update(origin, destination string, distanceKm, baseCost float64, hasShipments bool) error {
	if hasShipments && (origin != r.origin || destination != r.destination) {
		return errs.NewBusinessRuleError("origin and destination cannot change while shipments reference the route")
	}

	updated := *r
	if err := errors.Join(
		updated.setEndpoints(origin, destination),
		updated.setDistance(distanceKm),
		updated.setBaseCost(baseCost),
	); err != nil {
		return err
	}

	*r = updated
	return nil
}

// Deactivate stops new shipments from using the route.
func (r *Route) Deactivate() {
	r.isActive = false
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setEndpoints(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if len(origin) < minEndpointLength || len(origin) > maxEndpointLength {
		return errs.NewValueIsOutOfRangeError("origin length", len(origin), minEndpointLength, maxEndpointLength)
	}
	if len(destination) < minEndpointLength || len(destination) > maxEndpointLength {
		return errs.NewValueIsOutOfRangeError("destination length", len(destination), minEndpointLength, maxEndpointLength)
	}
	if origin == destination {
		return errs.NewBusinessRuleError("origin and destination must differ")
	}

	r.origin = origin
	r.destination = destination
	return nil
}

func (r *Route) setDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm", errors.New("distance must be greater than 0"))
	}
	r.distanceKm = distanceKm
	return nil
}

func (r *Route) setBaseCost(baseCost float64) error {
	if baseCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseCost", errors.New("base cost cannot be negative"))
	}
	r.baseCost = baseCost
	return nil
}
