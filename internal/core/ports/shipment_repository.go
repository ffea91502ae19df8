package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository is the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Delete removes a shipment together with its packages.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a shipment by id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by the unique tracking
	// number, or ObjectNotFound.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// CountActiveByCustomer counts the customer's shipments that are not
	// yet delivered.
	CountActiveByCustomer(ctx context.Context, customerID kernel.UUID) (int, error)

	// HasByRoute reports whether any shipment references the route.
	HasByRoute(ctx context.Context, routeID kernel.UUID) (bool, error)
}
