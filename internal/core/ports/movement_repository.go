package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
)

// MovementRepository is the persistence contract for warehouse movement
// records.
type MovementRepository interface {
	// Add persists a new movement.
	Add(ctx context.Context, aggregate *movement.Movement) error

	// Update persists changes to an existing movement.
	Update(ctx context.Context, aggregate *movement.Movement) error

	// Delete removes a movement record.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a movement by id.
	Get(ctx context.Context, id kernel.UUID) (*movement.Movement, error)

	// GetOpenByShipment retrieves the shipment's movement without an exit
	// date, or ObjectNotFound when the shipment is not inside any warehouse.
	GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*movement.Movement, error)

	// GetByShipment retrieves the full movement history of a shipment,
	// most recent entry first.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*movement.Movement, error)

	// HasOpenByWarehouse reports whether the warehouse currently holds any
	// shipment.
	HasOpenByWarehouse(ctx context.Context, warehouseID kernel.UUID) (bool, error)
}
