package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository is the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Delete removes a vehicle. The service checks assignment and status first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a vehicle by id.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByPlateNumber retrieves a vehicle by the unique plate number,
	// or ObjectNotFound.
	GetByPlateNumber(ctx context.Context, plate string) (*vehicle.Vehicle, error)

	// GetByVIN retrieves a vehicle by the unique VIN, or ObjectNotFound.
	GetByVIN(ctx context.Context, vin string) (*vehicle.Vehicle, error)
}
