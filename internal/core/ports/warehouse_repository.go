package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository is the persistence contract for warehouse aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse, including the
	// occupancy counter.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Delete removes a warehouse. The service verifies there are no open
	// movements first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a warehouse by id.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetByCode retrieves a warehouse by the unique code, or ObjectNotFound.
	GetByCode(ctx context.Context, code string) (*warehouse.Warehouse, error)
}
