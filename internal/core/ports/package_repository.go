package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// PackageRepository is the persistence contract for packages, which live
// inside the shipment aggregate boundary but are stored in their own table.
type PackageRepository interface {
	// Add persists a new package.
	Add(ctx context.Context, pkg *shipment.Package) error

	// Update persists changes to an existing package.
	Update(ctx context.Context, pkg *shipment.Package) error

	// Delete removes a package.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a package by id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error)

	// GetByShipment retrieves all packages belonging to a shipment.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.Package, error)

	// CountByShipment counts the packages belonging to a shipment.
	CountByShipment(ctx context.Context, shipmentID kernel.UUID) (int, error)
}
