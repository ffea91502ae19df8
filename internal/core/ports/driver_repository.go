package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository is the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Delete removes a driver. The service checks the assignment rule first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a driver by id.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByIdentityDocument retrieves a driver by the unique identity
	// document, or ObjectNotFound.
	GetByIdentityDocument(ctx context.Context, document string) (*driver.Driver, error)

	// GetByLicenseNumber retrieves a driver by the unique license number,
	// or ObjectNotFound.
	GetByLicenseNumber(ctx context.Context, license string) (*driver.Driver, error)

	// GetActiveWithExpiredLicense retrieves active drivers whose license
	// expired on or before the given instant and who are not yet OffDuty.
	// Used by the license-expiry sweep.
	GetActiveWithExpiredLicense(ctx context.Context, asOf time.Time) ([]*driver.Driver, error)
}
