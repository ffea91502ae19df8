package ports

import (
	"context"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
)

// AddressRepository is the persistence contract for address aggregates.
type AddressRepository interface {
	// Add persists a new address.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, aggregate *address.Address) error

	// Delete removes an address. The service checks the default rule first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an address by id.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetByCustomer retrieves every address of a customer, active or not.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*address.Address, error)

	// GetActiveByCustomerAndType retrieves the active addresses of one
	// (customer, type) pair, the scope of the default-address rule.
	GetActiveByCustomerAndType(ctx context.Context, customerID kernel.UUID, addressType address.Type) ([]*address.Address, error)

	// GetDefault retrieves the default active address for a (customer, type)
	// pair, or ObjectNotFound when none is flagged.
	GetDefault(ctx context.Context, customerID kernel.UUID, addressType address.Type) (*address.Address, error)

	// CountActiveByCustomer counts a customer's active addresses.
	CountActiveByCustomer(ctx context.Context, customerID kernel.UUID) (int, error)
}
