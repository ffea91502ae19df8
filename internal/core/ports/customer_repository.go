// Package ports defines the persistence contracts between the domain layer
// and infrastructure. Services depend on these interfaces only; the
// postgres adapters implement them.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
)

// CustomerRepository is the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer. The service checks the shipment rule first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer by id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by exact email, or ObjectNotFound.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// CountByEmailDomain counts customers whose email uses the given domain.
	CountByEmailDomain(ctx context.Context, domain string) (int, error)
}
