package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository is the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route.
	Update(ctx context.Context, aggregate *route.Route) error

	// Delete removes a route. The service verifies no shipments reference
	// it first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a route by id.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByEndpoints retrieves the route joining the given origin and
	// destination, or ObjectNotFound. Endpoint pairs are unique.
	GetByEndpoints(ctx context.Context, origin, destination string) (*route.Route, error)
}
