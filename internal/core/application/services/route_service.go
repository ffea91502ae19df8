package services

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
)

// RouteService handles the route write operations. Routes referenced by
// shipments keep their endpoints frozen and cannot be removed.
type RouteService struct {
	uowFactory RouteUoWFactory
}

// NewRouteService creates a RouteService backed by the given unit of work
// factory.
func NewRouteService(uowFactory RouteUoWFactory) RouteService {
	return RouteService{
		uowFactory: uowFactory,
	}
}

// Create registers a new route. The origin/destination pair must be unique.
func (s RouteService) Create(ctx context.Context, id kernel.UUID, origin, destination string, distanceKm, baseCost float64) (*route.Route, error) {
	aggregate, err := route.NewRoute(id, origin, destination, distanceKm, baseCost)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RouteRepository()

	existing, err := repo.GetByEndpoints(ctx, aggregate.Origin(), aggregate.Destination())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewBusinessRuleErrorf(
			"route from %s to %s already exists", aggregate.Origin(), aggregate.Destination())
	}

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Update modifies an existing route. Once shipments reference the route,
// origin and destination are frozen and only distance and cost may change.
func (s RouteService) Update(ctx context.Context, id kernel.UUID, origin, destination string, distanceKm, baseCost float64) (*route.Route, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RouteRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	hasShipments, err := uow.ShipmentRepository().HasByRoute(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if origin != aggregate.Origin() || destination != aggregate.Destination() {
		existing, err := repo.GetByEndpoints(ctx, origin, destination)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existing != nil && !existing.ID().IsEqual(id) {
			return nil, errs.NewBusinessRuleErrorf(
				"route from %s to %s already exists", origin, destination)
		}
	}

	if err := aggregate.Update(origin, destination, distanceKm, baseCost, hasShipments); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Get retrieves a route by id.
func (s RouteService) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.RouteRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Delete removes a route. It fails while any shipment references it.
func (s RouteService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RouteRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := uow.ShipmentRepository().HasByRoute(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewBusinessRuleErrorf("route %s is referenced by shipments", aggregate.ID())
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
