package services

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// ShipmentService handles the shipment write operations and the lifecycle
// state machine. New shipments always start Pending; the Delivered state is
// reachable only from a persisted In transit state.
type ShipmentService struct {
	uowFactory ShipmentUoWFactory
}

// NewShipmentService creates a ShipmentService backed by the given unit of
// work factory.
func NewShipmentService(uowFactory ShipmentUoWFactory) ShipmentService {
	return ShipmentService{
		uowFactory: uowFactory,
	}
}

// Create registers a new shipment in Pending state. The customer and an
// active route must exist, the tracking number must be unique and the
// customer may hold at most three undelivered shipments.
func (s ShipmentService) Create(ctx context.Context, id, customerID, routeID kernel.UUID, trackingNumber string, totalCost float64) (*shipment.Shipment, error) {
	aggregate, err := shipment.NewShipment(id, customerID, routeID, trackingNumber, totalCost)
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

	if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
		return nil, err
	}

	r, err := uow.RouteRepository().Get(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if !r.IsActive() {
		return nil, errs.NewBusinessRuleErrorf("route %s is not active", r.ID())
	}

	repo := uow.ShipmentRepository()

	existing, err := repo.GetByTrackingNumber(ctx, aggregate.TrackingNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewBusinessRuleErrorf(
			"tracking number %s is already in use", aggregate.TrackingNumber())
	}

	active, err := repo.CountActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if active >= shipment.MaxActivePerCustomer {
		return nil, errs.NewBusinessRuleErrorf(
			"customer %s already has %d active shipments", customerID, shipment.MaxActivePerCustomer)
	}

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// ChangeStatus moves a shipment to the target state. The transition is
// checked against the persisted state, so a request cannot smuggle a
// shipment into Delivered without an In transit state on record.
func (s ShipmentService) ChangeStatus(ctx context.Context, id kernel.UUID, target shipment.Status) (*shipment.Shipment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := aggregate.ChangeStatus(target); err != nil {
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

// UpdateTotalCost records a new total cost for the shipment.
func (s ShipmentService) UpdateTotalCost(ctx context.Context, id kernel.UUID, totalCost float64) (*shipment.Shipment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdateTotalCost(totalCost); err != nil {
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

// Get retrieves a shipment by id.
func (s ShipmentService) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetByTrackingNumber retrieves a shipment by its tracking number.
func (s ShipmentService) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Delete removes a shipment and its packages. Delivered shipments are kept
// as history and cannot be removed.
func (s ShipmentService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if aggregate.Status() == shipment.Delivered {
		return errs.NewBusinessRuleErrorf("shipment %s is already delivered", aggregate.ID())
	}

	packageRepo := uow.PackageRepository()
	packages, err := packageRepo.GetByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, pkg := range packages {
		if err := packageRepo.Delete(ctx, pkg.ID()); err != nil {
			return err
		}
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
