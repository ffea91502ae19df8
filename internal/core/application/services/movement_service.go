package services

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/errs"
)

// MovementService tracks the physical presence of shipments in warehouses.
// Entry and exit registration move the warehouse slot counter atomically
// with the movement record, so a shipment is inside at most one warehouse
// at any time.
type MovementService struct {
	uowFactory MovementUoWFactory
}

// NewMovementService creates a MovementService backed by the given unit of
// work factory.
func NewMovementService(uowFactory MovementUoWFactory) MovementService {
	return MovementService{
		uowFactory: uowFactory,
	}
}

// RegisterEntry records a shipment entering a warehouse and occupies one
// slot. The shipment must not be inside any warehouse already and the
// warehouse must be active with free capacity.
func (s MovementService) RegisterEntry(
	ctx context.Context,
	id, shipmentID, warehouseID kernel.UUID,
	entryDate time.Time,
	receivedBy, storageLocation string,
) (*movement.Movement, error) {
	aggregate, err := movement.NewMovement(id, shipmentID, warehouseID, entryDate, receivedBy, storageLocation)
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

	if _, err := uow.ShipmentRepository().Get(ctx, shipmentID); err != nil {
		return nil, err
	}

	w, err := uow.WarehouseRepository().Get(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if !w.IsActive() {
		return nil, errs.NewBusinessRuleErrorf("warehouse %s is not active", w.ID())
	}

	repo := uow.MovementRepository()

	open, err := repo.GetOpenByShipment(ctx, shipmentID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if open != nil {
		return nil, errs.NewBusinessRuleErrorf(
			"shipment %s is already inside a warehouse", shipmentID)
	}

	if err := w.OccupySlot(); err != nil {
		return nil, err
	}
	if err := uow.WarehouseRepository().Update(ctx, w); err != nil {
		return nil, err
	}

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// RegisterExit closes the shipment's open movement record and releases one
// slot in the warehouse it was in.
func (s MovementService) RegisterExit(
	ctx context.Context,
	shipmentID kernel.UUID,
	exitDate time.Time,
	dispatchedBy string,
) (*movement.Movement, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MovementRepository()

	open, err := repo.GetOpenByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := open.RegisterExit(exitDate, dispatchedBy); err != nil {
		return nil, err
	}

	w, err := uow.WarehouseRepository().Get(ctx, open.WarehouseID())
	if err != nil {
		return nil, err
	}
	w.ReleaseSlot()

	if err := uow.WarehouseRepository().Update(ctx, w); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, open); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return open, nil
}

// GetCurrentLocation retrieves the open movement record of a shipment,
// identifying the warehouse it is currently in.
func (s MovementService) GetCurrentLocation(ctx context.Context, shipmentID kernel.UUID) (*movement.Movement, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	open, err := uow.MovementRepository().GetOpenByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return open, nil
}

// IsShipmentInWarehouse reports whether the shipment currently sits inside
// any warehouse.
func (s MovementService) IsShipmentInWarehouse(ctx context.Context, shipmentID kernel.UUID) (bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.MovementRepository().GetOpenByShipment(ctx, shipmentID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, uow.Commit(ctx)
	}
	if err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}

// GetHistory retrieves the movement history of a shipment, most recent
// entry first.
func (s MovementService) GetHistory(ctx context.Context, shipmentID kernel.UUID) ([]*movement.Movement, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ShipmentRepository().Get(ctx, shipmentID); err != nil {
		return nil, err
	}

	history, err := uow.MovementRepository().GetByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return history, nil
}

// Delete removes a closed movement record. Open records denote physical
// presence and must be closed through RegisterExit instead.
func (s MovementService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MovementRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if aggregate.IsOpen() {
		return errs.NewBusinessRuleErrorf(
			"movement %s is open, register the exit first", aggregate.ID())
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
