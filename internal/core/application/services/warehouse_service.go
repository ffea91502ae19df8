package services

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
)

// WarehouseService handles the warehouse write operations. Occupancy is not
// writable here; only warehouse entries and exits move the slot counter.
type WarehouseService struct {
	uowFactory WarehouseUoWFactory
}

// NewWarehouseService creates a WarehouseService backed by the given unit
// of work factory.
func NewWarehouseService(uowFactory WarehouseUoWFactory) WarehouseService {
	return WarehouseService{
		uowFactory: uowFactory,
	}
}

// Create registers a new warehouse with zero occupancy. The code must be
// unique.
func (s WarehouseService) Create(
	ctx context.Context,
	id kernel.UUID,
	name, code, addressLine, city string,
	department kernel.Department,
	phone, email string,
	maxCapacityM3 float64,
	warehouseType warehouse.Type,
) (*warehouse.Warehouse, error) {
	aggregate, err := warehouse.NewWarehouse(id, name, code, addressLine, city,
		department, phone, email, maxCapacityM3, warehouseType)
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

	repo := uow.WarehouseRepository()

	existing, err := repo.GetByCode(ctx, aggregate.Code())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewBusinessRuleErrorf(
			"warehouse code %s is already registered", aggregate.Code())
	}

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Update modifies an existing warehouse. The capacity cannot shrink below
// the current occupancy and a changed code is re-checked for uniqueness.
func (s WarehouseService) Update(
	ctx context.Context,
	id kernel.UUID,
	name, code, addressLine, city string,
	department kernel.Department,
	phone, email string,
	maxCapacityM3 float64,
	warehouseType warehouse.Type,
) (*warehouse.Warehouse, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WarehouseRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := repo.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil && !existing.ID().IsEqual(id) {
		return nil, errs.NewBusinessRuleErrorf("warehouse code %s is already registered", code)
	}

	if err := aggregate.Update(name, code, addressLine, city, department,
		phone, email, maxCapacityM3, warehouseType); err != nil {
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

// Get retrieves a warehouse by id.
func (s WarehouseService) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.WarehouseRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Delete removes a warehouse. It fails while any shipment is inside.
func (s WarehouseService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WarehouseRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	holding, err := uow.MovementRepository().HasOpenByWarehouse(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if holding {
		return errs.NewBusinessRuleErrorf("warehouse %s still holds shipments", aggregate.ID())
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
