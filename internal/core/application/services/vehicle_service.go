package services

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	domainservices "logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// VehicleService handles the vehicle write operations: fleet registration,
// load tracking and the vehicle side of driver assignment.
type VehicleService struct {
	uowFactory VehicleUoWFactory
	assignment domainservices.VehicleAssignment
}

// NewVehicleService creates a VehicleService backed by the given unit of
// work factory.
func NewVehicleService(uowFactory VehicleUoWFactory) VehicleService {
	return VehicleService{
		uowFactory: uowFactory,
		assignment: domainservices.NewVehicleAssignment(),
	}
}

// Create registers a new vehicle. Plate and VIN must be unique and the base
// warehouse, when given, must exist.
func (s VehicleService) Create(
	ctx context.Context,
	id kernel.UUID,
	plateNumber, brand, model string,
	year int,
	vehicleType vehicle.Type,
	maxWeightKg, maxVolumeM3 float64,
	mileageKm, maintenanceMileageKm float64,
	lastMaintenanceDate, insuranceExpiryDate *time.Time,
	vin *string,
	baseWarehouseID *kernel.UUID,
) (*vehicle.Vehicle, error) {
	aggregate, err := vehicle.NewVehicle(id, plateNumber, brand, model, year,
		vehicleType, maxWeightKg, maxVolumeM3, mileageKm, maintenanceMileageKm,
		lastMaintenanceDate, insuranceExpiryDate, vin, baseWarehouseID)
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

	repo := uow.VehicleRepository()

	if err := s.checkUnique(ctx, repo, aggregate, kernel.UUID{}); err != nil {
		return nil, err
	}
	if err := s.checkBaseWarehouse(ctx, uow, aggregate); err != nil {
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

// Update modifies an existing vehicle, re-checking plate and VIN uniqueness
// and the base warehouse reference.
func (s VehicleService) Update(
	ctx context.Context,
	id kernel.UUID,
	plateNumber, brand, model string,
	year int,
	vehicleType vehicle.Type,
	maxWeightKg, maxVolumeM3 float64,
	mileageKm, maintenanceMileageKm float64,
	lastMaintenanceDate, insuranceExpiryDate *time.Time,
	vin *string,
	baseWarehouseID *kernel.UUID,
) (*vehicle.Vehicle, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VehicleRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := aggregate.Update(plateNumber, brand, model, year, vehicleType,
		maxWeightKg, maxVolumeM3, mileageKm, maintenanceMileageKm,
		lastMaintenanceDate, insuranceExpiryDate, vin, baseWarehouseID); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, repo, aggregate, id); err != nil {
		return nil, err
	}
	if err := s.checkBaseWarehouse(ctx, uow, aggregate); err != nil {
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

// Get retrieves a vehicle by id.
func (s VehicleService) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.VehicleRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// UpdateCurrentLoad records the load currently on the vehicle. Both axes
// are checked against the vehicle's capacity.
func (s VehicleService) UpdateCurrentLoad(ctx context.Context, id kernel.UUID, weightKg, volumeM3 float64) (*vehicle.Vehicle, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VehicleRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdateLoad(weightKg, volumeM3); err != nil {
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

// AssignDriver links the vehicle and a driver in both directions.
func (s VehicleService) AssignDriver(ctx context.Context, vehicleID, driverID kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	driverRepo := uow.DriverRepository()

	v, err := vehicleRepo.Get(ctx, vehicleID)
	if err != nil {
		return err
	}
	d, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}

	if err := s.assignment.Assign(d, v); err != nil {
		return err
	}

	if err := vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	if err := driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UnassignDriver clears the link between the vehicle and its assigned
// driver.
func (s VehicleService) UnassignDriver(ctx context.Context, vehicleID kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.Get(ctx, vehicleID)
	if err != nil {
		return err
	}
	if v.AssignedDriverID() == nil {
		return errs.NewBusinessRuleErrorf("vehicle %s has no driver assigned", v.ID())
	}

	d, err := uow.DriverRepository().Get(ctx, *v.AssignedDriverID())
	if err != nil {
		return err
	}

	if err := s.assignment.Unassign(d, v); err != nil {
		return err
	}

	if err := vehicleRepo.Update(ctx, v); err != nil {
		return err
	}
	if err := uow.DriverRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes a vehicle. It fails while a driver is assigned or the
// vehicle is in transit.
func (s VehicleService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VehicleRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if aggregate.AssignedDriverID() != nil {
		return errs.NewBusinessRuleErrorf(
			"vehicle %s still has driver %s assigned", aggregate.ID(), aggregate.AssignedDriverID())
	}
	if aggregate.Status() == vehicle.InTransit {
		return errs.NewBusinessRuleErrorf("vehicle %s is in transit", aggregate.ID())
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkUnique fails when another vehicle already uses the plate number or
// the VIN.
func (s VehicleService) checkUnique(ctx context.Context, repo ports.VehicleRepository, aggregate *vehicle.Vehicle, self kernel.UUID) error {
	existing, err := repo.GetByPlateNumber(ctx, aggregate.PlateNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && !existing.ID().IsEqual(self) {
		return errs.NewBusinessRuleErrorf(
			"plate number %s is already registered", aggregate.PlateNumber())
	}

	if aggregate.VIN() == nil {
		return nil
	}

	existing, err = repo.GetByVIN(ctx, *aggregate.VIN())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && !existing.ID().IsEqual(self) {
		return errs.NewBusinessRuleErrorf("VIN %s is already registered", *aggregate.VIN())
	}

	return nil
}

// checkBaseWarehouse verifies the referenced base warehouse exists.
func (s VehicleService) checkBaseWarehouse(ctx context.Context, uow WarehouseRepoFactory, aggregate *vehicle.Vehicle) error {
	if aggregate.BaseWarehouseID() == nil {
		return nil
	}
	_, err := uow.WarehouseRepository().Get(ctx, *aggregate.BaseWarehouseID())
	return err
}
