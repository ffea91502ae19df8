package services

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	domainservices "logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DriverService handles the driver write operations and the two-sided
// vehicle assignment.
type DriverService struct {
	uowFactory DriverUoWFactory
	assignment domainservices.VehicleAssignment
}

// NewDriverService creates a DriverService backed by the given unit of work
// factory.
func NewDriverService(uowFactory DriverUoWFactory) DriverService {
	return DriverService{
		uowFactory: uowFactory,
		assignment: domainservices.NewVehicleAssignment(),
	}
}

// Create registers a new driver. Identity document and license number must
// be unique across all drivers.
func (s DriverService) Create(
	ctx context.Context,
	id kernel.UUID,
	fullName, identityDocument, licenseNumber, licenseCategory string,
	licenseIssueDate, licenseExpiryDate time.Time,
	phone, email string,
	dateOfBirth, hireDate time.Time,
	yearsOfExperience int,
) (*driver.Driver, error) {
	aggregate, err := driver.NewDriver(id, fullName, identityDocument, licenseNumber,
		licenseCategory, licenseIssueDate, licenseExpiryDate, phone, email,
		dateOfBirth, hireDate, yearsOfExperience)
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

	repo := uow.DriverRepository()

	if err := s.checkUnique(ctx, repo, aggregate, kernel.UUID{}); err != nil {
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

// Update modifies an existing driver, re-checking document and license
// uniqueness against every other driver.
func (s DriverService) Update(
	ctx context.Context,
	id kernel.UUID,
	fullName, identityDocument, licenseNumber, licenseCategory string,
	licenseIssueDate, licenseExpiryDate time.Time,
	phone, email string,
	dateOfBirth, hireDate time.Time,
	yearsOfExperience int,
) (*driver.Driver, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := aggregate.Update(fullName, identityDocument, licenseNumber,
		licenseCategory, licenseIssueDate, licenseExpiryDate, phone, email,
		dateOfBirth, hireDate, yearsOfExperience); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, repo, aggregate, id); err != nil {
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

// Get retrieves a driver by id.
func (s DriverService) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DriverRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Delete removes a driver. It fails while a vehicle is assigned.
func (s DriverService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if aggregate.CurrentVehicleID() != nil {
		return errs.NewBusinessRuleErrorf(
			"driver %s still has vehicle %s assigned", aggregate.ID(), aggregate.CurrentVehicleID())
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AssignVehicle links a driver and a vehicle in both directions.
func (s DriverService) AssignVehicle(ctx context.Context, driverID, vehicleID kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	d, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}
	v, err := vehicleRepo.Get(ctx, vehicleID)
	if err != nil {
		return err
	}

	if err := s.assignment.Assign(d, v); err != nil {
		return err
	}

	if err := driverRepo.Update(ctx, d); err != nil {
		return err
	}
	if err := vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UnassignVehicle clears the link between a driver and their current
// vehicle.
func (s DriverService) UnassignVehicle(ctx context.Context, driverID kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}
	if d.CurrentVehicleID() == nil {
		return errs.NewBusinessRuleErrorf("driver %s has no vehicle assigned", d.ID())
	}

	v, err := uow.VehicleRepository().Get(ctx, *d.CurrentVehicleID())
	if err != nil {
		return err
	}

	if err := s.assignment.Unassign(d, v); err != nil {
		return err
	}

	if err := driverRepo.Update(ctx, d); err != nil {
		return err
	}
	if err := uow.VehicleRepository().Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SweepExpiredLicenses moves every active driver with an expired license to
// off duty and reports how many were affected.
func (s DriverService) SweepExpiredLicenses(ctx context.Context, asOf time.Time) (int, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	expired, err := repo.GetActiveWithExpiredLicense(ctx, asOf)
	if err != nil {
		return 0, err
	}

	for _, d := range expired {
		d.MarkOffDuty()
		if err := repo.Update(ctx, d); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}

// checkUnique fails when another driver already uses the identity document
// or the license number.
func (s DriverService) checkUnique(ctx context.Context, repo ports.DriverRepository, aggregate *driver.Driver, self kernel.UUID) error {
	existing, err := repo.GetByIdentityDocument(ctx, aggregate.IdentityDocument())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && !existing.ID().IsEqual(self) {
		return errs.NewBusinessRuleErrorf(
			"identity document %s is already registered", aggregate.IdentityDocument())
	}

	existing, err = repo.GetByLicenseNumber(ctx, aggregate.LicenseNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && !existing.ID().IsEqual(self) {
		return errs.NewBusinessRuleErrorf(
			"license number %s is already registered", aggregate.LicenseNumber())
	}

	return nil
}
