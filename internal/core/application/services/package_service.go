package services

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// PackageService handles the package write operations. Every mutation is
// gated on the owning shipment not being delivered yet.
type PackageService struct {
	uowFactory PackageUoWFactory
}

// NewPackageService creates a PackageService backed by the given unit of
// work factory.
func NewPackageService(uowFactory PackageUoWFactory) PackageService {
	return PackageService{
		uowFactory: uowFactory,
	}
}

// Create adds a package to an undelivered shipment, up to fifty per
// shipment.
func (s PackageService) Create(ctx context.Context, id, shipmentID kernel.UUID, description string, weightKg, price float64) (*shipment.Package, error) {
	pkg, err := shipment.NewPackage(id, shipmentID, description, weightKg, price)
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

	owner, err := uow.ShipmentRepository().Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEditable(owner); err != nil {
		return nil, err
	}

	repo := uow.PackageRepository()

	count, err := repo.CountByShipment(ctx, owner.ID())
	if err != nil {
		return nil, err
	}
	if count >= shipment.MaxPackagesPerShipment {
		return nil, errs.NewBusinessRuleErrorf(
			"shipment %s already has %d packages", owner.ID(), shipment.MaxPackagesPerShipment)
	}

	if err := repo.Add(ctx, pkg); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Update modifies a package of an undelivered shipment.
func (s PackageService) Update(ctx context.Context, id kernel.UUID, description string, weightKg, price float64) (*shipment.Package, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()

	pkg, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := uow.ShipmentRepository().Get(ctx, pkg.ShipmentID())
	if err != nil {
		return nil, err
	}
	if err := s.checkEditable(owner); err != nil {
		return nil, err
	}

	if err := pkg.Update(description, weightKg, price); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Get retrieves a package by id.
func (s PackageService) Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}

// GetByShipment retrieves the packages of a shipment.
func (s PackageService) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.Package, error) {
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

	packages, err := uow.PackageRepository().GetByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return packages, nil
}

// Delete removes a package from an undelivered shipment.
func (s PackageService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()

	pkg, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	owner, err := uow.ShipmentRepository().Get(ctx, pkg.ShipmentID())
	if err != nil {
		return err
	}
	if err := s.checkEditable(owner); err != nil {
		return err
	}

	if err := repo.Delete(ctx, pkg.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkEditable fails when the owning shipment no longer accepts package
// changes.
func (s PackageService) checkEditable(owner *shipment.Shipment) error {
	if owner.Status().IsTerminalForEdits() {
		return errs.NewBusinessRuleErrorf("shipment %s is already delivered", owner.ID())
	}
	return nil
}
