package services

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// maxActiveAddressesPerCustomer caps the active addresses one customer may
// hold across both address types.
const maxActiveAddressesPerCustomer = 10

// AddressService handles the address write operations and owns the
// default-selection protocol: among a customer's active addresses of one
// type there is exactly one default, as long as the group is not empty.
type AddressService struct {
	uowFactory AddressUoWFactory
}

// NewAddressService creates an AddressService backed by the given unit of
// work factory.
func NewAddressService(uowFactory AddressUoWFactory) AddressService {
	return AddressService{
		uowFactory: uowFactory,
	}
}

// Create registers a new address for an existing customer. The first active
// address of a type becomes the default regardless of the requested flag; a
// requested default displaces the current one.
func (s AddressService) Create(
	ctx context.Context,
	id, customerID kernel.UUID,
	street, city string,
	department kernel.Department,
	zone, postalCode, reference, alias string,
	addressType address.Type,
	isDefault bool,
	location *kernel.GeoPoint,
	contactName, contactPhone string,
) (*address.Address, error) {
	aggregate, err := address.NewAddress(id, customerID, street, city, department,
		zone, postalCode, reference, alias, addressType, isDefault,
		location, contactName, contactPhone)
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

	repo := uow.AddressRepository()

	count, err := repo.CountActiveByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if count >= maxActiveAddressesPerCustomer {
		return nil, errs.NewBusinessRuleErrorf(
			"customer %s already has %d active addresses", customerID, maxActiveAddressesPerCustomer)
	}

	current, err := repo.GetDefault(ctx, customerID, addressType)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// First active address of this type is always the default.
		if err := aggregate.MarkDefault(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case aggregate.IsDefault():
		current.UnmarkDefault()
		if err := repo.Update(ctx, current); err != nil {
			return nil, err
		}
	}

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Update modifies an existing address. Turning the default flag on displaces
// the current default of the group; turning it off is refused unless another
// default already covers the group. When the address type changes, the old
// group promotes a replacement default.
func (s AddressService) Update(
	ctx context.Context,
	id kernel.UUID,
	street, city string,
	department kernel.Department,
	zone, postalCode, reference, alias string,
	addressType address.Type,
	isDefault bool,
	location *kernel.GeoPoint,
	contactName, contactPhone string,
) (*address.Address, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousType := aggregate.Type()
	wasDefault := aggregate.IsDefault()

	if err := aggregate.Update(street, city, department, zone, postalCode,
		reference, alias, addressType, location, contactName, contactPhone); err != nil {
		return nil, err
	}

	if aggregate.Type() != previousType && wasDefault {
		// The old group lost its default, the new one may already have one.
		aggregate.UnmarkDefault()
		if err := s.promoteDefault(ctx, repo, aggregate.CustomerID(), previousType, aggregate.ID()); err != nil {
			return nil, err
		}
		wasDefault = false
	}

	switch {
	case isDefault && !aggregate.IsDefault():
		current, err := repo.GetDefault(ctx, aggregate.CustomerID(), aggregate.Type())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if current != nil && !current.ID().IsEqual(aggregate.ID()) {
			current.UnmarkDefault()
			if err := repo.Update(ctx, current); err != nil {
				return nil, err
			}
		}
		if err := aggregate.MarkDefault(); err != nil {
			return nil, err
		}
	case !isDefault && wasDefault:
		current, err := repo.GetDefault(ctx, aggregate.CustomerID(), aggregate.Type())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if current == nil || current.ID().IsEqual(aggregate.ID()) {
			return nil, errs.NewBusinessRuleErrorf(
				"address %s is the only default of its type; promote another address first", id)
		}
		aggregate.UnmarkDefault()
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if aggregate.IsActive() {
		if err := s.ensureDefault(ctx, repo, aggregate.CustomerID(), aggregate.Type()); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Get retrieves an address by id.
func (s AddressService) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.AddressRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// GetByCustomer retrieves every address of a customer.
func (s AddressService) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*address.Address, error) {
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

	addresses, err := uow.AddressRepository().GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return addresses, nil
}

// GetDefault retrieves the default active address of a (customer, type)
// pair.
func (s AddressService) GetDefault(ctx context.Context, customerID kernel.UUID, addressType address.Type) (*address.Address, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.AddressRepository().GetDefault(ctx, customerID, addressType)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// SetDefault makes the address the default of its (customer, type) group,
// displacing the current default.
func (s AddressService) SetDefault(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if aggregate.IsDefault() {
		return uow.Commit(ctx)
	}

	current, err := repo.GetDefault(ctx, aggregate.CustomerID(), aggregate.Type())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if current != nil {
		current.UnmarkDefault()
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
	}

	if err := aggregate.MarkDefault(); err != nil {
		return err
	}
	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Deactivate retires an address. The active default of a group cannot be
// retired while other active addresses of the type remain; the caller must
// promote one of them first.
func (s AddressService) Deactivate(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if aggregate.IsDefault() && aggregate.IsActive() {
		others, err := s.hasOtherActive(ctx, repo, aggregate.CustomerID(), aggregate.Type(), aggregate.ID())
		if err != nil {
			return err
		}
		if others {
			return errs.NewBusinessRuleErrorf(
				"address %s is the default of its type; promote another address before deactivating it", id)
		}
	}

	aggregate.UnmarkDefault()
	aggregate.Deactivate()

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Delete removes an address permanently. Like Deactivate, it refuses to
// remove the active default while the group holds other active addresses.
func (s AddressService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if aggregate.IsDefault() && aggregate.IsActive() {
		others, err := s.hasOtherActive(ctx, repo, aggregate.CustomerID(), aggregate.Type(), aggregate.ID())
		if err != nil {
			return err
		}
		if others {
			return errs.NewBusinessRuleErrorf(
				"address %s is the default of its type; promote another address before deleting it", id)
		}
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// hasOtherActive reports whether the (customer, type) group holds an active
// address besides the excluded one.
func (s AddressService) hasOtherActive(ctx context.Context, repo ports.AddressRepository, customerID kernel.UUID, addressType address.Type, exclude kernel.UUID) (bool, error) {
	group, err := repo.GetActiveByCustomerAndType(ctx, customerID, addressType)
	if err != nil {
		return false, err
	}
	for _, candidate := range group {
		if !candidate.ID().IsEqual(exclude) {
			return true, nil
		}
	}
	return false, nil
}

// promoteDefault flags the oldest active address of the group as default,
// skipping the address identified by exclude. An empty group needs nothing.
func (s AddressService) promoteDefault(ctx context.Context, repo ports.AddressRepository, customerID kernel.UUID, addressType address.Type, exclude kernel.UUID) error {
	group, err := repo.GetActiveByCustomerAndType(ctx, customerID, addressType)
	if err != nil {
		return err
	}

	var oldest *address.Address
	for _, candidate := range group {
		if candidate.ID().IsEqual(exclude) {
			continue
		}
		if oldest == nil || candidate.CreatedAt().Before(oldest.CreatedAt()) {
			oldest = candidate
		}
	}
	if oldest == nil {
		return nil
	}

	if err := oldest.MarkDefault(); err != nil {
		return err
	}
	return repo.Update(ctx, oldest)
}

// ensureDefault repairs a group left without any default.
func (s AddressService) ensureDefault(ctx context.Context, repo ports.AddressRepository, customerID kernel.UUID, addressType address.Type) error {
	_, err := repo.GetDefault(ctx, customerID, addressType)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.promoteDefault(ctx, repo, customerID, addressType, kernel.UUID{})
	}
	return err
}
