package services

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// maxCustomersPerEmailDomain caps registrations sharing one email domain.
const maxCustomersPerEmailDomain = 5

// CustomerService handles the customer write operations: registration,
// profile updates and removal. Removal is blocked while the customer has
// undelivered shipments and cascades to the customer's addresses.
type CustomerService struct {
	uowFactory CustomerUoWFactory
}

// NewCustomerService creates a CustomerService backed by the given unit of
// work factory.
func NewCustomerService(uowFactory CustomerUoWFactory) CustomerService {
	return CustomerService{
		uowFactory: uowFactory,
	}
}

// Create registers a new customer. The email must not be registered yet and
// its domain must be used by fewer than five customers.
func (s CustomerService) Create(ctx context.Context, id kernel.UUID, name, email, phone string) (*customer.Customer, error) {
	aggregate, err := customer.NewCustomer(id, name, email, phone)
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

	repo := uow.CustomerRepository()

	if err := s.checkEmailFree(ctx, repo, aggregate.Email(), kernel.UUID{}); err != nil {
		return nil, err
	}

	count, err := repo.CountByEmailDomain(ctx, kernel.EmailDomain(aggregate.Email()))
	if err != nil {
		return nil, err
	}
	if count >= maxCustomersPerEmailDomain {
		return nil, errs.NewBusinessRuleErrorf(
			"email domain %s already has %d registered customers",
			kernel.EmailDomain(aggregate.Email()), maxCustomersPerEmailDomain)
	}

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Update modifies an existing customer. A changed email is re-checked for
// uniqueness against every other customer.
func (s CustomerService) Update(ctx context.Context, id kernel.UUID, name, email, phone string) (*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, repo, email, id); err != nil {
		return nil, err
	}

	if err := aggregate.Update(name, email, phone); err != nil {
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

// Get retrieves a customer by id.
func (s CustomerService) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CustomerRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Delete removes a customer together with all their addresses. It fails
// while the customer still has shipments that are not delivered.
func (s CustomerService) Delete(ctx context.Context, id kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	active, err := uow.ShipmentRepository().CountActiveByCustomer(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.NewBusinessRuleErrorf(
			"customer %s has %d undelivered shipments", aggregate.ID(), active)
	}

	addressRepo := uow.AddressRepository()
	addresses, err := addressRepo.GetByCustomer(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, addr := range addresses {
		if err := addressRepo.Delete(ctx, addr.ID()); err != nil {
			return err
		}
	}

	if err := customerRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkEmailFree fails when the email belongs to a customer other than self.
func (s CustomerService) checkEmailFree(ctx context.Context, repo ports.CustomerRepository, email string, self kernel.UUID) error {
	existing, err := repo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID().IsEqual(self) {
		return nil
	}
	return errs.NewBusinessRuleErrorf("customer email %s is already registered", email)
}
