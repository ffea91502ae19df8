package services_test

import (
	"testing"

	"logistics/internal/core/application/services"
	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_Create_RequestedDefaultDisplacesCurrent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	previous := newTestAddress(t, owner.ID(), address.Delivery, true)

	mockCustomerRepo := new(MockCustomerRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	var captured *address.Address
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockCustomerRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	mockAddressRepo.On("CountActiveByCustomer", ctx, owner.ID()).Return(1, nil).Once()
	mockAddressRepo.On("GetDefault", ctx, owner.ID(), address.Delivery).Return(previous, nil).Once()
	mockAddressRepo.On("Update", ctx, previous).Return(nil).Once()
	mockAddressRepo.On("Add", ctx, mock.MatchedBy(func(a *address.Address) bool {
		captured = a
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), owner.ID(),
		"Av. 6 de Agosto #2170", "La Paz", kernel.LaPaz,
		"San Jorge", "", "", "oficina", address.Delivery, true,
		nil, "Maria Fernandez", "+591 70011223")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.True(t, created.IsDefault())
	assert.False(t, previous.IsDefault(), "prior default should lose the flag")
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Create_FirstAddressBecomesDefault(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)

	mockCustomerRepo := new(MockCustomerRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockCustomerRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	mockAddressRepo.On("CountActiveByCustomer", ctx, owner.ID()).Return(0, nil).Once()
	mockAddressRepo.On("GetDefault", ctx, owner.ID(), address.Pickup).
		Return(nil, errs.NewObjectNotFoundError("default address", owner.ID())).Once()
	mockAddressRepo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act: the caller did not ask for the default flag.
	created, err := service.Create(ctx, kernel.NewUUID(), owner.ID(),
		"Calle Sucre 455", "Sucre", kernel.Chuquisaca,
		"", "", "", "", address.Pickup, false,
		nil, "", "")

	// Assert
	require.NoError(t, err)
	assert.True(t, created.IsDefault(), "first address of a type is promoted regardless of the request")
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Create_ActiveAddressCapReached(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)

	mockCustomerRepo := new(MockCustomerRepository)
	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockCustomerRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	mockAddressRepo.On("CountActiveByCustomer", ctx, owner.ID()).Return(10, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), owner.ID(),
		"Av. Ballivian 1234", "La Paz", kernel.LaPaz,
		"", "", "", "", address.Delivery, false,
		nil, "", "")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Create_CustomerMissing(t *testing.T) {
	// Arrange
	ctx := t.Context()
	customerID := kernel.NewUUID()

	mockCustomerRepo := new(MockCustomerRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CustomerRepository").Return(mockCustomerRepo).Once(),
		mockCustomerRepo.On("Get", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerId", customerID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), customerID,
		"Av. Ballivian 1234", "La Paz", kernel.LaPaz,
		"", "", "", "", address.Delivery, false,
		nil, "", "")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, created)
}

func TestAddressService_SetDefault_DisplacesCurrent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	current := newTestAddress(t, owner.ID(), address.Delivery, true)
	next := newTestAddress(t, owner.ID(), address.Delivery, false)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AddressRepository").Return(mockAddressRepo).Once(),
		mockAddressRepo.On("Get", ctx, next.ID()).Return(next, nil).Once(),
		mockAddressRepo.On("GetDefault", ctx, owner.ID(), address.Delivery).Return(current, nil).Once(),
		mockAddressRepo.On("Update", ctx, current).Return(nil).Once(),
		mockAddressRepo.On("Update", ctx, next).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	err := service.SetDefault(ctx, next.ID())

	// Assert
	require.NoError(t, err)
	assert.True(t, next.IsDefault())
	assert.False(t, current.IsDefault())
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_SetDefault_AlreadyDefaultIsNoop(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	current := newTestAddress(t, owner.ID(), address.Pickup, true)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("AddressRepository").Return(mockAddressRepo).Once(),
		mockAddressRepo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	err := service.SetDefault(ctx, current.ID())

	// Assert
	require.NoError(t, err)
	assert.True(t, current.IsDefault())
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Deactivate_DefaultWithActiveSiblingRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	retiring := newTestAddress(t, owner.ID(), address.Delivery, true)
	sibling := newTestAddress(t, owner.ID(), address.Delivery, false)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockAddressRepo.On("Get", ctx, retiring.ID()).Return(retiring, nil).Once()
	mockAddressRepo.On("GetActiveByCustomerAndType", ctx, owner.ID(), address.Delivery).
		Return([]*address.Address{retiring, sibling}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	err := service.Deactivate(ctx, retiring.ID())

	// Assert: the caller has to promote the sibling first.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.True(t, retiring.IsActive())
	assert.True(t, retiring.IsDefault())
	mockAddressRepo.AssertNotCalled(t, "Update", ctx, retiring)
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Deactivate_LastOfGroupSucceeds(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	only := newTestAddress(t, owner.ID(), address.Delivery, true)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockAddressRepo.On("Get", ctx, only.ID()).Return(only, nil).Once()
	mockAddressRepo.On("GetActiveByCustomerAndType", ctx, owner.ID(), address.Delivery).
		Return([]*address.Address{only}, nil).Once()
	mockAddressRepo.On("Update", ctx, only).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	err := service.Deactivate(ctx, only.ID())

	// Assert: an empty group needs no default.
	require.NoError(t, err)
	assert.False(t, only.IsActive())
	assert.False(t, only.IsDefault())
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Delete_DefaultWithActiveSiblingRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	target := newTestAddress(t, owner.ID(), address.Delivery, true)
	sibling := newTestAddress(t, owner.ID(), address.Delivery, false)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockAddressRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	mockAddressRepo.On("GetActiveByCustomerAndType", ctx, owner.ID(), address.Delivery).
		Return([]*address.Address{target, sibling}, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	err := service.Delete(ctx, target.ID())

	// Assert: the address stays and the sibling keeps its non-default flag.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.False(t, sibling.IsDefault())
	mockAddressRepo.AssertNotCalled(t, "Delete", ctx, target.ID())
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Delete_LastAddressLeavesEmptyGroup(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	only := newTestAddress(t, owner.ID(), address.Delivery, true)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockAddressRepo.On("Get", ctx, only.ID()).Return(only, nil).Once()
	mockAddressRepo.On("GetActiveByCustomerAndType", ctx, owner.ID(), address.Delivery).
		Return([]*address.Address{only}, nil).Once()
	mockAddressRepo.On("Delete", ctx, only.ID()).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	err := service.Delete(ctx, only.ID())

	// Assert
	require.NoError(t, err)
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Update_UnsetDefaultRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	current := newTestAddress(t, owner.ID(), address.Delivery, true)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockAddressRepo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	mockAddressRepo.On("GetDefault", ctx, owner.ID(), address.Delivery).Return(current, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act: same fields, default flag turned off.
	updated, err := service.Update(ctx, current.ID(),
		current.Street(), current.City(), current.Department(),
		current.Zone(), current.PostalCode(), current.Reference(), current.Alias(),
		current.Type(), false, nil, current.ContactName(), current.ContactPhone())

	// Assert: the group would be left without a default.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, updated)
	assert.True(t, current.IsDefault())
	mockAddressRepo.AssertNotCalled(t, "Update", ctx, current)
	mockAddressRepo.AssertExpectations(t)
}

func TestAddressService_Update_SetDefaultDisplacesCurrent(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestCustomer(t)
	current := newTestAddress(t, owner.ID(), address.Delivery, true)
	promoted := newTestAddress(t, owner.ID(), address.Delivery, false)

	mockAddressRepo := new(MockAddressRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockAddressUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("AddressRepository").Return(mockAddressRepo).Once()
	mockAddressRepo.On("Get", ctx, promoted.ID()).Return(promoted, nil).Once()
	mockAddressRepo.On("GetDefault", ctx, owner.ID(), address.Delivery).Return(current, nil).Twice()
	mockAddressRepo.On("Update", ctx, current).Return(nil).Once()
	mockAddressRepo.On("Update", ctx, promoted).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewAddressService(mockFactory)

	// Act
	updated, err := service.Update(ctx, promoted.ID(),
		promoted.Street(), promoted.City(), promoted.Department(),
		promoted.Zone(), promoted.PostalCode(), promoted.Reference(), promoted.Alias(),
		promoted.Type(), true, nil, promoted.ContactName(), promoted.ContactPhone())

	// Assert
	require.NoError(t, err)
	assert.True(t, updated.IsDefault())
	assert.False(t, current.IsDefault())
	mockAddressRepo.AssertExpectations(t)
}
