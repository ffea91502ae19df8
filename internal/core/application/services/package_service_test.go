package services_test

import (
	"testing"

	"logistics/internal/core/application/services"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPackageService_Create_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestShipment(t, shipment.Pending)

	mockShipmentRepo := new(MockShipmentRepository)
	mockPackageRepo := new(MockPackageRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockPackageUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockUoW.On("PackageRepository").Return(mockPackageRepo).Once()
	mockShipmentRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	mockPackageRepo.On("CountByShipment", ctx, owner.ID()).Return(2, nil).Once()
	mockPackageRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Package")).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewPackageService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), owner.ID(), "caja de repuestos", 12.5, 80)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "caja de repuestos", created.Description())
	mockPackageRepo.AssertExpectations(t)
}

func TestPackageService_Create_DeliveredShipmentRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestShipment(t, shipment.Delivered)

	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockPackageUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once(),
		mockShipmentRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewPackageService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), owner.ID(), "caja de repuestos", 12.5, 80)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
}

func TestPackageService_Create_PackageLimitReached(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestShipment(t, shipment.Pending)

	mockShipmentRepo := new(MockShipmentRepository)
	mockPackageRepo := new(MockPackageRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockPackageUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockUoW.On("PackageRepository").Return(mockPackageRepo).Once()
	mockShipmentRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	mockPackageRepo.On("CountByShipment", ctx, owner.ID()).Return(50, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewPackageService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), owner.ID(), "caja extra", 1, 10)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
	mockPackageRepo.AssertExpectations(t)
}

func TestPackageService_Create_InvalidWeight(t *testing.T) {
	// Arrange: 120 kg exceeds the 100 kg per-package ceiling.
	ctx := t.Context()
	mockFactory := new(MockPackageUoWFactory)
	service := services.NewPackageService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), kernel.NewUUID(), "bulto pesado", 120, 50)

	// Assert
	require.Error(t, err)
	assert.Nil(t, created)
	mockFactory.AssertExpectations(t)
}

func TestPackageService_Delete_DeliveredShipmentRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	owner := newTestShipment(t, shipment.Delivered)
	pkg := newTestPackage(t, owner.ID())

	mockShipmentRepo := new(MockShipmentRepository)
	mockPackageRepo := new(MockPackageRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockPackageUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("PackageRepository").Return(mockPackageRepo).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockPackageRepo.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once()
	mockShipmentRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewPackageService(mockFactory)

	// Act
	err := service.Delete(ctx, pkg.ID())

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	mockPackageRepo.AssertExpectations(t)
}
