package services_test

import (
	"testing"

	"logistics/internal/core/application/services"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWarehouseService_Create_OccupancyStartsAtZero(t *testing.T) {
	// Arrange
	ctx := t.Context()

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	var captured *warehouse.Warehouse
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByCode", ctx, "WH-SCZ-2").
			Return(nil, errs.NewObjectNotFoundError("code", "WH-SCZ-2")).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(w *warehouse.Warehouse) bool {
			captured = w
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewWarehouseService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(),
		"Deposito Norte", "WH-SCZ-2", "Parque Industrial Mz 7", "Santa Cruz",
		kernel.SantaCruz, "+591 33445566", "", 500, warehouse.Regional)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Zero(t, created.OccupiedSlots())
	mockRepo.AssertExpectations(t)
}

func TestWarehouseService_Create_DuplicateCode(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestWarehouse(t, 100, 0)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByCode", ctx, existing.Code()).Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewWarehouseService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(),
		"Otro Deposito", existing.Code(), "Av. Buenos Aires 740", "La Paz",
		kernel.LaPaz, "+591 2245566", "", 200, warehouse.Local)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
}

func TestWarehouseService_Update_CannotShrinkBelowOccupied(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestWarehouse(t, 100, 40)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		mockRepo.On("GetByCode", ctx, existing.Code()).Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewWarehouseService(mockFactory)

	// Act: 40 slots are in use, shrinking to 30 must fail.
	updated, err := service.Update(ctx, existing.ID(),
		existing.Name(), existing.Code(), existing.AddressLine(), existing.City(),
		existing.Department(), existing.Phone(), existing.Email(), 30, existing.WarehouseType())

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, updated)
	assert.Equal(t, float64(100), existing.MaxCapacityM3())
	mockRepo.AssertExpectations(t)
}

func TestWarehouseService_Delete_BlockedWhileHoldingShipments(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestWarehouse(t, 100, 3)

	mockRepo := new(MockWarehouseRepository)
	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("WarehouseRepository").Return(mockRepo).Once()
	mockUoW.On("MovementRepository").Return(mockMovementRepo).Once()
	mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	mockMovementRepo.On("HasOpenByWarehouse", ctx, existing.ID()).Return(true, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewWarehouseService(mockFactory)

	// Act
	err := service.Delete(ctx, existing.ID())

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	mockMovementRepo.AssertExpectations(t)
}
