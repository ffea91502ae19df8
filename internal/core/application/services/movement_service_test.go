package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/services"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMovementService_RegisterEntry_OccupiesSlot(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 100, 4)

	mockShipmentRepo := new(MockShipmentRepository)
	mockWarehouseRepo := new(MockWarehouseRepository)
	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	var captured *movement.Movement
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockUoW.On("WarehouseRepository").Return(mockWarehouseRepo).Twice()
	mockUoW.On("MovementRepository").Return(mockMovementRepo).Once()
	mockShipmentRepo.On("Get", ctx, ship.ID()).Return(ship, nil).Once()
	mockWarehouseRepo.On("Get", ctx, wh.ID()).Return(wh, nil).Once()
	mockMovementRepo.On("GetOpenByShipment", ctx, ship.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipmentId", ship.ID())).Once()
	mockWarehouseRepo.On("Update", ctx, wh).Return(nil).Once()
	mockMovementRepo.On("Add", ctx, mock.MatchedBy(func(m *movement.Movement) bool {
		captured = m
		return true
	})).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	created, err := service.RegisterEntry(ctx, kernel.NewUUID(), ship.ID(), wh.ID(),
		time.Now().UTC(), "J. Mamani", "A-14")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, movement.Received, created.Status())
	assert.True(t, created.IsOpen())
	assert.Equal(t, 5, wh.OccupiedSlots())
	mockMovementRepo.AssertExpectations(t)
	mockWarehouseRepo.AssertExpectations(t)
}

func TestMovementService_RegisterEntry_ShipmentAlreadyInside(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 100, 5)
	open := newTestOpenMovement(t, ship.ID(), wh.ID())

	mockShipmentRepo := new(MockShipmentRepository)
	mockWarehouseRepo := new(MockWarehouseRepository)
	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockUoW.On("WarehouseRepository").Return(mockWarehouseRepo).Once()
	mockUoW.On("MovementRepository").Return(mockMovementRepo).Once()
	mockShipmentRepo.On("Get", ctx, ship.ID()).Return(ship, nil).Once()
	mockWarehouseRepo.On("Get", ctx, wh.ID()).Return(wh, nil).Once()
	mockMovementRepo.On("GetOpenByShipment", ctx, ship.ID()).Return(open, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act: second entry without a registered exit.
	created, err := service.RegisterEntry(ctx, kernel.NewUUID(), ship.ID(), wh.ID(),
		time.Now().UTC(), "J. Mamani", "A-15")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "already inside a warehouse")
	assert.Nil(t, created)
	assert.Equal(t, 5, wh.OccupiedSlots(), "occupancy must not change on rejection")
	mockMovementRepo.AssertExpectations(t)
}

func TestMovementService_RegisterEntry_WarehouseFull(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 5, 5)

	mockShipmentRepo := new(MockShipmentRepository)
	mockWarehouseRepo := new(MockWarehouseRepository)
	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockUoW.On("WarehouseRepository").Return(mockWarehouseRepo).Once()
	mockUoW.On("MovementRepository").Return(mockMovementRepo).Once()
	mockShipmentRepo.On("Get", ctx, ship.ID()).Return(ship, nil).Once()
	mockWarehouseRepo.On("Get", ctx, wh.ID()).Return(wh, nil).Once()
	mockMovementRepo.On("GetOpenByShipment", ctx, ship.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipmentId", ship.ID())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	created, err := service.RegisterEntry(ctx, kernel.NewUUID(), ship.ID(), wh.ID(),
		time.Now().UTC(), "J. Mamani", "B-02")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
	assert.Equal(t, 5, wh.OccupiedSlots())
}

func TestMovementService_RegisterEntry_InactiveWarehouse(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 100, 0)
	wh.Deactivate()

	mockShipmentRepo := new(MockShipmentRepository)
	mockWarehouseRepo := new(MockWarehouseRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockUoW.On("WarehouseRepository").Return(mockWarehouseRepo).Once()
	mockShipmentRepo.On("Get", ctx, ship.ID()).Return(ship, nil).Once()
	mockWarehouseRepo.On("Get", ctx, wh.ID()).Return(wh, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	created, err := service.RegisterEntry(ctx, kernel.NewUUID(), ship.ID(), wh.ID(),
		time.Now().UTC(), "J. Mamani", "B-03")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
}

func TestMovementService_RegisterExit_ReleasesSlot(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 100, 5)
	open := newTestOpenMovement(t, ship.ID(), wh.ID())

	mockWarehouseRepo := new(MockWarehouseRepository)
	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("MovementRepository").Return(mockMovementRepo).Once()
	mockUoW.On("WarehouseRepository").Return(mockWarehouseRepo).Twice()
	mockMovementRepo.On("GetOpenByShipment", ctx, ship.ID()).Return(open, nil).Once()
	mockWarehouseRepo.On("Get", ctx, wh.ID()).Return(wh, nil).Once()
	mockWarehouseRepo.On("Update", ctx, wh).Return(nil).Once()
	mockMovementRepo.On("Update", ctx, open).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	closed, err := service.RegisterExit(ctx, ship.ID(), time.Now().UTC(), "R. Flores")

	// Assert
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
	assert.Equal(t, movement.Dispatched, closed.Status())
	assert.Equal(t, 4, wh.OccupiedSlots())
	mockMovementRepo.AssertExpectations(t)
	mockWarehouseRepo.AssertExpectations(t)
}

func TestMovementService_RegisterExit_NoOpenRecord(t *testing.T) {
	// Arrange
	ctx := t.Context()
	shipmentID := kernel.NewUUID()

	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MovementRepository").Return(mockMovementRepo).Once(),
		mockMovementRepo.On("GetOpenByShipment", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentId", shipmentID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	closed, err := service.RegisterExit(ctx, shipmentID, time.Now().UTC(), "R. Flores")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, closed)
}

func TestMovementService_IsShipmentInWarehouse(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 100, 1)
	open := newTestOpenMovement(t, ship.ID(), wh.ID())

	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Times(2)
	mockUoW.On("MovementRepository").Return(mockMovementRepo).Times(2)
	mockMovementRepo.On("GetOpenByShipment", ctx, ship.ID()).Return(open, nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Times(2)
	mockUoW.On("Rollback", ctx).Return(nil).Times(2)
	mockFactory.On("Create").Return(mockUoW).Times(2)

	other := kernel.NewUUID()
	mockMovementRepo.On("GetOpenByShipment", ctx, other).
		Return(nil, errs.NewObjectNotFoundError("shipmentId", other)).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	inside, err := service.IsShipmentInWarehouse(ctx, ship.ID())
	require.NoError(t, err)
	outside, err := service.IsShipmentInWarehouse(ctx, other)
	require.NoError(t, err)

	// Assert
	assert.True(t, inside)
	assert.False(t, outside)
}

func TestMovementService_Delete_OpenRecordRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ship := newTestShipment(t, shipment.InTransit)
	wh := newTestWarehouse(t, 100, 1)
	open := newTestOpenMovement(t, ship.ID(), wh.ID())

	mockMovementRepo := new(MockMovementRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockMovementUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MovementRepository").Return(mockMovementRepo).Once(),
		mockMovementRepo.On("Get", ctx, open.ID()).Return(open, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewMovementService(mockFactory)

	// Act
	err := service.Delete(ctx, open.ID())

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	mockMovementRepo.AssertExpectations(t)
}
