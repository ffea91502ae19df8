package services_test

import (
	"testing"

	"logistics/internal/core/application/services"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRouteService_Create_DuplicateEndpoints(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestRoute(t)

	mockRepo := new(MockRouteRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockRouteUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RouteRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByEndpoints", ctx, "La Paz", "Cochabamba").Return(existing, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewRouteService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), "La Paz", "Cochabamba", 380, 120)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, created)
}

func TestRouteService_Create_SameOriginAndDestination(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockFactory := new(MockRouteUoWFactory)
	service := services.NewRouteService(mockFactory)

	// Act
	created, err := service.Create(ctx, kernel.NewUUID(), "La Paz", "La Paz", 10, 5)

	// Assert
	require.Error(t, err)
	assert.Nil(t, created)
	mockFactory.AssertExpectations(t)
}

func TestRouteService_Update_EndpointsFrozenWithShipments(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestRoute(t)

	mockRepo := new(MockRouteRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockRouteUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RouteRepository").Return(mockRepo).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	mockShipmentRepo.On("HasByRoute", ctx, existing.ID()).Return(true, nil).Once()
	mockRepo.On("GetByEndpoints", ctx, "La Paz", "Oruro").
		Return(nil, errs.NewObjectNotFoundError("route", "La Paz-Oruro")).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewRouteService(mockFactory)

	// Act
	updated, err := service.Update(ctx, existing.ID(), "La Paz", "Oruro", 230, 90)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Nil(t, updated)
	assert.Equal(t, "Cochabamba", existing.Destination())
	mockRepo.AssertExpectations(t)
}

func TestRouteService_Update_CostChangeAllowedWithShipments(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestRoute(t)

	mockRepo := new(MockRouteRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockRouteUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RouteRepository").Return(mockRepo).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	mockShipmentRepo.On("HasByRoute", ctx, existing.ID()).Return(true, nil).Once()
	mockRepo.On("Update", ctx, existing).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewRouteService(mockFactory)

	// Act: endpoints unchanged, only distance and cost move.
	updated, err := service.Update(ctx, existing.ID(), "La Paz", "Cochabamba", 385, 140)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, float64(140), updated.BaseCost())
	mockRepo.AssertExpectations(t)
}

func TestRouteService_Delete_BlockedWhileReferenced(t *testing.T) {
	// Arrange
	ctx := t.Context()
	existing := newTestRoute(t)

	mockRepo := new(MockRouteRepository)
	mockShipmentRepo := new(MockShipmentRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockRouteUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RouteRepository").Return(mockRepo).Once()
	mockUoW.On("ShipmentRepository").Return(mockShipmentRepo).Once()
	mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	mockShipmentRepo.On("HasByRoute", ctx, existing.ID()).Return(true, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewRouteService(mockFactory)

	// Act
	err := service.Delete(ctx, existing.ID())

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	mockShipmentRepo.AssertExpectations(t)
}
