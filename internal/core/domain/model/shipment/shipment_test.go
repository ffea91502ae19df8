package shipment_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "TRK-2026-0001", 150)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	routeID := kernel.NewUUID()

	t.Run("should create pending shipment", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, customerID, routeID, "TRK-2026-0001", 150)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, "TRK-2026-0001", s.TrackingNumber())
		assert.Equal(t, 150.0, s.TotalCost())
		assert.True(t, s.IsActive())
		assert.WithinDuration(t, time.Now().UTC(), s.CreatedAt(), time.Minute)
	})

	t.Run("should reject missing customer", func(t *testing.T) {
		var noCustomer kernel.UUID

		s, err := shipment.NewShipment(validID, noCustomer, routeID, "TRK-2026-0001", 150)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty tracking number", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, customerID, routeID, "", 150)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should reject too long tracking number", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, customerID, routeID, strings.Repeat("X", 51), 150)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject non-positive cost", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, customerID, routeID, "TRK-2026-0001", 0)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipmentChangeStatus(t *testing.T) {
	t.Run("should move pending shipment into transit", func(t *testing.T) {
		s := createValidShipment(t)

		err := s.ChangeStatus(shipment.InTransit)

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.True(t, s.IsActive())
	})

	t.Run("should deliver a shipment in transit", func(t *testing.T) {
		s := createValidShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.InTransit))

		err := s.ChangeStatus(shipment.Delivered)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
		assert.False(t, s.IsActive())
	})

	t.Run("should refuse delivering straight from pending", func(t *testing.T) {
		s := createValidShipment(t)

		err := s.ChangeStatus(shipment.Delivered)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should allow moving back to pending", func(t *testing.T) {
		s := createValidShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.InTransit))

		err := s.ChangeStatus(shipment.Pending)

		require.NoError(t, err)
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should reject unknown target status", func(t *testing.T) {
		s := createValidShipment(t)

		err := s.ChangeStatus(shipment.StatusUnknown)

		require.Error(t, err)
	})
}

func TestShipmentUpdateTotalCost(t *testing.T) {
	t.Run("should apply a new price", func(t *testing.T) {
		s := createValidShipment(t)

		require.NoError(t, s.UpdateTotalCost(200))

		assert.Equal(t, 200.0, s.TotalCost())
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		s := createValidShipment(t)

		err := s.UpdateTotalCost(0)

		require.Error(t, err)
		assert.Equal(t, 150.0, s.TotalCost())
	})
}

func TestStatusIsTerminalForEdits(t *testing.T) {
	assert.False(t, shipment.Pending.IsTerminalForEdits())
	assert.False(t, shipment.InTransit.IsTerminalForEdits())
	assert.True(t, shipment.Delivered.IsTerminalForEdits())
}

func TestParseShipmentStatus(t *testing.T) {
	t.Run("should parse display names", func(t *testing.T) {
		s, err := shipment.ParseStatus("In transit")
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s)
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		_, err := shipment.ParseStatus("Lost")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
