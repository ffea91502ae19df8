package movement_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOpenMovement(t *testing.T) *movement.Movement {
	t.Helper()
	m, err := movement.NewMovement(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Add(-time.Hour), "Jorge Mamani", "A-3-12",
	)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func TestNewMovement(t *testing.T) {
	validID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()

	t.Run("should create open record in Received status", func(t *testing.T) {
		entry := time.Now().UTC().Add(-time.Hour)

		m, err := movement.NewMovement(validID, shipmentID, warehouseID, entry, "Jorge Mamani", "A-3-12")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, movement.Received, m.Status())
		assert.True(t, m.IsOpen())
		assert.Nil(t, m.ExitDate())
		assert.Equal(t, entry, m.EntryDate())
		assert.Empty(t, m.DispatchedBy())
	})

	t.Run("should default zero entry date to now", func(t *testing.T) {
		m, err := movement.NewMovement(validID, shipmentID, warehouseID, time.Time{}, "", "")

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), m.EntryDate(), time.Minute)
	})

	t.Run("should reject missing shipment", func(t *testing.T) {
		var noShipment kernel.UUID

		m, err := movement.NewMovement(validID, noShipment, warehouseID, time.Now().UTC(), "", "")

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreMovement(t *testing.T) {
	entry := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should restore a closed record", func(t *testing.T) {
		exit := entry.Add(48 * time.Hour)

		m, err := movement.RestoreMovement(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			entry, &exit, movement.Dispatched, "Jorge Mamani", "Ana Rojas", "A-3-12")

		require.NoError(t, err)
		assert.False(t, m.IsOpen())
		assert.Equal(t, movement.Dispatched, m.Status())
		assert.Equal(t, "Ana Rojas", m.DispatchedBy())
	})

	t.Run("should reject exit before entry", func(t *testing.T) {
		exit := entry.Add(-time.Hour)

		m, err := movement.RestoreMovement(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			entry, &exit, movement.Dispatched, "", "", "")

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestRegisterExit(t *testing.T) {
	t.Run("should close the record", func(t *testing.T) {
		m := createOpenMovement(t)
		exit := time.Now().UTC()

		err := m.RegisterExit(exit, "Ana Rojas")

		require.NoError(t, err)
		assert.False(t, m.IsOpen())
		require.NotNil(t, m.ExitDate())
		assert.Equal(t, exit, *m.ExitDate())
		assert.Equal(t, movement.Dispatched, m.Status())
		assert.Equal(t, "Ana Rojas", m.DispatchedBy())
	})

	t.Run("should default zero exit date to now", func(t *testing.T) {
		m := createOpenMovement(t)

		err := m.RegisterExit(time.Time{}, "Ana Rojas")

		require.NoError(t, err)
		require.NotNil(t, m.ExitDate())
		assert.WithinDuration(t, time.Now().UTC(), *m.ExitDate(), time.Minute)
	})

	t.Run("should refuse exit before entry", func(t *testing.T) {
		m := createOpenMovement(t)

		err := m.RegisterExit(m.EntryDate().Add(-time.Minute), "Ana Rojas")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.True(t, m.IsOpen())
	})

	t.Run("should refuse a second exit", func(t *testing.T) {
		m := createOpenMovement(t)
		require.NoError(t, m.RegisterExit(time.Now().UTC(), "Ana Rojas"))

		err := m.RegisterExit(time.Now().UTC(), "Luis Vargas")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Equal(t, "Ana Rojas", m.DispatchedBy())
	})
}

func TestIntermediateStates(t *testing.T) {
	t.Run("should move open record through storage and processing", func(t *testing.T) {
		m := createOpenMovement(t)

		require.NoError(t, m.MarkInStorage("B-1-04"))
		assert.Equal(t, movement.InStorage, m.Status())
		assert.Equal(t, "B-1-04", m.StorageLocation())

		require.NoError(t, m.MarkProcessing())
		assert.Equal(t, movement.Processing, m.Status())
	})

	t.Run("should refuse state changes on closed record", func(t *testing.T) {
		m := createOpenMovement(t)
		require.NoError(t, m.RegisterExit(time.Now().UTC(), "Ana Rojas"))

		assert.Error(t, m.MarkInStorage("B-1-04"))
		assert.Error(t, m.MarkProcessing())
	})
}

func TestParseMovementStatus(t *testing.T) {
	t.Run("should parse all display names", func(t *testing.T) {
		for _, name := range []string{"Received", "InStorage", "Processing", "Dispatched"} {
			s, err := movement.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		_, err := movement.ParseStatus("Returned")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
