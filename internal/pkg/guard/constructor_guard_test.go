package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errShipmentNotConstructed = errors.New("shipment is not constructed")

func TestConstructorGuardValidate(t *testing.T) {
	t.Run("should pass for a constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errShipmentNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the supplied error for a zero value", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errShipmentNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errShipmentNotConstructed, err)
	})

	t.Run("should fall back to the default error when none is supplied", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("should survive being copied by value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errShipmentNotConstructed))
	})
}

func TestConstructorGuardEmbedded(t *testing.T) {
	type warehouseSlot struct {
		code  string
		guard guard.ConstructorGuard
	}

	newWarehouseSlot := func(code string) (warehouseSlot, error) {
		if code == "" {
			return warehouseSlot{}, errors.New("code is required")
		}
		return warehouseSlot{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("should validate an object built through its constructor", func(t *testing.T) {
		slot, err := newWarehouseSlot("A-14")

		require.NoError(t, err)
		require.NoError(t, slot.guard.Validate(errShipmentNotConstructed))
		assert.Equal(t, "A-14", slot.code)
	})

	t.Run("should reject a zero-value struct literal", func(t *testing.T) {
		var slot warehouseSlot

		err := slot.guard.Validate(errShipmentNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errShipmentNotConstructed, err)
	})
}
