package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

// Fixture helpers shared by the service tests.

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Maria Fernandez", "maria@example.com", "+591 70011223")
	require.NoError(t, err)
	return c
}

func newTestAddress(t *testing.T, customerID kernel.UUID, addressType address.Type, isDefault bool) *address.Address {
	t.Helper()
	a, err := address.RestoreAddress(kernel.NewUUID(), customerID,
		"Av. 6 de Agosto #2170", "La Paz", kernel.LaPaz,
		"San Jorge", "0000", "frente al parque", "casa", addressType,
		isDefault, true, nil, "Maria Fernandez", "+591 70011223",
		time.Now().UTC())
	require.NoError(t, err)
	return a
}

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()
	now := time.Now().UTC()
	d, err := driver.NewDriver(kernel.NewUUID(),
		"Carlos Quispe", "6543210 LP", "LIC-99881", "B",
		now.AddDate(-2, 0, 0), now.AddDate(3, 0, 0),
		"+591 71234567", "carlos@example.com",
		now.AddDate(-30, 0, 0), now.AddDate(-1, 0, 0), 5)
	require.NoError(t, err)
	return d
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(),
		"1234-ABC", "Nissan", "Condor", 2020, vehicle.Van,
		2500, 16, 120000, 115000, nil, nil, nil, nil)
	require.NoError(t, err)
	return v
}

func newTestWarehouse(t *testing.T, maxCapacityM3 float64, occupiedSlots int) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.RestoreWarehouse(kernel.NewUUID(),
		"Deposito Central", "WH-LPZ-1", "Av. Buenos Aires 740", "La Paz",
		kernel.LaPaz, "+591 2245566", "", maxCapacityM3, occupiedSlots,
		warehouse.Central, true, time.Now().UTC())
	require.NoError(t, err)
	return w
}

func newTestRoute(t *testing.T) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), "La Paz", "Cochabamba", 380, 120)
	require.NoError(t, err)
	return r
}

func newTestShipment(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"TRK-2026-0001", status, 350, time.Now().UTC())
	require.NoError(t, err)
	return s
}

func newTestPackage(t *testing.T, shipmentID kernel.UUID) *shipment.Package {
	t.Helper()
	p, err := shipment.NewPackage(kernel.NewUUID(), shipmentID, "caja de repuestos", 12.5, 80)
	require.NoError(t, err)
	return p
}

func newTestOpenMovement(t *testing.T, shipmentID, warehouseID kernel.UUID) *movement.Movement {
	t.Helper()
	m, err := movement.NewMovement(kernel.NewUUID(), shipmentID, warehouseID,
		time.Now().UTC().Add(-time.Hour), "J. Mamani", "A-14")
	require.NoError(t, err)
	return m
}
