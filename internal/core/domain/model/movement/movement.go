// Package movement contains the shipment-warehouse movement record: the
// proof of a shipment's physical presence in a warehouse. A record with no
// exit date is "open" and means the shipment is inside; a shipment has at
// most one open record across the whole network, a rule the movement
// service enforces before creating a record.
package movement

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	maxNameLength     = 100
	maxLocationLength = 50
)

// ErrMovementIsNotConstructed is returned when a Movement was not created
// through NewMovement or RestoreMovement.
var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement constructor")

// Movement records one stay of a shipment in a warehouse.
type Movement struct {
	id              kernel.UUID
	shipmentID      kernel.UUID
	warehouseID     kernel.UUID
	entryDate       time.Time
	exitDate        *time.Time
	status          Status
	receivedBy      string
	dispatchedBy    string
	storageLocation string

	isConstructed bool
}

// NewMovement creates an open movement record in Received status. A zero
// entryDate defaults to now.
func NewMovement(id, shipmentID, warehouseID kernel.UUID, entryDate time.Time, receivedBy, storageLocation string) (*Movement, error) {
	if entryDate.IsZero() {
		entryDate = time.Now().UTC()
	}

	m := &Movement{
		entryDate:     entryDate,
		status:        Received,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setShipmentID(shipmentID),
		m.setWarehouseID(warehouseID),
		m.setReceivedBy(receivedBy),
		m.setStorageLocation(storageLocation),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMovement reconstructs a movement record from persistence.
func RestoreMovement(
	id, shipmentID, warehouseID kernel.UUID,
	entryDate time.Time,
	exitDate *time.Time,
	status Status,
	receivedBy, dispatchedBy, storageLocation string,
) (*Movement, error) {
	m, err := NewMovement(id, shipmentID, warehouseID, entryDate, receivedBy, storageLocation)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if exitDate != nil {
		if exitDate.Before(entryDate) {
			return nil, errs.NewBusinessRuleError("exit date cannot precede the entry date")
		}
		exit := *exitDate
		m.exitDate = &exit
	}

	m.status = status
	m.dispatchedBy = dispatchedBy
	return m, nil
}

// Validate ensures the movement was produced by a constructor.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (m *Movement) ID() kernel.UUID { return m.id }

// ShipmentID returns the shipment this record tracks.
func (m *Movement) ShipmentID() kernel.UUID { return m.shipmentID }

// WarehouseID returns the warehouse the shipment entered.
func (m *Movement) WarehouseID() kernel.UUID { return m.warehouseID }

// EntryDate returns when the shipment entered the warehouse.
func (m *Movement) EntryDate() time.Time { return m.entryDate }

// ExitDate returns when the shipment left, nil while it is still inside.
func (m *Movement) ExitDate() *time.Time { return m.exitDate }

// Status returns the handling state.
func (m *Movement) Status() Status { return m.status }

// ReceivedBy returns who received the shipment.
func (m *Movement) ReceivedBy() string { return m.receivedBy }

// DispatchedBy returns who dispatched the shipment, empty while open.
func (m *Movement) DispatchedBy() string { return m.dispatchedBy }

// StorageLocation returns the optional bay/rack label.
func (m *Movement) StorageLocation() string { return m.storageLocation }

// IsOpen reports whether the shipment is still inside the warehouse.
func (m *Movement) IsOpen() bool {
	return m.exitDate == nil
}

// RegisterExit closes the record: sets the exit date, who dispatched, and
// the Dispatched status. A zero exitDate defaults to now. The exit can
// never precede the entry.
func (m *Movement) RegisterExit(exitDate time.Time, dispatchedBy string) error {
	if !m.IsOpen() {
		return errs.NewBusinessRuleError("the shipment already left this warehouse")
	}
	if exitDate.IsZero() {
		exitDate = time.Now().UTC()
	}
	if exitDate.Before(m.entryDate) {
		return errs.NewBusinessRuleError("exit date cannot precede the entry date")
	}
	if err := m.setDispatchedBy(dispatchedBy); err != nil {
		return err
	}

	m.exitDate = &exitDate
	m.status = Dispatched
	return nil
}

// MarkInStorage moves an open record to the InStorage state, optionally
// updating the storage location.
func (m *Movement) MarkInStorage(storageLocation string) error {
	if !m.IsOpen() {
		return errs.NewBusinessRuleError("a dispatched shipment cannot be stored")
	}
	if err := m.setStorageLocation(storageLocation); err != nil {
		return err
	}
	m.status = InStorage
	return nil
}

// MarkProcessing moves an open record to the Processing state.
func (m *Movement) MarkProcessing() error {
	if !m.IsOpen() {
		return errs.NewBusinessRuleError("a dispatched shipment cannot be processed")
	}
	m.status = Processing
	return nil
}

func (m *Movement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Movement) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	m.shipmentID = id
	return nil
}

func (m *Movement) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	m.warehouseID = id
	return nil
}

func (m *Movement) setReceivedBy(receivedBy string) error {
	if len(receivedBy) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("receivedBy length", len(receivedBy), 0, maxNameLength)
	}
	m.receivedBy = receivedBy
	return nil
}

func (m *Movement) setDispatchedBy(dispatchedBy string) error {
	if len(dispatchedBy) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("dispatchedBy length", len(dispatchedBy), 0, maxNameLength)
	}
	m.dispatchedBy = dispatchedBy
	return nil
}

func (m *Movement) setStorageLocation(location string) error {
	if len(location) > maxLocationLength {
		return errs.NewValueIsOutOfRangeError("storageLocation length", len(location), 0, maxLocationLength)
	}
	m.storageLocation = location
	return nil
}
