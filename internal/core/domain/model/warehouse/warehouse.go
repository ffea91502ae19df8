// Package warehouse contains the warehouse aggregate. Occupancy is a coarse
// slot counter: every shipment present in the warehouse takes exactly one
// slot regardless of its actual volume, and the slot count is bounded by the
// declared capacity. Slots are counted, not measured; the capacity figure
// doubles as the slot limit.
package warehouse

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minNameLength = 3
	maxNameLength = 100
	minCodeLength = 3
	maxCodeLength = 20
	minAddrLength = 5
	maxAddrLength = 200
	minCityLength = 2
	maxCityLength = 100

	maxCapacityCeilingM3 = 100000.0
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse was not created
// through NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is the aggregate root for a storage facility.
type Warehouse struct {
	id            kernel.UUID
	name          string
	code          string
	addressLine   string
	city          string
	department    kernel.Department
	phone         string
	email         string
	maxCapacityM3 float64
	occupiedSlots int
	warehouseType Type
	isActive      bool
	createdAt     time.Time

	isConstructed bool
}

// NewWarehouse creates a validated warehouse with zero occupied slots.
// Whatever occupancy the caller supplies at creation time is ignored.
func NewWarehouse(
	id kernel.UUID,
	name, code, addressLine, city string,
	department kernel.Department,
	phone, email string,
	maxCapacityM3 float64,
	warehouseType Type,
) (*Warehouse, error) {
	w := &Warehouse{
		occupiedSlots: 0,
		isActive:      true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setCode(code),
		w.setAddressLine(addressLine),
		w.setCity(city),
		w.setDepartment(department),
		w.setPhone(phone),
		w.setEmail(email),
		w.setMaxCapacity(maxCapacityM3),
		w.setType(warehouseType),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence with its
// stored occupancy.
func RestoreWarehouse(
	id kernel.UUID,
	name, code, addressLine, city string,
	department kernel.Department,
	phone, email string,
	maxCapacityM3 float64,
	occupiedSlots int,
	warehouseType Type,
	isActive bool,
	createdAt time.Time,
) (*Warehouse, error) {
	w, err := NewWarehouse(id, name, code, addressLine, city, department, phone, email, maxCapacityM3, warehouseType)
	if err != nil {
		return nil, err
	}

	if occupiedSlots < 0 {
		return nil, errs.NewValueIsInvalidError("occupiedSlots")
	}
	if float64(occupiedSlots) > maxCapacityM3 {
		return nil, errs.NewBusinessRuleError("occupied slots exceed the warehouse capacity")
	}

	w.occupiedSlots = occupiedSlots
	w.isActive = isActive
	w.createdAt = createdAt
	return w, nil
}

// Validate ensures the warehouse was produced by a constructor.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// IsEqual compares warehouses by identity.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() kernel.UUID { return w.id }

// Name returns the warehouse display name.
func (w *Warehouse) Name() string { return w.name }

// Code returns the unique warehouse code.
func (w *Warehouse) Code() string { return w.code }

// AddressLine returns the street address.
func (w *Warehouse) AddressLine() string { return w.addressLine }

// City returns the city name.
func (w *Warehouse) City() string { return w.city }

// Department returns the Bolivian department.
func (w *Warehouse) Department() kernel.Department { return w.department }

// Phone returns the contact phone.
func (w *Warehouse) Phone() string { return w.phone }

// Email returns the optional contact email.
func (w *Warehouse) Email() string { return w.email }

// MaxCapacityM3 returns the declared capacity.
func (w *Warehouse) MaxCapacityM3() float64 { return w.maxCapacityM3 }

// OccupiedSlots returns how many shipments are currently inside.
func (w *Warehouse) OccupiedSlots() int { return w.occupiedSlots }

// WarehouseType returns the place in the distribution hierarchy.
func (w *Warehouse) WarehouseType() Type { return w.warehouseType }

// IsActive reports whether the warehouse accepts shipments.
func (w *Warehouse) IsActive() bool { return w.isActive }

// CreatedAt returns when the warehouse was registered.
func (w *Warehouse) CreatedAt() time.Time { return w.createdAt }

// HasFreeSlot reports whether one more shipment fits.
func (w *Warehouse) HasFreeSlot() bool {
	return float64(w.occupiedSlots+1) <= w.maxCapacityM3
}

// OccupySlot books one slot for an arriving shipment.
func (w *Warehouse) OccupySlot() error {
	if !w.HasFreeSlot() {
		return errs.NewBusinessRuleErrorf("warehouse %s has no free capacity", w.code)
	}
	w.occupiedSlots++
	return nil
}

// ReleaseSlot frees the slot of a dispatched shipment, never going below zero.
func (w *Warehouse) ReleaseSlot() {
	if w.occupiedSlots > 0 {
		w.occupiedSlots--
	}
}

// Update re-validates and applies new details. The capacity cannot shrink
// below the slots currently in use.
func (w *Warehouse) Update(
	name, code, addressLine, city string,
	department kernel.Department,
	phone, email string,
	maxCapacityM3 float64,
	warehouseType Type,
) error {
	updated := *w
	if err := errors.Join(
		updated.setName(name),
		updated.setCode(code),
		updated.setAddressLine(addressLine),
		updated.setCity(city),
		updated.setDepartment(department),
		updated.setPhone(phone),
		updated.setEmail(email),
		updated.setMaxCapacity(maxCapacityM3),
		updated.setType(warehouseType),
	); err != nil {
		return err
	}

	if float64(w.occupiedSlots) > maxCapacityM3 {
		return errs.NewBusinessRuleErrorf(
			"capacity cannot shrink below the %d slots currently in use", w.occupiedSlots)
	}

	*w = updated
	return nil
}

// Deactivate stops the warehouse from accepting new shipments.
func (w *Warehouse) Deactivate() {
	w.isActive = false
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), minNameLength, maxNameLength)
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) < minCodeLength || len(code) > maxCodeLength {
		return errs.NewValueIsOutOfRangeError("code length", len(code), minCodeLength, maxCodeLength)
	}
	for _, r := range code {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return errs.NewValueIsInvalidErrorWithCause(
				"code",
				fmt.Errorf("character %q is not allowed in a warehouse code", r),
			)
		}
	}
	w.code = code
	return nil
}

func (w *Warehouse) setAddressLine(addressLine string) error {
	if addressLine == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if len(addressLine) < minAddrLength || len(addressLine) > maxAddrLength {
		return errs.NewValueIsOutOfRangeError("address length", len(addressLine), minAddrLength, maxAddrLength)
	}
	w.addressLine = addressLine
	return nil
}

func (w *Warehouse) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) < minCityLength || len(city) > maxCityLength {
		return errs.NewValueIsOutOfRangeError("city length", len(city), minCityLength, maxCityLength)
	}
	w.city = city
	return nil
}

func (w *Warehouse) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	w.department = department
	return nil
}

func (w *Warehouse) setPhone(phone string) error {
	if err := kernel.ValidatePhone("phone", phone); err != nil {
		return err
	}
	w.phone = phone
	return nil
}

func (w *Warehouse) setEmail(email string) error {
	if err := kernel.ValidateOptionalEmail("email", email); err != nil {
		return err
	}
	w.email = email
	return nil
}

func (w *Warehouse) setMaxCapacity(maxCapacityM3 float64) error {
	if maxCapacityM3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacityM3", errors.New("capacity must be positive"))
	}
	if maxCapacityM3 > maxCapacityCeilingM3 {
		return errs.NewValueIsOutOfRangeError("maxCapacityM3", maxCapacityM3, 0, maxCapacityCeilingM3)
	}
	w.maxCapacityM3 = maxCapacityM3
	return nil
}

func (w *Warehouse) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	w.warehouseType = t
	return nil
}
