package services

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

// VehicleAssignment is the domain service owning the driver↔vehicle
// assignment protocol. A driver's currentVehicleId and a vehicle's
// assignedDriverId are a bidirectional pointer; this service is the only
// place where both sides change, so they can never drift apart.
//
// Assignment requires both parties active and available and the vehicle
// unassigned; each aggregate checks its own side and the service applies
// both transitions or neither.
type VehicleAssignment struct{}

// NewVehicleAssignment creates a VehicleAssignment service.
func NewVehicleAssignment() VehicleAssignment {
	return VehicleAssignment{}
}

// Assign links a driver and a vehicle to each other.
// Both aggregates are mutated; persisting them is the caller's job.
func (VehicleAssignment) Assign(d *driver.Driver, v *vehicle.Vehicle) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	if err := d.AssignVehicle(v.ID()); err != nil {
		return err
	}
	if err := v.AssignDriver(d.ID()); err != nil {
		// Undo the driver side so a failed assignment leaves no half-link.
		_ = d.UnassignVehicle()
		return err
	}

	return nil
}

// Unassign breaks the link between a driver and a vehicle.
// Both pointers must currently reference each other.
func (VehicleAssignment) Unassign(d *driver.Driver, v *vehicle.Vehicle) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	if d.CurrentVehicleID() == nil || !d.CurrentVehicleID().IsEqual(v.ID()) {
		return errs.NewBusinessRuleError("driver is not assigned to this vehicle")
	}
	if v.AssignedDriverID() == nil || !v.AssignedDriverID().IsEqual(d.ID()) {
		return errs.NewBusinessRuleError("vehicle is not assigned to this driver")
	}

	if err := v.UnassignDriver(); err != nil {
		return err
	}
	if err := d.UnassignVehicle(); err != nil {
		return err
	}

	return nil
}
