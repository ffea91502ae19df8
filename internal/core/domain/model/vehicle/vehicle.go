// Package vehicle contains the vehicle aggregate: identification, capacity
// limits with per-type weight ceilings, maintenance bookkeeping and the
// vehicle side of the driver↔vehicle assignment pointer.
package vehicle

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minPlateLength = 5
	maxPlateLength = 20
	maxBrandLength = 50
	maxModelLength = 50
	minYear        = 1900
	vinLength      = 17

	// Absolute capacity ceilings regardless of vehicle type.
	absoluteMaxWeightKg = 50000.0
	absoluteMaxVolumeM3 = 200.0
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
// through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the aggregate root for a fleet vehicle.
type Vehicle struct {
	id                   kernel.UUID
	plateNumber          string
	brand                string
	model                string
	year                 int
	vehicleType          Type
	maxWeightKg          float64
	maxVolumeM3          float64
	currentWeightKg      float64
	currentVolumeM3      float64
	mileageKm            float64
	maintenanceMileageKm float64
	lastMaintenanceDate  *time.Time
	insuranceExpiryDate  *time.Time
	vin                  *string
	baseWarehouseID      *kernel.UUID
	assignedDriverID     *kernel.UUID
	status               Status
	isActive             bool

	isConstructed bool
}

// NewVehicle creates a validated vehicle in Available status with an empty
// load. Existence of the base warehouse and uniqueness of plate and VIN are
// cross-record rules the application service checks.
func NewVehicle(
	id kernel.UUID,
	plateNumber, brand, model string,
	year int,
	vehicleType Type,
	maxWeightKg, maxVolumeM3 float64,
	mileageKm, maintenanceMileageKm float64,
	lastMaintenanceDate, insuranceExpiryDate *time.Time,
	vin *string,
	baseWarehouseID *kernel.UUID,
) (*Vehicle, error) {
	v := &Vehicle{
		status:        Available,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNumber(plateNumber),
		v.setBrand(brand),
		v.setModel(model),
		v.setYear(year),
		v.setType(vehicleType),
		v.setMileage(mileageKm, maintenanceMileageKm),
		v.setLastMaintenanceDate(lastMaintenanceDate),
		v.setInsuranceExpiryDate(insuranceExpiryDate),
		v.setVIN(vin),
		v.setBaseWarehouseID(baseWarehouseID),
	); err != nil {
		return nil, err
	}

	// Capacities depend on the already validated type ceiling.
	if err := v.setCapacities(maxWeightKg, maxVolumeM3); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence, including current
// load, status, activity flag and driver assignment.
func RestoreVehicle(
	id kernel.UUID,
	plateNumber, brand, model string,
	year int,
	vehicleType Type,
	maxWeightKg, maxVolumeM3, currentWeightKg, currentVolumeM3 float64,
	mileageKm, maintenanceMileageKm float64,
	lastMaintenanceDate, insuranceExpiryDate *time.Time,
	vin *string,
	baseWarehouseID, assignedDriverID *kernel.UUID,
	status Status,
	isActive bool,
) (*Vehicle, error) {
	v, err := NewVehicle(id, plateNumber, brand, model, year, vehicleType,
		maxWeightKg, maxVolumeM3, mileageKm, maintenanceMileageKm,
		lastMaintenanceDate, insuranceExpiryDate, vin, baseWarehouseID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentWeightKg < 0 || currentWeightKg > v.maxWeightKg {
		return nil, errs.NewValueIsOutOfRangeError("currentWeightKg", currentWeightKg, 0, v.maxWeightKg)
	}
	if currentVolumeM3 < 0 || currentVolumeM3 > v.maxVolumeM3 {
		return nil, errs.NewValueIsOutOfRangeError("currentVolumeM3", currentVolumeM3, 0, v.maxVolumeM3)
	}
	if assignedDriverID != nil {
		if err = assignedDriverID.Validate(); err != nil {
			return nil, err
		}
		driverID := *assignedDriverID
		v.assignedDriverID = &driverID
	}
	if status == InTransit && v.assignedDriverID == nil {
		return nil, errs.NewBusinessRuleError("a vehicle in transit must have an assigned driver")
	}

	v.currentWeightKg = currentWeightKg
	v.currentVolumeM3 = currentVolumeM3
	v.status = status
	v.isActive = isActive
	return v, nil
}

// Validate ensures the vehicle was produced by a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// PlateNumber returns the unique plate number.
func (v *Vehicle) PlateNumber() string { return v.plateNumber }

// Brand returns the manufacturer brand.
func (v *Vehicle) Brand() string { return v.brand }

// Model returns the vehicle model.
func (v *Vehicle) Model() string { return v.model }

// Year returns the model year.
func (v *Vehicle) Year() int { return v.year }

// VehicleType returns the vehicle classification.
func (v *Vehicle) VehicleType() Type { return v.vehicleType }

// MaxWeightKg returns the declared weight capacity.
func (v *Vehicle) MaxWeightKg() float64 { return v.maxWeightKg }

// MaxVolumeM3 returns the declared volume capacity.
func (v *Vehicle) MaxVolumeM3() float64 { return v.maxVolumeM3 }

// CurrentWeightKg returns the current load weight.
func (v *Vehicle) CurrentWeightKg() float64 { return v.currentWeightKg }

// CurrentVolumeM3 returns the current load volume.
func (v *Vehicle) CurrentVolumeM3() float64 { return v.currentVolumeM3 }

// MileageKm returns the odometer reading.
func (v *Vehicle) MileageKm() float64 { return v.mileageKm }

// MaintenanceMileageKm returns the odometer reading at the last maintenance.
func (v *Vehicle) MaintenanceMileageKm() float64 { return v.maintenanceMileageKm }

// LastMaintenanceDate returns the optional last maintenance date.
func (v *Vehicle) LastMaintenanceDate() *time.Time { return v.lastMaintenanceDate }

// InsuranceExpiryDate returns the optional insurance expiry.
func (v *Vehicle) InsuranceExpiryDate() *time.Time { return v.insuranceExpiryDate }

// VIN returns the optional 17-character vehicle identification number.
func (v *Vehicle) VIN() *string { return v.vin }

// BaseWarehouseID returns the optional home warehouse.
func (v *Vehicle) BaseWarehouseID() *kernel.UUID { return v.baseWarehouseID }

// AssignedDriverID returns the assigned driver, nil when unassigned.
func (v *Vehicle) AssignedDriverID() *kernel.UUID { return v.assignedDriverID }

// Status returns the operational status.
func (v *Vehicle) Status() Status { return v.status }

// IsActive reports whether the vehicle is still in the fleet.
func (v *Vehicle) IsActive() bool { return v.isActive }

// Update re-validates and applies new identification, capacity and
// maintenance details, leaving load, status and assignment untouched.
func (v *Vehicle) Update(
	plateNumber, brand, model string,
	year int,
	vehicleType Type,
	maxWeightKg, maxVolumeM3 float64,
	mileageKm, maintenanceMileageKm float64,
	lastMaintenanceDate, insuranceExpiryDate *time.Time,
	vin *string,
	baseWarehouseID *kernel.UUID,
) error {
	updated := *v
	if err := errors.Join(
		updated.setPlateNumber(plateNumber),
		updated.setBrand(brand),
		updated.setModel(model),
		updated.setYear(year),
		updated.setType(vehicleType),
		updated.setMileage(mileageKm, maintenanceMileageKm),
		updated.setLastMaintenanceDate(lastMaintenanceDate),
		updated.setInsuranceExpiryDate(insuranceExpiryDate),
		updated.setVIN(vin),
		updated.setBaseWarehouseID(baseWarehouseID),
	); err != nil {
		return err
	}

	if err := updated.setCapacities(maxWeightKg, maxVolumeM3); err != nil {
		return err
	}
	if updated.currentWeightKg > updated.maxWeightKg || updated.currentVolumeM3 > updated.maxVolumeM3 {
		return errs.NewBusinessRuleError("capacity cannot be reduced below the current load")
	}

	*v = updated
	return nil
}

// UpdateLoad replaces the current load after checking both capacity axes.
func (v *Vehicle) UpdateLoad(weightKg, volumeM3 float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentWeightKg", errors.New("load weight cannot be negative"))
	}
	if volumeM3 < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentVolumeM3", errors.New("load volume cannot be negative"))
	}
	if weightKg > v.maxWeightKg {
		return errs.NewBusinessRuleErrorf("load of %.2f kg exceeds the vehicle capacity of %.2f kg", weightKg, v.maxWeightKg)
	}
	if volumeM3 > v.maxVolumeM3 {
		return errs.NewBusinessRuleErrorf("load of %.2f m3 exceeds the vehicle capacity of %.2f m3", volumeM3, v.maxVolumeM3)
	}

	v.currentWeightKg = weightKg
	v.currentVolumeM3 = volumeM3
	return nil
}

// AssignDriver records the driver pointer. The assignment service is the
// only caller; it checks the counterpart driver before invoking this.
func (v *Vehicle) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !v.isActive {
		return errs.NewBusinessRuleError("an inactive vehicle cannot be assigned a driver")
	}
	if v.status != Available {
		return errs.NewBusinessRuleErrorf("vehicle in status %s cannot be assigned a driver", v.status)
	}
	if v.assignedDriverID != nil {
		return errs.NewBusinessRuleError("vehicle already has an assigned driver")
	}

	v.assignedDriverID = &driverID
	return nil
}

// UnassignDriver clears the driver pointer.
func (v *Vehicle) UnassignDriver() error {
	if v.assignedDriverID == nil {
		return errs.NewBusinessRuleError("vehicle has no assigned driver")
	}
	if v.status == InTransit {
		return errs.NewBusinessRuleError("cannot unassign the driver of a vehicle in transit")
	}

	v.assignedDriverID = nil
	return nil
}

// Deactivate takes the vehicle out of the fleet.
func (v *Vehicle) Deactivate() {
	v.isActive = false
	v.status = OutOfService
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlateNumber(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	if len(plate) < minPlateLength || len(plate) > maxPlateLength {
		return errs.NewValueIsOutOfRangeError("plateNumber length", len(plate), minPlateLength, maxPlateLength)
	}
	for _, r := range plate {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return errs.NewValueIsInvalidErrorWithCause(
				"plateNumber",
				fmt.Errorf("character %q is not allowed in a plate number", r),
			)
		}
	}
	v.plateNumber = plate
	return nil
}

func (v *Vehicle) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if len(brand) > maxBrandLength {
		return errs.NewValueIsOutOfRangeError("brand length", len(brand), 1, maxBrandLength)
	}
	v.brand = brand
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if len(model) > maxModelLength {
		return errs.NewValueIsOutOfRangeError("model length", len(model), 1, maxModelLength)
	}
	v.model = model
	return nil
}

func (v *Vehicle) setYear(year int) error {
	maxYear := time.Now().UTC().Year() + 1
	if year < minYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minYear, maxYear)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	v.vehicleType = t
	return nil
}

func (v *Vehicle) setCapacities(maxWeightKg, maxVolumeM3 float64) error {
	if maxWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxWeightCapacityKg", errors.New("weight capacity must be positive"))
	}
	if maxVolumeM3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxVolumeCapacityM3", errors.New("volume capacity must be positive"))
	}
	if maxWeightKg > absoluteMaxWeightKg {
		return errs.NewValueIsOutOfRangeError("maxWeightCapacityKg", maxWeightKg, 0, absoluteMaxWeightKg)
	}
	if maxVolumeM3 > absoluteMaxVolumeM3 {
		return errs.NewValueIsOutOfRangeError("maxVolumeCapacityM3", maxVolumeM3, 0, absoluteMaxVolumeM3)
	}
	if ceiling := v.vehicleType.MaxWeightKg(); maxWeightKg > ceiling {
		return errs.NewBusinessRuleErrorf(
			"a %s cannot declare more than %.0f kg of weight capacity", v.vehicleType, ceiling)
	}

	v.maxWeightKg = maxWeightKg
	v.maxVolumeM3 = maxVolumeM3
	return nil
}

func (v *Vehicle) setMileage(mileageKm, maintenanceMileageKm float64) error {
	if mileageKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileageKm", errors.New("mileage cannot be negative"))
	}
	if maintenanceMileageKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maintenanceMileageKm", errors.New("maintenance mileage cannot be negative"))
	}
	if maintenanceMileageKm > mileageKm {
		return errs.NewValueIsInvalidErrorWithCause(
			"maintenanceMileageKm",
			errors.New("maintenance mileage cannot exceed the current mileage"),
		)
	}
	v.mileageKm = mileageKm
	v.maintenanceMileageKm = maintenanceMileageKm
	return nil
}

func (v *Vehicle) setLastMaintenanceDate(date *time.Time) error {
	if date == nil {
		v.lastMaintenanceDate = nil
		return nil
	}
	if date.After(time.Now().UTC()) {
		return errs.NewValueIsInvalidErrorWithCause("lastMaintenanceDate", errors.New("last maintenance cannot be in the future"))
	}
	d := *date
	v.lastMaintenanceDate = &d
	return nil
}

func (v *Vehicle) setInsuranceExpiryDate(date *time.Time) error {
	if date == nil {
		v.insuranceExpiryDate = nil
		return nil
	}
	if !date.After(time.Now().UTC()) {
		return errs.NewBusinessRuleError("vehicle insurance is already expired")
	}
	d := *date
	v.insuranceExpiryDate = &d
	return nil
}

func (v *Vehicle) setVIN(vin *string) error {
	if vin == nil {
		v.vin = nil
		return nil
	}
	if len(*vin) != vinLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"vin",
			fmt.Errorf("VIN must be exactly %d characters, got %d", vinLength, len(*vin)),
		)
	}
	value := *vin
	v.vin = &value
	return nil
}

func (v *Vehicle) setBaseWarehouseID(id *kernel.UUID) error {
	if id == nil {
		v.baseWarehouseID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	warehouseID := *id
	v.baseWarehouseID = &warehouseID
	return nil
}
