// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence.
package vehiclerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNumber          string    `gorm:"size:10;uniqueIndex"`
	Brand                string    `gorm:"size:50"`
	Model                string    `gorm:"size:50"`
	Year                 int
	VehicleType          int `gorm:"index"`
	MaxWeightKg          float64
	MaxVolumeM3          float64
	CurrentWeightKg      float64
	CurrentVolumeM3      float64
	MileageKm            float64
	MaintenanceMileageKm float64
	LastMaintenanceDate  *time.Time
	InsuranceExpiryDate  *time.Time
	VIN                  *string    `gorm:"size:17;uniqueIndex"`
	BaseWarehouseID      *uuid.UUID `gorm:"type:uuid"`
	AssignedDriverID     *uuid.UUID `gorm:"type:uuid"`
	Status               int        `gorm:"index"`
	IsActive             bool
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var baseWarehouseID, assignedDriverID *uuid.UUID
	if id := aggregate.BaseWarehouseID(); id != nil {
		raw := id.Bytes()
		baseWarehouseID = &raw
	}
	if id := aggregate.AssignedDriverID(); id != nil {
		raw := id.Bytes()
		assignedDriverID = &raw
	}

	return VehicleDTO{
		ID:                   aggregate.ID().Bytes(),
		PlateNumber:          aggregate.PlateNumber(),
		Brand:                aggregate.Brand(),
		Model:                aggregate.Model(),
		Year:                 aggregate.Year(),
		VehicleType:          int(aggregate.VehicleType()),
		MaxWeightKg:          aggregate.MaxWeightKg(),
		MaxVolumeM3:          aggregate.MaxVolumeM3(),
		CurrentWeightKg:      aggregate.CurrentWeightKg(),
		CurrentVolumeM3:      aggregate.CurrentVolumeM3(),
		MileageKm:            aggregate.MileageKm(),
		MaintenanceMileageKm: aggregate.MaintenanceMileageKm(),
		LastMaintenanceDate:  aggregate.LastMaintenanceDate(),
		InsuranceExpiryDate:  aggregate.InsuranceExpiryDate(),
		VIN:                  aggregate.VIN(),
		BaseWarehouseID:      baseWarehouseID,
		AssignedDriverID:     assignedDriverID,
		Status:               int(aggregate.Status()),
		IsActive:             aggregate.IsActive(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var baseWarehouseID, assignedDriverID *kernel.UUID
	if dto.BaseWarehouseID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.BaseWarehouseID)[:])
		if wErr != nil {
			return nil, wErr
		}
		baseWarehouseID = &wID
	}
	if dto.AssignedDriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		assignedDriverID = &dID
	}

	return vehicle.RestoreVehicle(id, dto.PlateNumber, dto.Brand, dto.Model,
		dto.Year, vehicle.Type(dto.VehicleType),
		dto.MaxWeightKg, dto.MaxVolumeM3, dto.CurrentWeightKg, dto.CurrentVolumeM3,
		dto.MileageKm, dto.MaintenanceMileageKm,
		dto.LastMaintenanceDate, dto.InsuranceExpiryDate,
		dto.VIN, baseWarehouseID, assignedDriverID,
		vehicle.Status(dto.Status), dto.IsActive)
}
