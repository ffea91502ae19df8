// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName          string    `gorm:"size:100"`
	IdentityDocument  string    `gorm:"size:20;uniqueIndex"`
	LicenseNumber     string    `gorm:"size:20;uniqueIndex"`
	LicenseCategory   string    `gorm:"size:10"`
	LicenseIssueDate  time.Time
	LicenseExpiryDate time.Time `gorm:"index"`
	Phone             string    `gorm:"size:20"`
	Email             string    `gorm:"size:255"`
	DateOfBirth       time.Time
	HireDate          time.Time
	YearsOfExperience int
	Status            int `gorm:"index"`
	IsActive          bool
	CurrentVehicleID  *uuid.UUID `gorm:"type:uuid"`
	TotalDeliveries   int
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var vehicleID *uuid.UUID
	if id := aggregate.CurrentVehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	return DriverDTO{
		ID:                aggregate.ID().Bytes(),
		FullName:          aggregate.FullName(),
		IdentityDocument:  aggregate.IdentityDocument(),
		LicenseNumber:     aggregate.LicenseNumber(),
		LicenseCategory:   aggregate.LicenseCategory(),
		LicenseIssueDate:  aggregate.LicenseIssueDate(),
		LicenseExpiryDate: aggregate.LicenseExpiryDate(),
		Phone:             aggregate.Phone(),
		Email:             aggregate.Email(),
		DateOfBirth:       aggregate.DateOfBirth(),
		HireDate:          aggregate.HireDate(),
		YearsOfExperience: aggregate.YearsOfExperience(),
		Status:            int(aggregate.Status()),
		IsActive:          aggregate.IsActive(),
		CurrentVehicleID:  vehicleID,
		TotalDeliveries:   aggregate.TotalDeliveries(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.CurrentVehicleID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.CurrentVehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vehicleID = &vID
	}

	return driver.RestoreDriver(id, dto.FullName, dto.IdentityDocument,
		dto.LicenseNumber, dto.LicenseCategory,
		dto.LicenseIssueDate, dto.LicenseExpiryDate,
		dto.Phone, dto.Email, dto.DateOfBirth, dto.HireDate,
		dto.YearsOfExperience, driver.Status(dto.Status),
		dto.IsActive, vehicleID, dto.TotalDeliveries)
}
