// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment and package persistence. Packages live inside the shipment
// aggregate boundary but are stored in their own table.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	RouteID        uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber string    `gorm:"size:50;uniqueIndex"`
	Status         int       `gorm:"index"`
	TotalCost      float64
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PackageDTO represents the database structure for persisting packages.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Description string    `gorm:"size:255"`
	WeightKg    float64
	Price       float64
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		RouteID:        aggregate.RouteID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Status:         int(aggregate.Status()),
		TotalCost:      aggregate.TotalCost(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, customerID, routeID,
		dto.TrackingNumber, shipment.Status(dto.Status),
		dto.TotalCost, dto.CreatedAt)
}

func packageFromDomain(pkg *shipment.Package) PackageDTO {
	return PackageDTO{
		ID:          pkg.ID().Bytes(),
		ShipmentID:  pkg.ShipmentID().Bytes(),
		Description: pkg.Description(),
		WeightKg:    pkg.WeightKg(),
		Price:       pkg.Price(),
	}
}

func packageToDomain(dto PackageDTO) (*shipment.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestorePackage(id, shipmentID, dto.Description,
		dto.WeightKg, dto.Price)
}
