// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence.
package warehouserepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100"`
	Code          string    `gorm:"size:20;uniqueIndex"`
	AddressLine   string    `gorm:"size:255"`
	City          string    `gorm:"size:100"`
	Department    int
	Phone         string    `gorm:"size:20"`
	Email         string    `gorm:"size:255"`
	MaxCapacityM3 float64
	OccupiedSlots int
	WarehouseType int `gorm:"index"`
	IsActive      bool
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Code:          aggregate.Code(),
		AddressLine:   aggregate.AddressLine(),
		City:          aggregate.City(),
		Department:    int(aggregate.Department()),
		Phone:         aggregate.Phone(),
		Email:         aggregate.Email(),
		MaxCapacityM3: aggregate.MaxCapacityM3(),
		OccupiedSlots: aggregate.OccupiedSlots(),
		WarehouseType: int(aggregate.WarehouseType()),
		IsActive:      aggregate.IsActive(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, dto.Code,
		dto.AddressLine, dto.City, kernel.Department(dto.Department), dto.Phone, dto.Email,
		dto.MaxCapacityM3, dto.OccupiedSlots,
		warehouse.Type(dto.WarehouseType), dto.IsActive, dto.CreatedAt)
}
