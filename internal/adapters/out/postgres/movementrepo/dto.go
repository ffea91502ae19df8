// Package movementrepo provides data transfer objects and mapping functions
// for warehouse movement persistence.
package movementrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"

	"github.com/google/uuid"
)

// MovementDTO represents the database structure for persisting movements.
type MovementDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID     uuid.UUID `gorm:"type:uuid;index"`
	EntryDate       time.Time
	ExitDate        *time.Time `gorm:"index"`
	Status          int
	ReceivedBy      string `gorm:"size:100"`
	DispatchedBy    string `gorm:"size:100"`
	StorageLocation string `gorm:"size:50"`
}

// TableName overrides GORM's default naming to use "movements".
func (MovementDTO) TableName() string {
	return "movements"
}

func fromDomain(aggregate *movement.Movement) MovementDTO {
	return MovementDTO{
		ID:              aggregate.ID().Bytes(),
		ShipmentID:      aggregate.ShipmentID().Bytes(),
		WarehouseID:     aggregate.WarehouseID().Bytes(),
		EntryDate:       aggregate.EntryDate(),
		ExitDate:        aggregate.ExitDate(),
		Status:          int(aggregate.Status()),
		ReceivedBy:      aggregate.ReceivedBy(),
		DispatchedBy:    aggregate.DispatchedBy(),
		StorageLocation: aggregate.StorageLocation(),
	}
}

func toDomain(dto MovementDTO) (*movement.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return movement.RestoreMovement(id, shipmentID, warehouseID,
		dto.EntryDate, dto.ExitDate, movement.Status(dto.Status),
		dto.ReceivedBy, dto.DispatchedBy, dto.StorageLocation)
}
