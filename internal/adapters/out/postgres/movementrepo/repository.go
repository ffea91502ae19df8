package movementrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMovementRepository implements MovementRepository using GORM.
type GormMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMovementRepository creates a new GORM movement repository.
func NewGormMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormMovementRepository {
	return &GormMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new movement to the database.
func (r *GormMovementRepository) Add(ctx context.Context, aggregate *movement.Movement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing movement to the database.
func (r *GormMovementRepository) Update(ctx context.Context, aggregate *movement.Movement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MovementDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a movement row.
func (r *GormMovementRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MovementDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("movement", id.String())
	}
	return nil
}

// Get retrieves a movement by ID.
func (r *GormMovementRepository) Get(ctx context.Context, id kernel.UUID) (*movement.Movement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MovementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("movement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByShipment retrieves the shipment's movement without an exit date.
func (r *GormMovementRepository) GetOpenByShipment(ctx context.Context, shipmentID kernel.UUID) (*movement.Movement, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto MovementDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Where("exit_date IS NULL").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open movement for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipment retrieves the movement history of a shipment, most recent
// entry first.
func (r *GormMovementRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*movement.Movement, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MovementDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("entry_date DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	movements := make([]*movement.Movement, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, aggregate)
	}
	return movements, nil
}

// HasOpenByWarehouse reports whether the warehouse currently holds any
// shipment.
func (r *GormMovementRepository) HasOpenByWarehouse(ctx context.Context, warehouseID kernel.UUID) (bool, error) {
	if err := warehouseID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&MovementDTO{}).
		Where("warehouse_id = ?", warehouseID.Bytes()).
		Where("exit_date IS NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
