package queries

import (
	"context"
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// VehicleFilter narrows the vehicle list. Zero-valued fields are ignored;
// VehicleType and Status take display names.
type VehicleFilter struct {
	VehicleType string
	Status      string
	OnlyActive  bool
	PageNumber  int
	PageSize    int
}

// ListVehiclesQuery retrieves a filtered, paginated vehicle list.
type ListVehiclesQuery struct {
	guard  guard.ConstructorGuard
	filter VehicleFilter
}

// NewListVehiclesQuery creates a query from the given filter.
func NewListVehiclesQuery(filter VehicleFilter) ListVehiclesQuery {
	return ListVehiclesQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

// VehicleRow is the vehicle read model.
type VehicleRow struct {
	ID               kernel.UUID  `json:"id"`
	PlateNumber      string       `json:"plateNumber"`
	Brand            string       `json:"brand"`
	Model            string       `json:"model"`
	VehicleType      string       `json:"vehicleType"`
	MaxWeightKg      float64      `json:"maxWeightKg"`
	CurrentWeightKg  float64      `json:"currentWeightKg"`
	Status           string       `json:"status"`
	IsActive         bool         `json:"isActive"`
	AssignedDriverID *kernel.UUID `json:"assignedDriverId,omitempty"`
}

// ListVehiclesQueryHandler executes vehicle list queries.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewListVehiclesQueryHandler creates a handler bound to a database connection.
func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

// Handle retrieves vehicles matching the filter, ordered by plate number.
func (h ListVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesQuery,
) (paging.Envelope[VehicleRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[VehicleRow]{}, err
	}

	type vehicleScan struct {
		ID               uuid.UUID
		PlateNumber      string
		Brand            string
		Model            string
		VehicleType      int
		MaxWeightKg      float64
		CurrentWeightKg  float64
		Status           int
		IsActive         bool
		AssignedDriverID *uuid.UUID
	}

	tx := h.db.WithContext(ctx).Table("vehicles")
	if query.filter.VehicleType != "" {
		vehicleType, err := vehicle.ParseType(query.filter.VehicleType)
		if err != nil {
			return paging.Envelope[VehicleRow]{}, err
		}
		tx = tx.Where("vehicle_type = ?", int(vehicleType))
	}
	if query.filter.Status != "" {
		status, err := vehicle.ParseStatus(query.filter.Status)
		if err != nil {
			return paging.Envelope[VehicleRow]{}, err
		}
		tx = tx.Where("status = ?", int(status))
	}
	if query.filter.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}

	var scans []vehicleScan
	if err := tx.Order("plate_number").Find(&scans).Error; err != nil {
		return paging.Envelope[VehicleRow]{}, err
	}

	rows := make([]VehicleRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[VehicleRow]{}, err
		}
		var driverID *kernel.UUID
		if s.AssignedDriverID != nil {
			dID, dErr := kernel.UUIDFromBytes((*s.AssignedDriverID)[:])
			if dErr != nil {
				return paging.Envelope[VehicleRow]{}, dErr
			}
			driverID = &dID
		}
		rows = append(rows, VehicleRow{
			ID:               id,
			PlateNumber:      s.PlateNumber,
			Brand:            s.Brand,
			Model:            s.Model,
			VehicleType:      vehicle.Type(s.VehicleType).String(),
			MaxWeightKg:      s.MaxWeightKg,
			CurrentWeightKg:  s.CurrentWeightKg,
			Status:           vehicle.Status(s.Status).String(),
			IsActive:         s.IsActive,
			AssignedDriverID: driverID,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "vehicle", "vehicles"),
	), nil
}
