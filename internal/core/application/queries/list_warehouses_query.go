package queries

import (
	"context"
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListWarehousesQueryIsNotConstructed = errors.New(
	"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
)

// WarehouseFilter narrows the warehouse list. Zero-valued fields are ignored;
// Department and WarehouseType take display names.
type WarehouseFilter struct {
	Department    string
	WarehouseType string
	City          string
	OnlyActive    bool
	PageNumber    int
	PageSize      int
}

// ListWarehousesQuery retrieves a filtered, paginated warehouse list.
type ListWarehousesQuery struct {
	guard  guard.ConstructorGuard
	filter WarehouseFilter
}

// NewListWarehousesQuery creates a query from the given filter.
func NewListWarehousesQuery(filter WarehouseFilter) ListWarehousesQuery {
	return ListWarehousesQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}

// WarehouseRow is the warehouse read model.
type WarehouseRow struct {
	ID            kernel.UUID `json:"id"`
	Name          string      `json:"name"`
	Code          string      `json:"code"`
	City          string      `json:"city"`
	Department    string      `json:"department"`
	WarehouseType string      `json:"warehouseType"`
	MaxCapacityM3 float64     `json:"maxCapacityM3"`
	OccupiedSlots int         `json:"occupiedSlots"`
	IsActive      bool        `json:"isActive"`
}

// ListWarehousesQueryHandler executes warehouse list queries.
type ListWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewListWarehousesQueryHandler creates a handler bound to a database connection.
func NewListWarehousesQueryHandler(db *gorm.DB) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{db: db}
}

// Handle retrieves warehouses matching the filter, ordered by code.
func (h ListWarehousesQueryHandler) Handle(
	ctx context.Context,
	query ListWarehousesQuery,
) (paging.Envelope[WarehouseRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[WarehouseRow]{}, err
	}

	type warehouseScan struct {
		ID            uuid.UUID
		Name          string
		Code          string
		City          string
		Department    int
		WarehouseType int
		MaxCapacityM3 float64
		OccupiedSlots int
		IsActive      bool
	}

	tx := h.db.WithContext(ctx).Table("warehouses")
	if query.filter.Department != "" {
		department, err := kernel.ParseDepartment(query.filter.Department)
		if err != nil {
			return paging.Envelope[WarehouseRow]{}, err
		}
		tx = tx.Where("department = ?", int(department))
	}
	if query.filter.WarehouseType != "" {
		warehouseType, err := warehouse.ParseType(query.filter.WarehouseType)
		if err != nil {
			return paging.Envelope[WarehouseRow]{}, err
		}
		tx = tx.Where("warehouse_type = ?", int(warehouseType))
	}
	if query.filter.City != "" {
		tx = tx.Where("city ILIKE ?", "%"+query.filter.City+"%")
	}
	if query.filter.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}

	var scans []warehouseScan
	if err := tx.Order("code").Find(&scans).Error; err != nil {
		return paging.Envelope[WarehouseRow]{}, err
	}

	rows := make([]WarehouseRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[WarehouseRow]{}, err
		}
		rows = append(rows, WarehouseRow{
			ID:            id,
			Name:          s.Name,
			Code:          s.Code,
			City:          s.City,
			Department:    kernel.Department(s.Department).String(),
			WarehouseType: warehouse.Type(s.WarehouseType).String(),
			MaxCapacityM3: s.MaxCapacityM3,
			OccupiedSlots: s.OccupiedSlots,
			IsActive:      s.IsActive,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "warehouse", "warehouses"),
	), nil
}
