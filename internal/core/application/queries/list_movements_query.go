package queries

import (
	"context"
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListMovementsQueryIsNotConstructed = errors.New(
	"ListMovementsQuery must be created via NewListMovementsQuery constructor",
)

// MovementFilter narrows the movement history. Zero-valued fields are
// ignored; OnlyOpen keeps records without an exit date.
type MovementFilter struct {
	ShipmentID  *kernel.UUID
	WarehouseID *kernel.UUID
	OnlyOpen    bool
	PageNumber  int
	PageSize    int
}

// ListMovementsQuery retrieves a filtered, paginated movement history.
type ListMovementsQuery struct {
	guard  guard.ConstructorGuard
	filter MovementFilter
}

// NewListMovementsQuery creates a query from the given filter.
func NewListMovementsQuery(filter MovementFilter) ListMovementsQuery {
	return ListMovementsQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListMovementsQueryIsNotConstructed)
}

// MovementRow is the movement read model.
type MovementRow struct {
	ID              kernel.UUID `json:"id"`
	ShipmentID      kernel.UUID `json:"shipmentId"`
	WarehouseID     kernel.UUID `json:"warehouseId"`
	EntryDate       time.Time   `json:"entryDate"`
	ExitDate        *time.Time  `json:"exitDate,omitempty"`
	Status          string      `json:"status"`
	ReceivedBy      string      `json:"receivedBy"`
	DispatchedBy    string      `json:"dispatchedBy,omitempty"`
	StorageLocation string      `json:"storageLocation"`
}

// ListMovementsQueryHandler executes movement history queries.
type ListMovementsQueryHandler struct {
	db *gorm.DB
}

// NewListMovementsQueryHandler creates a handler bound to a database connection.
func NewListMovementsQueryHandler(db *gorm.DB) ListMovementsQueryHandler {
	return ListMovementsQueryHandler{db: db}
}

// Handle retrieves movements matching the filter, most recent entry first.
func (h ListMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListMovementsQuery,
) (paging.Envelope[MovementRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[MovementRow]{}, err
	}

	type movementScan struct {
		ID              uuid.UUID
		ShipmentID      uuid.UUID
		WarehouseID     uuid.UUID
		EntryDate       time.Time
		ExitDate        *time.Time
		Status          int
		ReceivedBy      string
		DispatchedBy    string
		StorageLocation string
	}

	tx := h.db.WithContext(ctx).Table("movements")
	if query.filter.ShipmentID != nil {
		tx = tx.Where("shipment_id = ?", query.filter.ShipmentID.Bytes())
	}
	if query.filter.WarehouseID != nil {
		tx = tx.Where("warehouse_id = ?", query.filter.WarehouseID.Bytes())
	}
	if query.filter.OnlyOpen {
		tx = tx.Where("exit_date IS NULL")
	}

	var scans []movementScan
	if err := tx.Order("entry_date DESC").Find(&scans).Error; err != nil {
		return paging.Envelope[MovementRow]{}, err
	}

	rows := make([]MovementRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[MovementRow]{}, err
		}
		shipmentID, err := kernel.UUIDFromBytes(s.ShipmentID[:])
		if err != nil {
			return paging.Envelope[MovementRow]{}, err
		}
		warehouseID, err := kernel.UUIDFromBytes(s.WarehouseID[:])
		if err != nil {
			return paging.Envelope[MovementRow]{}, err
		}
		rows = append(rows, MovementRow{
			ID:              id,
			ShipmentID:      shipmentID,
			WarehouseID:     warehouseID,
			EntryDate:       s.EntryDate,
			ExitDate:        s.ExitDate,
			Status:          movement.Status(s.Status).String(),
			ReceivedBy:      s.ReceivedBy,
			DispatchedBy:    s.DispatchedBy,
			StorageLocation: s.StorageLocation,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "movement", "movements"),
	), nil
}
