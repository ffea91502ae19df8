package queries

import (
	"context"
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ShipmentFilter narrows the shipment list. Zero-valued fields are ignored;
// Status takes a display name ("Pending", "In transit", "Delivered").
type ShipmentFilter struct {
	CustomerID       *kernel.UUID
	RouteID          *kernel.UUID
	Status           string
	TrackingContains string
	PageNumber       int
	PageSize         int
}

// ListShipmentsQuery retrieves a filtered, paginated shipment list.
type ListShipmentsQuery struct {
	guard  guard.ConstructorGuard
	filter ShipmentFilter
}

// NewListShipmentsQuery creates a query from the given filter.
func NewListShipmentsQuery(filter ShipmentFilter) ListShipmentsQuery {
	return ListShipmentsQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ShipmentRow is the shipment read model. PackageCount is aggregated in the
// same query.
type ShipmentRow struct {
	ID             kernel.UUID `json:"id"`
	CustomerID     kernel.UUID `json:"customerId"`
	RouteID        kernel.UUID `json:"routeId"`
	TrackingNumber string      `json:"trackingNumber"`
	Status         string      `json:"status"`
	TotalCost      float64     `json:"totalCost"`
	PackageCount   int         `json:"packageCount"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ListShipmentsQueryHandler executes shipment list queries.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler bound to a database connection.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle retrieves shipments matching the filter, most recent first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (paging.Envelope[ShipmentRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[ShipmentRow]{}, err
	}

	type shipmentScan struct {
		ID             uuid.UUID
		CustomerID     uuid.UUID
		RouteID        uuid.UUID
		TrackingNumber string
		Status         int
		TotalCost      float64
		PackageCount   int
		CreatedAt      time.Time
	}

	tx := h.db.WithContext(ctx).Table("shipments").
		Select("shipments.*, (?) AS package_count",
			h.db.Table("packages").
				Select("COUNT(*)").
				Where("packages.shipment_id = shipments.id"),
		)
	if query.filter.CustomerID != nil {
		tx = tx.Where("customer_id = ?", query.filter.CustomerID.Bytes())
	}
	if query.filter.RouteID != nil {
		tx = tx.Where("route_id = ?", query.filter.RouteID.Bytes())
	}
	if query.filter.Status != "" {
		status, err := shipment.ParseStatus(query.filter.Status)
		if err != nil {
			return paging.Envelope[ShipmentRow]{}, err
		}
		tx = tx.Where("status = ?", int(status))
	}
	if query.filter.TrackingContains != "" {
		tx = tx.Where("tracking_number ILIKE ?", "%"+query.filter.TrackingContains+"%")
	}

	var scans []shipmentScan
	if err := tx.Order("created_at DESC").Find(&scans).Error; err != nil {
		return paging.Envelope[ShipmentRow]{}, err
	}

	rows := make([]ShipmentRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[ShipmentRow]{}, err
		}
		customerID, err := kernel.UUIDFromBytes(s.CustomerID[:])
		if err != nil {
			return paging.Envelope[ShipmentRow]{}, err
		}
		routeID, err := kernel.UUIDFromBytes(s.RouteID[:])
		if err != nil {
			return paging.Envelope[ShipmentRow]{}, err
		}
		rows = append(rows, ShipmentRow{
			ID:             id,
			CustomerID:     customerID,
			RouteID:        routeID,
			TrackingNumber: s.TrackingNumber,
			Status:         shipment.Status(s.Status).String(),
			TotalCost:      s.TotalCost,
			PackageCount:   s.PackageCount,
			CreatedAt:      s.CreatedAt,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "shipment", "shipments"),
	), nil
}
