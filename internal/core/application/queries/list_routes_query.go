package queries

import (
	"context"
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListRoutesQueryIsNotConstructed = errors.New(
	"ListRoutesQuery must be created via NewListRoutesQuery constructor",
)

// RouteFilter narrows the route list. Zero-valued fields are ignored.
type RouteFilter struct {
	Origin      string
	Destination string
	OnlyActive  bool
	PageNumber  int
	PageSize    int
}

// ListRoutesQuery retrieves a filtered, paginated route list.
type ListRoutesQuery struct {
	guard  guard.ConstructorGuard
	filter RouteFilter
}

// NewListRoutesQuery creates a query from the given filter.
func NewListRoutesQuery(filter RouteFilter) ListRoutesQuery {
	return ListRoutesQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListRoutesQueryIsNotConstructed)
}

// RouteRow is the route read model.
type RouteRow struct {
	ID          kernel.UUID `json:"id"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	DistanceKm  float64     `json:"distanceKm"`
	BaseCost    float64     `json:"baseCost"`
	IsActive    bool        `json:"isActive"`
}

// ListRoutesQueryHandler executes route list queries.
type ListRoutesQueryHandler struct {
	db *gorm.DB
}

// NewListRoutesQueryHandler creates a handler bound to a database connection.
func NewListRoutesQueryHandler(db *gorm.DB) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{db: db}
}

// Handle retrieves routes matching the filter, ordered by origin then
// destination.
func (h ListRoutesQueryHandler) Handle(
	ctx context.Context,
	query ListRoutesQuery,
) (paging.Envelope[RouteRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[RouteRow]{}, err
	}

	type routeScan struct {
		ID          uuid.UUID
		Origin      string
		Destination string
		DistanceKm  float64
		BaseCost    float64
		IsActive    bool
	}

	tx := h.db.WithContext(ctx).Table("routes")
	if query.filter.Origin != "" {
		tx = tx.Where("origin ILIKE ?", "%"+query.filter.Origin+"%")
	}
	if query.filter.Destination != "" {
		tx = tx.Where("destination ILIKE ?", "%"+query.filter.Destination+"%")
	}
	if query.filter.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}

	var scans []routeScan
	if err := tx.Order("origin, destination").Find(&scans).Error; err != nil {
		return paging.Envelope[RouteRow]{}, err
	}

	rows := make([]RouteRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[RouteRow]{}, err
		}
		rows = append(rows, RouteRow{
			ID:          id,
			Origin:      s.Origin,
			Destination: s.Destination,
			DistanceKm:  s.DistanceKm,
			BaseCost:    s.BaseCost,
			IsActive:    s.IsActive,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "route", "routes"),
	), nil
}
