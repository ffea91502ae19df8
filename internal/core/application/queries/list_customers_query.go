// Package queries contains the read side of the application: per-entity list
// queries over optimized read models. Handlers go straight to the database,
// bypassing the aggregate repositories, and wrap results in the shared
// pagination envelope. Filtering happens in SQL with parameterized
// conditions; the page is then cut out of the filtered set.
package queries

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// CustomerFilter narrows the customer list. Zero-valued fields are ignored.
type CustomerFilter struct {
	NameContains string
	EmailDomain  string
	PageNumber   int
	PageSize     int
}

// ListCustomersQuery retrieves a filtered, paginated customer list.
type ListCustomersQuery struct {
	guard  guard.ConstructorGuard
	filter CustomerFilter
}

// NewListCustomersQuery creates a query from the given filter.
func NewListCustomersQuery(filter CustomerFilter) ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// CustomerRow is the customer read model.
type CustomerRow struct {
	ID        kernel.UUID `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ListCustomersQueryHandler executes customer list queries.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler bound to a database connection.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle retrieves customers matching the filter, ordered by name.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (paging.Envelope[CustomerRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[CustomerRow]{}, err
	}

	type customerScan struct {
		ID        uuid.UUID
		Name      string
		Email     string
		Phone     string
		CreatedAt time.Time
	}

	tx := h.db.WithContext(ctx).Table("customers")
	if query.filter.NameContains != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.filter.NameContains+"%")
	}
	if query.filter.EmailDomain != "" {
		tx = tx.Where("email LIKE ?", "%@"+query.filter.EmailDomain)
	}

	var scans []customerScan
	if err := tx.Order("name").Find(&scans).Error; err != nil {
		return paging.Envelope[CustomerRow]{}, err
	}

	rows := make([]CustomerRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[CustomerRow]{}, err
		}
		rows = append(rows, CustomerRow{
			ID:        id,
			Name:      s.Name,
			Email:     s.Email,
			Phone:     s.Phone,
			CreatedAt: s.CreatedAt,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "customer", "customers"),
	), nil
}

// countMessage builds the human-readable count note attached to every list
// envelope.
func countMessage(count int, singular, plural string) paging.Message {
	if count == 1 {
		return paging.Message{Type: "info", Description: fmt.Sprintf("1 %s found", singular)}
	}
	return paging.Message{Type: "info", Description: fmt.Sprintf("%d %s found", count, plural)}
}
