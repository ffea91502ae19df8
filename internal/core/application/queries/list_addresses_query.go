package queries

import (
	"context"
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

// AddressFilter narrows the address list. Zero-valued fields are ignored;
// AddressType takes a display name ("Pickup", "Delivery").
type AddressFilter struct {
	CustomerID  *kernel.UUID
	City        string
	AddressType string
	OnlyActive  bool
	PageNumber  int
	PageSize    int
}

// ListAddressesQuery retrieves a filtered, paginated address list.
type ListAddressesQuery struct {
	guard  guard.ConstructorGuard
	filter AddressFilter
}

// NewListAddressesQuery creates a query from the given filter.
func NewListAddressesQuery(filter AddressFilter) ListAddressesQuery {
	return ListAddressesQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

// AddressRow is the address read model.
type AddressRow struct {
	ID          kernel.UUID `json:"id"`
	CustomerID  kernel.UUID `json:"customerId"`
	Street      string      `json:"street"`
	City        string      `json:"city"`
	Department  string      `json:"department"`
	AddressType string      `json:"addressType"`
	Alias       string      `json:"alias"`
	IsDefault   bool        `json:"isDefault"`
	IsActive    bool        `json:"isActive"`
}

// ListAddressesQueryHandler executes address list queries.
type ListAddressesQueryHandler struct {
	db *gorm.DB
}

// NewListAddressesQueryHandler creates a handler bound to a database connection.
func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

// Handle retrieves addresses matching the filter, default addresses first,
// then oldest first.
func (h ListAddressesQueryHandler) Handle(
	ctx context.Context,
	query ListAddressesQuery,
) (paging.Envelope[AddressRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[AddressRow]{}, err
	}

	type addressScan struct {
		ID          uuid.UUID
		CustomerID  uuid.UUID
		Street      string
		City        string
		Department  int
		AddressType int
		Alias       string
		IsDefault   bool
		IsActive    bool
	}

	tx := h.db.WithContext(ctx).Table("addresses")
	if query.filter.CustomerID != nil {
		tx = tx.Where("customer_id = ?", query.filter.CustomerID.Bytes())
	}
	if query.filter.City != "" {
		tx = tx.Where("city ILIKE ?", "%"+query.filter.City+"%")
	}
	if query.filter.AddressType != "" {
		addressType, err := address.ParseType(query.filter.AddressType)
		if err != nil {
			return paging.Envelope[AddressRow]{}, err
		}
		tx = tx.Where("address_type = ?", int(addressType))
	}
	if query.filter.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}

	var scans []addressScan
	if err := tx.Order("is_default DESC, created_at").Find(&scans).Error; err != nil {
		return paging.Envelope[AddressRow]{}, err
	}

	rows := make([]AddressRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[AddressRow]{}, err
		}
		customerID, err := kernel.UUIDFromBytes(s.CustomerID[:])
		if err != nil {
			return paging.Envelope[AddressRow]{}, err
		}
		rows = append(rows, AddressRow{
			ID:          id,
			CustomerID:  customerID,
			Street:      s.Street,
			City:        s.City,
			Department:  kernel.Department(s.Department).String(),
			AddressType: address.Type(s.AddressType).String(),
			Alias:       s.Alias,
			IsDefault:   s.IsDefault,
			IsActive:    s.IsActive,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "address", "addresses"),
	), nil
}
