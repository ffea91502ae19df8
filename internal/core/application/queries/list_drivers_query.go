package queries

import (
	"context"
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// DriverFilter narrows the driver list. Zero-valued fields are ignored;
// Status takes a display name ("Available", "OnRoute", "OffDuty", "OnLeave").
type DriverFilter struct {
	NameContains    string
	Status          string
	LicenseCategory string
	OnlyActive      bool
	PageNumber      int
	PageSize        int
}

// ListDriversQuery retrieves a filtered, paginated driver list.
type ListDriversQuery struct {
	guard  guard.ConstructorGuard
	filter DriverFilter
}

// NewListDriversQuery creates a query from the given filter.
func NewListDriversQuery(filter DriverFilter) ListDriversQuery {
	return ListDriversQuery{guard: guard.NewConstructorGuard(), filter: filter}
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// DriverRow is the driver read model.
type DriverRow struct {
	ID                kernel.UUID  `json:"id"`
	FullName          string       `json:"fullName"`
	LicenseNumber     string       `json:"licenseNumber"`
	LicenseCategory   string       `json:"licenseCategory"`
	LicenseExpiryDate time.Time    `json:"licenseExpiryDate"`
	Status            string       `json:"status"`
	IsActive          bool         `json:"isActive"`
	CurrentVehicleID  *kernel.UUID `json:"currentVehicleId,omitempty"`
	TotalDeliveries   int          `json:"totalDeliveries"`
}

// ListDriversQueryHandler executes driver list queries.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

// NewListDriversQueryHandler creates a handler bound to a database connection.
func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

// Handle retrieves drivers matching the filter, ordered by full name.
func (h ListDriversQueryHandler) Handle(
	ctx context.Context,
	query ListDriversQuery,
) (paging.Envelope[DriverRow], error) {
	if err := query.Validate(); err != nil {
		return paging.Envelope[DriverRow]{}, err
	}

	type driverScan struct {
		ID                uuid.UUID
		FullName          string
		LicenseNumber     string
		LicenseCategory   string
		LicenseExpiryDate time.Time
		Status            int
		IsActive          bool
		CurrentVehicleID  *uuid.UUID
		TotalDeliveries   int
	}

	tx := h.db.WithContext(ctx).Table("drivers")
	if query.filter.NameContains != "" {
		tx = tx.Where("full_name ILIKE ?", "%"+query.filter.NameContains+"%")
	}
	if query.filter.Status != "" {
		status, err := driver.ParseStatus(query.filter.Status)
		if err != nil {
			return paging.Envelope[DriverRow]{}, err
		}
		tx = tx.Where("status = ?", int(status))
	}
	if query.filter.LicenseCategory != "" {
		tx = tx.Where("license_category = ?", query.filter.LicenseCategory)
	}
	if query.filter.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}

	var scans []driverScan
	if err := tx.Order("full_name").Find(&scans).Error; err != nil {
		return paging.Envelope[DriverRow]{}, err
	}

	rows := make([]DriverRow, 0, len(scans))
	for _, s := range scans {
		id, err := kernel.UUIDFromBytes(s.ID[:])
		if err != nil {
			return paging.Envelope[DriverRow]{}, err
		}
		var vehicleID *kernel.UUID
		if s.CurrentVehicleID != nil {
			vID, vErr := kernel.UUIDFromBytes((*s.CurrentVehicleID)[:])
			if vErr != nil {
				return paging.Envelope[DriverRow]{}, vErr
			}
			vehicleID = &vID
		}
		rows = append(rows, DriverRow{
			ID:                id,
			FullName:          s.FullName,
			LicenseNumber:     s.LicenseNumber,
			LicenseCategory:   s.LicenseCategory,
			LicenseExpiryDate: s.LicenseExpiryDate,
			Status:            driver.Status(s.Status).String(),
			IsActive:          s.IsActive,
			CurrentVehicleID:  vehicleID,
			TotalDeliveries:   s.TotalDeliveries,
		})
	}

	return paging.NewEnvelope(rows,
		query.filter.PageNumber, query.filter.PageSize, http.StatusOK,
		countMessage(len(rows), "driver", "drivers"),
	), nil
}
