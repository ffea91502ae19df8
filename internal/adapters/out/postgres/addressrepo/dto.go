// Package addressrepo provides data transfer objects and mapping functions
// for address persistence.
package addressrepo

import (
	"time"

	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting addresses.
// Latitude and longitude are stored together or not at all.
type AddressDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	Street       string    `gorm:"size:200"`
	City         string    `gorm:"size:100"`
	Department   int
	Zone         string `gorm:"size:50"`
	PostalCode   string `gorm:"size:20"`
	Reference    string `gorm:"size:200"`
	Alias        string `gorm:"size:50"`
	AddressType  int    `gorm:"index"`
	IsDefault    bool
	IsActive     bool
	Latitude     *float64
	Longitude    *float64
	ContactName  string `gorm:"size:100"`
	ContactPhone string `gorm:"size:20"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(aggregate *address.Address) AddressDTO {
	var lat, lon *float64
	if loc := aggregate.Location(); loc != nil {
		latitude, longitude := loc.Latitude(), loc.Longitude()
		lat, lon = &latitude, &longitude
	}

	return AddressDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Street:       aggregate.Street(),
		City:         aggregate.City(),
		Department:   int(aggregate.Department()),
		Zone:         aggregate.Zone(),
		PostalCode:   aggregate.PostalCode(),
		Reference:    aggregate.Reference(),
		Alias:        aggregate.Alias(),
		AddressType:  int(aggregate.Type()),
		IsDefault:    aggregate.IsDefault(),
		IsActive:     aggregate.IsActive(),
		Latitude:     lat,
		Longitude:    lon,
		ContactName:  aggregate.ContactName(),
		ContactPhone: aggregate.ContactPhone(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return address.RestoreAddress(id, customerID, dto.Street, dto.City,
		kernel.Department(dto.Department), dto.Zone, dto.PostalCode,
		dto.Reference, dto.Alias, address.Type(dto.AddressType),
		dto.IsDefault, dto.IsActive, location,
		dto.ContactName, dto.ContactPhone, dto.CreatedAt)
}
