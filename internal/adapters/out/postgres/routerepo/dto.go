// Package routerepo provides data transfer objects and mapping functions
// for route persistence.
package routerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting routes.
type RouteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Origin      string    `gorm:"size:100;uniqueIndex:idx_routes_endpoints"`
	Destination string    `gorm:"size:100;uniqueIndex:idx_routes_endpoints"`
	DistanceKm  float64
	BaseCost    float64
	IsActive    bool
}

// TableName overrides GORM's default naming to use "routes".
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:          aggregate.ID().Bytes(),
		Origin:      aggregate.Origin(),
		Destination: aggregate.Destination(),
		DistanceKm:  aggregate.DistanceKm(),
		BaseCost:    aggregate.BaseCost(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.Origin, dto.Destination,
		dto.DistanceKm, dto.BaseCost, dto.IsActive)
}
