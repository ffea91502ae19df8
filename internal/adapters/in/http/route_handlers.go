package http

import (
	"net/http"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

type routeRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distanceKm"`
	BaseCost    float64 `json:"baseCost"`
}

type routeResponse struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distanceKm"`
	BaseCost    float64 `json:"baseCost"`
	IsActive    bool    `json:"isActive"`
}

func toRouteResponse(aggregate *route.Route) routeResponse {
	return routeResponse{
		ID:          aggregate.ID().String(),
		Origin:      aggregate.Origin(),
		Destination: aggregate.Destination(),
		DistanceKm:  aggregate.DistanceKm(),
		BaseCost:    aggregate.BaseCost(),
		IsActive:    aggregate.IsActive(),
	}
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req routeRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.routes.Create(ctx.Request().Context(),
		kernel.NewUUID(), req.Origin, req.Destination, req.DistanceKm, req.BaseCost)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toRouteResponse(aggregate))
}

// ListRoutes handles GET /api/v1/routes.
func (s *Server) ListRoutes(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListRoutesQuery(queries.RouteFilter{
		Origin:      ctx.QueryParam("origin"),
		Destination: ctx.QueryParam("destination"),
		OnlyActive:  ctx.QueryParam("onlyActive") == "true",
		PageNumber:  pageNumber,
		PageSize:    pageSize,
	})

	envelope, err := s.listRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// GetRoute handles GET /api/v1/routes/:id.
func (s *Server) GetRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.routes.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRouteResponse(aggregate))
}

// UpdateRoute handles PUT /api/v1/routes/:id.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req routeRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.routes.Update(ctx.Request().Context(),
		id, req.Origin, req.Destination, req.DistanceKm, req.BaseCost)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRouteResponse(aggregate))
}

// DeleteRoute handles DELETE /api/v1/routes/:id.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.routes.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
