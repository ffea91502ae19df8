package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createShipmentRequest struct {
	CustomerID     string  `json:"customerId"`
	RouteID        string  `json:"routeId"`
	TrackingNumber string  `json:"trackingNumber"`
	State          string  `json:"state"`
	TotalCost      float64 `json:"totalCost"`
}

type shipmentResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	RouteID        string    `json:"routeId"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	TotalCost      float64   `json:"totalCost"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toShipmentResponse(aggregate *shipment.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:             aggregate.ID().String(),
		CustomerID:     aggregate.CustomerID().String(),
		RouteID:        aggregate.RouteID().String(),
		TrackingNumber: aggregate.TrackingNumber(),
		Status:         aggregate.Status().String(),
		TotalCost:      aggregate.TotalCost(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	routeID, err := kernel.UUIDFromString(req.RouteID)
	if err != nil {
		return respondError(ctx, err)
	}

	// The state field is accepted for symmetry with responses, but a new
	// shipment only ever starts as Pending.
	if req.State != "" {
		status, err := shipment.ParseStatus(req.State)
		if err != nil || status != shipment.Pending {
			return respondError(ctx, errs.NewBusinessRuleErrorf(
				"a new shipment must start in the %q state", shipment.Pending))
		}
	}

	aggregate, err := s.shipments.Create(ctx.Request().Context(),
		kernel.NewUUID(), customerID, routeID, req.TrackingNumber, req.TotalCost)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(aggregate))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	filter := queries.ShipmentFilter{
		Status:           ctx.QueryParam("status"),
		TrackingContains: ctx.QueryParam("tracking"),
		PageNumber:       pageNumber,
		PageSize:         pageSize,
	}
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.CustomerID = &customerID
	}
	if raw := ctx.QueryParam("routeId"); raw != "" {
		routeID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.RouteID = &routeID
	}

	envelope, err := s.listShipments.Handle(ctx.Request().Context(),
		queries.NewListShipmentsQuery(filter))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.shipments.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(aggregate))
}

// GetShipmentByTracking handles GET /api/v1/shipments/tracking/:number.
func (s *Server) GetShipmentByTracking(ctx echo.Context) error {
	aggregate, err := s.shipments.GetByTrackingNumber(ctx.Request().Context(),
		ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(aggregate))
}

type shipmentStatusRequest struct {
	Status string `json:"status"`
}

// ChangeShipmentStatus handles PUT /api/v1/shipments/:id/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req shipmentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	target, err := shipment.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.shipments.ChangeStatus(ctx.Request().Context(), id, target)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(aggregate))
}

type shipmentCostRequest struct {
	TotalCost float64 `json:"totalCost"`
}

// UpdateShipmentCost handles PUT /api/v1/shipments/:id/cost.
func (s *Server) UpdateShipmentCost(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req shipmentCostRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.shipments.UpdateTotalCost(ctx.Request().Context(), id, req.TotalCost)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(aggregate))
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.shipments.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
