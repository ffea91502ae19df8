package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"

	"github.com/labstack/echo/v4"
)

type registerEntryRequest struct {
	ShipmentID      string     `json:"shipmentId"`
	WarehouseID     string     `json:"warehouseId"`
	EntryDate       *time.Time `json:"entryDate"`
	ReceivedBy      string     `json:"receivedBy"`
	StorageLocation string     `json:"storageLocation"`
}

type registerExitRequest struct {
	ShipmentID   string     `json:"shipmentId"`
	ExitDate     *time.Time `json:"exitDate"`
	DispatchedBy string     `json:"dispatchedBy"`
}

type movementResponse struct {
	ID              string     `json:"id"`
	ShipmentID      string     `json:"shipmentId"`
	WarehouseID     string     `json:"warehouseId"`
	EntryDate       time.Time  `json:"entryDate"`
	ExitDate        *time.Time `json:"exitDate,omitempty"`
	Status          string     `json:"status"`
	ReceivedBy      string     `json:"receivedBy"`
	DispatchedBy    string     `json:"dispatchedBy,omitempty"`
	StorageLocation string     `json:"storageLocation"`
}

func toMovementResponse(aggregate *movement.Movement) movementResponse {
	return movementResponse{
		ID:              aggregate.ID().String(),
		ShipmentID:      aggregate.ShipmentID().String(),
		WarehouseID:     aggregate.WarehouseID().String(),
		EntryDate:       aggregate.EntryDate(),
		ExitDate:        aggregate.ExitDate(),
		Status:          aggregate.Status().String(),
		ReceivedBy:      aggregate.ReceivedBy(),
		DispatchedBy:    aggregate.DispatchedBy(),
		StorageLocation: aggregate.StorageLocation(),
	}
}

// RegisterWarehouseEntry handles POST /api/v1/movements/entry.
func (s *Server) RegisterWarehouseEntry(ctx echo.Context) error {
	var req registerEntryRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	entryDate := time.Now().UTC()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	aggregate, err := s.movements.RegisterEntry(ctx.Request().Context(),
		kernel.NewUUID(), shipmentID, warehouseID, entryDate,
		req.ReceivedBy, req.StorageLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMovementResponse(aggregate))
}

// RegisterWarehouseExit handles POST /api/v1/movements/exit.
func (s *Server) RegisterWarehouseExit(ctx echo.Context) error {
	var req registerExitRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	exitDate := time.Now().UTC()
	if req.ExitDate != nil {
		exitDate = *req.ExitDate
	}

	aggregate, err := s.movements.RegisterExit(ctx.Request().Context(),
		shipmentID, exitDate, req.DispatchedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMovementResponse(aggregate))
}

// GetShipmentLocation handles GET /api/v1/shipments/:id/location.
func (s *Server) GetShipmentLocation(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.movements.GetCurrentLocation(ctx.Request().Context(), shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMovementResponse(aggregate))
}

// ListMovements handles GET /api/v1/movements.
func (s *Server) ListMovements(ctx echo.Context) error {
	filter := queries.MovementFilter{
		OnlyOpen: ctx.QueryParam("onlyOpen") == "true",
	}
	if raw := ctx.QueryParam("shipmentId"); raw != "" {
		shipmentID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.ShipmentID = &shipmentID
	}
	if raw := ctx.QueryParam("warehouseId"); raw != "" {
		warehouseID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.WarehouseID = &warehouseID
	}
	filter.PageNumber, filter.PageSize = pageParams(ctx)

	envelope, err := s.listMovements.Handle(ctx.Request().Context(), queries.NewListMovementsQuery(filter))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// ListShipmentMovements handles GET /api/v1/shipments/:id/movements.
func (s *Server) ListShipmentMovements(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListMovementsQuery(queries.MovementFilter{
		ShipmentID: &shipmentID,
		OnlyOpen:   ctx.QueryParam("onlyOpen") == "true",
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})

	envelope, err := s.listMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// DeleteMovement handles DELETE /api/v1/movements/:id.
func (s *Server) DeleteMovement(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.movements.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
