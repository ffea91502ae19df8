package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/labstack/echo/v4"
)

type warehouseRequest struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	AddressLine   string  `json:"addressLine"`
	City          string  `json:"city"`
	Department    string  `json:"department"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	MaxCapacityM3 float64 `json:"maxCapacityM3"`
	WarehouseType string  `json:"warehouseType"`
}

type warehouseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	AddressLine   string    `json:"addressLine"`
	City          string    `json:"city"`
	Department    string    `json:"department"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	MaxCapacityM3 float64   `json:"maxCapacityM3"`
	OccupiedSlots int       `json:"occupiedSlots"`
	WarehouseType string    `json:"warehouseType"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toWarehouseResponse(aggregate *warehouse.Warehouse) warehouseResponse {
	return warehouseResponse{
		ID:            aggregate.ID().String(),
		Name:          aggregate.Name(),
		Code:          aggregate.Code(),
		AddressLine:   aggregate.AddressLine(),
		City:          aggregate.City(),
		Department:    aggregate.Department().String(),
		Phone:         aggregate.Phone(),
		Email:         aggregate.Email(),
		MaxCapacityM3: aggregate.MaxCapacityM3(),
		OccupiedSlots: aggregate.OccupiedSlots(),
		WarehouseType: aggregate.WarehouseType().String(),
		IsActive:      aggregate.IsActive(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func parseWarehouseRequest(req warehouseRequest) (kernel.Department, warehouse.Type, error) {
	department, err := kernel.ParseDepartment(req.Department)
	if err != nil {
		return kernel.DepartmentUnknown, warehouse.TypeUnknown, err
	}

	warehouseType, err := warehouse.ParseType(req.WarehouseType)
	if err != nil {
		return kernel.DepartmentUnknown, warehouse.TypeUnknown, err
	}

	return department, warehouseType, nil
}

// CreateWarehouse handles POST /api/v1/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var req warehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	department, warehouseType, err := parseWarehouseRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.warehouses.Create(ctx.Request().Context(),
		kernel.NewUUID(), req.Name, req.Code, req.AddressLine, req.City,
		department, req.Phone, req.Email, req.MaxCapacityM3, warehouseType)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toWarehouseResponse(aggregate))
}

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListWarehousesQuery(queries.WarehouseFilter{
		Department:    ctx.QueryParam("department"),
		WarehouseType: ctx.QueryParam("warehouseType"),
		City:          ctx.QueryParam("city"),
		OnlyActive:    ctx.QueryParam("onlyActive") == "true",
		PageNumber:    pageNumber,
		PageSize:      pageSize,
	})

	envelope, err := s.listWarehouses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// GetWarehouse handles GET /api/v1/warehouses/:id.
func (s *Server) GetWarehouse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.warehouses.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWarehouseResponse(aggregate))
}

// UpdateWarehouse handles PUT /api/v1/warehouses/:id.
func (s *Server) UpdateWarehouse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req warehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	department, warehouseType, err := parseWarehouseRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.warehouses.Update(ctx.Request().Context(),
		id, req.Name, req.Code, req.AddressLine, req.City,
		department, req.Phone, req.Email, req.MaxCapacityM3, warehouseType)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWarehouseResponse(aggregate))
}

// DeleteWarehouse handles DELETE /api/v1/warehouses/:id.
func (s *Server) DeleteWarehouse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.warehouses.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
