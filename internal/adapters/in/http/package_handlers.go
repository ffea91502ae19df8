package http

import (
	"net/http"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

type packageRequest struct {
	ShipmentID  string  `json:"shipmentId"`
	Description string  `json:"description"`
	WeightKg    float64 `json:"weightKg"`
	Price       float64 `json:"price"`
}

type packageResponse struct {
	ID          string  `json:"id"`
	ShipmentID  string  `json:"shipmentId"`
	Description string  `json:"description"`
	WeightKg    float64 `json:"weightKg"`
	Price       float64 `json:"price"`
}

func toPackageResponse(pkg *shipment.Package) packageResponse {
	return packageResponse{
		ID:          pkg.ID().String(),
		ShipmentID:  pkg.ShipmentID().String(),
		Description: pkg.Description(),
		WeightKg:    pkg.WeightKg(),
		Price:       pkg.Price(),
	}
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req packageRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	pkg, err := s.packages.Create(ctx.Request().Context(),
		kernel.NewUUID(), shipmentID, req.Description, req.WeightKg, req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPackageResponse(pkg))
}

// ListShipmentPackages handles GET /api/v1/shipments/:id/packages.
func (s *Server) ListShipmentPackages(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	packages, err := s.packages.GetByShipment(ctx.Request().Context(), shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]packageResponse, 0, len(packages))
	for _, pkg := range packages {
		response = append(response, toPackageResponse(pkg))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPackage handles GET /api/v1/packages/:id.
func (s *Server) GetPackage(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pkg, err := s.packages.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(pkg))
}

// UpdatePackage handles PUT /api/v1/packages/:id.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req packageRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	pkg, err := s.packages.Update(ctx.Request().Context(),
		id, req.Description, req.WeightKg, req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(pkg))
}

// DeletePackage handles DELETE /api/v1/packages/:id.
func (s *Server) DeletePackage(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.packages.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
