package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

type vehicleRequest struct {
	PlateNumber          string     `json:"plateNumber"`
	Brand                string     `json:"brand"`
	Model                string     `json:"model"`
	Year                 int        `json:"year"`
	VehicleType          string     `json:"vehicleType"`
	MaxWeightKg          float64    `json:"maxWeightKg"`
	MaxVolumeM3          float64    `json:"maxVolumeM3"`
	MileageKm            float64    `json:"mileageKm"`
	MaintenanceMileageKm float64    `json:"maintenanceMileageKm"`
	LastMaintenanceDate  *time.Time `json:"lastMaintenanceDate"`
	InsuranceExpiryDate  *time.Time `json:"insuranceExpiryDate"`
	VIN                  *string    `json:"vin"`
	BaseWarehouseID      *string    `json:"baseWarehouseId"`
}

type vehicleResponse struct {
	ID               string  `json:"id"`
	PlateNumber      string  `json:"plateNumber"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	VehicleType      string  `json:"vehicleType"`
	MaxWeightKg      float64 `json:"maxWeightKg"`
	MaxVolumeM3      float64 `json:"maxVolumeM3"`
	CurrentWeightKg  float64 `json:"currentWeightKg"`
	CurrentVolumeM3  float64 `json:"currentVolumeM3"`
	MileageKm        float64 `json:"mileageKm"`
	VIN              *string `json:"vin,omitempty"`
	BaseWarehouseID  *string `json:"baseWarehouseId,omitempty"`
	AssignedDriverID *string `json:"assignedDriverId,omitempty"`
	Status           string  `json:"status"`
	IsActive         bool    `json:"isActive"`
}

func toVehicleResponse(aggregate *vehicle.Vehicle) vehicleResponse {
	resp := vehicleResponse{
		ID:              aggregate.ID().String(),
		PlateNumber:     aggregate.PlateNumber(),
		Brand:           aggregate.Brand(),
		Model:           aggregate.Model(),
		Year:            aggregate.Year(),
		VehicleType:     aggregate.VehicleType().String(),
		MaxWeightKg:     aggregate.MaxWeightKg(),
		MaxVolumeM3:     aggregate.MaxVolumeM3(),
		CurrentWeightKg: aggregate.CurrentWeightKg(),
		CurrentVolumeM3: aggregate.CurrentVolumeM3(),
		MileageKm:       aggregate.MileageKm(),
		VIN:             aggregate.VIN(),
		Status:          aggregate.Status().String(),
		IsActive:        aggregate.IsActive(),
	}
	if warehouseID := aggregate.BaseWarehouseID(); warehouseID != nil {
		id := warehouseID.String()
		resp.BaseWarehouseID = &id
	}
	if driverID := aggregate.AssignedDriverID(); driverID != nil {
		id := driverID.String()
		resp.AssignedDriverID = &id
	}
	return resp
}

// parseVehicleRequest resolves the string-typed fields of a vehicle request.
func parseVehicleRequest(req vehicleRequest) (vehicle.Type, *kernel.UUID, error) {
	vehicleType, err := vehicle.ParseType(req.VehicleType)
	if err != nil {
		return vehicle.TypeUnknown, nil, err
	}

	var baseWarehouseID *kernel.UUID
	if req.BaseWarehouseID != nil {
		warehouseID, err := kernel.UUIDFromString(*req.BaseWarehouseID)
		if err != nil {
			return vehicle.TypeUnknown, nil, err
		}
		baseWarehouseID = &warehouseID
	}

	return vehicleType, baseWarehouseID, nil
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req vehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	vehicleType, baseWarehouseID, err := parseVehicleRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.vehicles.Create(ctx.Request().Context(),
		kernel.NewUUID(), req.PlateNumber, req.Brand, req.Model, req.Year,
		vehicleType, req.MaxWeightKg, req.MaxVolumeM3,
		req.MileageKm, req.MaintenanceMileageKm,
		req.LastMaintenanceDate, req.InsuranceExpiryDate,
		req.VIN, baseWarehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toVehicleResponse(aggregate))
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListVehiclesQuery(queries.VehicleFilter{
		VehicleType: ctx.QueryParam("vehicleType"),
		Status:      ctx.QueryParam("status"),
		OnlyActive:  ctx.QueryParam("onlyActive") == "true",
		PageNumber:  pageNumber,
		PageSize:    pageSize,
	})

	envelope, err := s.listVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.vehicles.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicleResponse(aggregate))
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req vehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	vehicleType, baseWarehouseID, err := parseVehicleRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.vehicles.Update(ctx.Request().Context(),
		id, req.PlateNumber, req.Brand, req.Model, req.Year,
		vehicleType, req.MaxWeightKg, req.MaxVolumeM3,
		req.MileageKm, req.MaintenanceMileageKm,
		req.LastMaintenanceDate, req.InsuranceExpiryDate,
		req.VIN, baseWarehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicleResponse(aggregate))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.vehicles.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type vehicleLoadRequest struct {
	WeightKg float64 `json:"weightKg"`
	VolumeM3 float64 `json:"volumeM3"`
}

// UpdateVehicleLoad handles PUT /api/v1/vehicles/:id/load.
func (s *Server) UpdateVehicleLoad(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req vehicleLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.vehicles.UpdateCurrentLoad(ctx.Request().Context(),
		id, req.WeightKg, req.VolumeM3)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicleResponse(aggregate))
}
