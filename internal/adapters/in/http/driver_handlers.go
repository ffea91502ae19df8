package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type driverRequest struct {
	FullName          string    `json:"fullName"`
	IdentityDocument  string    `json:"identityDocument"`
	LicenseNumber     string    `json:"licenseNumber"`
	LicenseCategory   string    `json:"licenseCategory"`
	LicenseIssueDate  time.Time `json:"licenseIssueDate"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	DateOfBirth       time.Time `json:"dateOfBirth"`
	HireDate          time.Time `json:"hireDate"`
	YearsOfExperience int       `json:"yearsOfExperience"`
}

type driverResponse struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	IdentityDocument  string    `json:"identityDocument"`
	LicenseNumber     string    `json:"licenseNumber"`
	LicenseCategory   string    `json:"licenseCategory"`
	LicenseIssueDate  time.Time `json:"licenseIssueDate"`
	LicenseExpiryDate time.Time `json:"licenseExpiryDate"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Status            string    `json:"status"`
	IsActive          bool      `json:"isActive"`
	CurrentVehicleID  *string   `json:"currentVehicleId,omitempty"`
	TotalDeliveries   int       `json:"totalDeliveries"`
}

func toDriverResponse(aggregate *driver.Driver) driverResponse {
	resp := driverResponse{
		ID:                aggregate.ID().String(),
		FullName:          aggregate.FullName(),
		IdentityDocument:  aggregate.IdentityDocument(),
		LicenseNumber:     aggregate.LicenseNumber(),
		LicenseCategory:   aggregate.LicenseCategory(),
		LicenseIssueDate:  aggregate.LicenseIssueDate(),
		LicenseExpiryDate: aggregate.LicenseExpiryDate(),
		Phone:             aggregate.Phone(),
		Email:             aggregate.Email(),
		Status:            aggregate.Status().String(),
		IsActive:          aggregate.IsActive(),
		TotalDeliveries:   aggregate.TotalDeliveries(),
	}
	if vehicleID := aggregate.CurrentVehicleID(); vehicleID != nil {
		id := vehicleID.String()
		resp.CurrentVehicleID = &id
	}
	return resp
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req driverRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.drivers.Create(ctx.Request().Context(),
		kernel.NewUUID(), req.FullName, req.IdentityDocument,
		req.LicenseNumber, req.LicenseCategory,
		req.LicenseIssueDate, req.LicenseExpiryDate,
		req.Phone, req.Email, req.DateOfBirth, req.HireDate,
		req.YearsOfExperience)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDriverResponse(aggregate))
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListDriversQuery(queries.DriverFilter{
		NameContains:    ctx.QueryParam("name"),
		Status:          ctx.QueryParam("status"),
		LicenseCategory: ctx.QueryParam("licenseCategory"),
		OnlyActive:      ctx.QueryParam("onlyActive") == "true",
		PageNumber:      pageNumber,
		PageSize:        pageSize,
	})

	envelope, err := s.listDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// GetDriver handles GET /api/v1/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.drivers.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverResponse(aggregate))
}

// UpdateDriver handles PUT /api/v1/drivers/:id.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req driverRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.drivers.Update(ctx.Request().Context(),
		id, req.FullName, req.IdentityDocument,
		req.LicenseNumber, req.LicenseCategory,
		req.LicenseIssueDate, req.LicenseExpiryDate,
		req.Phone, req.Email, req.DateOfBirth, req.HireDate,
		req.YearsOfExperience)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverResponse(aggregate))
}

// DeleteDriver handles DELETE /api/v1/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.drivers.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type assignVehicleRequest struct {
	VehicleID string `json:"vehicleId"`
}

// AssignVehicleToDriver handles POST /api/v1/drivers/:id/vehicle.
func (s *Server) AssignVehicleToDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req assignVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.drivers.AssignVehicle(ctx.Request().Context(), driverID, vehicleID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignVehicleFromDriver handles DELETE /api/v1/drivers/:id/vehicle.
func (s *Server) UnassignVehicleFromDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.drivers.UnassignVehicle(ctx.Request().Context(), driverID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
