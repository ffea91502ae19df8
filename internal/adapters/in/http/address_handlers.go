package http

import (
	"net/http"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/address"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addressRequest struct {
	CustomerID   string   `json:"customerId"`
	Street       string   `json:"street"`
	City         string   `json:"city"`
	Department   string   `json:"department"`
	Zone         string   `json:"zone"`
	PostalCode   string   `json:"postalCode"`
	Reference    string   `json:"reference"`
	Alias        string   `json:"alias"`
	AddressType  string   `json:"addressType"`
	IsDefault    bool     `json:"isDefault"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
}

type addressResponse struct {
	ID           string   `json:"id"`
	CustomerID   string   `json:"customerId"`
	Street       string   `json:"street"`
	City         string   `json:"city"`
	Department   string   `json:"department"`
	Zone         string   `json:"zone,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Reference    string   `json:"reference,omitempty"`
	Alias        string   `json:"alias,omitempty"`
	AddressType  string   `json:"addressType"`
	IsDefault    bool     `json:"isDefault"`
	IsActive     bool     `json:"isActive"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	ContactName  string   `json:"contactName,omitempty"`
	ContactPhone string   `json:"contactPhone,omitempty"`
}

func toAddressResponse(aggregate *address.Address) addressResponse {
	resp := addressResponse{
		ID:           aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		Street:       aggregate.Street(),
		City:         aggregate.City(),
		Department:   aggregate.Department().String(),
		Zone:         aggregate.Zone(),
		PostalCode:   aggregate.PostalCode(),
		Reference:    aggregate.Reference(),
		Alias:        aggregate.Alias(),
		AddressType:  aggregate.Type().String(),
		IsDefault:    aggregate.IsDefault(),
		IsActive:     aggregate.IsActive(),
		ContactName:  aggregate.ContactName(),
		ContactPhone: aggregate.ContactPhone(),
	}
	if location := aggregate.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		resp.Latitude = &latitude
		resp.Longitude = &longitude
	}
	return resp
}

// parseAddressRequest resolves the string-typed fields of an address request
// into domain values.
func parseAddressRequest(req addressRequest) (kernel.Department, address.Type, *kernel.GeoPoint, error) {
	department, err := kernel.ParseDepartment(req.Department)
	if err != nil {
		return kernel.DepartmentUnknown, address.TypeUnknown, nil, err
	}

	addressType, err := address.ParseType(req.AddressType)
	if err != nil {
		return kernel.DepartmentUnknown, address.TypeUnknown, nil, err
	}

	var location *kernel.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		point, err := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return kernel.DepartmentUnknown, address.TypeUnknown, nil, err
		}
		location = &point
	}

	return department, addressType, location, nil
}

// CreateAddress handles POST /api/v1/addresses.
func (s *Server) CreateAddress(ctx echo.Context) error {
	var req addressRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	department, addressType, location, err := parseAddressRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.addresses.Create(ctx.Request().Context(),
		kernel.NewUUID(), customerID, req.Street, req.City, department,
		req.Zone, req.PostalCode, req.Reference, req.Alias, addressType,
		req.IsDefault, location, req.ContactName, req.ContactPhone)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAddressResponse(aggregate))
}

// ListAddresses handles GET /api/v1/addresses.
func (s *Server) ListAddresses(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	filter := queries.AddressFilter{
		City:        ctx.QueryParam("city"),
		AddressType: ctx.QueryParam("addressType"),
		OnlyActive:  ctx.QueryParam("onlyActive") == "true",
		PageNumber:  pageNumber,
		PageSize:    pageSize,
	}
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.CustomerID = &customerID
	}

	envelope, err := s.listAddresses.Handle(ctx.Request().Context(),
		queries.NewListAddressesQuery(filter))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// ListCustomerAddresses handles GET /api/v1/customers/:id/addresses.
func (s *Server) ListCustomerAddresses(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	addresses, err := s.addresses.GetByCustomer(ctx.Request().Context(), customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]addressResponse, 0, len(addresses))
	for _, aggregate := range addresses {
		response = append(response, toAddressResponse(aggregate))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAddress handles GET /api/v1/addresses/:id.
func (s *Server) GetAddress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.addresses.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAddressResponse(aggregate))
}

// UpdateAddress handles PUT /api/v1/addresses/:id.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req addressRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	department, addressType, location, err := parseAddressRequest(req)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.addresses.Update(ctx.Request().Context(),
		id, req.Street, req.City, department,
		req.Zone, req.PostalCode, req.Reference, req.Alias, addressType,
		req.IsDefault, location, req.ContactName, req.ContactPhone)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAddressResponse(aggregate))
}

// SetDefaultAddress handles POST /api/v1/addresses/:id/default.
func (s *Server) SetDefaultAddress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addresses.SetDefault(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateAddress handles POST /api/v1/addresses/:id/deactivate.
func (s *Server) DeactivateAddress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addresses.Deactivate(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAddress handles DELETE /api/v1/addresses/:id.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addresses.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
