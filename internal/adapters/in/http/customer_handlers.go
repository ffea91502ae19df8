package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCustomerResponse(aggregate *customer.Customer) customerResponse {
	return customerResponse{
		ID:        aggregate.ID().String(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req customerRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.customers.Create(ctx.Request().Context(),
		kernel.NewUUID(), req.Name, req.Email, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCustomerResponse(aggregate))
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListCustomersQuery(queries.CustomerFilter{
		NameContains: ctx.QueryParam("name"),
		EmailDomain:  ctx.QueryParam("emailDomain"),
		PageNumber:   pageNumber,
		PageSize:     pageSize,
	})

	envelope, err := s.listCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.customers.Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(aggregate))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req customerRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(ctx)
	}

	aggregate, err := s.customers.Update(ctx.Request().Context(),
		id, req.Name, req.Email, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(aggregate))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.customers.Delete(ctx.Request().Context(), id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
