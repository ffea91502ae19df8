// Package http is the inbound HTTP adapter: an echo server exposing the
// application services and list queries as a JSON API under /api/v1.
package http

import (
	"net/http"
	"strconv"

	"logistics/internal/core/application/queries"
	"logistics/internal/core/application/services"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers, application services and query
// handlers.
type Server struct {
	customers  services.CustomerService
	addresses  services.AddressService
	drivers    services.DriverService
	vehicles   services.VehicleService
	warehouses services.WarehouseService
	routes     services.RouteService
	shipments  services.ShipmentService
	packages   services.PackageService
	movements  services.MovementService

	listCustomers  queries.ListCustomersQueryHandler
	listAddresses  queries.ListAddressesQueryHandler
	listDrivers    queries.ListDriversQueryHandler
	listVehicles   queries.ListVehiclesQueryHandler
	listWarehouses queries.ListWarehousesQueryHandler
	listRoutes     queries.ListRoutesQueryHandler
	listShipments  queries.ListShipmentsQueryHandler
	listMovements  queries.ListMovementsQueryHandler
}

// ServerDeps bundles everything the server needs.
type ServerDeps struct {
	Customers  services.CustomerService
	Addresses  services.AddressService
	Drivers    services.DriverService
	Vehicles   services.VehicleService
	Warehouses services.WarehouseService
	Routes     services.RouteService
	Shipments  services.ShipmentService
	Packages   services.PackageService
	Movements  services.MovementService

	ListCustomers  queries.ListCustomersQueryHandler
	ListAddresses  queries.ListAddressesQueryHandler
	ListDrivers    queries.ListDriversQueryHandler
	ListVehicles   queries.ListVehiclesQueryHandler
	ListWarehouses queries.ListWarehousesQueryHandler
	ListRoutes     queries.ListRoutesQueryHandler
	ListShipments  queries.ListShipmentsQueryHandler
	ListMovements  queries.ListMovementsQueryHandler
}

// NewServer creates the HTTP server from its dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		customers:      deps.Customers,
		addresses:      deps.Addresses,
		drivers:        deps.Drivers,
		vehicles:       deps.Vehicles,
		warehouses:     deps.Warehouses,
		routes:         deps.Routes,
		shipments:      deps.Shipments,
		packages:       deps.Packages,
		movements:      deps.Movements,
		listCustomers:  deps.ListCustomers,
		listAddresses:  deps.ListAddresses,
		listDrivers:    deps.ListDrivers,
		listVehicles:   deps.ListVehicles,
		listWarehouses: deps.ListWarehouses,
		listRoutes:     deps.ListRoutes,
		listShipments:  deps.ListShipments,
		listMovements:  deps.ListMovements,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.GET("/customers/:id/addresses", s.ListCustomerAddresses)

	api.POST("/addresses", s.CreateAddress)
	api.GET("/addresses", s.ListAddresses)
	api.GET("/addresses/:id", s.GetAddress)
	api.PUT("/addresses/:id", s.UpdateAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)
	api.POST("/addresses/:id/default", s.SetDefaultAddress)
	api.POST("/addresses/:id/deactivate", s.DeactivateAddress)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.ListDrivers)
	api.GET("/drivers/:id", s.GetDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)
	api.POST("/drivers/:id/vehicle", s.AssignVehicleToDriver)
	api.DELETE("/drivers/:id/vehicle", s.UnassignVehicleFromDriver)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.ListVehicles)
	api.GET("/vehicles/:id", s.GetVehicle)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)
	api.PUT("/vehicles/:id/load", s.UpdateVehicleLoad)

	api.POST("/warehouses", s.CreateWarehouse)
	api.GET("/warehouses", s.ListWarehouses)
	api.GET("/warehouses/:id", s.GetWarehouse)
	api.PUT("/warehouses/:id", s.UpdateWarehouse)
	api.DELETE("/warehouses/:id", s.DeleteWarehouse)

	api.POST("/routes", s.CreateRoute)
	api.GET("/routes", s.ListRoutes)
	api.GET("/routes/:id", s.GetRoute)
	api.PUT("/routes/:id", s.UpdateRoute)
	api.DELETE("/routes/:id", s.DeleteRoute)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.PUT("/shipments/:id/status", s.ChangeShipmentStatus)
	api.PUT("/shipments/:id/cost", s.UpdateShipmentCost)
	api.GET("/shipments/tracking/:number", s.GetShipmentByTracking)
	api.GET("/shipments/:id/packages", s.ListShipmentPackages)
	api.GET("/shipments/:id/location", s.GetShipmentLocation)
	api.GET("/shipments/:id/movements", s.ListShipmentMovements)

	api.POST("/packages", s.CreatePackage)
	api.GET("/packages/:id", s.GetPackage)
	api.PUT("/packages/:id", s.UpdatePackage)
	api.DELETE("/packages/:id", s.DeletePackage)

	api.GET("/movements", s.ListMovements)
	api.POST("/movements/entry", s.RegisterWarehouseEntry)
	api.POST("/movements/exit", s.RegisterWarehouseExit)
	api.DELETE("/movements/:id", s.DeleteMovement)
}

// Health reports service liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// pageParams reads pageNumber/pageSize query parameters; missing or
// malformed values fall back to the paging defaults.
func pageParams(ctx echo.Context) (int, int) {
	pageNumber := intQueryParam(ctx, "pageNumber")
	pageSize := intQueryParam(ctx, "pageSize")
	return pageNumber, pageSize
}

func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
