package cmd

import (
	"log/slog"

	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/queries"
	"logistics/internal/core/application/services"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCustomerService() services.CustomerService {
	var f services.CustomerUoWFactory = FuncCustomerUoWFactory(func() services.CustomerUoW {
		return c.uowFactory.Create()
	})
	return services.NewCustomerService(f)
}

func (c *CompositionRoot) CreateAddressService() services.AddressService {
	var f services.AddressUoWFactory = FuncAddressUoWFactory(func() services.AddressUoW {
		return c.uowFactory.Create()
	})
	return services.NewAddressService(f)
}

func (c *CompositionRoot) CreateDriverService() services.DriverService {
	var f services.DriverUoWFactory = FuncDriverUoWFactory(func() services.DriverUoW {
		return c.uowFactory.Create()
	})
	return services.NewDriverService(f)
}

func (c *CompositionRoot) CreateVehicleService() services.VehicleService {
	var f services.VehicleUoWFactory = FuncVehicleUoWFactory(func() services.VehicleUoW {
		return c.uowFactory.Create()
	})
	return services.NewVehicleService(f)
}

func (c *CompositionRoot) CreateWarehouseService() services.WarehouseService {
	var f services.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() services.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return services.NewWarehouseService(f)
}

func (c *CompositionRoot) CreateRouteService() services.RouteService {
	var f services.RouteUoWFactory = FuncRouteUoWFactory(func() services.RouteUoW {
		return c.uowFactory.Create()
	})
	return services.NewRouteService(f)
}

func (c *CompositionRoot) CreateShipmentService() services.ShipmentService {
	var f services.ShipmentUoWFactory = FuncShipmentUoWFactory(func() services.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return services.NewShipmentService(f)
}

func (c *CompositionRoot) CreatePackageService() services.PackageService {
	var f services.PackageUoWFactory = FuncPackageUoWFactory(func() services.PackageUoW {
		return c.uowFactory.Create()
	})
	return services.NewPackageService(f)
}

func (c *CompositionRoot) CreateMovementService() services.MovementService {
	var f services.MovementUoWFactory = FuncMovementUoWFactory(func() services.MovementUoW {
		return c.uowFactory.Create()
	})
	return services.NewMovementService(f)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWarehousesQueryHandler() queries.ListWarehousesQueryHandler {
	return queries.NewListWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRoutesQueryHandler() queries.ListRoutesQueryHandler {
	return queries.NewListRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMovementsQueryHandler() queries.ListMovementsQueryHandler {
	return queries.NewListMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDriverService(), logger)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.ServerDeps{
		Customers:  c.CreateCustomerService(),
		Addresses:  c.CreateAddressService(),
		Drivers:    c.CreateDriverService(),
		Vehicles:   c.CreateVehicleService(),
		Warehouses: c.CreateWarehouseService(),
		Routes:     c.CreateRouteService(),
		Shipments:  c.CreateShipmentService(),
		Packages:   c.CreatePackageService(),
		Movements:  c.CreateMovementService(),

		ListCustomers:  c.CreateListCustomersQueryHandler(),
		ListAddresses:  c.CreateListAddressesQueryHandler(),
		ListDrivers:    c.CreateListDriversQueryHandler(),
		ListVehicles:   c.CreateListVehiclesQueryHandler(),
		ListWarehouses: c.CreateListWarehousesQueryHandler(),
		ListRoutes:     c.CreateListRoutesQueryHandler(),
		ListShipments:  c.CreateListShipmentsQueryHandler(),
		ListMovements:  c.CreateListMovementsQueryHandler(),
	})
}

type FuncCustomerUoWFactory func() services.CustomerUoW

func (f FuncCustomerUoWFactory) Create() services.CustomerUoW {
	return f()
}

type FuncAddressUoWFactory func() services.AddressUoW

func (f FuncAddressUoWFactory) Create() services.AddressUoW {
	return f()
}

type FuncDriverUoWFactory func() services.DriverUoW

func (f FuncDriverUoWFactory) Create() services.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() services.VehicleUoW

func (f FuncVehicleUoWFactory) Create() services.VehicleUoW {
	return f()
}

type FuncWarehouseUoWFactory func() services.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() services.WarehouseUoW {
	return f()
}

type FuncRouteUoWFactory func() services.RouteUoW

func (f FuncRouteUoWFactory) Create() services.RouteUoW {
	return f()
}

type FuncShipmentUoWFactory func() services.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() services.ShipmentUoW {
	return f()
}

type FuncPackageUoWFactory func() services.PackageUoW

func (f FuncPackageUoWFactory) Create() services.PackageUoW {
	return f()
}

type FuncMovementUoWFactory func() services.MovementUoW

func (f FuncMovementUoWFactory) Create() services.MovementUoW {
	return f()
}
