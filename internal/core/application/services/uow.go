// Package services contains the application services that modify system
// state. Each operation follows a consistent pattern: validate input, begin
// a unit of work, enforce cross-record rules, persist and commit. The first
// violated rule aborts the operation before any write.
package services

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for the services.
// Each service declares the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// MovementRepoFactory provides access to the movement repository within a transaction.
	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	// CustomerUoW manages transactions for customer operations. Deleting a
	// customer also consults shipments and removes the customer's addresses.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
		AddressRepoFactory
		ShipmentRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// AddressUoW manages transactions for address operations. The customer
	// repository backs the owner existence check.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
		CustomerRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// DriverUoW manages transactions for driver operations, including the
	// two-sided vehicle assignment.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VehicleUoW manages transactions for vehicle operations. The warehouse
	// repository backs the base warehouse existence check, the driver
	// repository the assignment operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
		WarehouseRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// WarehouseUoW manages transactions for warehouse operations. The
	// movement repository backs the holds-shipments delete check.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
		MovementRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// RouteUoW manages transactions for route operations. The shipment
	// repository backs the referenced-by-shipments checks.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		ShipmentRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// ShipmentUoW manages transactions for shipment operations, spanning the
	// customer and route existence checks and the package cascade on delete.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		CustomerRepoFactory
		RouteRepoFactory
		PackageRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// PackageUoW manages transactions for package operations. The shipment
	// repository backs the owning-shipment state checks.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
		ShipmentRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// MovementUoW manages transactions for warehouse entry and exit
	// registration, which touch movements, shipments and warehouse occupancy
	// atomically.
	MovementUoW interface {
		TxManager
		MovementRepoFactory
		ShipmentRepoFactory
		WarehouseRepoFactory
	}

	// MovementUoWFactory creates new movement unit of work instances.
	MovementUoWFactory interface {
		Create() MovementUoW
	}
)
