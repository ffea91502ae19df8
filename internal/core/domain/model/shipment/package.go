package shipment

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minDescriptionLength = 3
	maxDescriptionLength = 200
	maxPackageWeightKg   = 100.0
)

// ErrPackageIsNotConstructed is returned when a Package was not created
// through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is a good carried by a shipment. The owning shipment's lifecycle
// gates every mutation: nothing changes once the shipment is Delivered.
type Package struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	description string
	weightKg    float64
	price       float64

	isConstructed bool
}

// NewPackage creates a validated package for a shipment.
func NewPackage(id, shipmentID kernel.UUID, description string, weightKg, price float64) (*Package, error) {
	p := &Package{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setDescription(description),
		p.setWeight(weightKg),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence.
func RestorePackage(id, shipmentID kernel.UUID, description string, weightKg, price float64) (*Package, error) {
	return NewPackage(id, shipmentID, description, weightKg, price)
}

// Validate ensures the package was produced by a constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package identifier.
func (p *Package) ID() kernel.UUID { return p.id }

// ShipmentID returns the owning shipment.
func (p *Package) ShipmentID() kernel.UUID { return p.shipmentID }

// Description returns what the package contains.
func (p *Package) Description() string { return p.description }

// WeightKg returns the package weight.
func (p *Package) WeightKg() float64 { return p.weightKg }

// Price returns the declared value.
func (p *Package) Price() float64 { return p.price }

// Update re-validates and applies new contents.
func (p *Package) Update(description string, weightKg, price float64) error {
	updated := *p
	if err := errors.Join(
		updated.setDescription(description),
		updated.setWeight(weightKg),
		updated.setPrice(price),
	); err != nil {
		return err
	}

	*p = updated
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	p.shipmentID = id
	return nil
}

func (p *Package) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) < minDescriptionLength || len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), minDescriptionLength, maxDescriptionLength)
	}
	p.description = description
	return nil
}

func (p *Package) setWeight(weightKg float64) error {
	if weightKg <= 0 || weightKg > maxPackageWeightKg {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, maxPackageWeightKg)
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("price must be greater than 0"))
	}
	p.price = price
	return nil
}
