// Package address contains the address aggregate. Field rules (street and
// city bounds, the closed department set, optional coordinate pairs) live
// here; the exactly-one-default-per-(customer,type) protocol spans several
// records and is driven by the application service through the MarkDefault
// and UnmarkDefault transitions.
package address

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minStreetLength    = 5
	maxStreetLength    = 200
	minCityLength      = 2
	maxCityLength      = 100
	maxZoneLength      = 50
	maxPostalLength    = 20
	maxReferenceLength = 200
	maxAliasLength     = 50
	maxContactName     = 100
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a pickup or delivery location owned by a customer.
type Address struct {
	id           kernel.UUID
	customerID   kernel.UUID
	street       string
	city         string
	department   kernel.Department
	zone         string
	postalCode   string
	reference    string
	alias        string
	addressType  Type
	isDefault    bool
	isActive     bool
	location     *kernel.GeoPoint
	contactName  string
	contactPhone string
	createdAt    time.Time

	isConstructed bool
}

// NewAddress creates a validated active address. The default flag carries the
// caller's request; whether it sticks is decided by the default-selection
// protocol in the service layer.
func NewAddress(
	id, customerID kernel.UUID,
	street, city string,
	department kernel.Department,
	zone, postalCode, reference, alias string,
	addressType Type,
	isDefault bool,
	location *kernel.GeoPoint,
	contactName, contactPhone string,
) (*Address, error) {
	a := &Address{
		isDefault:     isDefault,
		isActive:      true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setStreet(street),
		a.setCity(city),
		a.setDepartment(department),
		a.setZone(zone),
		a.setPostalCode(postalCode),
		a.setReference(reference),
		a.setAlias(alias),
		a.setType(addressType),
		a.setLocation(location),
		a.setContactName(contactName),
		a.setContactPhone(contactPhone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an address from persistence, including its
// stored default/active flags and creation time.
func RestoreAddress(
	id, customerID kernel.UUID,
	street, city string,
	department kernel.Department,
	zone, postalCode, reference, alias string,
	addressType Type,
	isDefault, isActive bool,
	location *kernel.GeoPoint,
	contactName, contactPhone string,
	createdAt time.Time,
) (*Address, error) {
	a, err := NewAddress(id, customerID, street, city, department,
		zone, postalCode, reference, alias, addressType, isDefault,
		location, contactName, contactPhone)
	if err != nil {
		return nil, err
	}

	a.isActive = isActive
	a.createdAt = createdAt
	return a, nil
}

// Validate ensures the address was produced by a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// IsEqual compares addresses by identity.
func (a *Address) IsEqual(other *Address) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// CustomerID returns the owning customer.
func (a *Address) CustomerID() kernel.UUID { return a.customerID }

// Street returns the street line.
func (a *Address) Street() string { return a.street }

// City returns the city name.
func (a *Address) City() string { return a.city }

// Department returns the Bolivian department.
func (a *Address) Department() kernel.Department { return a.department }

// Zone returns the optional zone.
func (a *Address) Zone() string { return a.zone }

// PostalCode returns the optional postal code.
func (a *Address) PostalCode() string { return a.postalCode }

// Reference returns the optional delivery reference.
func (a *Address) Reference() string { return a.reference }

// Alias returns the optional short label.
func (a *Address) Alias() string { return a.alias }

// Type returns whether this is a pickup or delivery address.
func (a *Address) Type() Type { return a.addressType }

// IsDefault reports whether this is the default address for its (customer, type).
func (a *Address) IsDefault() bool { return a.isDefault }

// IsActive reports whether the address can still be used.
func (a *Address) IsActive() bool { return a.isActive }

// Location returns the optional coordinates, nil when none were captured.
func (a *Address) Location() *kernel.GeoPoint { return a.location }

// ContactName returns the optional on-site contact.
func (a *Address) ContactName() string { return a.contactName }

// ContactPhone returns the optional on-site contact phone.
func (a *Address) ContactPhone() string { return a.contactPhone }

// CreatedAt returns when the address was registered.
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// Update re-validates and applies new field values, leaving identity, the
// owning customer, the default flag and the active flag untouched.
func (a *Address) Update(
	street, city string,
	department kernel.Department,
	zone, postalCode, reference, alias string,
	addressType Type,
	location *kernel.GeoPoint,
	contactName, contactPhone string,
) error {
	updated := *a
	if err := errors.Join(
		updated.setStreet(street),
		updated.setCity(city),
		updated.setDepartment(department),
		updated.setZone(zone),
		updated.setPostalCode(postalCode),
		updated.setReference(reference),
		updated.setAlias(alias),
		updated.setType(addressType),
		updated.setLocation(location),
		updated.setContactName(contactName),
		updated.setContactPhone(contactPhone),
	); err != nil {
		return err
	}

	*a = updated
	return nil
}

// MarkDefault flags this address as the default for its (customer, type).
// Only active addresses can be promoted.
func (a *Address) MarkDefault() error {
	if !a.isActive {
		return errs.NewBusinessRuleError("an inactive address cannot be the default")
	}
	a.isDefault = true
	return nil
}

// UnmarkDefault removes the default flag. The service layer guarantees the
// (customer, type) pair is never left without a default while it still has
// active addresses.
func (a *Address) UnmarkDefault() {
	a.isDefault = false
}

// Deactivate takes the address out of use.
func (a *Address) Deactivate() {
	a.isActive = false
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	a.customerID = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if len(street) < minStreetLength || len(street) > maxStreetLength {
		return errs.NewValueIsOutOfRangeError("street length", len(street), minStreetLength, maxStreetLength)
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) < minCityLength || len(city) > maxCityLength {
		return errs.NewValueIsOutOfRangeError("city length", len(city), minCityLength, maxCityLength)
	}
	a.city = city
	return nil
}

func (a *Address) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	a.department = department
	return nil
}

func (a *Address) setZone(zone string) error {
	if len(zone) > maxZoneLength {
		return errs.NewValueIsOutOfRangeError("zone length", len(zone), 0, maxZoneLength)
	}
	a.zone = zone
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if len(postalCode) > maxPostalLength {
		return errs.NewValueIsOutOfRangeError("postalCode length", len(postalCode), 0, maxPostalLength)
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setReference(reference string) error {
	if len(reference) > maxReferenceLength {
		return errs.NewValueIsOutOfRangeError("reference length", len(reference), 0, maxReferenceLength)
	}
	a.reference = reference
	return nil
}

func (a *Address) setAlias(alias string) error {
	if len(alias) > maxAliasLength {
		return errs.NewValueIsOutOfRangeError("alias length", len(alias), 0, maxAliasLength)
	}
	a.alias = alias
	return nil
}

func (a *Address) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.addressType = t
	return nil
}

func (a *Address) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		a.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	point := *location
	a.location = &point
	return nil
}

func (a *Address) setContactName(name string) error {
	if len(name) > maxContactName {
		return errs.NewValueIsOutOfRangeError("contactName length", len(name), 0, maxContactName)
	}
	a.contactName = name
	return nil
}

func (a *Address) setContactPhone(phone string) error {
	if err := kernel.ValidateOptionalPhone("contactPhone", phone); err != nil {
		return err
	}
	a.contactPhone = phone
	return nil
}
