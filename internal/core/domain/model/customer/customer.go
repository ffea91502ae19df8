// Package customer contains the customer aggregate. A customer owns
// addresses and shipments; its own rules are the name, email and phone
// formats. Email uniqueness and the per-domain cap are cross-record rules
// enforced by the application service.
package customer

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minNameLength = 3
	maxNameLength = 100
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a shipping customer.
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a validated customer with createdAt set to now.
func NewCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	c := &Customer{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, email, phone string, createdAt time.Time) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone)
	if err != nil {
		return nil, err
	}
	c.createdAt = createdAt
	return c, nil
}

// Validate ensures the customer was produced by a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer display name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer contact email.
func (c *Customer) Email() string { return c.email }

// Phone returns the customer contact phone.
func (c *Customer) Phone() string { return c.phone }

// CreatedAt returns when the customer was registered.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Update re-validates and applies new contact details in one step.
// Either every field applies or none does.
func (c *Customer) Update(name, email, phone string) error {
	updated := *c
	if err := errors.Join(
		updated.setName(name),
		updated.setEmail(email),
		updated.setPhone(phone),
	); err != nil {
		return err
	}

	*c = updated
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), minNameLength, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if err := kernel.ValidateEmail("email", email); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if err := kernel.ValidatePhone("phone", phone); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
