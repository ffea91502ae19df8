// Package driver contains the driver aggregate: personal data, license
// dates, duty status and the driver side of the driver↔vehicle assignment
// pointer. The symmetric protocol that keeps that pointer consistent with
// the vehicle side lives in the domain assignment service.
package driver

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	minFullNameLength = 3
	maxFullNameLength = 100
	minDocumentLength = 5
	maxDocumentLength = 20
	minLicenseLength  = 5
	maxLicenseLength  = 20
	maxCategoryLength = 10
	minimumAgeYears   = 18
)

// ErrDriverIsNotConstructed is returned when a Driver was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is the aggregate root for a delivery driver.
type Driver struct {
	id                kernel.UUID
	fullName          string
	identityDocument  string
	licenseNumber     string
	licenseCategory   string
	licenseIssueDate  time.Time
	licenseExpiryDate time.Time
	phone             string
	email             string
	dateOfBirth       time.Time
	hireDate          time.Time
	yearsOfExperience int
	status            Status
	isActive          bool
	currentVehicleID  *kernel.UUID
	totalDeliveries   int

	isConstructed bool
}

// NewDriver creates a validated driver in Available status with zero
// completed deliveries. The license must not be expired at creation time.
func NewDriver(
	id kernel.UUID,
	fullName, identityDocument, licenseNumber, licenseCategory string,
	licenseIssueDate, licenseExpiryDate time.Time,
	phone, email string,
	dateOfBirth, hireDate time.Time,
	yearsOfExperience int,
) (*Driver, error) {
	d := &Driver{
		status:        Available,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setFullName(fullName),
		d.setIdentityDocument(identityDocument),
		d.setLicenseNumber(licenseNumber),
		d.setLicenseCategory(licenseCategory),
		d.setLicenseDates(licenseIssueDate, licenseExpiryDate),
		d.setPhone(phone),
		d.setEmail(email),
		d.setDateOfBirth(dateOfBirth),
		d.setHireDate(hireDate),
		d.setYearsOfExperience(yearsOfExperience),
	); err != nil {
		return nil, err
	}

	if d.HasExpiredLicense(time.Now().UTC()) {
		return nil, errs.NewBusinessRuleError("driver license is already expired")
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence, including duty
// status, activity flag, vehicle assignment and delivery count. An expired
// license is legal here; only creation rejects it.
func RestoreDriver(
	id kernel.UUID,
	fullName, identityDocument, licenseNumber, licenseCategory string,
	licenseIssueDate, licenseExpiryDate time.Time,
	phone, email string,
	dateOfBirth, hireDate time.Time,
	yearsOfExperience int,
	status Status,
	isActive bool,
	currentVehicleID *kernel.UUID,
	totalDeliveries int,
) (*Driver, error) {
	d := &Driver{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setFullName(fullName),
		d.setIdentityDocument(identityDocument),
		d.setLicenseNumber(licenseNumber),
		d.setLicenseCategory(licenseCategory),
		d.setLicenseDates(licenseIssueDate, licenseExpiryDate),
		d.setPhone(phone),
		d.setEmail(email),
		d.setDateOfBirth(dateOfBirth),
		d.setHireDate(hireDate),
		d.setYearsOfExperience(yearsOfExperience),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if currentVehicleID != nil {
		if err := currentVehicleID.Validate(); err != nil {
			return nil, err
		}
		vehicleID := *currentVehicleID
		d.currentVehicleID = &vehicleID
	}
	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("totalDeliveries")
	}

	d.status = status
	d.isActive = isActive
	d.totalDeliveries = totalDeliveries
	return d, nil
}

// Validate ensures the driver was produced by a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// FullName returns the driver's full name.
func (d *Driver) FullName() string { return d.fullName }

// IdentityDocument returns the unique identity document number.
func (d *Driver) IdentityDocument() string { return d.identityDocument }

// LicenseNumber returns the unique license number.
func (d *Driver) LicenseNumber() string { return d.licenseNumber }

// LicenseCategory returns the license category code.
func (d *Driver) LicenseCategory() string { return d.licenseCategory }

// LicenseIssueDate returns when the license was issued.
func (d *Driver) LicenseIssueDate() time.Time { return d.licenseIssueDate }

// LicenseExpiryDate returns when the license expires.
func (d *Driver) LicenseExpiryDate() time.Time { return d.licenseExpiryDate }

// Phone returns the driver contact phone.
func (d *Driver) Phone() string { return d.phone }

// Email returns the driver contact email.
func (d *Driver) Email() string { return d.email }

// DateOfBirth returns the driver's birth date.
func (d *Driver) DateOfBirth() time.Time { return d.dateOfBirth }

// HireDate returns when the driver was hired.
func (d *Driver) HireDate() time.Time { return d.hireDate }

// YearsOfExperience returns the declared driving experience.
func (d *Driver) YearsOfExperience() int { return d.yearsOfExperience }

// Status returns the current duty status.
func (d *Driver) Status() Status { return d.status }

// IsActive reports whether the driver is still employed.
func (d *Driver) IsActive() bool { return d.isActive }

// CurrentVehicleID returns the assigned vehicle, nil when unassigned.
func (d *Driver) CurrentVehicleID() *kernel.UUID { return d.currentVehicleID }

// TotalDeliveries returns the completed delivery count.
func (d *Driver) TotalDeliveries() int { return d.totalDeliveries }

// HasExpiredLicense reports whether the license has expired as of the given instant.
func (d *Driver) HasExpiredLicense(asOf time.Time) bool {
	return !d.licenseExpiryDate.After(asOf)
}

// Update re-validates and applies new personal and license details,
// leaving status, assignment and delivery count untouched. The caller is
// responsible for cross-record uniqueness checks.
func (d *Driver) Update(
	fullName, identityDocument, licenseNumber, licenseCategory string,
	licenseIssueDate, licenseExpiryDate time.Time,
	phone, email string,
	dateOfBirth, hireDate time.Time,
	yearsOfExperience int,
) error {
	updated := *d
	if err := errors.Join(
		updated.setFullName(fullName),
		updated.setIdentityDocument(identityDocument),
		updated.setLicenseNumber(licenseNumber),
		updated.setLicenseCategory(licenseCategory),
		updated.setLicenseDates(licenseIssueDate, licenseExpiryDate),
		updated.setPhone(phone),
		updated.setEmail(email),
		updated.setDateOfBirth(dateOfBirth),
		updated.setHireDate(hireDate),
		updated.setYearsOfExperience(yearsOfExperience),
	); err != nil {
		return err
	}

	if updated.HasExpiredLicense(time.Now().UTC()) {
		return errs.NewBusinessRuleError("driver license is already expired")
	}

	*d = updated
	return nil
}

// AssignVehicle records both the vehicle pointer and the OnRoute status.
// The assignment service is the only caller; it checks the counterpart
// vehicle before invoking this transition.
func (d *Driver) AssignVehicle(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if !d.isActive {
		return errs.NewBusinessRuleError("an inactive driver cannot be assigned a vehicle")
	}
	if d.status != Available {
		return errs.NewBusinessRuleErrorf("driver in status %s cannot be assigned a vehicle", d.status)
	}
	if d.currentVehicleID != nil {
		return errs.NewBusinessRuleError("driver already has an assigned vehicle")
	}

	d.currentVehicleID = &vehicleID
	d.status = OnRoute
	return nil
}

// UnassignVehicle clears the vehicle pointer and returns the driver to Available.
func (d *Driver) UnassignVehicle() error {
	if d.currentVehicleID == nil {
		return errs.NewBusinessRuleError("driver has no assigned vehicle")
	}

	d.currentVehicleID = nil
	d.status = Available
	return nil
}

// MarkOffDuty moves the driver to OffDuty. Used by the license-expiry sweep.
func (d *Driver) MarkOffDuty() {
	d.status = OffDuty
}

// Deactivate ends the driver's employment.
func (d *Driver) Deactivate() {
	d.isActive = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	if len(fullName) < minFullNameLength || len(fullName) > maxFullNameLength {
		return errs.NewValueIsOutOfRangeError("fullName length", len(fullName), minFullNameLength, maxFullNameLength)
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setIdentityDocument(document string) error {
	if document == "" {
		return errs.NewValueIsRequiredError("identityDocument")
	}
	if len(document) < minDocumentLength || len(document) > maxDocumentLength {
		return errs.NewValueIsOutOfRangeError("identityDocument length", len(document), minDocumentLength, maxDocumentLength)
	}
	d.identityDocument = document
	return nil
}

func (d *Driver) setLicenseNumber(license string) error {
	if license == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	if len(license) < minLicenseLength || len(license) > maxLicenseLength {
		return errs.NewValueIsOutOfRangeError("licenseNumber length", len(license), minLicenseLength, maxLicenseLength)
	}
	d.licenseNumber = license
	return nil
}

func (d *Driver) setLicenseCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("licenseCategory")
	}
	if len(category) > maxCategoryLength {
		return errs.NewValueIsOutOfRangeError("licenseCategory length", len(category), 1, maxCategoryLength)
	}
	d.licenseCategory = category
	return nil
}

func (d *Driver) setLicenseDates(issue, expiry time.Time) error {
	if issue.IsZero() {
		return errs.NewValueIsRequiredError("licenseIssueDate")
	}
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("licenseExpiryDate")
	}
	if !expiry.After(issue) {
		return errs.NewValueIsInvalidErrorWithCause(
			"licenseExpiryDate",
			fmt.Errorf("expiry %s is not after issue %s", expiry.Format(time.DateOnly), issue.Format(time.DateOnly)),
		)
	}
	d.licenseIssueDate = issue
	d.licenseExpiryDate = expiry
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if err := kernel.ValidatePhone("phone", phone); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *Driver) setEmail(email string) error {
	if err := kernel.ValidateEmail("email", email); err != nil {
		return err
	}
	d.email = email
	return nil
}

func (d *Driver) setDateOfBirth(dateOfBirth time.Time) error {
	if dateOfBirth.IsZero() {
		return errs.NewValueIsRequiredError("dateOfBirth")
	}
	if ageAt(dateOfBirth, time.Now().UTC()) < minimumAgeYears {
		return errs.NewBusinessRuleErrorf("driver must be at least %d years old", minimumAgeYears)
	}
	d.dateOfBirth = dateOfBirth
	return nil
}

func (d *Driver) setHireDate(hireDate time.Time) error {
	if hireDate.IsZero() {
		return errs.NewValueIsRequiredError("hireDate")
	}
	if hireDate.After(time.Now().UTC()) {
		return errs.NewValueIsInvalidErrorWithCause("hireDate", errors.New("hire date cannot be in the future"))
	}
	d.hireDate = hireDate
	return nil
}

func (d *Driver) setYearsOfExperience(years int) error {
	if years < 0 {
		return errs.NewValueIsInvalidErrorWithCause("yearsOfExperience", errors.New("experience cannot be negative"))
	}
	d.yearsOfExperience = years
	return nil
}

func ageAt(dateOfBirth, asOf time.Time) int {
	years := asOf.Year() - dateOfBirth.Year()
	anniversary := dateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	return years
}
