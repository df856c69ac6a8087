package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a postal address used for shipping and billing.
// It is an immutable value object created through NewAddress.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string

	isConstructed bool
}

// NewAddress creates an Address with validation. Street, city, postal code,
// and country are required; state is optional since not every country has one.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("postalCode")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		street:        street,
		city:          city,
		state:         state,
		postalCode:    postalCode,
		country:       country,
		isConstructed: true,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the optional state or province.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}

// Validate checks the address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}
