package kernel

import (
	"fmt"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a value object representing a postal address, used both as the
// shipper (origin) address configured for the warehouse and as the delivery
// destination stored on an order. Carrier rate quotes and label purchases
// always carry a pair of these.
type Address struct {
	line1      string
	line2      string
	city       string
	region     string
	postalCode string
	country    string
}

// NewAddress creates a validated Address. Line1, city, postal code, and the
// two-letter ISO country code are required; line2 and region are optional.
func NewAddress(line1, line2, city, region, postalCode, country string) (Address, error) {
	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("line1")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("postalCode")
	}
	if len(country) != 2 {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("country",
			fmt.Errorf("%q is not a two-letter ISO code", country))
	}

	return Address{
		line1:      line1,
		line2:      line2,
		city:       city,
		region:     region,
		postalCode: postalCode,
		country:    country,
	}, nil
}

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line.
func (a Address) Line2() string { return a.line2 }

// City returns the city name.
func (a Address) City() string { return a.city }

// Region returns the optional state or region.
func (a Address) Region() string { return a.region }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the two-letter ISO country code.
func (a Address) Country() string { return a.country }

// Validate checks if the Address is properly constructed.
// Returns ErrAddressIsNotConstructed for a zero value.
func (a Address) Validate() error {
	if a.line1 == "" || a.city == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
