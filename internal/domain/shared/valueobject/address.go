package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a value object representing a postal address
// It is immutable - all operations return new Address instances
type Address struct {
	line1      string
	line2      string
	city       string
	state      string
	country    string
	postalCode string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithLine2 sets the secondary address line
func WithLine2(line2 string) AddressOption {
	return func(a *Address) {
		a.line2 = strings.TrimSpace(line2)
	}
}

// WithPostalCode sets the postal code for the address
func WithPostalCode(postalCode string) AddressOption {
	return func(a *Address) {
		a.postalCode = strings.TrimSpace(postalCode)
	}
}

// NewAddress creates a new Address with the required fields
// Line1, city, and country are required; state, line2 and postal code are optional
func NewAddress(line1, city, state, country string, opts ...AddressOption) (Address, error) {
	line1 = strings.TrimSpace(line1)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	country = strings.TrimSpace(country)

	if line1 == "" {
		return Address{}, fmt.Errorf("address line is required")
	}
	if len(line1) > 200 {
		return Address{}, fmt.Errorf("address line too long: %d characters", len(line1))
	}
	if city == "" {
		return Address{}, fmt.Errorf("city is required")
	}
	if country == "" {
		return Address{}, fmt.Errorf("country is required")
	}

	addr := Address{
		line1:   line1,
		city:    city,
		state:   state,
		country: country,
	}
	for _, opt := range opts {
		opt(&addr)
	}
	return addr, nil
}

// Line1 returns the primary address line
func (a Address) Line1() string { return a.line1 }

// Line2 returns the secondary address line
func (a Address) Line2() string { return a.line2 }

// City returns the city
func (a Address) City() string { return a.city }

// State returns the state or province
func (a Address) State() string { return a.state }

// Country returns the country
func (a Address) Country() string { return a.country }

// PostalCode returns the postal code
func (a Address) PostalCode() string { return a.postalCode }

// IsZero reports whether the address is empty
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equals checks whether two addresses are identical
func (a Address) Equals(other Address) bool {
	return a == other
}

// String returns the single-line representation of the address
func (a Address) String() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.line1, a.line2, a.city, a.state, a.postalCode, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// addressJSON is the JSON representation of Address
type addressJSON struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Line1:      a.line1,
		Line2:      a.line2,
		City:       a.city,
		State:      a.state,
		Country:    a.country,
		PostalCode: a.postalCode,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Address) UnmarshalJSON(data []byte) error {
	var j addressJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	a.line1 = j.Line1
	a.line2 = j.Line2
	a.city = j.City
	a.state = j.State
	a.country = j.Country
	a.postalCode = j.PostalCode
	return nil
}

// Value implements driver.Valuer so Address can be stored as JSON
func (a Address) Value() (driver.Value, error) {
	if a.IsZero() {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for reading Address back from the database
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Address", value)
	}
	if len(data) == 0 {
		*a = Address{}
		return nil
	}
	return json.Unmarshal(data, a)
}
