package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// earthRadiusMeters is the mean Earth radius used for great-circle distance
const earthRadiusMeters = 6371000.0

// GeoPoint is a value object representing a geographic coordinate
// It is immutable - construct a new GeoPoint instead of mutating
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a GeoPoint after validating the coordinate ranges
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < -90 || latitude > 90 {
		return GeoPoint{}, fmt.Errorf("latitude out of range: %f", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return GeoPoint{}, fmt.Errorf("longitude out of range: %f", longitude)
	}
	return GeoPoint{latitude: latitude, longitude: longitude}, nil
}

// NewGeoPointFromDecimal creates a GeoPoint from decimal coordinates
func NewGeoPointFromDecimal(latitude, longitude decimal.Decimal) (GeoPoint, error) {
	lat, _ := latitude.Float64()
	lon, _ := longitude.Float64()
	return NewGeoPoint(lat, lon)
}

// Latitude returns the latitude in degrees
func (g GeoPoint) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees
func (g GeoPoint) Longitude() float64 {
	return g.longitude
}

// IsZero reports whether the point is the zero coordinate
func (g GeoPoint) IsZero() bool {
	return g.latitude == 0 && g.longitude == 0
}

// DistanceTo returns the great-circle distance to another point in meters
// using the haversine formula
func (g GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := g.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - g.latitude) * math.Pi / 180
	dLon := (other.longitude - g.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// WithinRadius reports whether another point lies within radiusMeters of this point
func (g GeoPoint) WithinRadius(other GeoPoint, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		return false
	}
	return g.DistanceTo(other) <= radiusMeters
}

// Equals checks coordinate equality
func (g GeoPoint) Equals(other GeoPoint) bool {
	return g.latitude == other.latitude && g.longitude == other.longitude
}

// String returns a "lat,lon" representation
func (g GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", g.latitude, g.longitude)
}

// geoPointJSON is the JSON representation of GeoPoint
type geoPointJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarshalJSON implements json.Marshaler
func (g GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoPointJSON{Latitude: g.latitude, Longitude: g.longitude})
}

// UnmarshalJSON implements json.Unmarshaler
func (g *GeoPoint) UnmarshalJSON(data []byte) error {
	var j geoPointJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return errors.New("invalid geo point JSON")
	}
	p, err := NewGeoPoint(j.Latitude, j.Longitude)
	if err != nil {
		return err
	}
	*g = p
	return nil
}

// Value implements driver.Valuer so GeoPoint can be stored as JSON
func (g GeoPoint) Value() (driver.Value, error) {
	if g.IsZero() {
		return nil, nil
	}
	return json.Marshal(g)
}

// Scan implements sql.Scanner for reading GeoPoint back from the database
func (g *GeoPoint) Scan(value interface{}) error {
	if value == nil {
		*g = GeoPoint{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into GeoPoint", value)
	}
	if len(data) == 0 {
		*g = GeoPoint{}
		return nil
	}
	return json.Unmarshal(data, g)
}
