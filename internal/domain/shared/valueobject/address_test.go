package valueobject

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name        string
		line1       string
		city        string
		state       string
		country     string
		opts        []AddressOption
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid address with required fields",
			line1:   "500 Market Street",
			city:    "San Francisco",
			state:   "CA",
			country: "USA",
		},
		{
			name:    "valid address without state",
			line1:   "12 Baker Street",
			city:    "London",
			country: "UK",
		},
		{
			name:    "valid address with postal code and line2",
			line1:   "1 Infinite Loop",
			city:    "Cupertino",
			state:   "CA",
			country: "USA",
			opts:    []AddressOption{WithLine2("Suite 400"), WithPostalCode("95014")},
		},
		{
			name:        "missing line1",
			line1:       "",
			city:        "Austin",
			state:       "TX",
			country:     "USA",
			wantErr:     true,
			errContains: "address line is required",
		},
		{
			name:        "missing city",
			line1:       "700 Congress Ave",
			city:        "",
			country:     "USA",
			wantErr:     true,
			errContains: "city is required",
		},
		{
			name:        "missing country",
			line1:       "700 Congress Ave",
			city:        "Austin",
			country:     "",
			wantErr:     true,
			errContains: "country is required",
		},
		{
			name:        "line1 too long",
			line1:       strings.Repeat("a", 201),
			city:        "Austin",
			country:     "USA",
			wantErr:     true,
			errContains: "too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := NewAddress(tt.line1, tt.city, tt.state, tt.country, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.line1, addr.Line1())
			assert.Equal(t, tt.city, addr.City())
			assert.Equal(t, tt.country, addr.Country())
		})
	}
}

func TestAddressTrimsWhitespace(t *testing.T) {
	addr, err := NewAddress("  500 Market Street ", " San Francisco ", " CA ", " USA ")
	require.NoError(t, err)
	assert.Equal(t, "500 Market Street", addr.Line1())
	assert.Equal(t, "San Francisco", addr.City())
	assert.Equal(t, "CA", addr.State())
	assert.Equal(t, "USA", addr.Country())
}

func TestAddressString(t *testing.T) {
	addr, err := NewAddress("500 Market Street", "San Francisco", "CA", "USA",
		WithPostalCode("94105"))
	require.NoError(t, err)
	assert.Equal(t, "500 Market Street, San Francisco, CA, 94105, USA", addr.String())
}

func TestAddressEquals(t *testing.T) {
	a1, err := NewAddress("500 Market Street", "San Francisco", "CA", "USA")
	require.NoError(t, err)
	a2, err := NewAddress("500 Market Street", "San Francisco", "CA", "USA")
	require.NoError(t, err)
	a3, err := NewAddress("501 Market Street", "San Francisco", "CA", "USA")
	require.NoError(t, err)

	assert.True(t, a1.Equals(a2))
	assert.False(t, a1.Equals(a3))
}

func TestAddressIsZero(t *testing.T) {
	var zero Address
	assert.True(t, zero.IsZero())

	addr, err := NewAddress("500 Market Street", "San Francisco", "CA", "USA")
	require.NoError(t, err)
	assert.False(t, addr.IsZero())
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr, err := NewAddress("1 Infinite Loop", "Cupertino", "CA", "USA",
		WithLine2("Suite 400"), WithPostalCode("95014"))
	require.NoError(t, err)

	data, err := json.Marshal(addr)
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, addr.Equals(decoded))
}

func TestAddressScanValue(t *testing.T) {
	addr, err := NewAddress("500 Market Street", "San Francisco", "CA", "USA")
	require.NoError(t, err)

	v, err := addr.Value()
	require.NoError(t, err)

	var scanned Address
	require.NoError(t, scanned.Scan(v))
	assert.True(t, addr.Equals(scanned))

	t.Run("scan nil resets", func(t *testing.T) {
		require.NoError(t, scanned.Scan(nil))
		assert.True(t, scanned.IsZero())
	})
}
