package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAircraftType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"737-7H4", "B737-700"},
		{"737-800", "B737-800"},
		{"737-8AS", "B737-800"},
		{"737-7M8", "B737-MAX7"},
		{"737-8MX", "B737-MAX8"},
		{"737-3H4", "B737-300"},
		{"737-5Y0", "B737-500"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeAircraftType(tc.raw), "raw %q", tc.raw)
	}
}

func TestNormalizeAircraftTypePassthrough(t *testing.T) {
	assert.Equal(t, "UNKNOWN-1", NormalizeAircraftType("UNKNOWN-1"))
	assert.Equal(t, "A320", NormalizeAircraftType(" A320 "))
}

func TestNormalizeAircraftTypeBlank(t *testing.T) {
	assert.Empty(t, NormalizeAircraftType(""))
	assert.Empty(t, NormalizeAircraftType("   "))
}
