// AngelaMos | 2026
// validate_test.go

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOrdered(t *testing.T) {
	earlier := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, DateOrdered(&earlier, &later, "start", "end"))
	assert.NoError(t, DateOrdered(&earlier, &earlier, "start", "end"))
	assert.NoError(t, DateOrdered(nil, &later, "start", "end"))
	assert.NoError(t, DateOrdered(&earlier, nil, "start", "end"))
	assert.NoError(t, DateOrdered(nil, nil, "start", "end"))

	err := DateOrdered(&later, &earlier, "start_date", "end_date")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "start_date")
	assert.Contains(t, err.Error(), "end_date")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "farmer@example.com", NormalizeEmail("  Farmer@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "PLOT-A1", NormalizeCode(" plot-a1 "))
	assert.Equal(t, "USD", NormalizeCode("usd"))
}

func TestInRange(t *testing.T) {
	ph := 6.5
	assert.NoError(t, InRange(&ph, 0, 14, "soil_ph"))

	low := -0.1
	err := InRange(&low, 0, 14, "soil_ph")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	high := 14.5
	assert.ErrorIs(t, InRange(&high, 0, 14, "soil_ph"), ErrInvalidInput)

	assert.NoError(t, InRange(nil, 0, 14, "soil_ph"))
}

func TestNonNegative(t *testing.T) {
	qty := 3.0
	assert.NoError(t, NonNegative(&qty, "quantity"))

	zero := 0.0
	assert.NoError(t, NonNegative(&zero, "quantity"))

	neg := -1.0
	assert.ErrorIs(t, NonNegative(&neg, "quantity"), ErrInvalidInput)

	assert.NoError(t, NonNegative(nil, "quantity"))
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("HECTARE", "area_unit", "HECTARE", "ACRE"))

	err := OneOf("FURLONG", "area_unit", "HECTARE", "ACRE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "HECTARE, ACRE")
}
