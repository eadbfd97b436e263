package validate_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/mhaugsand/fueleu/internal/validate"
	"github.com/stretchr/testify/require"
)

func TestString_TrimsAndRejectsEmpty(t *testing.T) {
	s, ok := validate.String("  Atlantic Star  ")
	require.True(t, ok)
	require.Equal(t, "Atlantic Star", s)

	_, ok = validate.String("   ")
	require.False(t, ok)

	_, ok = validate.String(42.0)
	require.False(t, ok)

	_, ok = validate.String(nil)
	require.False(t, ok)
}

func TestFloat_AcceptsNumberFormsRejectsGarbage(t *testing.T) {
	f, ok := validate.Float(float64(12.5))
	require.True(t, ok)
	require.Equal(t, 12.5, f)

	f, ok = validate.Float(json.Number("-4500.0"))
	require.True(t, ok)
	require.Equal(t, -4500.0, f)

	f, ok = validate.Float(" 75.33 ")
	require.True(t, ok)
	require.Equal(t, 75.33, f)

	_, ok = validate.Float("twelve")
	require.False(t, ok)

	_, ok = validate.Float(math.NaN())
	require.False(t, ok)

	_, ok = validate.Float(math.Inf(1))
	require.False(t, ok)

	_, ok = validate.Float(true)
	require.False(t, ok)
}

func TestInt_RejectsFractions(t *testing.T) {
	n, ok := validate.Int(json.Number("2024"))
	require.True(t, ok)
	require.Equal(t, 2024, n)

	n, ok = validate.Int("2025")
	require.True(t, ok)
	require.Equal(t, 2025, n)

	_, ok = validate.Int(2024.5)
	require.False(t, ok)

	_, ok = validate.Int("20x4")
	require.False(t, ok)
}

func TestError_CarriesFieldAndCode(t *testing.T) {
	err := validate.Missing("vesselName", "MISSING_VESSEL_NAME")
	require.Equal(t, "vesselName", err.Field)
	require.Equal(t, "MISSING_VESSEL_NAME", err.Code)
	require.EqualError(t, err, "vesselName is required")

	err = validate.Invalid("year", "INVALID_YEAR", "year must be a valid integer")
	require.Equal(t, "INVALID_YEAR", err.Code)
}
