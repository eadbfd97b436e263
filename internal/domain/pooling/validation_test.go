package pooling_test

import (
	"encoding/json"
	"testing"

	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/stretchr/testify/require"
)

func TestParsePoolName(t *testing.T) {
	name, verr := pooling.ParsePoolName(map[string]any{"poolName": " European Shipping Alliance "})
	require.Nil(t, verr)
	require.Equal(t, "European Shipping Alliance", name)

	_, verr = pooling.ParsePoolName(map[string]any{})
	require.NotNil(t, verr)
	require.Equal(t, "MISSING_POOL_NAME", verr.Code)

	_, verr = pooling.ParsePoolName(map[string]any{"poolName": "  "})
	require.NotNil(t, verr)
	require.Equal(t, "INVALID_POOL_NAME", verr.Code)
}

func TestParseMemberCreate(t *testing.T) {
	req, verr := pooling.ParseMemberCreate(map[string]any{
		"poolId":         "p1",
		"vesselName":     "Ocean Crown",
		"contributionCb": json.Number("-4500.0"),
	})
	require.Nil(t, verr)
	require.Equal(t, "p1", req.PoolID)
	require.Equal(t, -4500.0, req.ContributionCb)
}

func TestParseMemberCreate_Codes(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		code   string
	}{
		{"no pool", map[string]any{"vesselName": "A", "contributionCb": json.Number("1")}, "MISSING_POOL_ID"},
		{"bad pool type", map[string]any{"poolId": 12.0, "vesselName": "A"}, "INVALID_POOL_ID_TYPE"},
		{"no vessel", map[string]any{"poolId": "p1", "contributionCb": json.Number("1")}, "INVALID_VESSEL_NAME"},
		{"no contribution", map[string]any{"poolId": "p1", "vesselName": "A"}, "MISSING_CONTRIBUTION_CB"},
		{"bad contribution", map[string]any{"poolId": "p1", "vesselName": "A", "contributionCb": "heaps"}, "INVALID_CONTRIBUTION_CB_TYPE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, verr := pooling.ParseMemberCreate(tc.fields)
			require.NotNil(t, verr)
			require.Equal(t, tc.code, verr.Code)
		})
	}
}

func TestParseMemberUpdate(t *testing.T) {
	patch, verr := pooling.ParseMemberUpdate(map[string]any{
		"contributionCb": json.Number("9500.0"),
	})
	require.Nil(t, verr)
	require.Nil(t, patch.PoolID)
	require.NotNil(t, patch.ContributionCb)

	_, verr = pooling.ParseMemberUpdate(map[string]any{"vesselName": " "})
	require.NotNil(t, verr)
	require.Equal(t, "INVALID_VESSEL_NAME", verr.Code)

	empty, verr := pooling.ParseMemberUpdate(map[string]any{})
	require.Nil(t, verr)
	require.True(t, empty.Empty())
}
