package pooling_test

import (
	"testing"

	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/stretchr/testify/require"
)

func members(contributions ...float64) []pooling.Member {
	out := make([]pooling.Member, len(contributions))
	for i, c := range contributions {
		out[i] = pooling.Member{ID: string(rune('a' + i)), ContributionCb: c}
	}
	return out
}

func TestTotal_EmptyIsZero(t *testing.T) {
	require.Equal(t, 0.0, pooling.Total(nil))
	require.Equal(t, 0.0, pooling.Total([]pooling.Member{}))
}

func TestAverage_EmptyIsZero(t *testing.T) {
	require.Equal(t, 0.0, pooling.Average(nil))
}

func TestTotal_MixedSigns(t *testing.T) {
	require.InDelta(t, 10200.5, pooling.Total(members(8500.0, 6200.5, -4500.0)), 1e-9)
	require.InDelta(t, -3000, pooling.Total(members(-1000, -2000)), 1e-9)
}

func TestAverage(t *testing.T) {
	require.InDelta(t, 3400.1667, pooling.Average(members(8500.0, 6200.5, -4500.0)), 1e-4)
}

func TestStatusDelta(t *testing.T) {
	deficit := pooling.Member{ContributionCb: -4500}
	surplus := pooling.Member{ContributionCb: 8500}

	require.Equal(t, pooling.OutcomeBecameCompliant, pooling.StatusDelta(deficit, 3400.17))
	require.Equal(t, pooling.OutcomeUnchanged, pooling.StatusDelta(surplus, 3400.17))
	require.Equal(t, pooling.OutcomeBecameNonCompliant, pooling.StatusDelta(surplus, -12.5))
	require.Equal(t, pooling.OutcomeUnchanged, pooling.StatusDelta(deficit, -12.5))
}

func TestSummarize(t *testing.T) {
	pool := pooling.Pool{ID: "p1", PoolName: "European Shipping Alliance"}
	ms := members(8500.0, 6200.5, -4500.0)

	summary := pooling.Summarize(pool, ms)
	require.Equal(t, 3, summary.MemberCount)
	require.InDelta(t, 10200.5, summary.TotalCb, 1e-9)
	require.InDelta(t, 3400.1667, summary.AverageCb, 1e-4)
	require.True(t, summary.Compliant)
	require.Len(t, summary.Members, 3)

	// The deficit vessel becomes compliant at the pool average; the others
	// stay as they were.
	require.Equal(t, pooling.OutcomeUnchanged, summary.Members[0].Outcome)
	require.Equal(t, pooling.OutcomeUnchanged, summary.Members[1].Outcome)
	require.Equal(t, pooling.OutcomeBecameCompliant, summary.Members[2].Outcome)
	require.False(t, summary.Members[2].Compliant)
	require.InDelta(t, 3400.1667, summary.Members[2].AfterPool, 1e-4)
}

func TestSummarize_EmptyPool(t *testing.T) {
	summary := pooling.Summarize(pooling.Pool{ID: "p1"}, nil)
	require.Equal(t, 0, summary.MemberCount)
	require.Equal(t, 0.0, summary.TotalCb)
	require.Equal(t, 0.0, summary.AverageCb)
	require.True(t, summary.Compliant)
	require.Empty(t, summary.Members)
}
