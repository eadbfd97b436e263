package pooling_test

import (
	"context"
	"testing"

	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/repository"
	"github.com/mhaugsand/fueleu/internal/repository/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPoolingService_CreatePool(t *testing.T) {
	ctx := context.Background()
	pools := &mocks.PoolRepository{}
	pools.On("Create", ctx, mock.Anything).Return(nil)

	svc := pooling.NewService(pools, &mocks.MemberRepository{}, zerolog.Nop())
	p, err := svc.CreatePool(ctx, "European Shipping Alliance")
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "European Shipping Alliance", p.PoolName)
	pools.AssertExpectations(t)
}

func TestPoolingService_AddMember_PoolMissing(t *testing.T) {
	ctx := context.Background()
	pools := &mocks.PoolRepository{}
	pools.On("Get", ctx, "ghost").Return(nil, repository.ErrNotFound)
	members := &mocks.MemberRepository{}

	svc := pooling.NewService(pools, members, zerolog.Nop())
	_, err := svc.AddMember(ctx, pooling.MemberCreateRequest{
		PoolID:         "ghost",
		VesselName:     "Atlantic Star",
		ContributionCb: 8500,
	})
	require.ErrorIs(t, err, pooling.ErrPoolNotFound)
	members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPoolingService_AddMember(t *testing.T) {
	ctx := context.Background()
	pools := &mocks.PoolRepository{}
	pools.On("Get", ctx, "p1").Return(&pooling.Pool{ID: "p1"}, nil)
	members := &mocks.MemberRepository{}
	members.On("Create", ctx, mock.MatchedBy(func(m *pooling.Member) bool {
		return m.PoolID == "p1" && m.ContributionCb == -4500.0
	})).Return(nil)

	svc := pooling.NewService(pools, members, zerolog.Nop())
	m, err := svc.AddMember(ctx, pooling.MemberCreateRequest{
		PoolID:         "p1",
		VesselName:     "Ocean Crown",
		ContributionCb: -4500.0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	members.AssertExpectations(t)
}

func TestPoolingService_Summary(t *testing.T) {
	ctx := context.Background()
	pools := &mocks.PoolRepository{}
	pools.On("Get", ctx, "p1").Return(&pooling.Pool{ID: "p1", PoolName: "European Shipping Alliance"}, nil)
	members := &mocks.MemberRepository{}
	members.On("ListByPool", ctx, "p1").Return([]pooling.Member{
		{ID: "m1", PoolID: "p1", VesselName: "Atlantic Star", ContributionCb: 8500.0},
		{ID: "m2", PoolID: "p1", VesselName: "Nordic Explorer", ContributionCb: 6200.5},
		{ID: "m3", PoolID: "p1", VesselName: "Ocean Crown", ContributionCb: -4500.0},
	}, nil)

	svc := pooling.NewService(pools, members, zerolog.Nop())
	summary, err := svc.Summary(ctx, "p1")
	require.NoError(t, err)
	require.InDelta(t, 10200.5, summary.TotalCb, 1e-9)
	require.InDelta(t, 3400.1667, summary.AverageCb, 1e-4)
	require.True(t, summary.Compliant)
}

func TestPoolingService_UpdateMember_MovePoolChecked(t *testing.T) {
	ctx := context.Background()
	pools := &mocks.PoolRepository{}
	pools.On("Get", ctx, "p2").Return(nil, repository.ErrNotFound)
	members := &mocks.MemberRepository{}
	members.On("Get", ctx, "m1").Return(&pooling.Member{ID: "m1", PoolID: "p1"}, nil)

	svc := pooling.NewService(pools, members, zerolog.Nop())
	target := "p2"
	_, err := svc.UpdateMember(ctx, "m1", pooling.MemberUpdatePatch{PoolID: &target})
	require.ErrorIs(t, err, pooling.ErrPoolNotFound)
	members.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPoolingService_UpdateMember_EmptyPatch(t *testing.T) {
	svc := pooling.NewService(&mocks.PoolRepository{}, &mocks.MemberRepository{}, zerolog.Nop())
	_, err := svc.UpdateMember(context.Background(), "m1", pooling.MemberUpdatePatch{})
	require.ErrorIs(t, err, pooling.ErrNoUpdates)
}

func TestPoolingService_DeletePool_ReportsMembersRemoved(t *testing.T) {
	ctx := context.Background()
	pools := &mocks.PoolRepository{}
	pools.On("Get", ctx, "p1").Return(&pooling.Pool{ID: "p1"}, nil)
	pools.On("Delete", ctx, "p1").Return(3, nil)

	svc := pooling.NewService(pools, &mocks.MemberRepository{}, zerolog.Nop())
	p, removed, err := svc.DeletePool(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)
	require.Equal(t, 3, removed)
}

func TestPoolingService_GetMember_NotFound(t *testing.T) {
	ctx := context.Background()
	members := &mocks.MemberRepository{}
	members.On("Get", ctx, "ghost").Return(nil, repository.ErrNotFound)

	svc := pooling.NewService(&mocks.PoolRepository{}, members, zerolog.Nop())
	_, err := svc.GetMember(ctx, "ghost")
	require.ErrorIs(t, err, pooling.ErrMemberNotFound)
}
