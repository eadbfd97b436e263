// Package mocks provides testify mocks for the domain store contracts.
package mocks

import (
	"context"

	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/domain/route"
	"github.com/stretchr/testify/mock"
)

// RouteRepository is a mock for route.Repository.
type RouteRepository struct {
	mock.Mock
}

func (m *RouteRepository) Create(ctx context.Context, rt *route.Route) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *RouteRepository) Get(ctx context.Context, id string) (*route.Route, error) {
	args := m.Called(ctx, id)
	if rt, ok := args.Get(0).(*route.Route); ok {
		return rt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RouteRepository) List(ctx context.Context, opts route.ListOptions) ([]route.Route, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]route.Route); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RouteRepository) Update(ctx context.Context, rt *route.Route) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *RouteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// BankingRepository is a mock for banking.Repository.
type BankingRepository struct {
	mock.Mock
}

func (m *BankingRepository) Create(ctx context.Context, rec *banking.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *BankingRepository) Get(ctx context.Context, id string) (*banking.Record, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*banking.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BankingRepository) List(ctx context.Context, opts banking.ListOptions) ([]banking.Record, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]banking.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BankingRepository) Update(ctx context.Context, rec *banking.Record, expectedVersion int64) error {
	args := m.Called(ctx, rec, expectedVersion)
	return args.Error(0)
}

func (m *BankingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PoolRepository is a mock for pooling.PoolRepository.
type PoolRepository struct {
	mock.Mock
}

func (m *PoolRepository) Create(ctx context.Context, p *pooling.Pool) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PoolRepository) Get(ctx context.Context, id string) (*pooling.Pool, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pooling.Pool); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PoolRepository) List(ctx context.Context, opts pooling.PoolListOptions) ([]pooling.Pool, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]pooling.Pool); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PoolRepository) Update(ctx context.Context, p *pooling.Pool) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PoolRepository) Delete(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

// MemberRepository is a mock for pooling.MemberRepository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) Create(ctx context.Context, mem *pooling.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MemberRepository) Get(ctx context.Context, id string) (*pooling.Member, error) {
	args := m.Called(ctx, id)
	if mem, ok := args.Get(0).(*pooling.Member); ok {
		return mem, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemberRepository) List(ctx context.Context, opts pooling.MemberListOptions) ([]pooling.Member, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]pooling.Member); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemberRepository) ListByPool(ctx context.Context, poolID string) ([]pooling.Member, error) {
	args := m.Called(ctx, poolID)
	if list, ok := args.Get(0).([]pooling.Member); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MemberRepository) Update(ctx context.Context, mem *pooling.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MemberRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
