package pooling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mhaugsand/fueleu/internal/repository"
	"github.com/rs/zerolog"
)

// Service handles pool and pool-member business logic.
type Service struct {
	pools   PoolRepository
	members MemberRepository
	logger  zerolog.Logger
}

// NewService creates a new pooling service.
func NewService(pools PoolRepository, members MemberRepository, logger zerolog.Logger) *Service {
	return &Service{pools: pools, members: members, logger: logger}
}

// CreatePool stores a new pool.
func (s *Service) CreatePool(ctx context.Context, poolName string) (*Pool, error) {
	p := &Pool{
		ID:        uuid.NewString(),
		PoolName:  poolName,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.pools.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	s.logger.Info().Str("pool_id", p.ID).Str("pool", p.PoolName).Msg("pool created")
	return p, nil
}

// GetPool returns a pool by ID.
func (s *Service) GetPool(ctx context.Context, id string) (*Pool, error) {
	p, err := s.pools.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("getting pool: %w", err)
	}
	return p, nil
}

// ListPools returns pools matching the options, newest first.
func (s *Service) ListPools(ctx context.Context, opts PoolListOptions) ([]Pool, error) {
	return s.pools.List(ctx, opts)
}

// RenamePool updates the pool name.
func (s *Service) RenamePool(ctx context.Context, id, poolName string) (*Pool, error) {
	p, err := s.GetPool(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *p
	updated.PoolName = poolName
	if err := s.pools.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("updating pool: %w", err)
	}

	return &updated, nil
}

// DeletePool removes a pool along with its member rows and returns the
// deleted pool and how many members went with it.
func (s *Service) DeletePool(ctx context.Context, id string) (*Pool, int, error) {
	p, err := s.GetPool(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	removed, err := s.pools.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, ErrPoolNotFound
		}
		return nil, 0, fmt.Errorf("deleting pool: %w", err)
	}

	s.logger.Info().Str("pool_id", id).Int("members_removed", removed).Msg("pool deleted")
	return p, removed, nil
}

// Summary returns the derived aggregate view for a pool.
func (s *Service) Summary(ctx context.Context, poolID string) (*Summary, error) {
	p, err := s.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByPool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("listing pool members: %w", err)
	}

	summary := Summarize(*p, members)
	return &summary, nil
}

// AddMember stores a new member contribution. The referenced pool must
// exist.
func (s *Service) AddMember(ctx context.Context, req MemberCreateRequest) (*Member, error) {
	if _, err := s.GetPool(ctx, req.PoolID); err != nil {
		return nil, err
	}

	m := &Member{
		ID:             uuid.NewString(),
		PoolID:         req.PoolID,
		VesselName:     req.VesselName,
		ContributionCb: req.ContributionCb,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("creating pool member: %w", err)
	}

	s.logger.Info().Str("member_id", m.ID).Str("pool_id", m.PoolID).
		Str("vessel", m.VesselName).Msg("pool member added")
	return m, nil
}

// GetMember returns a pool member by ID.
func (s *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	m, err := s.members.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting pool member: %w", err)
	}
	return m, nil
}

// ListMembers returns members matching the options, newest first.
func (s *Service) ListMembers(ctx context.Context, opts MemberListOptions) ([]Member, error) {
	return s.members.List(ctx, opts)
}

// UpdateMember applies a partial update. Moving a member to another pool
// re-checks that the target pool exists.
func (s *Service) UpdateMember(ctx context.Context, id string, patch MemberUpdatePatch) (*Member, error) {
	if patch.Empty() {
		return nil, ErrNoUpdates
	}

	current, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if patch.PoolID != nil {
		if _, err := s.GetPool(ctx, *patch.PoolID); err != nil {
			return nil, err
		}
		updated.PoolID = *patch.PoolID
	}
	if patch.VesselName != nil {
		updated.VesselName = *patch.VesselName
	}
	if patch.ContributionCb != nil {
		updated.ContributionCb = *patch.ContributionCb
	}

	if err := s.members.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrMemberNotFound
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("updating pool member: %w", err)
	}

	return &updated, nil
}

// DeleteMember removes a member and returns the deleted row.
func (s *Service) DeleteMember(ctx context.Context, id string) (*Member, error) {
	m, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("deleting pool member: %w", err)
	}

	s.logger.Info().Str("member_id", id).Msg("pool member deleted")
	return m, nil
}
