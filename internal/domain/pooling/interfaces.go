package pooling

import "context"

// PoolRepository manages pool persistence. Delete removes the pool's member
// rows with it and reports how many went.
type PoolRepository interface {
	Create(ctx context.Context, p *Pool) error
	Get(ctx context.Context, id string) (*Pool, error)
	List(ctx context.Context, opts PoolListOptions) ([]Pool, error)
	Update(ctx context.Context, p *Pool) error
	Delete(ctx context.Context, id string) (membersRemoved int, err error)
}

// MemberRepository manages pool-member persistence. Create and Update must
// fail with repository.ErrForeignKeyViolation when the referenced pool does
// not exist.
type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	Get(ctx context.Context, id string) (*Member, error)
	List(ctx context.Context, opts MemberListOptions) ([]Member, error)
	ListByPool(ctx context.Context, poolID string) ([]Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id string) error
}
