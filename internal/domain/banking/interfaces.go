package banking

import "context"

// Repository manages banking-record persistence. Update is a compare-and-swap:
// it must fail with repository.ErrConflict when the stored version no longer
// matches expectedVersion, and bump the version on success.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, opts ListOptions) ([]Record, error)
	Update(ctx context.Context, rec *Record, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
}
