package route

import "context"

// Repository manages route persistence.
type Repository interface {
	Create(ctx context.Context, rt *Route) error
	Get(ctx context.Context, id string) (*Route, error)
	List(ctx context.Context, opts ListOptions) ([]Route, error)
	Update(ctx context.Context, rt *Route) error
	Delete(ctx context.Context, id string) error
}
