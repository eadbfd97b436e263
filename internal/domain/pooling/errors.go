package pooling

import "errors"

var (
	// ErrPoolNotFound indicates the pool doesn't exist.
	ErrPoolNotFound = errors.New("pool not found")
	// ErrMemberNotFound indicates the pool member doesn't exist.
	ErrMemberNotFound = errors.New("pool member not found")
	// ErrNoUpdates indicates a partial update carried no valid fields.
	ErrNoUpdates = errors.New("no valid fields to update")
)
