package route

import "errors"

var (
	// ErrRouteNotFound indicates the route doesn't exist.
	ErrRouteNotFound = errors.New("route not found")
	// ErrNoUpdateFields indicates a partial update carried no valid fields.
	ErrNoUpdateFields = errors.New("no valid fields provided for update")
)
