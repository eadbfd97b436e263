package pooling

import "time"

// Pool is a named collaboration group of vessels sharing compliance balance.
type Pool struct {
	ID        string    `json:"id"`
	PoolName  string    `json:"poolName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Member is one vessel's contribution record inside a pool.
type Member struct {
	ID             string    `json:"id"`
	PoolID         string    `json:"poolId"`
	VesselName     string    `json:"vesselName"`
	ContributionCb float64   `json:"contributionCb"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MemberCreateRequest holds a fully validated member creation payload.
type MemberCreateRequest struct {
	PoolID         string
	VesselName     string
	ContributionCb float64
}

// MemberUpdatePatch holds the validated subset of fields supplied to a
// partial member update. Nil means the field was not supplied.
type MemberUpdatePatch struct {
	PoolID         *string
	VesselName     *string
	ContributionCb *float64
}

// Empty reports whether the patch carries no fields.
func (p MemberUpdatePatch) Empty() bool {
	return p.PoolID == nil && p.VesselName == nil && p.ContributionCb == nil
}

// PoolListOptions provides filtering options for listing pools.
type PoolListOptions struct {
	Search string
	Limit  int
	Offset int
}

// MemberListOptions provides filtering options for listing pool members.
type MemberListOptions struct {
	PoolID string
	Search string
	Limit  int
	Offset int
}
