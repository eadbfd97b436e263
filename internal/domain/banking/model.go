package banking

import "time"

// Record tracks compliance-balance banking for one vessel in one year.
//
// BankedCb never goes negative. RemainingCb may: a deficit is a legitimate
// domain state. AppliedCb is a cumulative counter and only grows. Version
// is the optimistic-concurrency token checked on every update.
type Record struct {
	ID          string    `json:"id"`
	VesselName  string    `json:"vesselName"`
	Year        int       `json:"year"`
	BankedCb    float64   `json:"bankedCb"`
	AppliedCb   float64   `json:"appliedCb"`
	RemainingCb float64   `json:"remainingCb"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int64     `json:"-"`
}

// CreateRequest holds a fully validated banking-record creation payload.
type CreateRequest struct {
	VesselName  string
	Year        int
	BankedCb    float64
	AppliedCb   float64
	RemainingCb float64
}

// UpdatePatch holds the validated subset of fields supplied to a partial
// update. Nil means the field was not supplied.
type UpdatePatch struct {
	VesselName  *string
	Year        *int
	BankedCb    *float64
	AppliedCb   *float64
	RemainingCb *float64
}

// Empty reports whether the patch carries no fields.
func (p UpdatePatch) Empty() bool {
	return p.VesselName == nil && p.Year == nil &&
		p.BankedCb == nil && p.AppliedCb == nil && p.RemainingCb == nil
}

// ListOptions provides filtering options for listing banking records.
type ListOptions struct {
	Search string
	Vessel string
	Year   *int
	Limit  int
	Offset int
}
