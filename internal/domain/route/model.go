package route

import "time"

// Route is a single voyage for a vessel in a given year.
//
// ComplianceBalance is supplied by the caller and stored as-is; it is never
// recomputed from the intensity figures.
type Route struct {
	ID                    string    `json:"id"`
	RouteName             string    `json:"routeName"`
	VesselName            string    `json:"vesselName"`
	DistanceNm            float64   `json:"distanceNm"`
	FuelConsumedMt        float64   `json:"fuelConsumedMt"`
	GhgIntensity          float64   `json:"ghgIntensity"`
	ReferenceGhgIntensity float64   `json:"referenceGhgIntensity"`
	ComplianceBalance     float64   `json:"complianceBalance"`
	Year                  int       `json:"year"`
	CreatedAt             time.Time `json:"createdAt"`
}

// CreateRequest holds a fully validated route creation payload.
type CreateRequest struct {
	RouteName             string
	VesselName            string
	DistanceNm            float64
	FuelConsumedMt        float64
	GhgIntensity          float64
	ReferenceGhgIntensity float64
	ComplianceBalance     float64
	Year                  int
}

// UpdatePatch holds the validated subset of fields supplied to a partial
// update. Nil means the field was not supplied.
type UpdatePatch struct {
	RouteName             *string
	VesselName            *string
	DistanceNm            *float64
	FuelConsumedMt        *float64
	GhgIntensity          *float64
	ReferenceGhgIntensity *float64
	ComplianceBalance     *float64
	Year                  *int
}

// Empty reports whether the patch carries no fields.
func (p UpdatePatch) Empty() bool {
	return p.RouteName == nil &&
		p.VesselName == nil &&
		p.DistanceNm == nil &&
		p.FuelConsumedMt == nil &&
		p.GhgIntensity == nil &&
		p.ReferenceGhgIntensity == nil &&
		p.ComplianceBalance == nil &&
		p.Year == nil
}

// ListOptions provides filtering options for listing routes.
type ListOptions struct {
	Search string
	Vessel string
	Year   *int
	Limit  int
	Offset int
}
