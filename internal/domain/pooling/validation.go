package pooling

import "github.com/mhaugsand/fueleu/internal/validate"

// ParsePoolName validates the single pool field. Used for both create and
// full update, since a pool has no other mutable state.
func ParsePoolName(fields map[string]any) (string, *validate.Error) {
	raw, supplied := fields["poolName"]
	if !supplied || raw == nil {
		return "", validate.Missing("poolName", "MISSING_POOL_NAME")
	}
	name, ok := validate.String(raw)
	if !ok {
		return "", validate.Invalid("poolName", "INVALID_POOL_NAME",
			"poolName must be a non-empty string")
	}
	return name, nil
}

// ParseMemberCreate validates a raw member creation payload.
func ParseMemberCreate(fields map[string]any) (MemberCreateRequest, *validate.Error) {
	var req MemberCreateRequest

	poolRaw, supplied := fields["poolId"]
	if !supplied || poolRaw == nil {
		return req, validate.Missing("poolId", "MISSING_POOL_ID")
	}
	poolID, ok := validate.String(poolRaw)
	if !ok {
		return req, validate.Invalid("poolId", "INVALID_POOL_ID_TYPE",
			"poolId must be a valid pool id")
	}
	req.PoolID = poolID

	vessel, ok := validate.String(fields["vesselName"])
	if !ok {
		return req, validate.Invalid("vesselName", "INVALID_VESSEL_NAME",
			"vesselName is required and must be a non-empty string")
	}
	req.VesselName = vessel

	contribRaw, supplied := fields["contributionCb"]
	if !supplied || contribRaw == nil {
		return req, validate.Missing("contributionCb", "MISSING_CONTRIBUTION_CB")
	}
	contrib, ok := validate.Float(contribRaw)
	if !ok {
		return req, validate.Invalid("contributionCb", "INVALID_CONTRIBUTION_CB_TYPE",
			"contributionCb must be a valid number")
	}
	req.ContributionCb = contrib

	return req, nil
}

// ParseMemberUpdate validates a raw partial member update.
func ParseMemberUpdate(fields map[string]any) (MemberUpdatePatch, *validate.Error) {
	var patch MemberUpdatePatch

	if v, supplied := fields["poolId"]; supplied {
		poolID, ok := validate.String(v)
		if !ok {
			return patch, validate.Invalid("poolId", "INVALID_POOL_ID_TYPE",
				"poolId must be a valid pool id")
		}
		patch.PoolID = &poolID
	}

	if v, supplied := fields["vesselName"]; supplied {
		vessel, ok := validate.String(v)
		if !ok {
			return patch, validate.Invalid("vesselName", "INVALID_VESSEL_NAME",
				"vesselName must be a non-empty string")
		}
		patch.VesselName = &vessel
	}

	if v, supplied := fields["contributionCb"]; supplied {
		contrib, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("contributionCb", "INVALID_CONTRIBUTION_CB_TYPE",
				"contributionCb must be a valid number")
		}
		patch.ContributionCb = &contrib
	}

	return patch, nil
}
