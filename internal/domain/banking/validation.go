package banking

import "github.com/mhaugsand/fueleu/internal/validate"

// ParseCreate validates a raw creation payload. All fields are required.
func ParseCreate(fields map[string]any) (CreateRequest, *validate.Error) {
	var req CreateRequest

	vessel, ok := validate.String(fields["vesselName"])
	if !ok {
		return req, validate.Missing("vesselName", "MISSING_VESSEL_NAME")
	}
	req.VesselName = vessel

	yearRaw, supplied := fields["year"]
	if !supplied || yearRaw == nil {
		return req, validate.Missing("year", "MISSING_YEAR")
	}
	year, ok := validate.Int(yearRaw)
	if !ok {
		return req, validate.Invalid("year", "INVALID_YEAR", "year must be a valid integer")
	}
	req.Year = year

	banked, verr := requireFloat(fields, "bankedCb", "MISSING_BANKED_CB", "INVALID_BANKED_CB")
	if verr != nil {
		return req, verr
	}
	req.BankedCb = banked

	applied, verr := requireFloat(fields, "appliedCb", "MISSING_APPLIED_CB", "INVALID_APPLIED_CB")
	if verr != nil {
		return req, verr
	}
	req.AppliedCb = applied

	remaining, verr := requireFloat(fields, "remainingCb", "MISSING_REMAINING_CB", "INVALID_REMAINING_CB")
	if verr != nil {
		return req, verr
	}
	req.RemainingCb = remaining

	return req, nil
}

// ParseUpdate validates a raw partial-update payload.
func ParseUpdate(fields map[string]any) (UpdatePatch, *validate.Error) {
	var patch UpdatePatch

	if v, supplied := fields["vesselName"]; supplied {
		vessel, ok := validate.String(v)
		if !ok {
			return patch, validate.Invalid("vesselName", "INVALID_VESSEL_NAME",
				"vesselName cannot be empty")
		}
		patch.VesselName = &vessel
	}

	if v, supplied := fields["year"]; supplied {
		year, ok := validate.Int(v)
		if !ok {
			return patch, validate.Invalid("year", "INVALID_YEAR",
				"year must be a valid integer")
		}
		patch.Year = &year
	}

	if v, supplied := fields["bankedCb"]; supplied {
		banked, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("bankedCb", "INVALID_BANKED_CB",
				"bankedCb must be a valid number")
		}
		patch.BankedCb = &banked
	}

	if v, supplied := fields["appliedCb"]; supplied {
		applied, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("appliedCb", "INVALID_APPLIED_CB",
				"appliedCb must be a valid number")
		}
		patch.AppliedCb = &applied
	}

	if v, supplied := fields["remainingCb"]; supplied {
		remaining, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("remainingCb", "INVALID_REMAINING_CB",
				"remainingCb must be a valid number")
		}
		patch.RemainingCb = &remaining
	}

	return patch, nil
}

func requireFloat(fields map[string]any, field, missingCode, invalidCode string) (float64, *validate.Error) {
	raw, supplied := fields[field]
	if !supplied || raw == nil {
		return 0, validate.Missing(field, missingCode)
	}
	f, ok := validate.Float(raw)
	if !ok {
		return 0, validate.Invalid(field, invalidCode, field+" must be a valid number")
	}
	return f, nil
}
