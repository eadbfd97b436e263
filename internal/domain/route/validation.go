package route

import "github.com/mhaugsand/fueleu/internal/validate"

// ParseCreate validates a raw creation payload. All fields are required.
// Distance and fuel must be non-negative; the compliance balance may carry
// either sign.
func ParseCreate(fields map[string]any) (CreateRequest, *validate.Error) {
	var req CreateRequest

	name, ok := validate.String(fields["routeName"])
	if !ok {
		return req, validate.Invalid("routeName", "MISSING_ROUTE_NAME",
			"Route name is required and must be a non-empty string")
	}
	req.RouteName = name

	vessel, ok := validate.String(fields["vesselName"])
	if !ok {
		return req, validate.Invalid("vesselName", "MISSING_VESSEL_NAME",
			"Vessel name is required and must be a non-empty string")
	}
	req.VesselName = vessel

	distance, ok := validate.Float(fields["distanceNm"])
	if !ok || distance < 0 {
		return req, validate.Invalid("distanceNm", "INVALID_DISTANCE",
			"Distance (NM) is required and must be a valid non-negative number")
	}
	req.DistanceNm = distance

	fuel, ok := validate.Float(fields["fuelConsumedMt"])
	if !ok || fuel < 0 {
		return req, validate.Invalid("fuelConsumedMt", "INVALID_FUEL_CONSUMED",
			"Fuel consumed (MT) is required and must be a valid non-negative number")
	}
	req.FuelConsumedMt = fuel

	ghg, ok := validate.Float(fields["ghgIntensity"])
	if !ok {
		return req, validate.Invalid("ghgIntensity", "INVALID_GHG_INTENSITY",
			"GHG intensity is required and must be a valid number")
	}
	req.GhgIntensity = ghg

	ref, ok := validate.Float(fields["referenceGhgIntensity"])
	if !ok {
		return req, validate.Invalid("referenceGhgIntensity", "INVALID_REFERENCE_GHG_INTENSITY",
			"Reference GHG intensity is required and must be a valid number")
	}
	req.ReferenceGhgIntensity = ref

	balance, ok := validate.Float(fields["complianceBalance"])
	if !ok {
		return req, validate.Invalid("complianceBalance", "INVALID_COMPLIANCE_BALANCE",
			"Compliance balance is required and must be a valid number")
	}
	req.ComplianceBalance = balance

	year, ok := validate.Int(fields["year"])
	if !ok {
		return req, validate.Invalid("year", "INVALID_YEAR",
			"Year is required and must be a valid integer")
	}
	req.Year = year

	return req, nil
}

// ParseUpdate validates a raw partial-update payload. Only supplied fields
// are checked and carried into the patch.
func ParseUpdate(fields map[string]any) (UpdatePatch, *validate.Error) {
	var patch UpdatePatch

	if v, supplied := fields["routeName"]; supplied {
		name, ok := validate.String(v)
		if !ok {
			return patch, validate.Invalid("routeName", "INVALID_ROUTE_NAME",
				"Route name must be a non-empty string")
		}
		patch.RouteName = &name
	}

	if v, supplied := fields["vesselName"]; supplied {
		vessel, ok := validate.String(v)
		if !ok {
			return patch, validate.Invalid("vesselName", "INVALID_VESSEL_NAME",
				"Vessel name must be a non-empty string")
		}
		patch.VesselName = &vessel
	}

	if v, supplied := fields["distanceNm"]; supplied {
		distance, ok := validate.Float(v)
		if !ok || distance < 0 {
			return patch, validate.Invalid("distanceNm", "INVALID_DISTANCE",
				"Distance (NM) must be a valid non-negative number")
		}
		patch.DistanceNm = &distance
	}

	if v, supplied := fields["fuelConsumedMt"]; supplied {
		fuel, ok := validate.Float(v)
		if !ok || fuel < 0 {
			return patch, validate.Invalid("fuelConsumedMt", "INVALID_FUEL_CONSUMED",
				"Fuel consumed (MT) must be a valid non-negative number")
		}
		patch.FuelConsumedMt = &fuel
	}

	if v, supplied := fields["ghgIntensity"]; supplied {
		ghg, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("ghgIntensity", "INVALID_GHG_INTENSITY",
				"GHG intensity must be a valid number")
		}
		patch.GhgIntensity = &ghg
	}

	if v, supplied := fields["referenceGhgIntensity"]; supplied {
		ref, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("referenceGhgIntensity", "INVALID_REFERENCE_GHG_INTENSITY",
				"Reference GHG intensity must be a valid number")
		}
		patch.ReferenceGhgIntensity = &ref
	}

	if v, supplied := fields["complianceBalance"]; supplied {
		balance, ok := validate.Float(v)
		if !ok {
			return patch, validate.Invalid("complianceBalance", "INVALID_COMPLIANCE_BALANCE",
				"Compliance balance must be a valid number")
		}
		patch.ComplianceBalance = &balance
	}

	if v, supplied := fields["year"]; supplied {
		year, ok := validate.Int(v)
		if !ok {
			return patch, validate.Invalid("year", "INVALID_YEAR",
				"Year must be a valid integer")
		}
		patch.Year = &year
	}

	return patch, nil
}
