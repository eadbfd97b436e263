package route

// Metric names a comparable route figure.
type Metric string

const (
	MetricDistanceNm        Metric = "distanceNm"
	MetricFuelConsumedMt    Metric = "fuelConsumedMt"
	MetricGhgIntensity      Metric = "ghgIntensity"
	MetricComplianceBalance Metric = "complianceBalance"
)

// Outcome classifies a metric delta relative to its polarity.
type Outcome string

const (
	OutcomeImproved  Outcome = "improved"
	OutcomeRegressed Outcome = "regressed"
	OutcomeUnchanged Outcome = "unchanged"
)

// MetricDelta is the comparison result for a single metric. PercentChange
// is nil when the baseline value is 0, where a relative change is undefined.
type MetricDelta struct {
	Metric        Metric   `json:"metric"`
	Baseline      float64  `json:"baseline"`
	Comparison    float64  `json:"comparison"`
	Delta         float64  `json:"delta"`
	PercentChange *float64 `json:"percentChange"`
	Outcome       Outcome  `json:"outcome"`
}

// Comparison holds the per-metric deltas between two routes.
type Comparison struct {
	BaselineID   string        `json:"baselineId"`
	ComparisonID string        `json:"comparisonId"`
	Metrics      []MetricDelta `json:"metrics"`
}

// Compare derives deltas for the four tracked metrics. GHG intensity has
// inverse polarity: a decrease counts as an improvement. For the other
// metrics an increase counts as an improvement.
func Compare(baseline, comparison *Route) Comparison {
	return Comparison{
		BaselineID:   baseline.ID,
		ComparisonID: comparison.ID,
		Metrics: []MetricDelta{
			compareMetric(MetricDistanceNm, baseline.DistanceNm, comparison.DistanceNm, false),
			compareMetric(MetricFuelConsumedMt, baseline.FuelConsumedMt, comparison.FuelConsumedMt, false),
			compareMetric(MetricGhgIntensity, baseline.GhgIntensity, comparison.GhgIntensity, true),
			compareMetric(MetricComplianceBalance, baseline.ComplianceBalance, comparison.ComplianceBalance, false),
		},
	}
}

func compareMetric(metric Metric, baseline, comparison float64, lowerIsBetter bool) MetricDelta {
	delta := comparison - baseline

	var percent *float64
	if baseline != 0 {
		p := (delta / baseline) * 100
		percent = &p
	}

	outcome := OutcomeUnchanged
	switch {
	case delta == 0:
	case lowerIsBetter && delta < 0, !lowerIsBetter && delta > 0:
		outcome = OutcomeImproved
	default:
		outcome = OutcomeRegressed
	}

	return MetricDelta{
		Metric:        metric,
		Baseline:      baseline,
		Comparison:    comparison,
		Delta:         delta,
		PercentChange: percent,
		Outcome:       outcome,
	}
}
