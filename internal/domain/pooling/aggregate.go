package pooling

// MemberOutcome classifies how pooling changes a member's individual
// compliance status. "After pool" is a hypothetical view at the pool
// average; stored contributions are never rewritten.
type MemberOutcome string

const (
	OutcomeBecameCompliant    MemberOutcome = "became-compliant"
	OutcomeBecameNonCompliant MemberOutcome = "became-non-compliant"
	OutcomeUnchanged          MemberOutcome = "unchanged"
)

// MemberStatus pairs a member with its before/after pooling view.
type MemberStatus struct {
	Member    Member        `json:"member"`
	AfterPool float64       `json:"afterPool"`
	Compliant bool          `json:"compliant"`
	Outcome   MemberOutcome `json:"outcome"`
}

// Summary is the derived aggregate view of a pool. Nothing here is stored;
// it is recomputed from the member rows on every read.
type Summary struct {
	Pool        Pool           `json:"pool"`
	MemberCount int            `json:"memberCount"`
	TotalCb     float64        `json:"totalCb"`
	AverageCb   float64        `json:"averageCb"`
	Compliant   bool           `json:"compliant"`
	Members     []MemberStatus `json:"members"`
}

// Total sums member contributions. An empty member set totals 0.
func Total(members []Member) float64 {
	var total float64
	for _, m := range members {
		total += m.ContributionCb
	}
	return total
}

// Average is Total divided by the member count, defined as 0 for an empty
// member set.
func Average(members []Member) float64 {
	if len(members) == 0 {
		return 0
	}
	return Total(members) / float64(len(members))
}

// StatusDelta compares a member's individual compliance status against the
// pool-level status at the given average.
func StatusDelta(m Member, poolAverage float64) MemberOutcome {
	before := m.ContributionCb >= 0
	after := poolAverage >= 0

	switch {
	case before == after:
		return OutcomeUnchanged
	case after:
		return OutcomeBecameCompliant
	default:
		return OutcomeBecameNonCompliant
	}
}

// Summarize builds the full aggregate view for a pool.
func Summarize(pool Pool, members []Member) Summary {
	total := Total(members)
	average := Average(members)

	statuses := make([]MemberStatus, 0, len(members))
	for _, m := range members {
		statuses = append(statuses, MemberStatus{
			Member:    m,
			AfterPool: average,
			Compliant: m.ContributionCb >= 0,
			Outcome:   StatusDelta(m, average),
		})
	}

	return Summary{
		Pool:        pool,
		MemberCount: len(members),
		TotalCb:     total,
		AverageCb:   average,
		Compliant:   total >= 0,
		Members:     statuses,
	}
}
