package entity

// Roster is the ordered, fixed set of tracked member IDs. Order matters:
// it is the report row order and the tie-break for ranked reports.
type Roster []string

func (r Roster) Contains(id string) bool {
	return r.Position(id) >= 0
}

// Position returns the roster index of id, or -1 when id is not tracked.
func (r Roster) Position(id string) int {
	for i, member := range r {
		if member == id {
			return i
		}
	}
	return -1
}

// MemberStats is one member's activity inside a reporting range.
type MemberStats struct {
	Count      int
	ActiveDays map[Date]struct{}
	MissedDays map[Date]struct{}
}

// Aggregate is the result of one aggregation pass: every roster member
// has an entry, zero-valued when they posted nothing in range. Aggregates
// are built fresh per report cycle and discarded after formatting.
type Aggregate struct {
	Range   DateRange
	Members map[string]*MemberStats
	Total   int
}

// ReportOptions shape both aggregation and formatting. Immutable per
// process, set once from configuration.
type ReportOptions struct {
	OneUpdatePerDay   bool
	RankByCount       bool
	IncludeMissedDays bool
}
