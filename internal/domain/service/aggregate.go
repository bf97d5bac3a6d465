package service

import (
	"fmt"
	"iter"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

// AggregateEvents consumes events exactly once, in arrival order, and
// builds per-member activity for rng. Qualifying events are non-system,
// inside [rng.Start, rng.End), and authored by a roster member; anything
// else is skipped silently. An empty sequence is fine: every roster
// member still gets a zero entry.
func AggregateEvents(events iter.Seq2[entity.Event, error], rng entity.DateRange, roster entity.Roster, opts entity.ReportOptions) (*entity.Aggregate, error) {
	agg := &entity.Aggregate{
		Range:   rng,
		Members: make(map[string]*entity.MemberStats, len(roster)),
	}
	for _, id := range roster {
		agg.Members[id] = &entity.MemberStats{
			ActiveDays: make(map[entity.Date]struct{}),
		}
	}

	loc := rng.Start.Location()

	for event, err := range events {
		if err != nil {
			return nil, fmt.Errorf("event source failed mid-scan: %w", err)
		}
		if event.SystemAuthored {
			continue
		}
		if !rng.Contains(event.Timestamp) {
			continue
		}
		stats, tracked := agg.Members[event.AuthorID]
		if !tracked {
			continue
		}

		stats.Count++
		stats.ActiveDays[entity.DateOf(event.Timestamp.In(loc))] = struct{}{}
	}

	// Dedupe is a post-pass over active days so raw counting and the
	// one-per-day mode stay consistent with each other.
	if opts.OneUpdatePerDay {
		for _, stats := range agg.Members {
			stats.Count = len(stats.ActiveDays)
		}
	}

	if opts.IncludeMissedDays {
		rangeDays := rng.Days()
		for _, stats := range agg.Members {
			stats.MissedDays = make(map[entity.Date]struct{}, len(rangeDays))
			for _, day := range rangeDays {
				if _, active := stats.ActiveDays[day]; !active {
					stats.MissedDays[day] = struct{}{}
				}
			}
		}
	}

	for _, id := range roster {
		agg.Total += agg.Members[id].Count
	}

	return agg, nil
}
