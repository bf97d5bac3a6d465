package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

// FormatReport renders one aggregate as the channel message. Output is
// deterministic: every roster member appears exactly once, ranked rows
// sort by count descending with roster position breaking ties, unranked
// rows keep roster order.
func FormatReport(kind entity.ReportKind, agg *entity.Aggregate, roster entity.Roster, opts entity.ReportOptions) string {
	var b strings.Builder

	b.WriteString(kind.Title())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("🗓 Period: %s → %s · Total updates: %d\n\n", periodStart(agg.Range), periodEnd(agg.Range), agg.Total))

	ordered := make([]string, len(roster))
	copy(ordered, roster)
	if opts.RankByCount {
		sort.SliceStable(ordered, func(i, j int) bool {
			return agg.Members[ordered[i]].Count > agg.Members[ordered[j]].Count
		})
	}

	for i, id := range ordered {
		stats := agg.Members[id]

		if opts.RankByCount {
			b.WriteString(fmt.Sprintf("%d. ", i+1))
		} else {
			b.WriteString("• ")
		}

		b.WriteString(fmt.Sprintf("<@%s>: %d updates | active days: %d", id, stats.Count, len(stats.ActiveDays)))
		if opts.IncludeMissedDays {
			b.WriteString(fmt.Sprintf(" | missed days: %d", len(stats.MissedDays)))
		}
		b.WriteString(fmt.Sprintf(" | %s", contribution(stats.Count, agg.Total)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// contribution renders count/total as a fixed-precision percentage,
// defined as 0.0% when nothing was posted at all.
func contribution(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}

func periodStart(rng entity.DateRange) string {
	return entity.DateOf(rng.Start).String()
}

// periodEnd renders the inclusive last calendar day, not the exclusive
// range boundary.
func periodEnd(rng entity.DateRange) string {
	if rng.IsEmpty() {
		return entity.DateOf(rng.Start).String()
	}
	return rng.LastDay().String()
}

// FormatDailyReminder is the recurring nudge posted to the channel.
func FormatDailyReminder() string {
	return "<!channel>\n⏰ *Daily Update Reminder*\n\nIf you didn't post your update yet, please send it now."
}

// FormatReportHistory renders the recent posted-report log, newest
// first.
func FormatReportHistory(records []*entity.ReportRecord) string {
	if len(records) == 0 {
		return "🗂 No reports have been posted yet."
	}

	var b strings.Builder
	b.WriteString("🗂 *Recent Reports*\n")
	for _, rec := range records {
		b.WriteString(fmt.Sprintf("• %s — %s (%s) · %s → %s · %d updates\n",
			rec.PostedAt.Format("2006-01-02 15:04"),
			rec.Kind,
			rec.Trigger,
			rec.PeriodStart.Format("2006-01-02"),
			rec.PeriodEnd.Format("2006-01-02"),
			rec.TotalUpdates,
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
