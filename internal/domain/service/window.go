package service

import (
	"time"

	"github.com/zeyaad-amr/adt-bot/internal/domain"
	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

// ResolveWindow derives the concrete [start, end) reporting range for a
// window kind at instant now. All calendar math happens in now's
// location; callers pass now already converted to the reporting
// timezone. An empty range is returned as-is, never an error.
func ResolveWindow(kind entity.WindowKind, now time.Time) entity.DateRange {
	switch kind {
	case entity.WindowWeekToDate:
		return weekToDate(now)
	case entity.WindowPreviousMonth:
		return previousCalendarMonth(now)
	case entity.WindowMonthToDate:
		return monthToDate(now)
	case entity.WindowLastWeek:
		return LastNDays(now, domain.WeeklyLookbackDays)
	default:
		return entity.DateRange{Start: now, End: now}
	}
}

// weekToDate starts at the most recent Sunday 00:00 on or before now's
// date. On a Sunday that is today, so a Sunday report covers exactly
// that day.
func weekToDate(now time.Time) entity.DateRange {
	loc := now.Location()
	daysSinceSunday := int(now.Weekday()) // Sunday == 0
	start := time.Date(now.Year(), now.Month(), now.Day()-daysSinceSunday, 0, 0, 0, 0, loc)
	return entity.DateRange{Start: start, End: now}
}

func previousCalendarMonth(now time.Time) entity.DateRange {
	loc := now.Location()
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	firstOfPrevious := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc)
	return entity.DateRange{Start: firstOfPrevious, End: firstOfCurrent}
}

func monthToDate(now time.Time) entity.DateRange {
	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return entity.DateRange{Start: start, End: now}
}

// LastNDays is instant arithmetic: exactly n*24h back, no truncation to
// a day boundary.
func LastNDays(now time.Time, n int) entity.DateRange {
	return entity.DateRange{Start: now.Add(-time.Duration(n) * 24 * time.Hour), End: now}
}
