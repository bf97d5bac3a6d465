package domain

import "time"

// RosterSize is the fixed number of tracked members. Every report
// enumerates exactly this many rows.
const RosterSize = 6

// WeeklyLookbackDays is the trailing window of the scheduled weekly
// report.
const WeeklyLookbackDays = 7

// DefaultWeeklyReportWeekday is the scheduled weekly report day when none
// is configured (ISO 4 = Thursday).
const DefaultWeeklyReportWeekday = time.Thursday

// HistoryListLimit caps how many past reports the history command posts.
const HistoryListLimit = 5

// ISO 8601 weekday numbers as used by configuration.
var WeekdayByISO = map[int]time.Weekday{
	1: time.Monday,
	2: time.Tuesday,
	3: time.Wednesday,
	4: time.Thursday,
	5: time.Friday,
	6: time.Saturday,
	7: time.Sunday,
}
