package entity

import "time"

// RuleKind selects the recurrence of a ScheduleRule.
type RuleKind int

const (
	RuleDaily RuleKind = iota + 1
	RuleWeekly
	RuleMonthlyFirstDay
)

// ScheduleRule is one recurring calendar trigger: a clock time in a
// timezone, recurring daily, on a fixed weekday, or on the 1st of each
// month. Built once at startup from configuration, immutable thereafter.
type ScheduleRule struct {
	Kind     RuleKind
	Weekday  time.Weekday // RuleWeekly only
	Hour     int
	Minute   int
	Location *time.Location
}

// WindowKind selects how a reporting date range is derived from "now".
type WindowKind int

const (
	WindowWeekToDate WindowKind = iota + 1
	WindowPreviousMonth
	WindowMonthToDate
	WindowLastWeek // trailing 7 days, instant arithmetic
)

// ReportKind names the report being generated, independent of which
// window produced its range.
type ReportKind int

const (
	ReportWeekly ReportKind = iota + 1
	ReportMonthly
)

func (k ReportKind) String() string {
	switch k {
	case ReportWeekly:
		return "weekly"
	case ReportMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// Title is the report heading posted to the channel.
func (k ReportKind) Title() string {
	switch k {
	case ReportMonthly:
		return "📊 Monthly Report"
	default:
		return "📊 Weekly Report"
	}
}
