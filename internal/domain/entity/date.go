package entity

import (
	"fmt"
	"time"
)

// Date is a calendar date in the configured reporting timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateRange is a half-open [Start, End) window. Both bounds carry the
// reporting timezone. End <= Start is a valid empty range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) IsEmpty() bool {
	return !r.End.After(r.Start)
}

// Contains reports whether t falls inside [Start, End).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Days enumerates every calendar date the range overlaps, in order.
// A date counts as covered even when the range only touches part of it.
func (r DateRange) Days() []Date {
	if r.IsEmpty() {
		return nil
	}

	loc := r.Start.Location()
	y, m, d := r.Start.In(loc).Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, loc)

	var days []Date
	for cur.Before(r.End) {
		days = append(days, DateOf(cur))
		cur = time.Date(cur.Year(), cur.Month(), cur.Day()+1, 0, 0, 0, 0, loc)
	}
	return days
}

// LastDay returns the inclusive final calendar date of the range, i.e.
// the date just before the exclusive End boundary. Only meaningful for
// non-empty ranges.
func (r DateRange) LastDay() Date {
	return DateOf(r.End.Add(-time.Nanosecond))
}
