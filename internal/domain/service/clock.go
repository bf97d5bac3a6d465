package service

import (
	"context"
	"time"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

// waitSlice bounds each timer arm inside WaitUntil. Re-arming from the
// live wall clock means a suspended host wakes into an immediate
// recheck instead of sleeping out a stale duration.
const waitSlice = time.Minute

// NextFireAfter computes the first instant strictly after now at which
// rule fires. Candidates are built with time.Date in the rule's
// location, so the UTC offset is always the one in effect on the target
// date, not on the date of computation.
func NextFireAfter(rule entity.ScheduleRule, now time.Time) time.Time {
	local := now.In(rule.Location)

	switch rule.Kind {
	case entity.RuleWeekly:
		daysAhead := (int(rule.Weekday) - int(local.Weekday()) + 7) % 7
		candidate := atClockTime(rule, local.AddDate(0, 0, daysAhead))
		if !candidate.After(now) {
			candidate = atClockTime(rule, local.AddDate(0, 0, daysAhead+7))
		}
		return candidate

	case entity.RuleMonthlyFirstDay:
		firstOfNext := time.Date(local.Year(), local.Month()+1, 1, rule.Hour, rule.Minute, 0, 0, rule.Location)
		return firstOfNext

	default: // entity.RuleDaily
		candidate := atClockTime(rule, local)
		if !candidate.After(now) {
			candidate = atClockTime(rule, local.AddDate(0, 0, 1))
		}
		return candidate
	}
}

func atClockTime(rule entity.ScheduleRule, day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), rule.Hour, rule.Minute, 0, 0, rule.Location)
}

// WaitUntil blocks until the wall clock reaches target or ctx is
// canceled. The deadline is re-derived from time.Now on every slice, so
// process suspension cannot cause a late or missed wake: on resume the
// next recheck observes now >= target and returns immediately.
func WaitUntil(ctx context.Context, target time.Time) error {
	for {
		remaining := time.Until(target)
		if remaining <= 0 {
			return nil
		}
		if remaining > waitSlice {
			remaining = waitSlice
		}

		timer := time.NewTimer(remaining)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}
