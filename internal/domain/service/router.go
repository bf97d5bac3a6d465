package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zeyaad-amr/adt-bot/internal/domain"
	"github.com/zeyaad-amr/adt-bot/internal/domain/contract"
	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

const (
	fetchTimeout = 60 * time.Second
	postTimeout  = 30 * time.Second
)

// RouterParams carries everything the router shares: read-only
// configuration plus the external collaborators.
type RouterParams struct {
	Roster  entity.Roster
	Options entity.ReportOptions

	DailyRule   entity.ScheduleRule
	WeeklyRule  entity.ScheduleRule
	MonthlyRule entity.ScheduleRule

	WeeklyReportCommand   string
	MonthlyReportCommand  string
	ManualReminderCommand string
	ReportHistoryCommand  string

	ChannelID string

	Source contract.EventSource
	Sink   contract.OutputSink
	Data   contract.DataManager
	Log    *logrus.Logger
}

// router owns the three recurring trigger loops and the on-demand
// command path. All shared state is read-only configuration; the single
// mutex only serializes report cycles so two emissions cannot
// interleave in the channel.
type router struct {
	RouterParams

	cycleMu sync.Mutex
	wg      sync.WaitGroup
}

func newRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// Start launches the daily, weekly, and monthly loops. Each loop
// alternates between computing its next fire instant from the live
// clock and waiting for it; none of them blocks another. They all exit
// promptly when ctx is canceled.
func (r *router) Start(ctx context.Context) {
	r.runLoop(ctx, "daily-reminder", r.DailyRule, r.sendDailyReminder)
	r.runLoop(ctx, "weekly-report", r.WeeklyRule, func(ctx context.Context) {
		r.runReportCycle(ctx, entity.ReportWeekly, entity.WindowLastWeek, "scheduled")
	})
	r.runLoop(ctx, "monthly-report", r.MonthlyRule, func(ctx context.Context) {
		r.runReportCycle(ctx, entity.ReportMonthly, entity.WindowPreviousMonth, "scheduled")
	})
}

// Wait blocks until every trigger loop has exited.
func (r *router) Wait() {
	r.wg.Wait()
}

func (r *router) runLoop(ctx context.Context, name string, rule entity.ScheduleRule, fire func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		for {
			next := NextFireAfter(rule, time.Now())
			r.Log.WithFields(logrus.Fields{
				"trigger": name,
				"at":      next.Format(time.RFC3339),
			}).Info("waiting for next fire")

			if err := WaitUntil(ctx, next); err != nil {
				r.Log.WithField("trigger", name).Info("trigger loop stopped")
				return
			}
			fire(ctx)
		}
	}()
}

// HandleInbound is the on-demand path: an exact command match from the
// configured channel runs the same resolve → aggregate → format → post
// pipeline synchronously, independent of the timers.
func (r *router) HandleInbound(ctx context.Context, msg contract.InboundMessage) {
	if msg.SystemAuthored {
		return
	}
	if msg.ChannelID != r.ChannelID {
		return
	}

	switch strings.ToLower(strings.TrimSpace(msg.Text)) {
	case r.WeeklyReportCommand:
		r.runReportCycle(ctx, entity.ReportWeekly, entity.WindowWeekToDate, "manual")
	case r.MonthlyReportCommand:
		r.runReportCycle(ctx, entity.ReportMonthly, entity.WindowMonthToDate, "manual")
	case r.ManualReminderCommand:
		r.sendDailyReminder(ctx)
	case r.ReportHistoryCommand:
		r.postReportHistory(ctx)
	}
}

// runReportCycle is one full report generation. Any collaborator
// failure abandons this cycle only: it is logged with the range that
// failed and the loop goes back to waiting for the next fire.
func (r *router) runReportCycle(ctx context.Context, kind entity.ReportKind, window entity.WindowKind, trigger string) {
	r.cycleMu.Lock()
	defer r.cycleMu.Unlock()

	now := time.Now().In(r.DailyRule.Location)
	rng := ResolveWindow(window, now)

	log := r.Log.WithFields(logrus.Fields{
		"report":  kind.String(),
		"trigger": trigger,
		"from":    rng.Start.Format(time.RFC3339),
		"to":      rng.End.Format(time.RFC3339),
	})

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	agg, err := AggregateEvents(r.Source.FetchEvents(fetchCtx, rng.Start, rng.End), rng, r.Roster, r.Options)
	if err != nil {
		log.WithError(err).Error("report cycle abandoned: event fetch failed")
		return
	}

	text := FormatReport(kind, agg, r.Roster, r.Options)

	if err := r.post(ctx, text); err != nil {
		log.WithError(err).Error("report cycle abandoned: post failed")
		return
	}
	log.WithField("total_updates", agg.Total).Info("report posted")

	record := &entity.ReportRecord{
		Kind:         kind.String(),
		Trigger:      trigger,
		PeriodStart:  rng.Start,
		PeriodEnd:    rng.End,
		TotalUpdates: agg.Total,
		PostedAt:     time.Now().In(r.DailyRule.Location),
	}
	if err := r.Data.ReportLog().Create(record); err != nil {
		// Audit only: a failed write must not fail a delivered report.
		log.WithError(err).Warn("could not record posted report")
	}
}

func (r *router) sendDailyReminder(ctx context.Context) {
	r.cycleMu.Lock()
	defer r.cycleMu.Unlock()

	if err := r.post(ctx, FormatDailyReminder()); err != nil {
		r.Log.WithError(err).Error("daily reminder not sent")
		return
	}
	r.Log.Info("daily reminder sent")
}

func (r *router) postReportHistory(ctx context.Context) {
	r.cycleMu.Lock()
	defer r.cycleMu.Unlock()

	records, err := r.Data.ReportLog().ListRecent(domain.HistoryListLimit)
	if err != nil {
		r.Log.WithError(err).Error("could not load report history")
		return
	}

	if err := r.post(ctx, FormatReportHistory(records)); err != nil {
		r.Log.WithError(err).Error("report history not sent")
	}
}

func (r *router) post(ctx context.Context, text string) error {
	postCtx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()
	return r.Sink.Post(postCtx, text)
}
