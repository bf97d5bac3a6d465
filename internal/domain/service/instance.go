package service

import (
	"github.com/sirupsen/logrus"
	"github.com/zeyaad-amr/adt-bot/internal/config"
	"github.com/zeyaad-amr/adt-bot/internal/domain/contract"
)

type Instance struct {
	Router *router
}

func NewInstance(cfg *config.Config, source contract.EventSource, sink contract.OutputSink, dm contract.DataManager, log *logrus.Logger) *Instance {
	return &Instance{
		Router: newRouter(RouterParams{
			Roster:                cfg.Roster,
			Options:               cfg.Options,
			DailyRule:             cfg.DailyRule,
			WeeklyRule:            cfg.WeeklyRule,
			MonthlyRule:           cfg.MonthlyRule,
			WeeklyReportCommand:   cfg.WeeklyReportCommand,
			MonthlyReportCommand:  cfg.MonthlyReportCommand,
			ManualReminderCommand: cfg.ManualReminderCommand,
			ReportHistoryCommand:  cfg.ReportHistoryCommand,
			ChannelID:             cfg.SlackChannelID,
			Source:                source,
			Sink:                  sink,
			Data:                  dm,
			Log:                   log,
		}),
	}
}
