package slack

import (
	"regexp"

	"github.com/sirupsen/logrus"
	api "github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/zeyaad-amr/adt-bot/internal/config"
)

// Gateway adapts the Slack Web API and Socket Mode to the domain
// collaborator contracts: the tracked channel's history is the event
// source, chat.postMessage is the output sink, and the socket loop
// delivers inbound messages for on-demand commands.
type Gateway struct {
	api       *api.Client
	socket    *socketmode.Client
	channelID string

	// updatePattern decides which channel messages count as activity
	// events; command texts are excluded so triggering a report never
	// counts as posting an update.
	updatePattern *regexp.Regexp
	commandTexts  map[string]struct{}

	log *logrus.Logger
}

func New(cfg *config.Config, log *logrus.Logger) *Gateway {
	client := api.New(cfg.SlackBotToken, api.OptionAppLevelToken(cfg.SlackAppToken))

	return &Gateway{
		api:           client,
		socket:        socketmode.New(client),
		channelID:     cfg.SlackChannelID,
		updatePattern: cfg.UpdatePattern,
		commandTexts: map[string]struct{}{
			cfg.WeeklyReportCommand:   {},
			cfg.MonthlyReportCommand:  {},
			cfg.ManualReminderCommand: {},
			cfg.ReportHistoryCommand:  {},
		},
		log: log,
	}
}
