package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/zeyaad-amr/adt-bot/internal/domain"
	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

// Config is the full validated process configuration. It is loaded once
// at startup and read-only afterwards; any invalid value is a fatal
// startup error, never a per-tick one.
type Config struct {
	SlackBotToken  string
	SlackAppToken  string
	SlackChannelID string

	Roster   entity.Roster
	Timezone string
	Location *time.Location

	DailyRule   entity.ScheduleRule
	WeeklyRule  entity.ScheduleRule
	MonthlyRule entity.ScheduleRule

	WeeklyReportCommand   string
	MonthlyReportCommand  string
	ManualReminderCommand string
	ReportHistoryCommand  string

	UpdatePattern *regexp.Regexp
	Options       entity.ReportOptions

	DatabasePath string
	LogLevel     string
	Environment  string
}

// Load reads configuration from environment variables. Callers are
// expected to have loaded any .env file already.
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:  strings.TrimSpace(os.Getenv("SLACK_BOT_TOKEN")),
		SlackAppToken:  strings.TrimSpace(os.Getenv("SLACK_APP_TOKEN")),
		SlackChannelID: strings.TrimSpace(os.Getenv("SLACK_CHANNEL_ID")),
		Timezone:       getEnv("TIMEZONE", "Africa/Cairo"),
		DatabasePath:   getEnv("DATABASE_PATH", "./adt-bot.db"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:    strings.ToLower(getEnv("ENVIRONMENT", "development")),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is not set")
	}
	if cfg.SlackAppToken == "" {
		return nil, fmt.Errorf("SLACK_APP_TOKEN is not set")
	}
	if cfg.SlackChannelID == "" {
		return nil, fmt.Errorf("SLACK_CHANNEL_ID is not set")
	}

	roster, err := parseRoster(os.Getenv("ROSTER_USER_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.Roster = roster

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	dailyHour, dailyMinute, err := parseClockTime(getEnv("DAILY_REMINDER_TIME", "16:00"), "DAILY_REMINDER_TIME")
	if err != nil {
		return nil, err
	}
	weeklyHour, weeklyMinute, err := parseClockTime(getEnv("WEEKLY_REPORT_TIME", "20:00"), "WEEKLY_REPORT_TIME")
	if err != nil {
		return nil, err
	}
	monthlyHour, monthlyMinute, err := parseClockTime(getEnv("MONTHLY_REPORT_TIME", "10:00"), "MONTHLY_REPORT_TIME")
	if err != nil {
		return nil, err
	}

	weekday, err := parseWeekday(getEnv("WEEKLY_REPORT_WEEKDAY", ""))
	if err != nil {
		return nil, err
	}

	cfg.DailyRule = entity.ScheduleRule{
		Kind:     entity.RuleDaily,
		Hour:     dailyHour,
		Minute:   dailyMinute,
		Location: loc,
	}
	cfg.WeeklyRule = entity.ScheduleRule{
		Kind:     entity.RuleWeekly,
		Weekday:  weekday,
		Hour:     weeklyHour,
		Minute:   weeklyMinute,
		Location: loc,
	}
	cfg.MonthlyRule = entity.ScheduleRule{
		Kind:     entity.RuleMonthlyFirstDay,
		Hour:     monthlyHour,
		Minute:   monthlyMinute,
		Location: loc,
	}

	cfg.WeeklyReportCommand = normalizeCommand(getEnv("WEEKLY_REPORT_COMMAND", "!weekly_report"))
	cfg.MonthlyReportCommand = normalizeCommand(getEnv("MONTHLY_REPORT_COMMAND", "!monthly_report"))
	cfg.ManualReminderCommand = normalizeCommand(getEnv("MANUAL_REMINDER_COMMAND", "!daily_reminder"))
	cfg.ReportHistoryCommand = normalizeCommand(getEnv("REPORT_HISTORY_COMMAND", "!report_history"))

	for name, cmd := range map[string]string{
		"WEEKLY_REPORT_COMMAND":   cfg.WeeklyReportCommand,
		"MONTHLY_REPORT_COMMAND":  cfg.MonthlyReportCommand,
		"MANUAL_REMINDER_COMMAND": cfg.ManualReminderCommand,
		"REPORT_HISTORY_COMMAND":  cfg.ReportHistoryCommand,
	} {
		if cmd == "" {
			return nil, fmt.Errorf("%s cannot be empty", name)
		}
	}

	pattern := getEnv("UPDATE_MESSAGE_PATTERN", `\b(daily\W*updates?|updates?)\b`)
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid UPDATE_MESSAGE_PATTERN %q: %w", pattern, err)
	}
	cfg.UpdatePattern = re

	cfg.Options = entity.ReportOptions{
		OneUpdatePerDay:   parseBool(os.Getenv("ONE_UPDATE_PER_DAY")),
		RankByCount:       parseBool(os.Getenv("RANK_REPORT")),
		IncludeMissedDays: parseBool(os.Getenv("INCLUDE_MISSED_DAYS")),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseRoster(raw string) (entity.Roster, error) {
	var roster entity.Roster
	seen := make(map[string]struct{})

	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("ROSTER_USER_IDS contains duplicate id %q", id)
		}
		seen[id] = struct{}{}
		roster = append(roster, id)
	}

	if len(roster) != domain.RosterSize {
		return nil, fmt.Errorf("ROSTER_USER_IDS must list exactly %d distinct ids, got %d", domain.RosterSize, len(roster))
	}
	return roster, nil
}

func parseClockTime(value, name string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("%s must be in HH:MM format, got %q", name, value)
	}
	return t.Hour(), t.Minute(), nil
}

func parseWeekday(value string) (time.Weekday, error) {
	if value == "" {
		return domain.DefaultWeeklyReportWeekday, nil
	}
	if day, ok := domain.WeekdayByISO[int(value[0]-'0')]; ok && len(value) == 1 {
		return day, nil
	}
	return 0, fmt.Errorf("WEEKLY_REPORT_WEEKDAY must be 1-7 (ISO, 1=Monday), got %q", value)
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func normalizeCommand(cmd string) string {
	return strings.ToLower(strings.TrimSpace(cmd))
}
