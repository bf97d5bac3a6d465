package slack

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	api "github.com/slack-go/slack"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

const historyPageSize = 200

// FetchEvents pages through conversations.history lazily: the next page
// is only requested as the previous one is drained, so an aggregation
// pass pulls exactly the history it consumes. Bot and system messages
// are yielded flagged rather than dropped; precise [start, end)
// membership is the aggregator's job, the API bounds here are just a
// fetch optimization.
func (g *Gateway) FetchEvents(ctx context.Context, start, end time.Time) iter.Seq2[entity.Event, error] {
	return func(yield func(entity.Event, error) bool) {
		params := &api.GetConversationHistoryParameters{
			ChannelID: g.channelID,
			Oldest:    slackTimestamp(start),
			Latest:    slackTimestamp(end),
			Limit:     historyPageSize,
			Inclusive: true,
		}

		for {
			resp, err := g.api.GetConversationHistoryContext(ctx, params)
			if err != nil {
				yield(entity.Event{}, fmt.Errorf("conversations.history for channel %s: %w", g.channelID, err))
				return
			}

			for _, msg := range resp.Messages {
				event, ok := g.eventFromMessage(msg)
				if !ok {
					continue
				}
				if !yield(event, nil) {
					return
				}
			}

			if !resp.HasMore || resp.ResponseMetaData.NextCursor == "" {
				return
			}
			params.Cursor = resp.ResponseMetaData.NextCursor
		}
	}
}

// eventFromMessage converts one history message to a domain event.
// Command texts and messages that don't look like updates are not
// events at all.
func (g *Gateway) eventFromMessage(msg api.Message) (entity.Event, bool) {
	normalized := strings.ToLower(strings.TrimSpace(msg.Text))
	if _, isCommand := g.commandTexts[normalized]; isCommand {
		return entity.Event{}, false
	}
	if !g.updatePattern.MatchString(msg.Text) {
		return entity.Event{}, false
	}

	ts, err := parseSlackTimestamp(msg.Timestamp)
	if err != nil {
		g.log.WithError(err).WithField("ts", msg.Timestamp).Warn("skipping message with unparsable timestamp")
		return entity.Event{}, false
	}

	return entity.Event{
		AuthorID:       msg.User,
		Timestamp:      ts,
		SystemAuthored: msg.BotID != "" || msg.SubType != "",
	}, true
}

// slackTimestamp renders t in Slack's "seconds.microseconds" form.
func slackTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

func parseSlackTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slack timestamp %q: %w", ts, err)
	}

	var micro int64
	if fracPart != "" {
		padded := (fracPart + "000000")[:6]
		micro, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid slack timestamp %q: %w", ts, err)
		}
	}

	return time.Unix(sec, micro*1000).UTC(), nil
}
