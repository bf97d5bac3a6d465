package slack

import (
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	api "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(t *testing.T) *Gateway {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &Gateway{
		channelID:     "C012345",
		updatePattern: regexp.MustCompile(`(?i)\b(daily\W*updates?|updates?)\b`),
		commandTexts: map[string]struct{}{
			"!weekly_report":  {},
			"!monthly_report": {},
		},
		log: log,
	}
}

func message(user, text, ts string) api.Message {
	msg := api.Message{}
	msg.User = user
	msg.Text = text
	msg.Timestamp = ts
	return msg
}

func TestEventFromMessage(t *testing.T) {
	g := testGateway(t)

	t.Run("update message becomes an event", func(t *testing.T) {
		event, ok := g.eventFromMessage(message("U01", "daily update: shipped the importer", "1705226400.000100"))
		require.True(t, ok)
		assert.Equal(t, "U01", event.AuthorID)
		assert.False(t, event.SystemAuthored)
		assert.True(t, event.Timestamp.Equal(time.Date(2024, 1, 14, 10, 0, 0, 100000, time.UTC)))
	})

	t.Run("pattern matching is case insensitive", func(t *testing.T) {
		_, ok := g.eventFromMessage(message("U01", "Daily Updates posted", "1705226400.000000"))
		assert.True(t, ok)
	})

	t.Run("non-update chatter is not an event", func(t *testing.T) {
		_, ok := g.eventFromMessage(message("U01", "lunch anyone?", "1705226400.000000"))
		assert.False(t, ok)
	})

	t.Run("command text never counts as an update", func(t *testing.T) {
		_, ok := g.eventFromMessage(message("U01", "  !Weekly_Report ", "1705226400.000000"))
		assert.False(t, ok)
	})

	t.Run("bot messages are flagged system authored", func(t *testing.T) {
		msg := message("U01", "daily update", "1705226400.000000")
		msg.BotID = "B0999"
		event, ok := g.eventFromMessage(msg)
		require.True(t, ok)
		assert.True(t, event.SystemAuthored)
	})

	t.Run("subtype messages are flagged system authored", func(t *testing.T) {
		msg := message("U01", "daily update", "1705226400.000000")
		msg.SubType = "message_changed"
		event, ok := g.eventFromMessage(msg)
		require.True(t, ok)
		assert.True(t, event.SystemAuthored)
	})

	t.Run("unparsable timestamp drops the message", func(t *testing.T) {
		_, ok := g.eventFromMessage(message("U01", "daily update", "not-a-ts"))
		assert.False(t, ok)
	})
}

func TestSlackTimestampRoundTrip(t *testing.T) {
	instant := time.Date(2024, 1, 14, 10, 0, 42, 123456000, time.UTC)

	ts := slackTimestamp(instant)
	assert.Equal(t, "1705226442.123456", ts)

	parsed, err := parseSlackTimestamp(ts)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}

func TestParseSlackTimestamp_NoFraction(t *testing.T) {
	parsed, err := parseSlackTimestamp("1705226442")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Unix(1705226442, 0)))
}
