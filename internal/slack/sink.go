package slack

import (
	"context"
	"fmt"

	api "github.com/slack-go/slack"
)

// Post sends text to the configured channel. A failure (revoked scope,
// archived channel, timeout) comes back as an error for the caller's
// cycle to log and abandon.
func (g *Gateway) Post(ctx context.Context, text string) error {
	_, _, err := g.api.PostMessageContext(ctx, g.channelID, api.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("chat.postMessage to channel %s: %w", g.channelID, err)
	}
	return nil
}
