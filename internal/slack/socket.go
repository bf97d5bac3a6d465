package slack

import (
	"context"

	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/zeyaad-amr/adt-bot/internal/domain/contract"
)

// Run connects to Slack over Socket Mode and delivers every channel
// message to handle. It blocks until ctx is canceled or the connection
// is lost for good. Channel and command filtering belong to the
// handler; this loop only translates events.
func (g *Gateway) Run(ctx context.Context, handle func(ctx context.Context, msg contract.InboundMessage)) error {
	go g.dispatchEvents(ctx, handle)
	return g.socket.RunContext(ctx)
}

func (g *Gateway) dispatchEvents(ctx context.Context, handle func(ctx context.Context, msg contract.InboundMessage)) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-g.socket.Events:
			if !ok {
				return
			}

			switch evt.Type {
			case socketmode.EventTypeEventsAPI:
				apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
				if !ok {
					continue
				}
				if evt.Request != nil {
					g.socket.Ack(*evt.Request)
				}
				if apiEvent.Type != slackevents.CallbackEvent {
					continue
				}

				msgEvent, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent)
				if !ok {
					continue
				}

				handle(ctx, contract.InboundMessage{
					Text:           msgEvent.Text,
					AuthorID:       msgEvent.User,
					SystemAuthored: msgEvent.BotID != "" || msgEvent.SubType != "",
					ChannelID:      msgEvent.Channel,
				})

			case socketmode.EventTypeConnectionError:
				g.log.Warn("socket mode connection error, client will retry")
			}
		}
	}
}
