package contract

import (
	"context"
	"iter"
	"time"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

// EventSource streams authored events from the tracked channel. The
// sequence is lazy and consumed exactly once per aggregation pass, so an
// implementation may page through a remote API as it is drained. A fetch
// or permission failure surfaces as the yielded error, not a panic.
type EventSource interface {
	FetchEvents(ctx context.Context, start, end time.Time) iter.Seq2[entity.Event, error]
}

// OutputSink posts formatted text to the single configured destination.
// Failures (missing permission, timeout) are returned, never thrown past
// the caller's cycle boundary.
type OutputSink interface {
	Post(ctx context.Context, text string) error
}

// InboundMessage is a channel message delivered to the on-demand command
// path.
type InboundMessage struct {
	Text           string
	AuthorID       string
	SystemAuthored bool
	ChannelID      string
}
