package entity

import "time"

// Event is a single authored message observed in the tracked channel.
// Events are read-only: the aggregator consumes them in one pass and
// never stores them beyond the current report cycle.
type Event struct {
	AuthorID       string
	Timestamp      time.Time
	SystemAuthored bool
}
