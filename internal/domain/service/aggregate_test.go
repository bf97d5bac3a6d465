package service

import (
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeyaad-amr/adt-bot/internal/domain/entity"
)

var testRoster = entity.Roster{"U01", "U02", "U03", "U04", "U05", "U06"}

func eventSeq(events []entity.Event) iter.Seq2[entity.Event, error] {
	return func(yield func(entity.Event, error) bool) {
		for _, e := range events {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func failingSeq(events []entity.Event, err error) iter.Seq2[entity.Event, error] {
	return func(yield func(entity.Event, error) bool) {
		for _, e := range events {
			if !yield(e, nil) {
				return
			}
		}
		yield(entity.Event{}, err)
	}
}

func eventAt(author string, ts time.Time) entity.Event {
	return entity.Event{AuthorID: author, Timestamp: ts}
}

func weekRange() entity.DateRange {
	return entity.DateRange{
		Start: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregateEvents_OneEventPerUserExceptLast(t *testing.T) {
	rng := weekRange()
	var events []entity.Event
	for i, id := range testRoster[:5] {
		events = append(events, eventAt(id, rng.Start.Add(time.Duration(i)*time.Hour)))
	}

	agg, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{})
	require.NoError(t, err)

	require.Len(t, agg.Members, 6)
	for _, id := range testRoster[:5] {
		assert.Equal(t, 1, agg.Members[id].Count, "member %s", id)
	}
	assert.Equal(t, 0, agg.Members["U06"].Count)
	assert.Equal(t, 5, agg.Total)
}

func TestAggregateEvents_EmptySequence(t *testing.T) {
	agg, err := AggregateEvents(eventSeq(nil), weekRange(), testRoster, entity.ReportOptions{IncludeMissedDays: true})
	require.NoError(t, err)

	assert.Equal(t, 0, agg.Total)
	require.Len(t, agg.Members, 6)
	for _, id := range testRoster {
		stats := agg.Members[id]
		assert.Equal(t, 0, stats.Count)
		assert.Empty(t, stats.ActiveDays)
		assert.Len(t, stats.MissedDays, 7)
	}
}

func TestAggregateEvents_OneUpdatePerDayDedupe(t *testing.T) {
	rng := weekRange()
	day := rng.Start.Add(9 * time.Hour)
	events := []entity.Event{
		eventAt("U01", day),
		eventAt("U01", day.Add(time.Hour)),
		eventAt("U01", day.Add(2*time.Hour)),
	}

	raw, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, raw.Members["U01"].Count)

	deduped, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{OneUpdatePerDay: true})
	require.NoError(t, err)
	assert.Equal(t, 1, deduped.Members["U01"].Count)
	assert.Equal(t, 1, deduped.Total)
	assert.Len(t, deduped.Members["U01"].ActiveDays, 1)
}

func TestAggregateEvents_RangeBoundaries(t *testing.T) {
	rng := weekRange()
	events := []entity.Event{
		eventAt("U01", rng.Start),                     // exactly at start: included
		eventAt("U02", rng.End),                       // exactly at end: excluded
		eventAt("U03", rng.Start.Add(-time.Second)),   // before start: excluded
		eventAt("U04", rng.End.Add(-time.Nanosecond)), // just inside: included
	}

	agg, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, agg.Members["U01"].Count)
	assert.Equal(t, 0, agg.Members["U02"].Count)
	assert.Equal(t, 0, agg.Members["U03"].Count)
	assert.Equal(t, 1, agg.Members["U04"].Count)
	assert.Equal(t, 2, agg.Total)
}

func TestAggregateEvents_SkipsSystemAndUnknownAuthors(t *testing.T) {
	rng := weekRange()
	ts := rng.Start.Add(time.Hour)
	events := []entity.Event{
		{AuthorID: "U01", Timestamp: ts, SystemAuthored: true},
		eventAt("UNKNOWN", ts),
		eventAt("U02", ts),
	}

	agg, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, agg.Members["U01"].Count)
	assert.Equal(t, 1, agg.Members["U02"].Count)
	assert.Equal(t, 1, agg.Total)
	assert.NotContains(t, agg.Members, "UNKNOWN")
}

func TestAggregateEvents_MissedDays(t *testing.T) {
	rng := weekRange()
	events := []entity.Event{
		eventAt("U01", rng.Start.Add(10*time.Hour)),   // Jan 7
		eventAt("U01", rng.Start.Add(3*24*time.Hour)), // Jan 10
		eventAt("U01", rng.Start.Add(3*24*time.Hour+time.Hour)),
	}

	agg, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{IncludeMissedDays: true})
	require.NoError(t, err)

	stats := agg.Members["U01"]
	assert.Len(t, stats.ActiveDays, 2)
	assert.Len(t, stats.MissedDays, 5)
	assert.Contains(t, stats.ActiveDays, entity.Date{Year: 2024, Month: time.January, Day: 10})
	assert.Contains(t, stats.MissedDays, entity.Date{Year: 2024, Month: time.January, Day: 8})
	assert.NotContains(t, stats.MissedDays, entity.Date{Year: 2024, Month: time.January, Day: 7})
}

func TestAggregateEvents_ActiveDaysUseRangeTimezone(t *testing.T) {
	cairo, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)

	rng := entity.DateRange{
		Start: time.Date(2024, 1, 7, 0, 0, 0, 0, cairo),
		End:   time.Date(2024, 1, 14, 0, 0, 0, 0, cairo),
	}

	// 23:00 UTC on Jan 8 is already Jan 9 in Cairo (UTC+2).
	agg, err := AggregateEvents(eventSeq([]entity.Event{
		eventAt("U01", time.Date(2024, 1, 8, 23, 0, 0, 0, time.UTC)),
	}), rng, testRoster, entity.ReportOptions{})
	require.NoError(t, err)

	assert.Contains(t, agg.Members["U01"].ActiveDays, entity.Date{Year: 2024, Month: time.January, Day: 9})
}

func TestAggregateEvents_Idempotent(t *testing.T) {
	rng := weekRange()
	events := []entity.Event{
		eventAt("U01", rng.Start.Add(time.Hour)),
		eventAt("U02", rng.Start.Add(2*time.Hour)),
		eventAt("U02", rng.Start.Add(26*time.Hour)),
	}
	opts := entity.ReportOptions{OneUpdatePerDay: true, IncludeMissedDays: true}

	first, err := AggregateEvents(eventSeq(events), rng, testRoster, opts)
	require.NoError(t, err)
	second, err := AggregateEvents(eventSeq(events), rng, testRoster, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateEvents_SourceFailureMidScan(t *testing.T) {
	rng := weekRange()
	sourceErr := errors.New("rate limited")

	agg, err := AggregateEvents(failingSeq([]entity.Event{
		eventAt("U01", rng.Start.Add(time.Hour)),
	}, sourceErr), rng, testRoster, entity.ReportOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, sourceErr)
	assert.Nil(t, agg)
}

func TestAggregateEvents_CountSumBound(t *testing.T) {
	rng := weekRange()
	events := []entity.Event{
		eventAt("U01", rng.Start.Add(time.Hour)),
		eventAt("U01", rng.Start.Add(2*time.Hour)),
		eventAt("U03", rng.Start.Add(25*time.Hour)),
		{AuthorID: "U04", Timestamp: rng.Start.Add(time.Hour), SystemAuthored: true},
		eventAt("U05", rng.End.Add(time.Hour)), // out of range
	}
	qualifying := 3

	raw, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{})
	require.NoError(t, err)
	assert.Equal(t, qualifying, raw.Total)

	deduped, err := AggregateEvents(eventSeq(events), rng, testRoster, entity.ReportOptions{OneUpdatePerDay: true})
	require.NoError(t, err)
	assert.LessOrEqual(t, deduped.Total, qualifying)
	assert.Equal(t, 2, deduped.Total)
}
