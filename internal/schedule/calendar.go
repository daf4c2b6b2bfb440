package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mcalvert/outings-api/internal/models"
)

// EventDuration is the fixed display length of a calendar event. The
// system does not model activity duration.
const EventDuration = time.Hour

// Event is a calendar-displayable projection of a scheduled activity.
type Event struct {
	ActivityID uuid.UUID `json:"activityId"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Project maps each active activity with a scheduled date into a display
// event. Archived activities and activities without a scheduled_date are
// excluded. The projection is idempotent and never mutates its input;
// malformed fields demote an activity rather than failing the whole view:
// a bad scheduled_time falls back to noon, a bad scheduled_date drops the
// activity as unscheduled. Both are logged.
func Project(list []models.Activity, log zerolog.Logger) []Event {
	events := make([]Event, 0, len(list))
	for i := range list {
		a := &list[i]
		if a.Archived() || !a.IsScheduled() {
			continue
		}

		date, err := ParseDate(*a.ScheduledDate)
		if err != nil {
			log.Warn().
				Str("activityId", a.ID.String()).
				Str("scheduledDate", *a.ScheduledDate).
				Msg("skipping activity with malformed scheduled_date")
			continue
		}

		hour, minute := DefaultHour, 0
		if a.ScheduledTime != nil && *a.ScheduledTime != "" {
			h, m, err := ParseClock(*a.ScheduledTime)
			if err != nil {
				log.Warn().
					Str("activityId", a.ID.String()).
					Str("scheduledTime", *a.ScheduledTime).
					Msg("malformed scheduled_time, rendering at noon")
			} else {
				hour, minute = h, m
			}
		}

		title := a.Name
		if a.Location != nil && *a.Location != "" {
			title += " - " + *a.Location
		}

		start := date.At(hour, minute)
		events = append(events, Event{
			ActivityID: a.ID,
			Title:      title,
			Start:      start,
			End:        start.Add(EventDuration),
		})
	}
	return events
}

// InRange filters activities whose scheduled_date falls within [from, to]
// inclusive. Comparison happens on the canonical date key, never through a
// timestamp, so the window is a pure wall-clock one.
func InRange(list []models.Activity, from, to Date) []models.Activity {
	lo, hi := from.String(), to.String()
	out := make([]models.Activity, 0, len(list))
	for _, a := range list {
		if a.Archived() || !a.IsScheduled() {
			continue
		}
		if d := *a.ScheduledDate; d >= lo && d <= hi {
			out = append(out, a)
		}
	}
	return out
}
