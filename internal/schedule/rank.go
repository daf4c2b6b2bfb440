package schedule

import (
	"sort"

	"github.com/mcalvert/outings-api/internal/models"
)

// SortActive orders an active activity list for display. The tie-break
// hierarchy, first applicable rule wins:
//
//  1. both scheduled: earlier scheduled_date first, then earlier
//     scheduled_time (a date-only activity sorts ahead of a timed one on
//     the same day);
//  2. one scheduled: the scheduled one first, unconditionally;
//  3. neither scheduled, both enriched: updated_at descending;
//  4. one enriched: the enriched one first;
//  5. both bare: created_at descending.
//
// The sort is stable, so equal-rank activities keep their input order.
// The slice is reordered in place; nothing else is touched.
func SortActive(list []models.Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		return activityLess(&list[i], &list[j])
	})
}

func activityLess(a, b *models.Activity) bool {
	switch {
	case a.IsScheduled() && b.IsScheduled():
		ka, kb := scheduleKey(a), scheduleKey(b)
		return ka < kb
	case a.IsScheduled() != b.IsScheduled():
		return a.IsScheduled()
	case a.IsEnriched() && b.IsEnriched():
		return a.UpdatedAt.After(b.UpdatedAt)
	case a.IsEnriched() != b.IsEnriched():
		return a.IsEnriched()
	default:
		return a.CreatedAt.After(b.CreatedAt)
	}
}

// scheduleKey produces a lexicographically comparable "date time" key.
// The canonical YYYY-MM-DD and HH:MM encodings sort correctly as strings;
// a missing or malformed time yields the bare date, which sorts first.
func scheduleKey(a *models.Activity) string {
	key := *a.ScheduledDate
	if a.ScheduledTime != nil && *a.ScheduledTime != "" {
		if _, _, err := ParseClock(*a.ScheduledTime); err == nil {
			key += " " + *a.ScheduledTime
		}
	}
	return key
}
