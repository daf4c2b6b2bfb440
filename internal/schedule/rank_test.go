package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalvert/outings-api/internal/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func at(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func named(name string) models.Activity {
	return models.Activity{ID: uuid.New(), Name: name}
}

func names(list []models.Activity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Name
	}
	return out
}

func TestSortActive_ScheduledByDateAscending(t *testing.T) {
	a := named("a")
	a.ScheduledDate = strPtr("2024-01-10")
	b := named("b")
	b.ScheduledDate = strPtr("2024-01-05")

	list := []models.Activity{a, b}
	SortActive(list)

	assert.Equal(t, []string{"b", "a"}, names(list))
}

func TestSortActive_TimeBreaksSameDateTies(t *testing.T) {
	early := named("early")
	early.ScheduledDate = strPtr("2024-01-10")
	early.ScheduledTime = strPtr("08:00")
	late := named("late")
	late.ScheduledDate = strPtr("2024-01-10")
	late.ScheduledTime = strPtr("17:30")
	dateOnly := named("dateOnly")
	dateOnly.ScheduledDate = strPtr("2024-01-10")

	list := []models.Activity{late, early, dateOnly}
	SortActive(list)

	// A date-only activity precedes timed ones on the same day.
	assert.Equal(t, []string{"dateOnly", "early", "late"}, names(list))
}

func TestSortActive_ScheduledBeforeUnscheduled(t *testing.T) {
	scheduled := named("scheduled")
	scheduled.ScheduledDate = strPtr("2099-12-31")
	unscheduled := named("x")
	unscheduled.Location = strPtr("Park")
	unscheduled.Distance = f64Ptr(12)
	unscheduled.UpdatedAt = at("2024-06-01T00:00:00Z")

	list := []models.Activity{unscheduled, scheduled}
	SortActive(list)

	// Scheduled wins unconditionally, however enriched the other one is.
	assert.Equal(t, []string{"scheduled", "x"}, names(list))
}

func TestSortActive_EnrichedByUpdatedAtDescending(t *testing.T) {
	older := named("older")
	older.Details = strPtr("bring water")
	older.UpdatedAt = at("2024-01-01T10:00:00Z")
	newer := named("newer")
	newer.Notes = strPtr("check forecast")
	newer.UpdatedAt = at("2024-02-01T10:00:00Z")

	list := []models.Activity{older, newer}
	SortActive(list)

	assert.Equal(t, []string{"newer", "older"}, names(list))
}

func TestSortActive_EnrichedBeforeBare(t *testing.T) {
	enriched := named("enriched")
	enriched.Location = strPtr("Park")
	enriched.UpdatedAt = at("2024-01-01T00:00:00Z")
	bare := named("bare")
	bare.CreatedAt = at("2024-06-01T00:00:00Z")

	list := []models.Activity{bare, enriched}
	SortActive(list)

	assert.Equal(t, []string{"enriched", "bare"}, names(list))
}

func TestSortActive_BareByCreatedAtDescending(t *testing.T) {
	first := named("first")
	first.CreatedAt = at("2024-01-01T00:00:00Z")
	second := named("second")
	second.CreatedAt = at("2024-03-01T00:00:00Z")

	list := []models.Activity{first, second}
	SortActive(list)

	assert.Equal(t, []string{"second", "first"}, names(list))
}

func TestSortActive_ZeroDistanceIsNotEnriched(t *testing.T) {
	zero := named("zero")
	zero.Distance = f64Ptr(0)
	zero.CreatedAt = at("2024-05-01T00:00:00Z")
	enriched := named("enriched")
	enriched.Distance = f64Ptr(3.5)
	enriched.UpdatedAt = at("2024-01-01T00:00:00Z")

	list := []models.Activity{zero, enriched}
	SortActive(list)

	assert.Equal(t, []string{"enriched", "zero"}, names(list))
}

func TestSortActive_StableForEqualRank(t *testing.T) {
	// Same schedule key, distinct input orders: equal-rank elements must
	// keep whatever order they arrived in.
	mk := func(name string) models.Activity {
		a := named(name)
		a.ScheduledDate = strPtr("2024-04-01")
		a.ScheduledTime = strPtr("10:00")
		return a
	}

	list := []models.Activity{mk("p"), mk("q"), mk("r")}
	SortActive(list)
	require.Equal(t, []string{"p", "q", "r"}, names(list))

	list = []models.Activity{mk("r"), mk("p"), mk("q")}
	SortActive(list)
	require.Equal(t, []string{"r", "p", "q"}, names(list))
}

func TestSortActive_FullHierarchy(t *testing.T) {
	soon := named("soon")
	soon.ScheduledDate = strPtr("2024-01-05")
	later := named("later")
	later.ScheduledDate = strPtr("2024-01-10")
	enriched := named("enriched")
	enriched.Location = strPtr("Trailhead")
	enriched.UpdatedAt = at("2024-02-01T00:00:00Z")
	bareNew := named("bareNew")
	bareNew.CreatedAt = at("2024-03-01T00:00:00Z")
	bareOld := named("bareOld")
	bareOld.CreatedAt = at("2024-01-01T00:00:00Z")

	list := []models.Activity{bareOld, later, enriched, bareNew, soon}
	SortActive(list)

	assert.Equal(t, []string{"soon", "later", "enriched", "bareNew", "bareOld"}, names(list))
}

func TestSortActive_DoesNotMutateFields(t *testing.T) {
	a := named("a")
	a.ScheduledDate = strPtr("2024-01-05")
	b := named("b")

	list := []models.Activity{b, a}
	SortActive(list)

	assert.Equal(t, "2024-01-05", *list[0].ScheduledDate)
	assert.Nil(t, list[1].ScheduledDate)
}
