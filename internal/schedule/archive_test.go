package schedule

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalvert/outings-api/internal/models"
)

func TestCompletePatch_SetsArchiveAndClearsSchedule(t *testing.T) {
	patch := CompletePatch(Date{Year: 2024, Month: 2, Day: 1}, nil, "great trip")

	assert.Equal(t, true, patch["is_archived"])
	assert.Equal(t, "2024-02-01", patch["completed_date"])
	assert.Nil(t, patch["completed_time"])
	assert.Equal(t, "great trip", patch["archive_notes"])
	assert.Nil(t, patch["scheduled_date"])
	assert.Nil(t, patch["scheduled_time"])
}

func TestCompletePatch_WithCompletionTime(t *testing.T) {
	clock := "14:30"
	patch := CompletePatch(Date{Year: 2024, Month: 2, Day: 1}, &clock, "")

	assert.Equal(t, "14:30", patch["completed_time"])
	assert.Equal(t, "", patch["archive_notes"])
}

func TestCompletePatch_EmptyClockTreatedAsAbsent(t *testing.T) {
	clock := ""
	patch := CompletePatch(Date{Year: 2024, Month: 2, Day: 1}, &clock, "")

	assert.Nil(t, patch["completed_time"])
}

// A completed activity must drop out of the active views once its patch
// is applied.
func TestCompletePatch_ArchivedRecordLeavesActiveViews(t *testing.T) {
	a := named("trip")
	a.ScheduledDate = strPtr("2024-01-15")
	a.ScheduledTime = strPtr("09:00")

	patch := CompletePatch(Date{Year: 2024, Month: 2, Day: 1}, nil, "done")

	// Mirror what the stored row looks like after the single update.
	archived := a
	archived.IsArchived = boolPtr(patch["is_archived"].(bool))
	d := patch["completed_date"].(string)
	archived.CompletedDate = &d
	archived.ScheduledDate = nil
	archived.ScheduledTime = nil

	require.True(t, archived.Archived())
	assert.False(t, archived.IsScheduled())
	assert.Empty(t, Project([]models.Activity{archived}, zerolog.Nop()))
}
