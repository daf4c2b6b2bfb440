package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Name          string    `json:"name" gorm:"not null"`
	Location      *string   `json:"location"`
	Distance      *float64  `json:"distance"`
	Details       *string   `json:"details"`
	Notes         *string   `json:"notes"`
	ScheduledDate *string   `json:"scheduled_date" gorm:"column:scheduled_date"` // YYYY-MM-DD, plain calendar date
	ScheduledTime *string   `json:"scheduled_time" gorm:"column:scheduled_time"` // HH:MM, 24-hour
	IsArchived    *bool     `json:"is_archived" gorm:"column:is_archived;index"` // null = active, true = archived
	ArchiveNotes  *string   `json:"archive_notes" gorm:"column:archive_notes"`
	CompletedDate *string   `json:"completed_date" gorm:"column:completed_date"`
	CompletedTime *string   `json:"completed_time" gorm:"column:completed_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Archived reports whether the activity has been marked completed.
// is_archived is a null/true tri-state column; anything else is active.
func (a *Activity) Archived() bool {
	return a.IsArchived != nil && *a.IsArchived
}

// IsScheduled reports whether the activity carries a calendar date.
// A scheduled_time without a scheduled_date does not count as scheduled.
func (a *Activity) IsScheduled() bool {
	return a.ScheduledDate != nil && *a.ScheduledDate != ""
}

// IsEnriched reports whether any attribute beyond the name is populated:
// a non-empty location, a positive distance, details, or notes.
func (a *Activity) IsEnriched() bool {
	if a.Location != nil && strings.TrimSpace(*a.Location) != "" {
		return true
	}
	if a.Distance != nil && *a.Distance > 0 {
		return true
	}
	if a.Details != nil && strings.TrimSpace(*a.Details) != "" {
		return true
	}
	if a.Notes != nil && strings.TrimSpace(*a.Notes) != "" {
		return true
	}
	return false
}

type ActivityRequest struct {
	Name          string   `json:"name"`
	Location      *string  `json:"location"`
	Distance      *float64 `json:"distance"`
	Details       *string  `json:"details"`
	Notes         *string  `json:"notes"`
	ScheduledDate *string  `json:"scheduled_date"`
	ScheduledTime *string  `json:"scheduled_time"`
}

type CompleteActivityRequest struct {
	CompletionDate string  `json:"completion_date"`
	CompletionTime *string `json:"completion_time"`
	ArchiveNotes   string  `json:"archive_notes"`
}
