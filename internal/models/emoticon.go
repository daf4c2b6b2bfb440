package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Emoticon struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Emoji     string    `json:"emoji" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Emoticon) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NoteEmoticon attaches a single emoticon to a note. The note_id unique
// index enforces at most one per note; setting a new one replaces the row.
type NoteEmoticon struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	NoteID     uuid.UUID  `json:"note_id" gorm:"type:uuid;uniqueIndex;not null"`
	EmoticonID uuid.UUID  `json:"emoticon_id" gorm:"type:uuid;not null"`
	UserID     *uuid.UUID `json:"user_id" gorm:"type:uuid"`
	CreatedAt  time.Time  `json:"created_at"`

	Emoticon Emoticon `json:"emoticon,omitempty" gorm:"foreignKey:EmoticonID"`
}

func (ne *NoteEmoticon) BeforeCreate(tx *gorm.DB) error {
	if ne.ID == uuid.Nil {
		ne.ID = uuid.New()
	}
	return nil
}

type SetNoteEmoticonRequest struct {
	EmoticonID string `json:"emoticon_id"`
}
