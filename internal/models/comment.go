package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to exactly one note and may reference a parent comment.
// Comments are stored flat; the nested reply view is derived on every load
// via BuildThread and never persisted.
type Comment struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	NoteID     uuid.UUID  `json:"note_id" gorm:"type:uuid;index;not null"`
	ParentID   *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	AuthorName string     `json:"author_name"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Replies []Comment `json:"replies,omitempty" gorm:"-"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BuildThread reconstructs the reply tree from a flat parent-reference list.
// Roots and children keep the input order. A comment whose parent is not in
// the list is promoted to a root rather than dropped.
func BuildThread(flat []Comment) []Comment {
	known := make(map[uuid.UUID]bool, len(flat))
	for _, c := range flat {
		known[c.ID] = true
	}

	children := make(map[uuid.UUID][]Comment)
	var topLevel []Comment
	for _, c := range flat {
		c.Replies = nil
		if c.ParentID != nil && *c.ParentID != c.ID && known[*c.ParentID] {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		} else {
			topLevel = append(topLevel, c)
		}
	}

	var attach func(c Comment) Comment
	attach = func(c Comment) Comment {
		for _, child := range children[c.ID] {
			c.Replies = append(c.Replies, attach(child))
		}
		return c
	}

	roots := make([]Comment, 0, len(topLevel))
	for _, r := range topLevel {
		roots = append(roots, attach(r))
	}
	return roots
}

type CreateCommentRequest struct {
	Content    string  `json:"content"`
	AuthorName string  `json:"author_name"`
	ParentID   *string `json:"parent_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}
