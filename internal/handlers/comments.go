package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mcalvert/outings-api/internal/database"
	"github.com/mcalvert/outings-api/internal/logger"
	"github.com/mcalvert/outings-api/internal/middleware"
	"github.com/mcalvert/outings-api/internal/models"
)

// GetNoteComments returns the note's comments as a reply tree. The tree
// is rebuilt from the flat parent-reference rows on every load.
func GetNoteComments(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	if _, err := findNote(noteID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	var comments []models.Comment
	if err := database.DB.
		Where("note_id = ?", noteID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to load comments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load comments",
		})
	}

	return c.JSON(models.BuildThread(comments))
}

// AddComment adds a comment to a note, optionally as a reply to an
// existing comment on the same note.
func AddComment(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	if _, err := findNote(noteID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Comment content is required",
		})
	}

	var parentID *uuid.UUID
	if req.ParentID != nil && *req.ParentID != "" {
		pid, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid parent comment ID",
			})
		}
		var parent models.Comment
		if err := database.DB.Where("id = ? AND note_id = ?", pid, noteID).First(&parent).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Parent comment not found on this note",
			})
		}
		parentID = &pid
	}

	comment := models.Comment{
		NoteID:     noteID,
		ParentID:   parentID,
		Content:    req.Content,
		AuthorName: req.AuthorName,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to add comment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add comment",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventCommentAdded, Data: comment})

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func UpdateComment(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comment ID",
		})
	}

	comment, err := findUserComment(commentID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comment not found",
		})
	}

	var req models.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Comment content is required",
		})
	}

	comment.Content = req.Content
	if err := database.DB.Save(comment).Error; err != nil {
		logger.Log.Error().Err(err).Str("commentId", commentID.String()).Msg("failed to update comment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update comment",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventCommentUpdated, Data: comment})

	return c.JSON(comment)
}

// DeleteComment removes a comment and every reply beneath it, so the flat
// store never holds a child pointing at a missing parent.
func DeleteComment(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	commentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comment ID",
		})
	}

	comment, err := findUserComment(commentID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comment not found",
		})
	}

	ids, err := subtreeIDs(comment.NoteID, commentID)
	if err != nil {
		logger.Log.Error().Err(err).Str("commentId", commentID.String()).Msg("failed to collect comment replies")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete comment",
		})
	}
	if err := database.DB.Where("id IN ?", ids).Delete(&models.Comment{}).Error; err != nil {
		logger.Log.Error().Err(err).Str("commentId", commentID.String()).Msg("failed to delete comment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete comment",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventCommentDeleted, Data: fiber.Map{"id": commentID.String()}})

	return c.JSON(fiber.Map{"success": true})
}

// subtreeIDs collects a comment and all its descendants within a note
// from the flat parent-reference rows. A failed load aborts the whole
// delete; removing only part of the subtree would leave replies pointing
// at a missing parent.
func subtreeIDs(noteID, rootID uuid.UUID) ([]uuid.UUID, error) {
	var all []models.Comment
	if err := database.DB.Where("note_id = ?", noteID).Find(&all).Error; err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]uuid.UUID)
	for _, c := range all {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []uuid.UUID{rootID}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, children[ids[i]]...)
	}
	return ids, nil
}

func findNote(noteID, userID uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := database.DB.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// findUserComment loads a comment and checks that its note belongs to the
// requesting user.
func findUserComment(commentID, userID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := database.DB.First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	if _, err := findNote(comment.NoteID, userID); err != nil {
		return nil, err
	}
	return &comment, nil
}
