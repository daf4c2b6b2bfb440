package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mcalvert/outings-api/internal/database"
	"github.com/mcalvert/outings-api/internal/logger"
	"github.com/mcalvert/outings-api/internal/middleware"
	"github.com/mcalvert/outings-api/internal/models"
)

// GetNotes returns the user's notes, most recently modified first.
func GetNotes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var notes []models.Note
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to load notes")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load notes",
		})
	}

	return c.JSON(notes)
}

func GetNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	var note models.Note
	if err := database.DB.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	return c.JSON(note)
}

func CreateNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	note := models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := database.DB.Create(&note).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to create note")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create note",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventNoteCreated, Data: note})

	return c.Status(fiber.StatusCreated).JSON(note)
}

func UpdateNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	var note models.Note
	if err := database.DB.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	var req models.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	note.Title = req.Title
	note.Content = req.Content
	if err := database.DB.Save(&note).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to update note")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update note",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventNoteUpdated, Data: note})

	return c.JSON(note)
}

// DeleteNote permanently removes a note along with its comments and
// emoticon row.
func DeleteNote(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note ID",
		})
	}

	var note models.Note
	if err := database.DB.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Note not found",
		})
	}

	if err := database.DB.Where("note_id = ?", noteID).Delete(&models.Comment{}).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to delete note comments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete note",
		})
	}
	if err := database.DB.Where("note_id = ?", noteID).Delete(&models.NoteEmoticon{}).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to delete note emoticon")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete note",
		})
	}

	if err := database.DB.Delete(&note).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to delete note")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete note",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventNoteDeleted, Data: fiber.Map{"id": noteID.String()}})

	return c.JSON(fiber.Map{"success": true})
}
