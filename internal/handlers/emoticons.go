package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mcalvert/outings-api/internal/database"
	"github.com/mcalvert/outings-api/internal/logger"
	"github.com/mcalvert/outings-api/internal/middleware"
	"github.com/mcalvert/outings-api/internal/models"
)

// GetEmoticons returns the fixed reaction palette, alphabetical by name.
func GetEmoticons(c *fiber.Ctx) error {
	var emoticons []models.Emoticon
	if err := database.DB.Order("name ASC").Find(&emoticons).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to load emoticons")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load emoticons",
		})
	}

	return c.JSON(emoticons)
}

// GetNoteEmoticon returns the emoticon attached to a note, or null.
func GetNoteEmoticon(c *fiber.Ctx) error {
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

	var ne models.NoteEmoticon
	if err := database.DB.Where("note_id = ?", noteID).Preload("Emoticon").First(&ne).Error; err != nil {
		return c.JSON(nil)
	}

	return c.JSON(ne)
}

// SetNoteEmoticon replaces whatever emoticon a note carries. A note holds
// at most one emoticon, so this is a delete-then-insert.
func SetNoteEmoticon(c *fiber.Ctx) error {
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

	var req models.SetNoteEmoticonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	emoticonID, err := uuid.Parse(req.EmoticonID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid emoticon ID",
		})
	}

	var emoticon models.Emoticon
	if err := database.DB.First(&emoticon, emoticonID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Emoticon not found",
		})
	}

	if err := database.DB.Where("note_id = ?", noteID).Delete(&models.NoteEmoticon{}).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to replace note emoticon")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to set emoticon",
		})
	}

	ne := models.NoteEmoticon{
		NoteID:     noteID,
		EmoticonID: emoticonID,
		UserID:     &userID,
	}
	if err := database.DB.Create(&ne).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to set note emoticon")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to set emoticon",
		})
	}

	// The emoticon was loaded above for validation; attach it directly
	// instead of re-reading the joined row.
	ne.Emoticon = emoticon

	return c.Status(fiber.StatusCreated).JSON(ne)
}

// RemoveNoteEmoticon clears the note's emoticon if one is set.
func RemoveNoteEmoticon(c *fiber.Ctx) error {
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

	if err := database.DB.Where("note_id = ?", noteID).Delete(&models.NoteEmoticon{}).Error; err != nil {
		logger.Log.Error().Err(err).Str("noteId", noteID.String()).Msg("failed to remove note emoticon")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove emoticon",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
