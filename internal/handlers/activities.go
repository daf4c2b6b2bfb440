package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mcalvert/outings-api/internal/database"
	"github.com/mcalvert/outings-api/internal/logger"
	"github.com/mcalvert/outings-api/internal/middleware"
	"github.com/mcalvert/outings-api/internal/models"
	"github.com/mcalvert/outings-api/internal/schedule"
)

// GetActivities returns the user's active activities in display order.
func GetActivities(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var activities []models.Activity
	if err := database.DB.
		Where("user_id = ? AND (is_archived IS NULL OR is_archived = ?)", userID, false).
		Find(&activities).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to load activities")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load activities",
		})
	}

	schedule.SortActive(activities)
	return c.JSON(activities)
}

// GetArchivedActivities returns completed activities, most recently
// modified first.
func GetArchivedActivities(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var activities []models.Activity
	if err := database.DB.
		Where("user_id = ? AND is_archived = ?", userID, true).
		Order("updated_at DESC").
		Find(&activities).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to load archived activities")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load archived activities",
		})
	}

	return c.JSON(activities)
}

// GetUpcomingActivities returns active activities scheduled within the
// next N days (default 7), soonest first.
func GetUpcomingActivities(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid days parameter",
		})
	}

	var activities []models.Activity
	if err := database.DB.
		Where("user_id = ? AND (is_archived IS NULL OR is_archived = ?)", userID, false).
		Find(&activities).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to load upcoming activities")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load activities",
		})
	}

	today := schedule.Today()
	upcoming := schedule.InRange(activities, today, today.AddDays(days))
	schedule.SortActive(upcoming)
	return c.JSON(upcoming)
}

// GetCalendar projects the user's active scheduled activities into
// calendar display events.
func GetCalendar(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var activities []models.Activity
	if err := database.DB.
		Where("user_id = ? AND (is_archived IS NULL OR is_archived = ?)", userID, false).
		Find(&activities).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to load calendar activities")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load activities",
		})
	}

	return c.JSON(schedule.Project(activities, logger.Log))
}

func GetActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid activity ID",
		})
	}

	var activity models.Activity
	if err := database.DB.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Activity not found",
		})
	}

	return c.JSON(activity)
}

func CreateActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	date, clock, err := normalizeSchedule(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	activity := models.Activity{
		UserID:        userID,
		Name:          req.Name,
		Location:      req.Location,
		Distance:      req.Distance,
		Details:       req.Details,
		Notes:         req.Notes,
		ScheduledDate: date,
		ScheduledTime: clock,
	}
	if err := database.DB.Create(&activity).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to create activity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create activity",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventActivityCreated, Data: activity})

	return c.Status(fiber.StatusCreated).JSON(activity)
}

func UpdateActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid activity ID",
		})
	}

	var activity models.Activity
	if err := database.DB.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Activity not found",
		})
	}

	var req models.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	date, clock, err := normalizeSchedule(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// The edit form submits every editable field, so this is a full
	// replace: an omitted field clears the stored value.
	activity.Name = req.Name
	activity.Location = req.Location
	activity.Distance = req.Distance
	activity.Details = req.Details
	activity.Notes = req.Notes
	activity.ScheduledDate = date
	activity.ScheduledTime = clock

	if err := database.DB.Save(&activity).Error; err != nil {
		logger.Log.Error().Err(err).Str("activityId", activityID.String()).Msg("failed to update activity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update activity",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventActivityUpdated, Data: activity})

	return c.JSON(activity)
}

func DeleteActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid activity ID",
		})
	}

	var activity models.Activity
	if err := database.DB.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Activity not found",
		})
	}

	// Permanent removal, no soft delete.
	if err := database.DB.Delete(&activity).Error; err != nil {
		logger.Log.Error().Err(err).Str("activityId", activityID.String()).Msg("failed to delete activity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete activity",
		})
	}

	WS.Broadcast(userID, WSEvent{Type: EventActivityDeleted, Data: fiber.Map{"id": activityID.String()}})

	return c.JSON(fiber.Map{"success": true})
}

// CompleteActivity archives an active activity: the archive flag and
// completion stamp are set and the scheduling fields cleared in a single
// update, so no partially archived state is ever stored.
func CompleteActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid activity ID",
		})
	}

	var activity models.Activity
	if err := database.DB.Where("id = ? AND user_id = ?", activityID, userID).First(&activity).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Activity not found",
		})
	}

	if activity.Archived() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Activity is already archived",
		})
	}

	var req models.CompleteActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	date, err := schedule.ParseDate(req.CompletionDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid completion date",
		})
	}

	clock := req.CompletionTime
	if clock != nil && *clock != "" {
		h, m, err := schedule.ParseClock(*clock)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid completion time",
			})
		}
		normalized := fmt.Sprintf("%02d:%02d", h, m)
		clock = &normalized
	}

	patch := schedule.CompletePatch(date, clock, req.ArchiveNotes)
	if err := database.DB.Model(&activity).Updates(patch).Error; err != nil {
		logger.Log.Error().Err(err).Str("activityId", activityID.String()).Msg("failed to archive activity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to complete activity",
		})
	}

	// Re-read so the response reflects exactly what was stored. The patch
	// itself already succeeded, so a failed reload falls back to applying
	// the same fields to the in-memory record rather than echoing the
	// stale pre-archive state.
	if err := database.DB.First(&activity, activityID).Error; err != nil {
		logger.Log.Warn().Err(err).Str("activityId", activityID.String()).Msg("failed to reload archived activity")
		archived := true
		completedDate := date.String()
		activity.IsArchived = &archived
		activity.CompletedDate = &completedDate
		activity.CompletedTime = clock
		activity.ArchiveNotes = &req.ArchiveNotes
		activity.ScheduledDate = nil
		activity.ScheduledTime = nil
	}

	WS.Broadcast(userID, WSEvent{Type: EventActivityArchived, Data: activity})

	return c.JSON(activity)
}

// normalizeSchedule validates the scheduling pair and re-encodes both
// parts in canonical form. A time without a date is meaningless and is
// dropped.
func normalizeSchedule(dateStr, timeStr *string) (*string, *string, error) {
	if dateStr == nil || *dateStr == "" {
		return nil, nil, nil
	}

	date, err := schedule.ParseDate(*dateStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid scheduled date: must be YYYY-MM-DD")
	}
	canonical := date.String()

	if timeStr == nil || *timeStr == "" {
		return &canonical, nil, nil
	}
	h, m, err := schedule.ParseClock(*timeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid scheduled time: must be HH:MM")
	}
	clock := fmt.Sprintf("%02d:%02d", h, m)
	return &canonical, &clock, nil
}
