// handlers/workouts.go - Workout session endpoints
package handlers

import (
	"hexfit/database"
	"hexfit/middleware"
	"hexfit/models"
	"hexfit/services"

	"github.com/gofiber/fiber/v2"
)

// CompleteWorkout records a finished session and returns everything it
// earned: XP, coins, streak bonus, hexagon gains and unlocked tiers.
func CompleteWorkout(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input services.CompleteWorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := workoutSvc.CompleteWorkout(userID, input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// LogExercise records a single exercise entry as its own completed
// mini-session. Quick logging for users who train outside structured routines.
func LogExercise(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var entry services.ExerciseEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if entry.ExerciseID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Exercise id required"})
	}

	result, err := workoutSvc.CompleteWorkout(userID, services.CompleteWorkoutInput{
		Entries: []services.ExerciseEntry{entry},
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}

// GetWorkoutHistory pages through the user's session log, newest first.
func GetWorkoutHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := database.GetDB()

	var sessions []models.WorkoutSession
	if err := db.Preload("Exercises").Preload("Exercises.Exercise").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error; err != nil {
		return errorJSON(c, err)
	}

	var total int64
	db.Model(&models.WorkoutSession{}).Where("user_id = ?", userID).Count(&total)

	return c.JSON(fiber.Map{
		"success":  true,
		"sessions": sessions,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetExercises lists the active exercise catalog, optionally by category.
func GetExercises(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var exercises []models.Exercise
	if err := query.Order("name ASC").Find(&exercises).Error; err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "exercises": exercises})
}
