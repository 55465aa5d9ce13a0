// handlers/streaks.go - Streak status endpoint
package handlers

import (
	"hexfit/middleware"
	"hexfit/progression"

	"github.com/gofiber/fiber/v2"
)

// GetStreak recomputes and returns the user's streak state. Recomputing on
// read keeps the answer honest even when no workout happened today.
func GetStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	state, err := progressionSvc.RecomputeStreak(userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "streak": state})
}

// GetStreakMilestones exposes the static milestone table.
func GetStreakMilestones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "milestones": progression.Milestones})
}
