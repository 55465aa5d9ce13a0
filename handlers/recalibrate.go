// handlers/recalibrate.go - Admin maintenance operations
package handlers

import (
	"hexfit/database"
	"hexfit/models"

	"github.com/gofiber/fiber/v2"
)

// RecalculateRanks forces an immediate leaderboard snapshot refresh instead
// of waiting for the next scheduled pass.
func RecalculateRanks(c *fiber.Ctx) error {
	category := c.Query("category")
	categories := []string{"xp", "level", "streak"}
	if category != "" {
		categories = []string{category}
	}

	for _, cat := range categories {
		if err := rankSvc.SnapshotCategory(cat); err != nil {
			return errorJSON(c, err)
		}
	}
	return c.JSON(fiber.Map{"success": true, "categories": categories})
}

// RecalibrateUser recomputes a user's derived progression state from the
// stored history: streak fields and cumulative achievement syncs. Used after
// manual data corrections.
func RecalibrateUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	state, err := progressionSvc.RecomputeStreak(uint(userID))
	if err != nil {
		return errorJSON(c, err)
	}

	var user models.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if _, err := progressionSvc.SetAchievementProgress(uint(userID), "total_xp_earned", user.TotalXP); err != nil {
		return errorJSON(c, err)
	}
	if _, err := progressionSvc.SetAchievementProgress(uint(userID), "user_level_milestone", user.CurrentLevel); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "streak": state})
}
