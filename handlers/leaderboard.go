// handlers/leaderboard.go - Leaderboard endpoints backed by rank snapshots
package handlers

import (
	"hexfit/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the top entries of one category (xp, level, streak).
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "xp")
	limit := c.QueryInt("limit", 50)

	entries, err := rankSvc.Top(category, limit)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"category":    category,
		"leaderboard": entries,
	})
}

// GetMyRank returns the authenticated user's snapshot rank.
func GetMyRank(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	category := c.Query("category", "xp")
	entry, err := rankSvc.UserRank(category, userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "category": category, "rank": entry})
}

// GetRankAround returns a window of entries centered on the user.
func GetRankAround(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	category := c.Query("category", "xp")
	radius := c.QueryInt("radius", 5)

	entries, err := rankSvc.Around(category, userID, radius)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "category": category, "entries": entries})
}
