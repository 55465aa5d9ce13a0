// handlers/progression.go - Level, hexagon and achievement endpoints
package handlers

import (
	"hexfit/database"
	"hexfit/middleware"
	"hexfit/models"
	"hexfit/progression"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// axisView is the JSON shape of one hexagon axis.
type axisView struct {
	Axis            string  `json:"axis"`
	XP              int     `json:"xp"`
	Level           string  `json:"level"`
	Value           float64 `json:"value"`
	ProgressPercent int     `json:"progress_percent"`
	XPToNextLevel   int     `json:"xp_to_next_level"`
	NextLevel       string  `json:"next_level,omitempty"`
}

func axisViews(profile progression.Profile) []axisView {
	views := make([]axisView, 0, len(progression.Axes))
	for _, axis := range progression.Axes {
		state := profile[axis]
		view := axisView{
			Axis:            string(axis),
			XP:              state.XP,
			Level:           string(state.Level),
			Value:           state.Value,
			ProgressPercent: progression.AxisProgressPercent(state.XP),
		}
		if remaining, next, ok := progression.XPToNextAxisLevel(state.XP); ok {
			view.XPToNextLevel = remaining
			view.NextLevel = string(next)
		}
		views = append(views, view)
	}
	return views
}

// GetLevel returns the numbered level summary for the authenticated user.
func GetLevel(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	info, err := progressionSvc.LevelInfo(userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "level": info})
}

// GetHexagon returns the six-axis skill profile.
func GetHexagon(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	profile, overall, err := progressionSvc.GetProfile(userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"axes":          axisViews(profile),
		"overall_level": overall,
		"total_xp":      profile.TotalXP(),
	})
}

// GetProgressionSummary aggregates level, hexagon, streak and achievement
// progress into the single payload the profile screen renders from.
func GetProgressionSummary(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	profile, overall, err := progressionSvc.GetProfile(userID)
	if err != nil {
		return errorJSON(c, err)
	}

	streak, err := progressionSvc.RecomputeStreak(userID)
	if err != nil {
		return errorJSON(c, err)
	}

	var unlockedTiers int64
	db.Model(&models.UserAchievementTier{}).
		Joins("JOIN user_achievements ON user_achievements.id = user_achievement_tiers.user_achievement_id").
		Where("user_achievements.user_id = ?", userID).
		Count(&unlockedTiers)

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userInfo(user),
		"level":   progression.LevelInfoForXP(user.TotalXP),
		"hexagon": fiber.Map{
			"axes":          axisViews(profile),
			"overall_level": overall,
		},
		"streak": streak,
		"stats": fiber.Map{
			"total_workouts":   user.TotalWorkouts,
			"skills_unlocked":  user.TotalSkillsUnlocked,
			"tiers_unlocked":   unlockedTiers,
			"virtual_coins":    user.VirtualCoins,
		},
	})
}

// GrantXPRequest is a direct XP grant, used by admin tooling and internal
// integrations.
type GrantXPRequest struct {
	Axes map[string]int `json:"axes"`
}

// AwardXP grants XP to specific hexagon axes of a user (admin only).
func AwardXP(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req GrantXPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Axes) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No axis grants provided"})
	}

	deltas := make(map[progression.Axis]int, len(req.Axes))
	for name, amount := range req.Axes {
		deltas[progression.Axis(name)] = amount
	}

	profile, err := progressionSvc.GrantMultiAxisXP(uint(userID), deltas)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "axes": axisViews(profile)})
}

// GrantSelfXP grants hexagon XP to the authenticated user. Intended for
// trusted first-party clients that reward activity outside logged workouts
// (mobility sessions, assessments).
func GrantSelfXP(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req GrantXPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Axes) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No axis grants provided"})
	}

	deltas := make(map[progression.Axis]int, len(req.Axes))
	total := 0
	for name, amount := range req.Axes {
		deltas[progression.Axis(name)] = amount
		total += amount
	}
	if total > 500 {
		return c.Status(400).JSON(fiber.Map{"error": "Grant exceeds the per-request limit"})
	}

	profile, err := progressionSvc.GrantMultiAxisXP(userID, deltas)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "axes": axisViews(profile)})
}

// GetAchievements lists all active achievements with the user's progress.
func GetAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	db := database.GetDB()

	var achievements []models.Achievement
	if err := db.Preload("Tiers", func(tx *gorm.DB) *gorm.DB { return tx.Order("tier ASC") }).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&achievements).Error; err != nil {
		return errorJSON(c, err)
	}

	var progress []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return errorJSON(c, err)
	}
	progressByID := make(map[uint]models.UserAchievement, len(progress))
	for _, p := range progress {
		progressByID[p.AchievementID] = p
	}

	type achievementView struct {
		models.Achievement
		CurrentValue int `json:"current_value"`
		CurrentTier  int `json:"current_tier"`
	}
	views := make([]achievementView, 0, len(achievements))
	for _, a := range achievements {
		view := achievementView{Achievement: a}
		if p, ok := progressByID[a.ID]; ok {
			view.CurrentValue = p.CurrentValue
			view.CurrentTier = p.CurrentTier
		}
		views = append(views, view)
	}

	return c.JSON(fiber.Map{"success": true, "achievements": views})
}

// GetLevelTable exposes the static level ladder for clients to render.
func GetLevelTable(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "levels": progression.Levels})
}
