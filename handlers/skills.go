// handlers/skills.go - Skill catalog and completion endpoints
package handlers

import (
	"hexfit/database"
	"hexfit/middleware"
	"hexfit/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills lists the skill catalog with the user's completion state.
func GetSkills(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	db := database.GetDB()

	query := db.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var skills []models.Skill
	if err := query.Order("difficulty ASC, name ASC").Find(&skills).Error; err != nil {
		return errorJSON(c, err)
	}

	var completions []models.UserSkill
	if err := db.Where("user_id = ?", userID).Find(&completions).Error; err != nil {
		return errorJSON(c, err)
	}
	completed := make(map[uint]models.UserSkill, len(completions))
	for _, cpl := range completions {
		completed[cpl.SkillID] = cpl
	}

	type skillView struct {
		models.Skill
		Completed   bool   `json:"completed"`
		CompletedAt string `json:"completed_at,omitempty"`
	}
	views := make([]skillView, 0, len(skills))
	for _, skill := range skills {
		view := skillView{Skill: skill}
		if cpl, ok := completed[skill.ID]; ok {
			view.Completed = true
			view.CompletedAt = cpl.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
		}
		views = append(views, view)
	}

	return c.JSON(fiber.Map{"success": true, "skills": views})
}

// CompleteSkill marks a skill as achieved and grants its one-time reward.
func CompleteSkill(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	skillID, err := c.ParamsInt("id")
	if err != nil || skillID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid skill id"})
	}

	result, err := workoutSvc.CompleteSkill(userID, uint(skillID))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "result": result})
}
