// handlers/admin/achievements.go - Admin CRUD for achievement definitions
package admin

import (
	"hexfit/database"
	"hexfit/models"
	"hexfit/progression"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type tierInput struct {
	Tier        int    `json:"tier"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Target      int    `json:"target"`
	XPReward    int    `json:"xp_reward"`
	CoinsReward int    `json:"coins_reward"`
	Color       string `json:"color"`
}

type achievementInput struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Unit        string      `json:"unit"`
	Icon        string      `json:"icon"`
	IsActive    *bool       `json:"is_active"`
	SortOrder   int         `json:"sort_order"`
	Tiers       []tierInput `json:"tiers"`
}

// ListAchievements returns all achievements, inactive ones included.
func ListAchievements(c *fiber.Ctx) error {
	var achievements []models.Achievement
	err := database.GetDB().
		Preload("Tiers", func(tx *gorm.DB) *gorm.DB { return tx.Order("tier ASC") }).
		Order("sort_order ASC").
		Find(&achievements).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load achievements"})
	}
	return c.JSON(fiber.Map{"success": true, "achievements": achievements})
}

// CreateAchievement adds a new achievement with its tier ladder.
func CreateAchievement(c *fiber.Ctx) error {
	var input achievementInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Key == "" || input.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Key and name required"})
	}

	tiers := toTiers(input.Tiers)
	if err := progression.ValidateTiers(tiers); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	achievement := models.Achievement{
		Key:         input.Key,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Unit:        input.Unit,
		Icon:        input.Icon,
		IsActive:    input.IsActive == nil || *input.IsActive,
		SortOrder:   input.SortOrder,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&achievement).Error; err != nil {
			return err
		}
		for _, t := range tiers {
			row := models.AchievementTier{
				AchievementID: achievement.ID,
				Tier:          t.Number,
				Name:          t.Name,
				Level:         t.Level,
				Target:        t.Target,
				XPReward:      t.XPReward,
				CoinsReward:   t.CoinsReward,
				Color:         t.Color,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create achievement"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "achievement": achievement})
}

// UpdateAchievement replaces an achievement's definition and tier ladder.
// User progress rows survive and re-evaluate against the new targets.
func UpdateAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid achievement id"})
	}

	var input achievementInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()

	var achievement models.Achievement
	if err := db.First(&achievement, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Achievement not found"})
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Category != "" {
		updates["category"] = input.Category
	}
	if input.Unit != "" {
		updates["unit"] = input.Unit
	}
	if input.Icon != "" {
		updates["icon"] = input.Icon
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.SortOrder != 0 {
		updates["sort_order"] = input.SortOrder
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&achievement).Updates(updates).Error; err != nil {
				return err
			}
		}
		if len(input.Tiers) > 0 {
			tiers := toTiers(input.Tiers)
			if err := progression.ValidateTiers(tiers); err != nil {
				return err
			}
			if err := tx.Where("achievement_id = ?", achievement.ID).Delete(&models.AchievementTier{}).Error; err != nil {
				return err
			}
			for _, t := range tiers {
				row := models.AchievementTier{
					AchievementID: achievement.ID,
					Tier:          t.Number,
					Name:          t.Name,
					Level:         t.Level,
					Target:        t.Target,
					XPReward:      t.XPReward,
					CoinsReward:   t.CoinsReward,
					Color:         t.Color,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db.Preload("Tiers", func(tx *gorm.DB) *gorm.DB { return tx.Order("tier ASC") }).First(&achievement, id)
	return c.JSON(fiber.Map{"success": true, "achievement": achievement})
}

// DeactivateAchievement hides an achievement without deleting progress.
func DeactivateAchievement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid achievement id"})
	}

	res := database.GetDB().Model(&models.Achievement{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate achievement"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Achievement not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func toTiers(inputs []tierInput) []progression.Tier {
	tiers := make([]progression.Tier, 0, len(inputs))
	for _, t := range inputs {
		tiers = append(tiers, progression.Tier{
			Number:      t.Tier,
			Name:        t.Name,
			Level:       t.Level,
			Target:      t.Target,
			XPReward:    t.XPReward,
			CoinsReward: t.CoinsReward,
			Color:       t.Color,
		})
	}
	return tiers
}
