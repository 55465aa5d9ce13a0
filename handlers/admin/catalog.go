// handlers/admin/catalog.go - Admin CRUD for the exercise and skill catalogs
package admin

import (
	"hexfit/database"
	"hexfit/models"
	"hexfit/progression"

	"github.com/gofiber/fiber/v2"
)

type exerciseInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	MuscleGroups string `json:"muscle_groups"`
	Equipment    string `json:"equipment"`
	VideoURL     string `json:"video_url"`
	IsActive     *bool  `json:"is_active"`
}

func validateCatalogInput(category, difficulty string) error {
	if _, err := progression.ParseCategory(category); err != nil {
		return err
	}
	_, err := progression.ParseDifficulty(difficulty)
	return err
}

// CreateExercise adds an exercise to the catalog.
func CreateExercise(c *fiber.Ctx) error {
	var input exerciseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name required"})
	}
	if err := validateCatalogInput(input.Category, input.Difficulty); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	exercise := models.Exercise{
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Difficulty:   input.Difficulty,
		MuscleGroups: input.MuscleGroups,
		Equipment:    input.Equipment,
		VideoURL:     input.VideoURL,
		IsActive:     input.IsActive == nil || *input.IsActive,
	}
	if err := database.GetDB().Create(&exercise).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exercise"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "exercise": exercise})
}

// UpdateExercise patches catalog fields of one exercise.
func UpdateExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	var input exerciseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Category != "" {
		if _, err := progression.ParseCategory(input.Category); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		updates["category"] = input.Category
	}
	if input.Difficulty != "" {
		if _, err := progression.ParseDifficulty(input.Difficulty); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		updates["difficulty"] = input.Difficulty
	}
	if input.MuscleGroups != "" {
		updates["muscle_groups"] = input.MuscleGroups
	}
	if input.Equipment != "" {
		updates["equipment"] = input.Equipment
	}
	if input.VideoURL != "" {
		updates["video_url"] = input.VideoURL
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nothing to update"})
	}

	res := database.GetDB().Model(&models.Exercise{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exercise"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Exercise not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}

type skillInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"is_active"`
}

// CreateSkill adds a skill to the catalog.
func CreateSkill(c *fiber.Ctx) error {
	var input skillInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name required"})
	}
	if err := validateCatalogInput(input.Category, input.Difficulty); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	skill := models.Skill{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Icon:        input.Icon,
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	if err := database.GetDB().Create(&skill).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create skill"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "skill": skill})
}

// DeactivateSkill hides a skill without touching completions.
func DeactivateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid skill id"})
	}

	res := database.GetDB().Model(&models.Skill{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate skill"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Skill not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
