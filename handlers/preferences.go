// handlers/preferences.go - Client preference blob storage
package handlers

import (
	"encoding/json"

	"hexfit/database"
	"hexfit/middleware"
	"hexfit/models"

	"github.com/gofiber/fiber/v2"
)

// GetPreferences returns the raw preference document for the user. The
// server treats it as an opaque JSON blob owned by the client.
func GetPreferences(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	prefs := json.RawMessage(user.Preferences)
	if len(prefs) == 0 {
		prefs = json.RawMessage("{}")
	}
	return c.JSON(fiber.Map{"success": true, "preferences": prefs})
}

// SavePreferences replaces the preference document wholesale.
func SavePreferences(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	body := c.Body()
	if !json.Valid(body) {
		return c.Status(400).JSON(fiber.Map{"error": "Preferences must be valid JSON"})
	}
	if len(body) > 64*1024 {
		return c.Status(400).JSON(fiber.Map{"error": "Preferences document too large"})
	}

	res := database.GetDB().Model(&models.User{}).Where("id = ?", userID).
		Update("preferences", string(body))
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save preferences"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
