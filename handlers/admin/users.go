// handlers/admin/users.go - Admin user management
package admin

import (
	"hexfit/database"
	"hexfit/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListUsers pages through all users for the admin dashboard.
func ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := database.GetDB()

	query := db.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		query = query.Where("username ILIKE ? OR display_name ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if c.Query("guests") == "false" {
		query = query.Where("is_guest = ?", false)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetUser returns one user with progression relations preloaded.
func GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var user models.User
	if err := database.GetDB().
		Preload("HexagonProfile").
		Preload("Achievements").
		First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"success": true, "user": user})
}

// SetUserBanned bans or unbans a user.
func SetUserBanned(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req struct {
		Banned bool `json:"banned"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	res := database.GetDB().Model(&models.User{}).Where("id = ?", id).Update("is_banned", req.Banned)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"success": true, "banned": req.Banned})
}

// GrantCoins adds virtual coins to a user's balance (support tooling).
func GrantCoins(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req struct {
		Coins int `json:"coins"`
	}
	if err := c.BodyParser(&req); err != nil || req.Coins <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Positive coin amount required"})
	}

	res := database.GetDB().Model(&models.User{}).Where("id = ?", id).
		Update("virtual_coins", gorm.Expr("virtual_coins + ?", req.Coins))
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to grant coins"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"success": true})
}
