// main.go
package main

import (
	"log"
	"os"
	"time"

	"hexfit/database"
	"hexfit/handlers"
	"hexfit/handlers/admin"
	"hexfit/middleware"
	"hexfit/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()
	middleware.SetActivityDB(db)

	// Wire services
	notifier := services.NewNotifier()
	progressionSvc := services.NewProgressionService(db, notifier)
	workoutSvc := services.NewWorkoutService(db, progressionSvc, notifier)
	rankSvc := services.NewRankService(db)
	handlers.InitServices(progressionSvc, workoutSvc, rankSvc, notifier)

	// Leaderboard snapshots refresh every 10 minutes
	snapshotInterval := 10 * time.Minute
	if raw := os.Getenv("RANK_SNAPSHOT_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			snapshotInterval = d
		}
	}
	if err := rankSvc.Start(snapshotInterval); err != nil {
		log.Fatalf("Failed to start rank scheduler: %v", err)
	}
	defer rankSvc.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/upgrade", middleware.AuthMiddleware, handlers.UpgradeGuest)
	authGroup.Get("/me", middleware.AuthMiddleware, handlers.Me)
	authGroup.Get("/preferences", middleware.AuthMiddleware, handlers.GetPreferences)
	authGroup.Post("/preferences", middleware.AuthMiddleware, handlers.SavePreferences)

	// Catalog routes (public)
	api.Get("/exercises", handlers.GetExercises)
	api.Get("/levels", handlers.GetLevelTable)
	api.Get("/streaks/milestones", handlers.GetStreakMilestones)

	// Progression routes
	progressionGroup := api.Group("/progression")
	progressionGroup.Use(middleware.AuthMiddleware)
	progressionGroup.Get("/level", handlers.GetLevel)
	progressionGroup.Get("/hexagon", handlers.GetHexagon)
	progressionGroup.Get("/summary", handlers.GetProgressionSummary)
	progressionGroup.Get("/achievements", handlers.GetAchievements)
	progressionGroup.Post("/xp", handlers.GrantSelfXP)

	// Workout routes
	workoutGroup := api.Group("/workouts")
	workoutGroup.Use(middleware.AuthMiddleware)
	workoutGroup.Post("/complete", handlers.CompleteWorkout)
	workoutGroup.Post("/log", handlers.LogExercise)
	workoutGroup.Get("/history", handlers.GetWorkoutHistory)

	// Skill routes
	skillGroup := api.Group("/skills")
	skillGroup.Use(middleware.AuthMiddleware)
	skillGroup.Get("/", handlers.GetSkills)
	skillGroup.Post("/:id/complete", handlers.CompleteSkill)

	// Streak routes
	api.Get("/streaks", middleware.AuthMiddleware, handlers.GetStreak)

	// Leaderboard routes
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Get("/", handlers.GetLeaderboard)
	leaderboardGroup.Get("/me", middleware.AuthMiddleware, handlers.GetMyRank)
	leaderboardGroup.Get("/around", middleware.AuthMiddleware, handlers.GetRankAround)

	// WebSocket push notifications
	app.Use("/ws/notifications", handlers.RequireWebSocketUpgrade, middleware.WebSocketAuthMiddleware)
	app.Get("/ws/notifications", handlers.NotificationsSocket)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Get("/users", admin.ListUsers)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Put("/users/:id/ban", admin.SetUserBanned)
	adminGroup.Post("/users/:id/coins", admin.GrantCoins)
	adminGroup.Post("/users/:id/xp", handlers.AwardXP)
	adminGroup.Post("/users/:id/recalibrate", handlers.RecalibrateUser)
	adminGroup.Post("/leaderboard/recalculate", handlers.RecalculateRanks)
	adminGroup.Get("/achievements", admin.ListAchievements)
	adminGroup.Post("/achievements", admin.CreateAchievement)
	adminGroup.Put("/achievements/:id", admin.UpdateAchievement)
	adminGroup.Delete("/achievements/:id", admin.DeactivateAchievement)
	adminGroup.Post("/exercises", admin.CreateExercise)
	adminGroup.Put("/exercises/:id", admin.UpdateExercise)
	adminGroup.Post("/skills", admin.CreateSkill)
	adminGroup.Delete("/skills/:id", admin.DeactivateSkill)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
