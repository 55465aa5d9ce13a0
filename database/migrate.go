// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"
	"log"

	"hexfit/models"
)

// RunMigrations runs all database migrations
func RunMigrations() error {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.HexagonProfile{},
		&models.Exercise{},
		&models.WorkoutSession{},
		&models.SessionExercise{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Achievement{},
		&models.AchievementTier{},
		&models.UserAchievement{},
		&models.UserAchievementTier{},
		&models.LeaderboardSnapshot{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	createIndexes()

	if err := SeedAchievements(db); err != nil {
		return fmt.Errorf("seed achievements: %w", err)
	}

	if err := SeedCatalog(db); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	log.Println("✅ All migrations completed successfully")
	return nil
}

// createIndexes creates indexes the AutoMigrate tags don't cover
func createIndexes() {
	db := GetDB()

	// User leaderboard orderings
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_total_xp ON users(total_xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_level ON users(current_level DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_longest_streak ON users(longest_streak DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Session history scans
	db.Exec("CREATE INDEX IF NOT EXISTS idx_sessions_user_completed ON workout_sessions(user_id, completed_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_session_exercises_session ON session_exercises(session_id)")

	// Achievement progress lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_achievement_tiers_achievement ON achievement_tiers(achievement_id, tier)")
}
