// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Progression
	CurrentLevel int `gorm:"default:1" json:"current_level"`
	TotalXP      int `gorm:"default:0" json:"total_xp"`
	VirtualCoins int `gorm:"default:0" json:"virtual_coins"`

	// Streaks (cached for leaderboards; source of truth is the session log)
	DailyStreak   int        `gorm:"default:0" json:"daily_streak"`
	LongestStreak int        `gorm:"default:0" json:"longest_streak"`
	LastWorkoutAt *time.Time `json:"last_workout_at,omitempty"`

	// Stats
	TotalWorkouts       int `gorm:"default:0" json:"total_workouts"`
	TotalSkillsUnlocked int `gorm:"default:0" json:"total_skills_unlocked"`

	// Opaque client preference document
	Preferences string `gorm:"type:jsonb;default:'{}'" json:"-"`

	// Timestamps
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    time.Time  `json:"last_login"`
	LastActivity *time.Time `json:"last_activity,omitempty"`

	// Relationships
	HexagonProfile *HexagonProfile   `gorm:"foreignKey:UserID" json:"hexagon_profile,omitempty"`
	Achievements   []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Sessions       []WorkoutSession  `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
}

func (User) TableName() string {
	return "users"
}
