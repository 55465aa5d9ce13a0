// models/achievement.go
package models

import "time"

// Achievement is a progressive achievement definition. A single achievement
// evolves through ordered tiers instead of existing as separate one-shot
// badges; user progress against it is cumulative and never resets.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"not null;uniqueIndex" json:"key"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null;index" json:"category"` // CONSISTENCY, ROUTINE_COMPLETION, SKILLS, HEXAGON, PROGRESSION
	Unit        string `json:"unit"`
	Icon        string `json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tiers []AchievementTier `gorm:"foreignKey:AchievementID" json:"tiers,omitempty"`
}

// AchievementTier is one escalating step of an achievement.
type AchievementTier struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AchievementID uint   `gorm:"not null;index" json:"achievement_id"`
	Tier          int    `gorm:"not null" json:"tier"` // 1-based, consecutive
	Name          string `gorm:"not null" json:"name"`
	Level         string `gorm:"not null" json:"level"` // BEGINNER, INTERMEDIATE, ADVANCED, ELITE
	Target        int    `gorm:"not null" json:"target"`
	XPReward      int    `gorm:"default:0" json:"xp_reward"`
	CoinsReward   int    `gorm:"default:0" json:"coins_reward"`
	Color         string `json:"color"`
}

// UserAchievement tracks one user's cumulative progress on one achievement.
// CurrentValue never decreases; CurrentTier is the highest tier fully reached.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index:idx_user_achievement,unique" json:"user_id"`
	AchievementID uint      `gorm:"not null;index:idx_user_achievement,unique" json:"achievement_id"`
	CurrentValue  int       `gorm:"default:0" json:"current_value"`
	CurrentTier   int       `gorm:"default:0" json:"current_tier"` // 0 = none reached
	LastUpdated   time.Time `json:"last_updated"`

	User            *User                 `gorm:"foreignKey:UserID" json:"-"`
	Achievement     *Achievement          `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
	TierCompletions []UserAchievementTier `gorm:"foreignKey:UserAchievementID" json:"tier_completions,omitempty"`
}

// UserAchievementTier records when each tier was first completed. One row
// per unlocked tier, written exactly once.
type UserAchievementTier struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserAchievementID uint      `gorm:"not null;index:idx_achievement_tier_once,unique" json:"user_achievement_id"`
	Tier              int       `gorm:"not null;index:idx_achievement_tier_once,unique" json:"tier"`
	CompletedAt       time.Time `json:"completed_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (AchievementTier) TableName() string {
	return "achievement_tiers"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

func (UserAchievementTier) TableName() string {
	return "user_achievement_tiers"
}
