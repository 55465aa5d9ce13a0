// models/models.go - Training domain models
package models

import (
	"time"
)

// Exercise is one entry of the exercise catalog.
type Exercise struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null;size:150;uniqueIndex" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	Category     string `gorm:"not null;size:30;index" json:"category"`   // PUSH, PULL, CORE, ...
	Difficulty   string `gorm:"not null;size:20;index" json:"difficulty"` // BEGINNER ... EXPERT
	MuscleGroups string `gorm:"type:text" json:"muscle_groups"`           // JSON array of names
	Equipment    string `gorm:"size:100" json:"equipment"`
	VideoURL     string `gorm:"size:300" json:"video_url"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkoutSession is one training session, completed or abandoned.
type WorkoutSession struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	User            *User      `gorm:"foreignKey:UserID" json:"-"`
	Status          string     `gorm:"default:'COMPLETED';size:20;index" json:"status"` // COMPLETED, ABANDONED
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `gorm:"index" json:"completed_at,omitempty"`
	DurationMinutes int        `gorm:"default:0" json:"duration_minutes"`
	XPEarned        int        `gorm:"default:0" json:"xp_earned"`
	CoinsEarned     int        `gorm:"default:0" json:"coins_earned"`
	StreakBonus     int        `gorm:"default:0" json:"streak_bonus"` // percent applied

	Exercises []SessionExercise `gorm:"foreignKey:SessionID" json:"exercises,omitempty"`
}

// SessionExercise is one logged exercise entry within a session.
type SessionExercise struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  uint      `gorm:"not null;index" json:"session_id"`
	ExerciseID uint      `gorm:"not null;index" json:"exercise_id"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Sets       int       `gorm:"default:1" json:"sets"`
	Reps       int       `gorm:"default:0" json:"reps"`
	Duration   int       `gorm:"default:0" json:"duration"` // seconds of timed hold
	Weight     float64   `gorm:"default:0" json:"weight"`   // external load, kg
	Completed  bool      `gorm:"default:true" json:"completed"`
}

// Skill is a discrete calisthenics skill users can unlock (muscle-up,
// handstand, front lever...). Completing one is a one-time reward event.
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:150;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"not null;size:30;index" json:"category"`
	Difficulty  string `gorm:"not null;size:20;index" json:"difficulty"`
	Icon        string `gorm:"size:50" json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

// UserSkill marks a skill as completed by a user.
type UserSkill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_user_skill,unique" json:"user_id"`
	SkillID     uint      `gorm:"not null;index:idx_user_skill,unique" json:"skill_id"`
	Skill       *Skill    `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// LeaderboardSnapshot is a periodically recomputed rank entry. Ranks are
// valid "as of" the scan that produced them, not transactionally live.
type LeaderboardSnapshot struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_snapshot_category_user,unique" json:"user_id"`
	Category   string    `gorm:"not null;size:20;index:idx_snapshot_category_user,unique" json:"category"` // xp, level, streak
	Rank       int       `gorm:"not null;index" json:"rank"`
	Score      int       `gorm:"not null" json:"score"`
	ComputedAt time.Time `json:"computed_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}

func (WorkoutSession) TableName() string {
	return "workout_sessions"
}

func (SessionExercise) TableName() string {
	return "session_exercises"
}

func (Skill) TableName() string {
	return "skills"
}

func (UserSkill) TableName() string {
	return "user_skills"
}

func (LeaderboardSnapshot) TableName() string {
	return "leaderboard_snapshots"
}
