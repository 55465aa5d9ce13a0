// database/seed_achievements.go - Progressive achievement seed data
package database

import (
	"fmt"

	"hexfit/models"
	"hexfit/progression"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tierTemplate struct {
	Name        string
	Level       string
	XPReward    int
	CoinsReward int
	Color       string
}

// standardTiers is the 4-step tier ladder shared by most achievements.
// Targets come from each achievement definition.
var standardTiers = []tierTemplate{
	{Name: "Beginner", Level: "BEGINNER", XPReward: 100, CoinsReward: 50, Color: "#10b981"},
	{Name: "Intermediate", Level: "INTERMEDIATE", XPReward: 250, CoinsReward: 100, Color: "#3b82f6"},
	{Name: "Advanced", Level: "ADVANCED", XPReward: 500, CoinsReward: 200, Color: "#8b5cf6"},
	{Name: "Elite", Level: "ELITE", XPReward: 1000, CoinsReward: 500, Color: "#f59e0b"},
}

type achievementSeed struct {
	Key         string
	Name        string
	Description string
	Category    string
	Unit        string
	Icon        string
	Targets     []int
}

var progressiveAchievements = []achievementSeed{
	{
		Key:         "routine_completions",
		Name:        "Routine Master",
		Description: "Complete training routines to master your progression",
		Category:    "ROUTINE_COMPLETION",
		Unit:        "routines",
		Icon:        "🎯",
		Targets:     []int{10, 25, 50, 100},
	},
	{
		Key:         "total_training_days",
		Name:        "Constant Warrior",
		Description: "Total training days, consecutive or not",
		Category:    "CONSISTENCY",
		Unit:        "days",
		Icon:        "💪",
		Targets:     []int{30, 100, 300, 1000},
	},
	{
		Key:         "total_skills_completed",
		Name:        "Skill Collector",
		Description: "Unlock calisthenics skills across all categories",
		Category:    "SKILLS",
		Unit:        "skills",
		Icon:        "🤸",
		Targets:     []int{5, 15, 30, 60},
	},
	{
		Key:         "strength_axis_xp",
		Name:        "Iron Grip",
		Description: "Accumulate XP on the relative strength axis",
		Category:    "HEXAGON",
		Unit:        "XP",
		Icon:        "🏋️",
		Targets:     []int{2000, 7000, 17000, 34000},
	},
	{
		Key:         "balance_axis_xp",
		Name:        "Perfect Poise",
		Description: "Accumulate XP on the balance control axis",
		Category:    "HEXAGON",
		Unit:        "XP",
		Icon:        "🧘",
		Targets:     []int{2000, 7000, 17000, 34000},
	},
	{
		Key:         "tension_axis_xp",
		Name:        "Steel Core",
		Description: "Accumulate XP on the body tension axis",
		Category:    "HEXAGON",
		Unit:        "XP",
		Icon:        "🛡️",
		Targets:     []int{2000, 7000, 17000, 34000},
	},
	{
		Key:         "total_xp_earned",
		Name:        "Experience Hunter",
		Description: "Total XP earned across all activity",
		Category:    "PROGRESSION",
		Unit:        "XP",
		Icon:        "⭐",
		Targets:     []int{1000, 5000, 12000, 25000},
	},
	{
		Key:         "user_level_milestone",
		Name:        "Ladder Climber",
		Description: "Reach ever higher user levels",
		Category:    "PROGRESSION",
		Unit:        "level",
		Icon:        "🪜",
		Targets:     []int{3, 6, 9, 12},
	},
}

// SeedAchievements upserts the progressive achievement definitions, including
// the daily_streak achievement whose tiers mirror the streak milestones.
func SeedAchievements(db *gorm.DB) error {
	seeds := append([]achievementSeed{}, progressiveAchievements...)

	for order, seed := range seeds {
		if len(seed.Targets) != len(standardTiers) {
			return fmt.Errorf("achievement %s: expected %d targets", seed.Key, len(standardTiers))
		}
		tiers := make([]progression.Tier, 0, len(standardTiers))
		for i, tmpl := range standardTiers {
			tiers = append(tiers, progression.Tier{
				Number:      i + 1,
				Name:        tmpl.Name,
				Level:       tmpl.Level,
				Target:      seed.Targets[i],
				XPReward:    tmpl.XPReward,
				CoinsReward: tmpl.CoinsReward,
				Color:       tmpl.Color,
			})
		}
		if err := upsertAchievement(db, seed, order, tiers); err != nil {
			return err
		}
	}

	return upsertAchievement(db, achievementSeed{
		Key:         "daily_streak",
		Name:        "Unstoppable Streak",
		Description: "Maintain your daily training streak without fail",
		Category:    "CONSISTENCY",
		Unit:        "consecutive days",
		Icon:        "🔥",
	}, len(seeds), streakTiers())
}

// streakTiers derives one tier per streak milestone so milestone bonuses fire
// exactly once through the normal tier-unlock path.
func streakTiers() []progression.Tier {
	tiers := make([]progression.Tier, 0, len(progression.Milestones))
	for i, m := range progression.Milestones {
		level := standardTiers[minInt(i/2, len(standardTiers)-1)]
		tiers = append(tiers, progression.Tier{
			Number:      i + 1,
			Name:        m.Name,
			Level:       level.Level,
			Target:      m.Days,
			XPReward:    m.BonusPercent * 100,
			CoinsReward: m.BonusPercent * 50,
			Color:       level.Color,
		})
	}
	return tiers
}

func upsertAchievement(db *gorm.DB, seed achievementSeed, order int, tiers []progression.Tier) error {
	if err := progression.ValidateTiers(tiers); err != nil {
		return fmt.Errorf("achievement %s: %w", seed.Key, err)
	}

	achievement := models.Achievement{
		Key:         seed.Key,
		Name:        seed.Name,
		Description: seed.Description,
		Category:    seed.Category,
		Unit:        seed.Unit,
		Icon:        seed.Icon,
		IsActive:    true,
		SortOrder:   order,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "category", "unit", "icon", "is_active", "sort_order"}),
		}).Create(&achievement).Error; err != nil {
			return err
		}

		var stored models.Achievement
		if err := tx.Where("key = ?", seed.Key).First(&stored).Error; err != nil {
			return err
		}

		// Tier definitions are replaced wholesale; user progress rows are
		// untouched and re-evaluate against the new targets.
		if err := tx.Where("achievement_id = ?", stored.ID).Delete(&models.AchievementTier{}).Error; err != nil {
			return err
		}
		for _, tier := range tiers {
			row := models.AchievementTier{
				AchievementID: stored.ID,
				Tier:          tier.Number,
				Name:          tier.Name,
				Level:         tier.Level,
				Target:        tier.Target,
				XPReward:      tier.XPReward,
				CoinsReward:   tier.CoinsReward,
				Color:         tier.Color,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
