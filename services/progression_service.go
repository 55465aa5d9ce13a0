// services/progression_service.go - Progression orchestration over the store
//
// All state changes to a user's progression (hexagon XP, achievements,
// streaks, totals) go through this service. The *gorm.DB handle is injected
// through the constructor so the service carries no ambient global state.
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hexfit/models"
	"hexfit/progression"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conflictRetries bounds the optimistic-concurrency retry loop on hexagon
// profile updates before the conflict surfaces to the caller.
const conflictRetries = 3

type ProgressionService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewProgressionService(db *gorm.DB, notifier *Notifier) *ProgressionService {
	return &ProgressionService{db: db, notifier: notifier}
}

// ================== HEXAGON PROFILE ==================

// GetOrCreateProfile lazily creates a zero-XP hexagon profile on first
// touch. This is the single place where the lazy-creation invariant lives.
func (s *ProgressionService) GetOrCreateProfile(userID uint) (*models.HexagonProfile, error) {
	var profile models.HexagonProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	profile = models.HexagonProfile{UserID: userID}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&profile).Error; err != nil {
		return nil, err
	}
	// Re-read in case a concurrent request won the insert.
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GrantAxisXP adds XP to a single axis.
func (s *ProgressionService) GrantAxisXP(userID uint, axis progression.Axis, amount int) (progression.Profile, error) {
	return s.GrantMultiAxisXP(userID, map[progression.Axis]int{axis: amount})
}

// GrantMultiAxisXP applies several axis grants as one all-or-nothing update.
// A version check on the profile row serializes concurrent read-modify-write
// cycles; on repeated conflicts the operation fails with ErrConflict and no
// partial state.
func (s *ProgressionService) GrantMultiAxisXP(userID uint, deltas map[progression.Axis]int) (progression.Profile, error) {
	for attempt := 0; attempt < conflictRetries; attempt++ {
		row, err := s.GetOrCreateProfile(userID)
		if err != nil {
			return nil, err
		}

		updated, err := row.ToProfile().ApplyMultiAxisXP(deltas)
		if err != nil {
			return nil, err
		}

		next := *row
		next.SetFromProfile(updated)

		res := s.db.Model(&models.HexagonProfile{}).
			Where("id = ? AND version = ?", row.ID, row.Version).
			Updates(map[string]interface{}{
				"relative_strength_xp":  next.RelativeStrengthXP,
				"muscular_endurance_xp": next.MuscularEnduranceXP,
				"balance_control_xp":    next.BalanceControlXP,
				"joint_mobility_xp":     next.JointMobilityXP,
				"body_tension_xp":       next.BodyTensionXP,
				"skill_technique_xp":    next.SkillTechniqueXP,
				"version":               row.Version + 1,
			})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			return updated, nil
		}
		// Version moved under us; reload and retry the whole cycle.
	}
	return nil, fmt.Errorf("hexagon profile for user %d: %w", userID, progression.ErrConflict)
}

// GetProfile returns the computed hexagon profile plus its overall level.
func (s *ProgressionService) GetProfile(userID uint) (progression.Profile, progression.AxisLevel, error) {
	row, err := s.GetOrCreateProfile(userID)
	if err != nil {
		return nil, "", err
	}
	profile := row.ToProfile()
	return profile, profile.OverallLevel(), nil
}

// ================== ACHIEVEMENTS ==================

// IncrementAchievement adds a non-negative delta to the user's cumulative
// progress on one achievement and unlocks any tiers the new value reaches.
// Tier rewards are granted to the user inside the same transaction.
func (s *ProgressionService) IncrementAchievement(userID uint, key string, delta int) (progression.TierResult, error) {
	if delta < 0 {
		return progression.TierResult{}, fmt.Errorf("%w: negative achievement delta", progression.ErrInvalidInput)
	}
	return s.updateAchievement(userID, key, func(current int) int { return delta })
}

// SetAchievementProgress syncs progress to an externally computed absolute
// value. The value never moves backward: syncing a lower value is a no-op,
// which also makes same-day re-processing idempotent.
func (s *ProgressionService) SetAchievementProgress(userID uint, key string, newValue int) (progression.TierResult, error) {
	return s.updateAchievement(userID, key, func(current int) int {
		if newValue <= current {
			return 0
		}
		return newValue - current
	})
}

func (s *ProgressionService) updateAchievement(userID uint, key string, deltaFor func(current int) int) (progression.TierResult, error) {
	var result progression.TierResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var achievement models.Achievement
		if err := tx.Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("tier ASC")
		}).Where("key = ? AND is_active = ?", key, true).First(&achievement).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("achievement %q: %w", key, progression.ErrNotFound)
			}
			return err
		}

		progress, err := getOrCreateProgress(tx, userID, achievement.ID)
		if err != nil {
			return err
		}

		tiers := make([]progression.Tier, 0, len(achievement.Tiers))
		for _, t := range achievement.Tiers {
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

		result, err = progression.EvaluateTiers(tiers, progress.CurrentValue, progress.CurrentTier, deltaFor(progress.CurrentValue))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(progress).Updates(map[string]interface{}{
			"current_value": result.NewValue,
			"current_tier":  result.NewTier,
			"last_updated":  now,
		}).Error; err != nil {
			return err
		}

		for _, tier := range result.Unlocked {
			completion := models.UserAchievementTier{
				UserAchievementID: progress.ID,
				Tier:              tier.Number,
				CompletedAt:       now,
			}
			// The unique index keeps a re-processed unlock from duplicating.
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
				return err
			}
		}

		if result.XPEarned > 0 || result.CoinsEarned > 0 {
			res := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
				"total_xp":      gorm.Expr("total_xp + ?", result.XPEarned),
				"virtual_coins": gorm.Expr("virtual_coins + ?", result.CoinsEarned),
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("user %d: %w", userID, progression.ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return progression.TierResult{}, err
	}

	if s.notifier != nil {
		for _, tier := range result.Unlocked {
			s.notifier.Publish(userID, Event{
				Type:    EventTierUnlocked,
				Message: fmt.Sprintf("%s: %s tier unlocked", key, tier.Name),
				Payload: tier,
			})
		}
	}
	return result, nil
}

// getOrCreateProgress locks the progress row for the rest of the
// transaction so concurrent increments serialize per (user, achievement).
func getOrCreateProgress(tx *gorm.DB, userID, achievementID uint) (*models.UserAchievement, error) {
	var progress models.UserAchievement
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		LastUpdated:   time.Now().UTC(),
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&progress).Error; err != nil {
		return nil, err
	}
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// ================== STREAKS ==================

// RecomputeStreak derives the streak from the full completed-session history
// and persists the result on the user row. The stored longest streak only
// acts as a floor; the chain itself is always recomputed from scratch.
func (s *ProgressionService) RecomputeStreak(userID uint) (progression.StreakState, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return progression.StreakState{}, fmt.Errorf("user %d: %w", userID, progression.ErrNotFound)
		}
		return progression.StreakState{}, err
	}

	var completions []time.Time
	if err := s.db.Model(&models.WorkoutSession{}).
		Where("user_id = ? AND status = ? AND completed_at IS NOT NULL", userID, "COMPLETED").
		Order("completed_at DESC").
		Pluck("completed_at", &completions).Error; err != nil {
		return progression.StreakState{}, err
	}

	state := progression.ComputeStreak(completions, time.Now().UTC(), user.LongestStreak)

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"daily_streak":   state.CurrentStreak,
		"longest_streak": state.LongestStreak,
		"last_workout_at": state.LastActivity,
	}).Error; err != nil {
		return progression.StreakState{}, err
	}

	// Milestone rewards ride on the daily_streak achievement tiers, whose
	// monotonic absolute sync makes re-processing the same day a no-op.
	if _, err := s.SetAchievementProgress(userID, "daily_streak", state.CurrentStreak); err != nil && !errors.Is(err, progression.ErrNotFound) {
		return progression.StreakState{}, err
	}

	return state, nil
}

// ================== LEVEL INFO ==================

// LevelInfo returns the numbered level summary for a user's total XP.
func (s *ProgressionService) LevelInfo(userID uint) (progression.LevelInfo, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return progression.LevelInfo{}, fmt.Errorf("user %d: %w", userID, progression.ErrNotFound)
		}
		return progression.LevelInfo{}, err
	}
	return progression.LevelInfoForXP(user.TotalXP), nil
}

// grantUserTotals adds XP and coins to the user row, applying numbered
// level-up coin rewards, and reports the level change.
func (s *ProgressionService) grantUserTotals(tx *gorm.DB, userID uint, xp, coins int) (oldLevel, newLevel int, err error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, fmt.Errorf("user %d: %w", userID, progression.ErrNotFound)
		}
		return 0, 0, err
	}

	oldLevel = user.CurrentLevel
	newTotal := user.TotalXP + xp
	newLevel, levelCoins := progression.LevelUpRewards(oldLevel, newTotal)

	err = tx.Model(&user).Updates(map[string]interface{}{
		"total_xp":      newTotal,
		"virtual_coins": user.VirtualCoins + coins + levelCoins,
		"current_level": newLevel,
	}).Error
	return oldLevel, newLevel, err
}

func (s *ProgressionService) requireUser(userID uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("user %d: %w", userID, progression.ErrNotFound)
	}
	return nil
}

// logNonCritical records a failed gamification side effect without failing
// the request that triggered it.
func logNonCritical(op string, userID uint, err error) {
	if err != nil {
		log.Printf("progression: %s for user %d failed (non-critical): %v", op, userID, err)
	}
}
