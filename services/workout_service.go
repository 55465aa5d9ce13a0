// services/workout_service.go - Workout and skill completion flows
//
// Completing a workout is the main progression event. The session record is
// the critical write; every gamification side effect after it (streak sync,
// achievement bumps) degrades gracefully: failures are logged and the user
// still gets their session and rewards.
package services

import (
	"errors"
	"fmt"
	"time"

	"hexfit/models"
	"hexfit/progression"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkoutService struct {
	db          *gorm.DB
	progression *ProgressionService
	notifier    *Notifier
}

func NewWorkoutService(db *gorm.DB, prog *ProgressionService, notifier *Notifier) *WorkoutService {
	return &WorkoutService{db: db, progression: prog, notifier: notifier}
}

// grantFailures tracks non-critical grants that failed after the critical
// write committed. Each failure is logged and reported back to the client so
// it can be reconciled, without turning a committed session into an error.
type grantFailures struct {
	userID uint
	failed []string
}

// check logs err under op and records the failed grant. It reports whether
// the grant succeeded.
func (g *grantFailures) check(op string, err error) bool {
	logNonCritical(op, g.userID, err)
	if err != nil {
		g.failed = append(g.failed, op)
		return false
	}
	return true
}

// ExerciseEntry is one logged exercise within a workout submission.
type ExerciseEntry struct {
	ExerciseID      uint    `json:"exercise_id"`
	Sets            int     `json:"sets"`
	Reps            int     `json:"reps"`
	DurationSeconds int     `json:"duration_seconds"`
	WeightKg        float64 `json:"weight_kg"`
	Completed       bool    `json:"completed"`
}

// CompleteWorkoutInput is a finished workout as submitted by the client.
type CompleteWorkoutInput struct {
	DurationMinutes int             `json:"duration_minutes"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	Entries         []ExerciseEntry `json:"exercises"`
}

// WorkoutResult summarizes everything a completed workout earned.
type WorkoutResult struct {
	SessionID          uint                      `json:"session_id"`
	XPEarned           int                       `json:"xp_earned"`
	CoinsEarned        int                       `json:"coins_earned"`
	StreakBonusPercent int                       `json:"streak_bonus_percent"`
	HexagonXP          map[progression.Axis]int  `json:"hexagon_xp"`
	OldLevel           int                       `json:"old_level"`
	NewLevel           int                       `json:"new_level"`
	LevelUp            bool                      `json:"level_up"`
	Streak             progression.StreakState   `json:"streak"`
	UnlockedTiers      []progression.Tier        `json:"unlocked_tiers,omitempty"`
	IncompleteGrants   []string                  `json:"incomplete_grants,omitempty"`
}

// CompleteWorkout records a finished session and runs the full reward
// pipeline: volume rewards per exercise, streak bonus, hexagon XP, numbered
// level-ups and cumulative achievement progress.
func (s *WorkoutService) CompleteWorkout(userID uint, input CompleteWorkoutInput) (*WorkoutResult, error) {
	if len(input.Entries) == 0 {
		return nil, fmt.Errorf("%w: workout has no exercises", progression.ErrInvalidInput)
	}
	if input.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: negative duration", progression.ErrInvalidInput)
	}

	rewards, err := s.computeEntryRewards(input.Entries)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startedAt := now.Add(-time.Duration(input.DurationMinutes) * time.Minute)
	if input.StartedAt != nil {
		startedAt = input.StartedAt.UTC()
	}

	session := models.WorkoutSession{
		UserID:          userID,
		Status:          "COMPLETED",
		StartedAt:       startedAt,
		CompletedAt:     &now,
		DurationMinutes: input.DurationMinutes,
	}

	// Critical section: the session and its entries must land atomically.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		for _, entry := range input.Entries {
			row := models.SessionExercise{
				SessionID:  session.ID,
				ExerciseID: entry.ExerciseID,
				Sets:       entry.Sets,
				Reps:       entry.Reps,
				Duration:   entry.DurationSeconds,
				Weight:     entry.WeightKg,
				Completed:  entry.Completed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("total_workouts", gorm.Expr("total_workouts + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user %d: %w", userID, progression.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The session is committed; a retry would duplicate it. Every grant
	// from here is non-critical: log, flag on the result, keep going.
	failures := &grantFailures{userID: userID}

	streak, err := s.progression.RecomputeStreak(userID)
	failures.check("streak recompute", err)

	boosted := progression.ApplyStreakBonus(rewards.TotalXP, rewards.Coins, streak.CurrentStreak)

	result := &WorkoutResult{
		SessionID:          session.ID,
		XPEarned:           boosted.XP,
		CoinsEarned:        boosted.Coins,
		StreakBonusPercent: boosted.BonusPercent,
		HexagonXP:          rewards.HexagonXP,
		Streak:             streak,
	}

	_, err = s.progression.GrantMultiAxisXP(userID, rewards.HexagonXP)
	failures.check("hexagon grant", err)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		oldLevel, newLevel, err := s.progression.grantUserTotals(tx, userID, boosted.XP, boosted.Coins)
		if err != nil {
			return err
		}
		result.OldLevel = oldLevel
		result.NewLevel = newLevel
		result.LevelUp = newLevel > oldLevel
		return tx.Model(&session).Updates(map[string]interface{}{
			"xp_earned":    boosted.XP,
			"coins_earned": boosted.Coins,
			"streak_bonus": boosted.BonusPercent,
		}).Error
	})
	if !failures.check("reward totals", err) {
		result.XPEarned = 0
		result.CoinsEarned = 0
	}

	if result.LevelUp && s.notifier != nil {
		title := ""
		if lvl, ok := progression.LevelByNumber(result.NewLevel); ok {
			title = lvl.Title
		}
		s.notifier.Publish(userID, Event{
			Type:    EventLevelUp,
			Message: fmt.Sprintf("Level up! You reached level %d (%s)", result.NewLevel, title),
			Payload: levelPayload{Level: result.NewLevel, Title: title},
		})
	}

	result.UnlockedTiers = s.syncWorkoutAchievements(userID, result.NewLevel)
	result.IncompleteGrants = failures.failed
	return result, nil
}

type levelPayload struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// computeEntryRewards aggregates the continuous-activity rewards of every
// entry into one breakdown.
func (s *WorkoutService) computeEntryRewards(entries []ExerciseEntry) (progression.RewardBreakdown, error) {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ExerciseID)
	}

	var exercises []models.Exercise
	if err := s.db.Where("id IN ? AND is_active = ?", ids, true).Find(&exercises).Error; err != nil {
		return progression.RewardBreakdown{}, err
	}
	byID := make(map[uint]models.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}

	policy := progression.ContinuousActivityPolicy{}
	total := progression.RewardBreakdown{HexagonXP: map[progression.Axis]int{}}

	for _, entry := range entries {
		ex, ok := byID[entry.ExerciseID]
		if !ok {
			return progression.RewardBreakdown{}, fmt.Errorf("exercise %d: %w", entry.ExerciseID, progression.ErrNotFound)
		}
		category, err := progression.ParseCategory(ex.Category)
		if err != nil {
			return progression.RewardBreakdown{}, err
		}
		difficulty, err := progression.ParseDifficulty(ex.Difficulty)
		if err != nil {
			return progression.RewardBreakdown{}, err
		}

		breakdown, err := policy.Compute(category, difficulty, progression.SetPerformance{
			Sets:            entry.Sets,
			Reps:            entry.Reps,
			DurationSeconds: entry.DurationSeconds,
			WeightKg:        entry.WeightKg,
			Completed:       entry.Completed,
		})
		if err != nil {
			return progression.RewardBreakdown{}, err
		}

		for axis, xp := range breakdown.HexagonXP {
			total.HexagonXP[axis] += xp
		}
		total.TotalXP += breakdown.TotalXP
		total.Coins += breakdown.Coins
	}
	return total, nil
}

// syncWorkoutAchievements pushes the cumulative counters a completed workout
// moves. Each sync is independent and non-critical.
func (s *WorkoutService) syncWorkoutAchievements(userID uint, newLevel int) []progression.Tier {
	var unlocked []progression.Tier

	collect := func(result progression.TierResult, err error, op string) {
		logNonCritical(op, userID, err)
		if err == nil {
			unlocked = append(unlocked, result.Unlocked...)
		}
	}

	r, err := s.progression.IncrementAchievement(userID, "routine_completions", 1)
	collect(r, err, "routine_completions sync")

	if days, err := s.countTrainingDays(userID); err != nil {
		logNonCritical("training day count", userID, err)
	} else {
		r, err := s.progression.SetAchievementProgress(userID, "total_training_days", days)
		collect(r, err, "total_training_days sync")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		logNonCritical("user reload", userID, err)
	} else {
		r, err := s.progression.SetAchievementProgress(userID, "total_xp_earned", user.TotalXP)
		collect(r, err, "total_xp_earned sync")
	}

	r, err = s.progression.SetAchievementProgress(userID, "user_level_milestone", newLevel)
	collect(r, err, "user_level_milestone sync")

	if row, err := s.progression.GetOrCreateProfile(userID); err != nil {
		logNonCritical("profile reload", userID, err)
	} else {
		for key, value := range map[string]int{
			"strength_axis_xp": row.RelativeStrengthXP,
			"balance_axis_xp":  row.BalanceControlXP,
			"tension_axis_xp":  row.BodyTensionXP,
		} {
			r, err := s.progression.SetAchievementProgress(userID, key, value)
			collect(r, err, key+" sync")
		}
	}

	return unlocked
}

// countTrainingDays counts distinct calendar days with a completed session.
func (s *WorkoutService) countTrainingDays(userID uint) (int, error) {
	var count int64
	err := s.db.Model(&models.WorkoutSession{}).
		Where("user_id = ? AND status = ? AND completed_at IS NOT NULL", userID, "COMPLETED").
		Distinct("DATE(completed_at)").
		Count(&count).Error
	return int(count), err
}

// SkillResult summarizes a one-time skill completion.
type SkillResult struct {
	SkillID          uint                     `json:"skill_id"`
	AlreadyCompleted bool                     `json:"already_completed"`
	XPEarned         int                      `json:"xp_earned"`
	CoinsEarned      int                      `json:"coins_earned"`
	HexagonXP        map[progression.Axis]int `json:"hexagon_xp,omitempty"`
	OldLevel         int                      `json:"old_level"`
	NewLevel         int                      `json:"new_level"`
	LevelUp          bool                     `json:"level_up"`
	UnlockedTiers    []progression.Tier       `json:"unlocked_tiers,omitempty"`
	IncompleteGrants []string                 `json:"incomplete_grants,omitempty"`
}

// CompleteSkill awards the fixed per-difficulty reward for unlocking a
// calisthenics skill. Re-completing a skill is a recognized no-op, not an
// error, so clients can submit idempotently.
func (s *WorkoutService) CompleteSkill(userID, skillID uint) (*SkillResult, error) {
	var skill models.Skill
	if err := s.db.Where("id = ? AND is_active = ?", skillID, true).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("skill %d: %w", skillID, progression.ErrNotFound)
		}
		return nil, err
	}
	if err := s.progression.requireUser(userID); err != nil {
		return nil, err
	}

	completion := models.UserSkill{
		UserID:      userID,
		SkillID:     skillID,
		CompletedAt: time.Now().UTC(),
	}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return &SkillResult{SkillID: skillID, AlreadyCompleted: true}, nil
	}

	category, err := progression.ParseCategory(skill.Category)
	if err != nil {
		return nil, err
	}
	difficulty, err := progression.ParseDifficulty(skill.Difficulty)
	if err != nil {
		return nil, err
	}

	breakdown, err := progression.DiscreteCompletionPolicy{}.Compute(category, difficulty, progression.SetPerformance{})
	if err != nil {
		return nil, err
	}

	result := &SkillResult{
		SkillID:     skillID,
		XPEarned:    breakdown.TotalXP,
		CoinsEarned: breakdown.Coins,
		HexagonXP:   breakdown.HexagonXP,
	}

	// The completion row is committed; a retry hits the AlreadyCompleted
	// path. Grant failures must not fail the request.
	failures := &grantFailures{userID: userID}

	_, err = s.progression.GrantMultiAxisXP(userID, breakdown.HexagonXP)
	failures.check("hexagon grant", err)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		oldLevel, newLevel, err := s.progression.grantUserTotals(tx, userID, breakdown.TotalXP, breakdown.Coins)
		if err != nil {
			return err
		}
		result.OldLevel = oldLevel
		result.NewLevel = newLevel
		result.LevelUp = newLevel > oldLevel
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("total_skills_unlocked", gorm.Expr("total_skills_unlocked + 1")).Error
	})
	if !failures.check("reward totals", err) {
		result.XPEarned = 0
		result.CoinsEarned = 0
	}

	r, err := s.progression.IncrementAchievement(userID, "total_skills_completed", 1)
	logNonCritical("total_skills_completed sync", userID, err)
	if err == nil {
		result.UnlockedTiers = r.Unlocked
	}
	result.IncompleteGrants = failures.failed
	return result, nil
}
