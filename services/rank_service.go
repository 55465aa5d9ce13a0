// services/rank_service.go - Periodic leaderboard rank snapshots
//
// Ranks are recomputed on a schedule and served from snapshot rows, so a
// rank is valid as of the scan that produced it rather than transactionally
// live. Live ORDER BY queries stay available for the top-N listings.
package services

import (
	"fmt"
	"log"
	"time"

	"hexfit/models"
	"hexfit/progression"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// Leaderboard categories.
const (
	RankByXP     = "xp"
	RankByLevel  = "level"
	RankByStreak = "streak"
)

// rankOrderings maps each category to the user column that scores it.
var rankOrderings = map[string]string{
	RankByXP:     "total_xp",
	RankByLevel:  "current_level",
	RankByStreak: "longest_streak",
}

type RankService struct {
	db        *gorm.DB
	scheduler *gocron.Scheduler
}

func NewRankService(db *gorm.DB) *RankService {
	return &RankService{
		db:        db,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the periodic snapshot job and runs one pass immediately so
// ranks are available right after boot.
func (s *RankService) Start(interval time.Duration) error {
	if _, err := s.scheduler.Every(interval).Do(s.snapshotAll); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	go s.snapshotAll()
	return nil
}

func (s *RankService) Stop() {
	s.scheduler.Stop()
}

func (s *RankService) snapshotAll() {
	for category := range rankOrderings {
		if err := s.SnapshotCategory(category); err != nil {
			log.Printf("rank: snapshot %s failed: %v", category, err)
		}
	}
}

// SnapshotCategory recomputes every user's rank for one category and swaps
// the snapshot rows in a single transaction.
func (s *RankService) SnapshotCategory(category string) error {
	column, ok := rankOrderings[category]
	if !ok {
		return fmt.Errorf("%w: unknown leaderboard category %q", progression.ErrInvalidInput, category)
	}

	type scored struct {
		ID    uint
		Score int
	}
	var rows []scored
	err := s.db.Model(&models.User{}).
		Select("id, "+column+" AS score").
		Where("is_guest = ? AND is_banned = ?", false, false).
		Order(column + " DESC, id ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ?", category).Delete(&models.LeaderboardSnapshot{}).Error; err != nil {
			return err
		}
		for i, row := range rows {
			snapshot := models.LeaderboardSnapshot{
				UserID:     row.ID,
				Category:   category,
				Rank:       i + 1,
				Score:      row.Score,
				ComputedAt: now,
			}
			if err := tx.Create(&snapshot).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RankEntry is one leaderboard row joined with user display fields.
type RankEntry struct {
	Rank        int    `json:"rank"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Score       int    `json:"score"`
}

// Top returns the first limit entries of a category's snapshot.
func (s *RankService) Top(category string, limit int) ([]RankEntry, error) {
	if _, ok := rankOrderings[category]; !ok {
		return nil, fmt.Errorf("%w: unknown leaderboard category %q", progression.ErrInvalidInput, category)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var entries []RankEntry
	err := s.db.Model(&models.LeaderboardSnapshot{}).
		Select("leaderboard_snapshots.rank, leaderboard_snapshots.user_id, leaderboard_snapshots.score, users.username, users.display_name, users.avatar").
		Joins("JOIN users ON users.id = leaderboard_snapshots.user_id").
		Where("leaderboard_snapshots.category = ?", category).
		Order("leaderboard_snapshots.rank ASC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// UserRank returns the snapshot rank of one user, or ErrNotFound when the
// user has no snapshot yet (new user, or snapshots not computed).
func (s *RankService) UserRank(category string, userID uint) (RankEntry, error) {
	if _, ok := rankOrderings[category]; !ok {
		return RankEntry{}, fmt.Errorf("%w: unknown leaderboard category %q", progression.ErrInvalidInput, category)
	}

	var entry RankEntry
	res := s.db.Model(&models.LeaderboardSnapshot{}).
		Select("leaderboard_snapshots.rank, leaderboard_snapshots.user_id, leaderboard_snapshots.score, users.username, users.display_name, users.avatar").
		Joins("JOIN users ON users.id = leaderboard_snapshots.user_id").
		Where("leaderboard_snapshots.category = ? AND leaderboard_snapshots.user_id = ?", category, userID).
		Limit(1).
		Scan(&entry)
	if res.Error != nil {
		return RankEntry{}, res.Error
	}
	if res.RowsAffected == 0 {
		return RankEntry{}, fmt.Errorf("rank for user %d in %s: %w", userID, category, progression.ErrNotFound)
	}
	return entry, nil
}

// Around returns a window of entries centered on the user's rank.
func (s *RankService) Around(category string, userID uint, radius int) ([]RankEntry, error) {
	center, err := s.UserRank(category, userID)
	if err != nil {
		return nil, err
	}
	if radius <= 0 || radius > 25 {
		radius = 5
	}

	low := center.Rank - radius
	if low < 1 {
		low = 1
	}

	var entries []RankEntry
	err = s.db.Model(&models.LeaderboardSnapshot{}).
		Select("leaderboard_snapshots.rank, leaderboard_snapshots.user_id, leaderboard_snapshots.score, users.username, users.display_name, users.avatar").
		Joins("JOIN users ON users.id = leaderboard_snapshots.user_id").
		Where("leaderboard_snapshots.category = ? AND leaderboard_snapshots.rank BETWEEN ? AND ?", category, low, center.Rank+radius).
		Order("leaderboard_snapshots.rank ASC").
		Scan(&entries).Error
	return entries, err
}
