// progression/streak.go - Daily streak computation and bonuses
//
// Adjacency rule: a streak chains across training days that are at most
// 2 calendar days apart (one full rest day tolerated). The streak is still
// alive as of a given day when the most recent training day is at most
// 1 day back; training today or yesterday keeps it, a 2-day silence breaks it.
package progression

import (
	"fmt"
	"math"
	"time"
)

// Milestone is a streak length that grants a standing reward bonus while
// the streak is maintained.
type Milestone struct {
	Days         int    `json:"days"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	BonusPercent int    `json:"bonus_percent"`
	Icon         string `json:"icon"`
}

// Milestones in ascending order. Strictly increasing in both days and bonus.
var Milestones = []Milestone{
	{Days: 3, Name: "Getting Started", Description: "3 days in a row!", BonusPercent: 5, Icon: "🔥"},
	{Days: 7, Name: "Weekly Warrior", Description: "One full week!", BonusPercent: 10, Icon: "⚡"},
	{Days: 14, Name: "Two Week Champion", Description: "Two weeks strong!", BonusPercent: 15, Icon: "💪"},
	{Days: 30, Name: "Monthly Master", Description: "A full month of dedication!", BonusPercent: 20, Icon: "🏆"},
	{Days: 60, Name: "Unstoppable", Description: "Two months of consistency!", BonusPercent: 25, Icon: "👑"},
	{Days: 100, Name: "Century Club", Description: "100 days! Legendary!", BonusPercent: 30, Icon: "💎"},
	{Days: 365, Name: "Year of Excellence", Description: "A full year! Ultimate dedication!", BonusPercent: 50, Icon: "🌟"},
}

// StreakState is derived from the full activity history on every read; there
// is no incrementally maintained counter that can drift.
type StreakState struct {
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
	BonusPercent   int        `json:"bonus_percent"`
	NextMilestone  *Milestone `json:"next_milestone,omitempty"`
	DaysUntilLoss  int        `json:"days_until_loss"`
}

const maxChainGapDays = 2

// ComputeStreak derives the streak state from the calendar days with
// completed activity, as of the given day. storedLongest acts as a floor for
// the longest streak so historical records survive data pruning.
func ComputeStreak(activityDays []time.Time, asOf time.Time, storedLongest int) StreakState {
	days := distinctDaysDesc(activityDays)

	if len(days) == 0 {
		first := Milestones[0]
		return StreakState{
			LongestStreak: storedLongest,
			NextMilestone: &first,
		}
	}

	last := days[0]
	longest := maxInt(longestChain(days), storedLongest)

	gap := daysBetween(last, truncateDay(asOf))
	if gap > 1 {
		// Two or more days without training: streak is gone.
		first := Milestones[0]
		return StreakState{
			LongestStreak: longest,
			LastActivity:  &last,
			NextMilestone: &first,
		}
	}

	current := 1
	prev := days[0]
	for _, day := range days[1:] {
		if daysBetween(day, prev) > maxChainGapDays {
			break
		}
		current++
		prev = day
	}

	daysUntilLoss := 1
	if gap == 0 {
		daysUntilLoss = 2
	}

	return StreakState{
		CurrentStreak: current,
		LongestStreak: maxInt(longest, current),
		LastActivity:  &last,
		BonusPercent:  StreakBonusPercent(current),
		NextMilestone: NextMilestone(current),
		DaysUntilLoss: daysUntilLoss,
	}
}

// longestChain finds the longest run over the whole history using the same
// adjacency rule as the current streak. days must be distinct, descending.
func longestChain(days []time.Time) int {
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) <= maxChainGapDays {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// StreakBonusPercent returns the bonus of the highest milestone reached.
func StreakBonusPercent(streakDays int) int {
	bonus := 0
	for _, m := range Milestones {
		if streakDays >= m.Days {
			bonus = m.BonusPercent
		}
	}
	return bonus
}

// NextMilestone returns the lowest milestone still ahead, or nil when all
// milestones are reached.
func NextMilestone(streakDays int) *Milestone {
	for _, m := range Milestones {
		if streakDays < m.Days {
			milestone := m
			return &milestone
		}
	}
	return nil
}

// MilestoneForDays returns the milestone whose threshold equals streakDays
// exactly, used to detect a first-reached milestone.
func MilestoneForDays(streakDays int) (Milestone, bool) {
	for _, m := range Milestones {
		if m.Days == streakDays {
			return m, true
		}
	}
	return Milestone{}, false
}

// BonusReward is the result of applying a streak bonus to base rewards.
type BonusReward struct {
	XP           int `json:"xp"`
	Coins        int `json:"coins"`
	BonusPercent int `json:"bonus_percent"`
}

// ApplyStreakBonus multiplies base XP and coins by the streak multiplier,
// rounding each independently. Zero bonus returns the bases unchanged.
func ApplyStreakBonus(baseXP, baseCoins, streakDays int) BonusReward {
	percent := StreakBonusPercent(streakDays)
	if percent == 0 {
		return BonusReward{XP: baseXP, Coins: baseCoins}
	}
	multiplier := 1 + float64(percent)/100
	return BonusReward{
		XP:           int(math.Round(float64(baseXP) * multiplier)),
		Coins:        int(math.Round(float64(baseCoins) * multiplier)),
		BonusPercent: percent,
	}
}

func validateMilestones() error {
	if len(Milestones) == 0 {
		return fmt.Errorf("%w: empty milestone table", ErrConfiguration)
	}
	for i := 1; i < len(Milestones); i++ {
		if Milestones[i].Days <= Milestones[i-1].Days {
			return fmt.Errorf("%w: milestone days not increasing at %d", ErrConfiguration, Milestones[i].Days)
		}
		if Milestones[i].BonusPercent <= Milestones[i-1].BonusPercent {
			return fmt.Errorf("%w: milestone bonus not increasing at %d days", ErrConfiguration, Milestones[i].Days)
		}
	}
	return nil
}

// distinctDaysDesc reduces timestamps to unique calendar days (UTC),
// sorted most recent first.
func distinctDaysDesc(stamps []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(stamps))
	days := make([]time.Time, 0, len(stamps))
	for _, ts := range stamps {
		day := truncateDay(ts)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	// insertion sort: histories are short and mostly ordered already
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j].After(days[j-1]); j-- {
			days[j], days[j-1] = days[j-1], days[j]
		}
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from the earlier day a to the later day b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
