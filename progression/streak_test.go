package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestComputeStreakRestDayTolerated(t *testing.T) {
	// Mon / Wed / Fri training chains into a 3-day streak.
	days := []time.Time{
		day(2026, time.August, 24),
		day(2026, time.August, 26),
		day(2026, time.August, 28),
	}
	state := ComputeStreak(days, day(2026, time.August, 28), 0)

	assert.Equal(t, 3, state.CurrentStreak)
	assert.Equal(t, 3, state.LongestStreak)
	assert.Equal(t, 5, state.BonusPercent)
	require.NotNil(t, state.LastActivity)
	assert.Equal(t, day(2026, time.August, 28), *state.LastActivity)
}

func TestComputeStreakTwoRestDaysBreakChain(t *testing.T) {
	// Mon then Thu: the 3-day gap breaks the chain, only Thu counts.
	days := []time.Time{
		day(2026, time.August, 24),
		day(2026, time.August, 27),
	}
	state := ComputeStreak(days, day(2026, time.August, 28), 0)
	assert.Equal(t, 1, state.CurrentStreak)
}

func TestComputeStreakLostAfterSilence(t *testing.T) {
	// Last training two days before asOf: streak is gone, bonus is gone.
	days := []time.Time{day(2026, time.August, 25)}
	state := ComputeStreak(days, day(2026, time.August, 28), 0)

	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 0, state.BonusPercent)
	assert.Equal(t, 1, state.LongestStreak) // history still counts
}

func TestComputeStreakTrainedTodayVsYesterday(t *testing.T) {
	today := day(2026, time.August, 28)

	state := ComputeStreak([]time.Time{today}, today, 0)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 2, state.DaysUntilLoss)

	state = ComputeStreak([]time.Time{day(2026, time.August, 27)}, today, 0)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 1, state.DaysUntilLoss)
}

func TestComputeStreakStoredLongestIsFloor(t *testing.T) {
	days := []time.Time{day(2026, time.August, 28)}
	state := ComputeStreak(days, day(2026, time.August, 28), 50)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 50, state.LongestStreak)
}

func TestComputeStreakEmptyHistory(t *testing.T) {
	state := ComputeStreak(nil, day(2026, time.August, 28), 4)
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 4, state.LongestStreak)
	assert.Nil(t, state.LastActivity)
	require.NotNil(t, state.NextMilestone)
	assert.Equal(t, 3, state.NextMilestone.Days)
}

func TestComputeStreakDeduplicatesSameDay(t *testing.T) {
	// Three sessions on the same day count as one training day.
	stamps := []time.Time{
		time.Date(2026, time.August, 28, 7, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 28, 12, 30, 0, 0, time.UTC),
		time.Date(2026, time.August, 28, 21, 15, 0, 0, time.UTC),
		time.Date(2026, time.August, 27, 18, 0, 0, 0, time.UTC),
	}
	state := ComputeStreak(stamps, day(2026, time.August, 28), 0)
	assert.Equal(t, 2, state.CurrentStreak)
}

func TestStreakBonusPercent(t *testing.T) {
	cases := []struct {
		days    int
		percent int
	}{
		{0, 0}, {2, 0}, {3, 5}, {6, 5}, {7, 10}, {14, 15},
		{30, 20}, {60, 25}, {100, 30}, {364, 30}, {365, 50}, {1000, 50},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.percent, StreakBonusPercent(tc.days), "days=%d", tc.days)
	}
}

func TestNextMilestone(t *testing.T) {
	m := NextMilestone(0)
	require.NotNil(t, m)
	assert.Equal(t, 3, m.Days)

	m = NextMilestone(7)
	require.NotNil(t, m)
	assert.Equal(t, 14, m.Days)

	assert.Nil(t, NextMilestone(365))
}

func TestMilestoneForDays(t *testing.T) {
	m, ok := MilestoneForDays(30)
	require.True(t, ok)
	assert.Equal(t, "Monthly Master", m.Name)

	_, ok = MilestoneForDays(31)
	assert.False(t, ok)
}

func TestApplyStreakBonus(t *testing.T) {
	// No bonus is an exact pass-through, not a multiply-by-one.
	reward := ApplyStreakBonus(100, 10, 0)
	assert.Equal(t, BonusReward{XP: 100, Coins: 10}, reward)

	reward = ApplyStreakBonus(100, 10, 7)
	assert.Equal(t, 110, reward.XP)
	assert.Equal(t, 11, reward.Coins)
	assert.Equal(t, 10, reward.BonusPercent)

	// XP and coins round independently.
	reward = ApplyStreakBonus(33, 3, 3)
	assert.Equal(t, 35, reward.XP)   // 34.65 rounds up
	assert.Equal(t, 3, reward.Coins) // 3.15 rounds down
}
