package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelInfoForXPBoundaries(t *testing.T) {
	cases := []struct {
		totalXP  int
		level    int
		title    string
	}{
		{0, 1, "Novice"},
		{99, 1, "Novice"},
		{100, 2, "Apprentice"},
		{249, 2, "Apprentice"},
		{250, 3, "Rookie Athlete"},
		{24999, 11, "Demigod"},
		{25000, 12, "Olympian"},
		{999999, 12, "Olympian"},
	}
	for _, tc := range cases {
		info := LevelInfoForXP(tc.totalXP)
		assert.Equal(t, tc.level, info.Level, "xp=%d", tc.totalXP)
		assert.Equal(t, tc.title, info.Title, "xp=%d", tc.totalXP)
	}
}

func TestLevelInfoProgress(t *testing.T) {
	info := LevelInfoForXP(100)
	require.NotNil(t, info.NextLevel)
	assert.Equal(t, 3, info.NextLevel.Level)
	assert.Equal(t, 0, info.XPInLevel)
	assert.Equal(t, 150, info.XPToNext)
	assert.Equal(t, 0, info.ProgressPercent)

	info = LevelInfoForXP(175)
	assert.Equal(t, 75, info.XPInLevel)
	assert.Equal(t, 50, info.ProgressPercent)
}

func TestLevelInfoProgressNeverFullBelowThreshold(t *testing.T) {
	// One XP short of the next level reads 99, not a rounded-up 100.
	info := LevelInfoForXP(3499)
	require.NotNil(t, info.NextLevel)
	assert.Equal(t, 1, info.XPToNext)
	assert.Equal(t, 99, info.ProgressPercent)

	info = LevelInfoForXP(249)
	assert.Equal(t, 99, info.ProgressPercent)
}

func TestLevelInfoMaxLevel(t *testing.T) {
	info := LevelInfoForXP(30000)
	assert.Equal(t, 12, info.Level)
	assert.Nil(t, info.NextLevel)
	assert.Equal(t, 0, info.XPToNext)
	assert.Equal(t, 100, info.ProgressPercent)
}

func TestLevelInfoNegativeXPClamps(t *testing.T) {
	info := LevelInfoForXP(-500)
	assert.Equal(t, 1, info.Level)
	assert.Equal(t, 0, info.XPInLevel)
}

func TestLevelUpRewards(t *testing.T) {
	// Jumping from level 1 past levels 2 and 3 collects both coin rewards.
	newLevel, coins := LevelUpRewards(1, 250)
	assert.Equal(t, 3, newLevel)
	assert.Equal(t, 50+75, coins)

	// No level crossed, no coins.
	newLevel, coins = LevelUpRewards(3, 260)
	assert.Equal(t, 3, newLevel)
	assert.Equal(t, 0, coins)

	// Full ladder from scratch.
	newLevel, coins = LevelUpRewards(1, 25000)
	assert.Equal(t, 12, newLevel)
	expected := 0
	for _, l := range Levels[1:] {
		expected += l.CoinReward
	}
	assert.Equal(t, expected, coins)
}

func TestLevelByNumber(t *testing.T) {
	lvl, ok := LevelByNumber(10)
	require.True(t, ok)
	assert.Equal(t, "Legend", lvl.Title)
	assert.Equal(t, 12000, lvl.MinXP)

	_, ok = LevelByNumber(99)
	assert.False(t, ok)
}
