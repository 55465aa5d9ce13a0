package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisLevelFromXP(t *testing.T) {
	cases := []struct {
		xp       int
		expected AxisLevel
	}{
		{-50, LevelBeginner},
		{0, LevelBeginner},
		{1999, LevelBeginner},
		{2000, LevelIntermediate},
		{6999, LevelIntermediate},
		{7000, LevelAdvanced},
		{16999, LevelAdvanced},
		{17000, LevelElite},
		{100000, LevelElite},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, AxisLevelFromXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestXPToNextAxisLevel(t *testing.T) {
	remaining, next, ok := XPToNextAxisLevel(500)
	assert.True(t, ok)
	assert.Equal(t, 1500, remaining)
	assert.Equal(t, LevelIntermediate, next)

	remaining, next, ok = XPToNextAxisLevel(7000)
	assert.True(t, ok)
	assert.Equal(t, 10000, remaining)
	assert.Equal(t, LevelElite, next)

	_, _, ok = XPToNextAxisLevel(17000)
	assert.False(t, ok)
}

func TestNormalizedValueBands(t *testing.T) {
	// Each level starts at the lower edge of its 2.5-wide band.
	assert.InDelta(t, 0.0, NormalizedValue(0), 0.001)
	assert.InDelta(t, 2.5, NormalizedValue(2000), 0.001)
	assert.InDelta(t, 5.0, NormalizedValue(7000), 0.001)
	assert.InDelta(t, 7.5, NormalizedValue(17000), 0.001)

	// Halfway through BEGINNER.
	assert.InDelta(t, 1.25, NormalizedValue(1000), 0.001)

	// ELITE saturates at 10 and never exceeds it.
	assert.InDelta(t, 10.0, NormalizedValue(17000+EliteSaturationXP), 0.001)
	assert.InDelta(t, 10.0, NormalizedValue(999999), 0.001)
}

func TestNormalizedValueMonotonic(t *testing.T) {
	prev := NormalizedValue(0)
	for xp := 100; xp <= 30000; xp += 100 {
		value := NormalizedValue(xp)
		assert.GreaterOrEqual(t, value, prev, "xp=%d", xp)
		prev = value
	}
}

func TestAxisProgressPercent(t *testing.T) {
	assert.Equal(t, 0, AxisProgressPercent(0))
	assert.Equal(t, 50, AxisProgressPercent(1000))
	assert.Equal(t, 0, AxisProgressPercent(2000))
	assert.Equal(t, 100, AxisProgressPercent(17000+EliteSaturationXP))

	// One XP short of a level threshold stays at 99.
	assert.Equal(t, 99, AxisProgressPercent(1999))
	assert.Equal(t, 99, AxisProgressPercent(6999))
}
