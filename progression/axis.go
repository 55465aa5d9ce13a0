// progression/axis.go - Hexagon axes and per-axis level thresholds
package progression

import (
	"fmt"
	"math"
)

// Axis is one of the six skill dimensions of the hexagon profile.
// The set is closed: axes are always addressed through these constants,
// never through runtime string building.
type Axis string

const (
	AxisRelativeStrength  Axis = "relativeStrength"
	AxisMuscularEndurance Axis = "muscularEndurance"
	AxisBalanceControl    Axis = "balanceControl"
	AxisJointMobility     Axis = "jointMobility"
	AxisBodyTension       Axis = "bodyTension"
	AxisSkillTechnique    Axis = "skillTechnique"
)

// Axes lists every axis in canonical order.
var Axes = []Axis{
	AxisRelativeStrength,
	AxisMuscularEndurance,
	AxisBalanceControl,
	AxisJointMobility,
	AxisBodyTension,
	AxisSkillTechnique,
}

// Valid reports whether a is one of the six known axes.
func (a Axis) Valid() bool {
	switch a {
	case AxisRelativeStrength, AxisMuscularEndurance, AxisBalanceControl,
		AxisJointMobility, AxisBodyTension, AxisSkillTechnique:
		return true
	}
	return false
}

// AxisLevel is the discrete progression level of a single axis.
type AxisLevel string

const (
	LevelBeginner     AxisLevel = "BEGINNER"
	LevelIntermediate AxisLevel = "INTERMEDIATE"
	LevelAdvanced     AxisLevel = "ADVANCED"
	LevelElite        AxisLevel = "ELITE"
)

// axisLevelOrder lists levels from lowest to highest with their cumulative
// XP entry thresholds. Level-up costs are 2000 / 5000 / 10000 XP.
var axisLevelOrder = []struct {
	Level AxisLevel
	MinXP int
}{
	{LevelBeginner, 0},
	{LevelIntermediate, 2000},
	{LevelAdvanced, 7000},
	{LevelElite, 17000},
}

// EliteSaturationXP controls the display-only saturation of the normalized
// value beyond the ELITE threshold: this many extra XP map to a full 10.0.
// Cosmetic heuristic, safe to tune.
const EliteSaturationXP = 10000

// Each level owns a 2.5-wide band of the 0-10 visual scale.
const levelBandWidth = 2.5

// AxisLevelFromXP returns the highest level whose threshold is <= xp.
// Negative input clamps to 0.
func AxisLevelFromXP(xp int) AxisLevel {
	if xp < 0 {
		xp = 0
	}
	level := LevelBeginner
	for _, entry := range axisLevelOrder {
		if xp >= entry.MinXP {
			level = entry.Level
		}
	}
	return level
}

// XPToNextAxisLevel returns the XP remaining until the next level and that
// level. At ELITE it returns (0, "", false).
func XPToNextAxisLevel(xp int) (remaining int, next AxisLevel, ok bool) {
	if xp < 0 {
		xp = 0
	}
	current := AxisLevelFromXP(xp)
	for i, entry := range axisLevelOrder {
		if entry.Level == current {
			if i == len(axisLevelOrder)-1 {
				return 0, "", false
			}
			nextEntry := axisLevelOrder[i+1]
			return nextEntry.MinXP - xp, nextEntry.Level, true
		}
	}
	return 0, "", false
}

// levelBounds returns the XP range [start, end) of a level. For ELITE the
// end is the saturation point of the visual scale.
func levelBounds(level AxisLevel) (start, end int) {
	for i, entry := range axisLevelOrder {
		if entry.Level != level {
			continue
		}
		if i == len(axisLevelOrder)-1 {
			return entry.MinXP, entry.MinXP + EliteSaturationXP
		}
		return entry.MinXP, axisLevelOrder[i+1].MinXP
	}
	return 0, axisLevelOrder[1].MinXP
}

// levelBase returns the lower edge of a level's visual band.
func levelBase(level AxisLevel) float64 {
	for i, entry := range axisLevelOrder {
		if entry.Level == level {
			return float64(i) * levelBandWidth
		}
	}
	return 0
}

// NormalizedValue maps an axis XP total to the 0-10 visual scale. Within a
// level the value interpolates linearly across that level's 2.5-wide band.
func NormalizedValue(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	level := AxisLevelFromXP(xp)
	start, end := levelBounds(level)

	progress := float64(xp-start) / float64(end-start)
	progress = math.Max(0, math.Min(1, progress))

	value := levelBase(level) + progress*levelBandWidth
	return math.Min(10, math.Max(0, value))
}

// AxisProgressPercent returns how far through the current level the XP total
// is, 0-100. ELITE uses the saturation scale and tops out at 100.
func AxisProgressPercent(xp int) int {
	if xp < 0 {
		xp = 0
	}
	start, end := levelBounds(AxisLevelFromXP(xp))
	// Floor, not round: one XP short of a threshold reads 99, never 100.
	percent := float64(xp-start) / float64(end-start) * 100
	return int(math.Min(100, math.Max(0, math.Floor(percent))))
}

func validateAxisLevels() error {
	if axisLevelOrder[0].MinXP != 0 {
		return fmt.Errorf("%w: first axis level must start at 0 XP", ErrConfiguration)
	}
	for i := 1; i < len(axisLevelOrder); i++ {
		if axisLevelOrder[i].MinXP <= axisLevelOrder[i-1].MinXP {
			return fmt.Errorf("%w: axis level thresholds must be strictly increasing at %s",
				ErrConfiguration, axisLevelOrder[i].Level)
		}
	}
	return nil
}
