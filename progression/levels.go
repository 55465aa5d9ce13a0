// progression/levels.go - Numbered user levels from total XP
package progression

import (
	"fmt"
	"math"
)

// LevelThreshold is one entry of the static user level table.
type LevelThreshold struct {
	Level      int    `json:"level"`
	Title      string `json:"title"`
	MinXP      int    `json:"min_xp"`
	CoinReward int    `json:"coin_reward"` // granted once, on reaching the level
}

// Levels is the user-wide level ladder, driven by total XP across all
// activity. Axis levels use their own thresholds (see axis.go).
var Levels = []LevelThreshold{
	{Level: 1, Title: "Novice", MinXP: 0},
	{Level: 2, Title: "Apprentice", MinXP: 100, CoinReward: 50},
	{Level: 3, Title: "Rookie Athlete", MinXP: 250, CoinReward: 75},
	{Level: 4, Title: "Warrior in Training", MinXP: 500, CoinReward: 100},
	{Level: 5, Title: "Intermediate Athlete", MinXP: 1000, CoinReward: 150},
	{Level: 6, Title: "Veteran", MinXP: 2000, CoinReward: 200},
	{Level: 7, Title: "Expert", MinXP: 3500, CoinReward: 300},
	{Level: 8, Title: "Master", MinXP: 5500, CoinReward: 400},
	{Level: 9, Title: "Grandmaster", MinXP: 8000, CoinReward: 600},
	{Level: 10, Title: "Legend", MinXP: 12000, CoinReward: 1000},
	{Level: 11, Title: "Demigod", MinXP: 17000, CoinReward: 1500},
	{Level: 12, Title: "Olympian", MinXP: 25000, CoinReward: 2500},
}

// LevelInfo is the display-ready summary of a user's position on the ladder.
type LevelInfo struct {
	Level           int    `json:"level"`
	Title           string `json:"title"`
	XPInLevel       int    `json:"xp_in_level"`
	XPToNext        int    `json:"xp_to_next"`
	ProgressPercent int    `json:"progress_percent"`
	NextLevel       *LevelThreshold `json:"next_level,omitempty"`
}

// LevelInfoForXP computes the numbered level, progress percent and XP to the
// next level for a total XP amount. Max level reports 100% and 0 remaining.
func LevelInfoForXP(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	current := Levels[0]
	var next *LevelThreshold
	for i := len(Levels) - 1; i >= 0; i-- {
		if totalXP >= Levels[i].MinXP {
			current = Levels[i]
			if i < len(Levels)-1 {
				n := Levels[i+1]
				next = &n
			}
			break
		}
	}

	info := LevelInfo{
		Level:     current.Level,
		Title:     current.Title,
		XPInLevel: totalXP - current.MinXP,
		NextLevel: next,
	}
	if next == nil {
		info.ProgressPercent = 100
		return info
	}

	info.XPToNext = next.MinXP - totalXP
	span := float64(next.MinXP - current.MinXP)
	// Floor, not round: 100 is reserved for a level actually reached.
	info.ProgressPercent = int(math.Min(100, math.Floor(float64(info.XPInLevel)/span*100)))
	return info
}

// LevelByNumber returns the table entry for a level number, or false.
func LevelByNumber(level int) (LevelThreshold, bool) {
	for _, l := range Levels {
		if l.Level == level {
			return l, true
		}
	}
	return LevelThreshold{}, false
}

// LevelUpRewards returns the coin rewards for every level crossed moving from
// oldLevel to the level implied by newTotalXP, in ascending order.
func LevelUpRewards(oldLevel, newTotalXP int) (newLevel int, coins int) {
	info := LevelInfoForXP(newTotalXP)
	newLevel = info.Level
	for _, l := range Levels {
		if l.Level > oldLevel && l.Level <= newLevel {
			coins += l.CoinReward
		}
	}
	return newLevel, coins
}

func validateLevelTable() error {
	if len(Levels) == 0 {
		return fmt.Errorf("%w: empty level table", ErrConfiguration)
	}
	if Levels[0].MinXP != 0 || Levels[0].Level != 1 {
		return fmt.Errorf("%w: level table must start at level 1 with 0 XP", ErrConfiguration)
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i].MinXP <= Levels[i-1].MinXP {
			return fmt.Errorf("%w: level %d threshold not increasing", ErrConfiguration, Levels[i].Level)
		}
		if Levels[i].Level != Levels[i-1].Level+1 {
			return fmt.Errorf("%w: level numbers must be consecutive at %d", ErrConfiguration, Levels[i].Level)
		}
	}
	return nil
}

func init() {
	mustValidate(validateLevelTable())
	mustValidate(validateAxisLevels())
	mustValidate(validateMilestones())
}

// mustValidate fails fast on static table errors so a misconfigured build
// never serves requests.
func mustValidate(err error) {
	if err != nil {
		panic(err)
	}
}
