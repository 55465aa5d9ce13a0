// progression/rewards.go - Reward policies for exercise and skill events
//
// Two reward paths exist on purpose and are never mixed: continuous exercise
// logging uses a volume formula, discrete skill completions use a fixed
// per-difficulty lookup. The call site picks the policy by event type.
package progression

import (
	"fmt"
	"math"
)

// ExerciseCategory classifies an exercise for axis mapping.
type ExerciseCategory string

const (
	CategoryPush        ExerciseCategory = "PUSH"
	CategoryPull        ExerciseCategory = "PULL"
	CategoryCore        ExerciseCategory = "CORE"
	CategoryBalance     ExerciseCategory = "BALANCE"
	CategoryLowerBody   ExerciseCategory = "LOWER_BODY"
	CategoryLegs        ExerciseCategory = "LEGS"
	CategoryStatics     ExerciseCategory = "STATICS"
	CategoryCardio      ExerciseCategory = "CARDIO"
	CategoryWarmUp      ExerciseCategory = "WARM_UP"
	CategoryFlexibility ExerciseCategory = "FLEXIBILITY"
)

// Difficulty is the difficulty tier of an exercise or skill.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
	DifficultyExpert       Difficulty = "EXPERT"
)

// difficultyWeight scales the continuous volume formula.
var difficultyWeight = map[Difficulty]float64{
	DifficultyBeginner:     1.0,
	DifficultyIntermediate: 1.2,
	DifficultyAdvanced:     1.5,
	DifficultyExpert:       1.8,
}

// categoryPrimaryAxis maps each category to the axis it primarily trains.
var categoryPrimaryAxis = map[ExerciseCategory]Axis{
	CategoryPush:        AxisRelativeStrength,
	CategoryPull:        AxisRelativeStrength,
	CategoryCore:        AxisBodyTension,
	CategoryBalance:     AxisBalanceControl,
	CategoryLowerBody:   AxisMuscularEndurance,
	CategoryLegs:        AxisMuscularEndurance,
	CategoryStatics:     AxisBodyTension,
	CategoryCardio:      AxisMuscularEndurance,
	CategoryWarmUp:      AxisJointMobility,
	CategoryFlexibility: AxisJointMobility,
}

// categorySecondaryAxes lists axes that receive partial credit.
var categorySecondaryAxes = map[ExerciseCategory][]Axis{
	CategoryPush:    {AxisSkillTechnique},
	CategoryPull:    {AxisSkillTechnique},
	CategoryCore:    {AxisBalanceControl},
	CategoryBalance: {AxisSkillTechnique, AxisBodyTension},
	CategoryStatics: {AxisBalanceControl, AxisSkillTechnique},
}

// secondaryShare is the fraction of the primary XP a secondary axis gets.
const secondaryShare = 0.4

// coinsPerXP: 1 coin per 10 XP, floored.
const coinsPerXP = 10

// discreteXP is the direct lookup for skill/assessment completion events.
var discreteXP = map[Difficulty]struct{ Primary, Secondary int }{
	DifficultyBeginner:     {Primary: 25, Secondary: 10},
	DifficultyIntermediate: {Primary: 50, Secondary: 20},
	DifficultyAdvanced:     {Primary: 100, Secondary: 40},
	DifficultyExpert:       {Primary: 200, Secondary: 80},
}

// SetPerformance is one logged exercise entry: how much work was done.
type SetPerformance struct {
	Sets            int
	Reps            int
	DurationSeconds int
	WeightKg        float64
	Completed       bool
}

// RewardBreakdown is the outcome of a reward computation.
type RewardBreakdown struct {
	HexagonXP   map[Axis]int     `json:"hexagon_xp"`
	TotalXP     int              `json:"total_xp"`
	Coins       int              `json:"coins"`
	PrimaryAxis Axis             `json:"primary_axis"`
	Category    ExerciseCategory `json:"category"`
	Difficulty  Difficulty       `json:"difficulty"`
}

// RewardPolicy converts one exercise or skill event into a reward.
type RewardPolicy interface {
	Compute(category ExerciseCategory, difficulty Difficulty, perf SetPerformance) (RewardBreakdown, error)
}

// ContinuousActivityPolicy rewards logged exercise volume.
//
// Base volume = sets x (reps + duration/30s), weighted by difficulty, by an
// external-load factor min(2, 1 + kg/50) and by 0.7 when the entry was not
// fully completed.
type ContinuousActivityPolicy struct{}

func (ContinuousActivityPolicy) Compute(category ExerciseCategory, difficulty Difficulty, perf SetPerformance) (RewardBreakdown, error) {
	primary, ok := categoryPrimaryAxis[category]
	if !ok {
		return RewardBreakdown{}, fmt.Errorf("%w: unknown exercise category %q", ErrInvalidInput, category)
	}
	weight, ok := difficultyWeight[difficulty]
	if !ok {
		return RewardBreakdown{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, difficulty)
	}
	if perf.Sets < 0 || perf.Reps < 0 || perf.DurationSeconds < 0 || perf.WeightKg < 0 {
		return RewardBreakdown{}, fmt.Errorf("%w: negative performance values", ErrInvalidInput)
	}

	sets := perf.Sets
	if sets == 0 {
		sets = 1
	}

	// 30 seconds of timed hold counts as one rep equivalent.
	repEquivalent := float64(perf.Reps) + math.Round(float64(perf.DurationSeconds)/30)
	volume := float64(sets) * repEquivalent

	loadFactor := 1.0
	if perf.WeightKg > 0 {
		loadFactor = math.Min(2, 1+perf.WeightKg/50)
	}
	completedFactor := 1.0
	if !perf.Completed {
		completedFactor = 0.7
	}

	primaryXP := int(math.Round(volume * weight * loadFactor * completedFactor))
	secondaryXP := int(math.Round(float64(primaryXP) * secondaryShare))

	return assemble(category, difficulty, primary, primaryXP, secondaryXP), nil
}

// DiscreteCompletionPolicy rewards one-time skill or assessment completions
// with a fixed per-difficulty grant; performance volume is ignored.
type DiscreteCompletionPolicy struct{}

func (DiscreteCompletionPolicy) Compute(category ExerciseCategory, difficulty Difficulty, _ SetPerformance) (RewardBreakdown, error) {
	primary, ok := categoryPrimaryAxis[category]
	if !ok {
		return RewardBreakdown{}, fmt.Errorf("%w: unknown exercise category %q", ErrInvalidInput, category)
	}
	xp, ok := discreteXP[difficulty]
	if !ok {
		return RewardBreakdown{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, difficulty)
	}
	return assemble(category, difficulty, primary, xp.Primary, xp.Secondary), nil
}

func assemble(category ExerciseCategory, difficulty Difficulty, primary Axis, primaryXP, secondaryXP int) RewardBreakdown {
	hexXP := map[Axis]int{primary: primaryXP}
	for _, axis := range categorySecondaryAxes[category] {
		hexXP[axis] += secondaryXP
	}

	total := 0
	for _, xp := range hexXP {
		total += xp
	}

	return RewardBreakdown{
		HexagonXP:   hexXP,
		TotalXP:     total,
		Coins:       total / coinsPerXP,
		PrimaryAxis: primary,
		Category:    category,
		Difficulty:  difficulty,
	}
}

// ParseCategory validates a category string from the API boundary.
func ParseCategory(s string) (ExerciseCategory, error) {
	c := ExerciseCategory(s)
	if _, ok := categoryPrimaryAxis[c]; !ok {
		return "", fmt.Errorf("%w: unknown exercise category %q", ErrInvalidInput, s)
	}
	return c, nil
}

// ParseDifficulty validates a difficulty string from the API boundary.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyWeight[d]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
	}
	return d, nil
}
