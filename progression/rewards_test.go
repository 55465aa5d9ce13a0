package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousPolicyVolumeFormula(t *testing.T) {
	policy := ContinuousActivityPolicy{}

	// 3x10 push-ups at INTERMEDIATE: 30 volume x 1.2 = 36 primary XP,
	// 40% of that (rounded) lands on the technique axis.
	breakdown, err := policy.Compute(CategoryPush, DifficultyIntermediate, SetPerformance{
		Sets: 3, Reps: 10, Completed: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 36, breakdown.HexagonXP[AxisRelativeStrength])
	assert.Equal(t, 14, breakdown.HexagonXP[AxisSkillTechnique])
	assert.Equal(t, 50, breakdown.TotalXP)
	assert.Equal(t, 5, breakdown.Coins)
	assert.Equal(t, AxisRelativeStrength, breakdown.PrimaryAxis)
}

func TestContinuousPolicyTimedHold(t *testing.T) {
	policy := ContinuousActivityPolicy{}

	// 2 sets of a 60s plank: 60s counts as 2 rep equivalents.
	breakdown, err := policy.Compute(CategoryCore, DifficultyBeginner, SetPerformance{
		Sets: 2, DurationSeconds: 60, Completed: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, breakdown.HexagonXP[AxisBodyTension])
	assert.Equal(t, 2, breakdown.HexagonXP[AxisBalanceControl])
	assert.Equal(t, 6, breakdown.TotalXP)
	assert.Equal(t, 0, breakdown.Coins)
}

func TestContinuousPolicyExternalLoad(t *testing.T) {
	policy := ContinuousActivityPolicy{}
	base := SetPerformance{Sets: 1, Reps: 10, Completed: true}

	// 25kg: load factor 1.5.
	weighted := base
	weighted.WeightKg = 25
	breakdown, err := policy.Compute(CategoryPush, DifficultyBeginner, weighted)
	require.NoError(t, err)
	assert.Equal(t, 15, breakdown.HexagonXP[AxisRelativeStrength])

	// 100kg would be factor 3, capped at 2.
	weighted.WeightKg = 100
	breakdown, err = policy.Compute(CategoryPush, DifficultyBeginner, weighted)
	require.NoError(t, err)
	assert.Equal(t, 20, breakdown.HexagonXP[AxisRelativeStrength])
}

func TestContinuousPolicyIncompletePenalty(t *testing.T) {
	policy := ContinuousActivityPolicy{}

	breakdown, err := policy.Compute(CategoryPull, DifficultyBeginner, SetPerformance{
		Sets: 1, Reps: 10, Completed: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, breakdown.HexagonXP[AxisRelativeStrength])
}

func TestContinuousPolicyZeroSetsDefaultsToOne(t *testing.T) {
	policy := ContinuousActivityPolicy{}

	breakdown, err := policy.Compute(CategoryPush, DifficultyBeginner, SetPerformance{
		Reps: 5, Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, breakdown.HexagonXP[AxisRelativeStrength])
}

func TestContinuousPolicyRejectsBadInput(t *testing.T) {
	policy := ContinuousActivityPolicy{}

	_, err := policy.Compute("YOGA", DifficultyBeginner, SetPerformance{Reps: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = policy.Compute(CategoryPush, "IMPOSSIBLE", SetPerformance{Reps: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = policy.Compute(CategoryPush, DifficultyBeginner, SetPerformance{Reps: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDiscretePolicyFixedGrants(t *testing.T) {
	policy := DiscreteCompletionPolicy{}

	cases := []struct {
		difficulty Difficulty
		primary    int
		secondary  int
	}{
		{DifficultyBeginner, 25, 10},
		{DifficultyIntermediate, 50, 20},
		{DifficultyAdvanced, 100, 40},
		{DifficultyExpert, 200, 80},
	}
	for _, tc := range cases {
		breakdown, err := policy.Compute(CategoryPull, tc.difficulty, SetPerformance{})
		require.NoError(t, err)
		assert.Equal(t, tc.primary, breakdown.HexagonXP[AxisRelativeStrength], "difficulty=%s", tc.difficulty)
		assert.Equal(t, tc.secondary, breakdown.HexagonXP[AxisSkillTechnique], "difficulty=%s", tc.difficulty)
	}
}

func TestDiscretePolicyIgnoresVolume(t *testing.T) {
	policy := DiscreteCompletionPolicy{}

	// Volume fields have no effect on a discrete completion.
	a, err := policy.Compute(CategoryBalance, DifficultyAdvanced, SetPerformance{})
	require.NoError(t, err)
	b, err := policy.Compute(CategoryBalance, DifficultyAdvanced, SetPerformance{Sets: 10, Reps: 100, WeightKg: 40})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// BALANCE splits secondary credit across technique and tension.
	assert.Equal(t, 100, a.HexagonXP[AxisBalanceControl])
	assert.Equal(t, 40, a.HexagonXP[AxisSkillTechnique])
	assert.Equal(t, 40, a.HexagonXP[AxisBodyTension])
	assert.Equal(t, 180, a.TotalXP)
	assert.Equal(t, 18, a.Coins)
}

func TestCoinsAreTotalXPOverTen(t *testing.T) {
	policy := ContinuousActivityPolicy{}

	breakdown, err := policy.Compute(CategoryLegs, DifficultyExpert, SetPerformance{
		Sets: 5, Reps: 20, Completed: true,
	})
	require.NoError(t, err)

	// LEGS has no secondary axes: total equals the primary grant.
	assert.Equal(t, breakdown.HexagonXP[AxisMuscularEndurance], breakdown.TotalXP)
	assert.Equal(t, breakdown.TotalXP/10, breakdown.Coins)
}

func TestParseHelpers(t *testing.T) {
	category, err := ParseCategory("STATICS")
	require.NoError(t, err)
	assert.Equal(t, CategoryStatics, category)

	_, err = ParseCategory("SWIMMING")
	assert.ErrorIs(t, err, ErrInvalidInput)

	difficulty, err := ParseDifficulty("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, DifficultyExpert, difficulty)

	_, err = ParseDifficulty("easy")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
