package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeTiers() []Tier {
	return []Tier{
		{Number: 1, Name: "Bronze", Target: 10, XPReward: 100, CoinsReward: 50},
		{Number: 2, Name: "Silver", Target: 20, XPReward: 250, CoinsReward: 100},
		{Number: 3, Name: "Gold", Target: 50, XPReward: 500, CoinsReward: 200},
	}
}

func TestEvaluateTiersUnlocksInOrder(t *testing.T) {
	result, err := EvaluateTiers(threeTiers(), 0, 0, 15)
	require.NoError(t, err)

	assert.Equal(t, 15, result.NewValue)
	assert.Equal(t, 1, result.NewTier)
	require.Len(t, result.Unlocked, 1)
	assert.Equal(t, "Bronze", result.Unlocked[0].Name)
	assert.Equal(t, 100, result.XPEarned)
	assert.Equal(t, 50, result.CoinsEarned)

	// Continuing from there reaches Silver but not Gold.
	result, err = EvaluateTiers(threeTiers(), 15, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, result.NewValue)
	assert.Equal(t, 2, result.NewTier)
	require.Len(t, result.Unlocked, 1)
	assert.Equal(t, "Silver", result.Unlocked[0].Name)
}

func TestEvaluateTiersUnlocksSeveralAtOnce(t *testing.T) {
	result, err := EvaluateTiers(threeTiers(), 0, 0, 60)
	require.NoError(t, err)

	assert.Equal(t, 3, result.NewTier)
	require.Len(t, result.Unlocked, 3)
	assert.Equal(t, 100+250+500, result.XPEarned)
	assert.Equal(t, 50+100+200, result.CoinsEarned)
}

func TestEvaluateTiersZeroDeltaIsNoOp(t *testing.T) {
	result, err := EvaluateTiers(threeTiers(), 25, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 25, result.NewValue)
	assert.Equal(t, 2, result.NewTier)
	assert.Empty(t, result.Unlocked)
	assert.Equal(t, 0, result.XPEarned)
}

func TestEvaluateTiersNeverReUnlocks(t *testing.T) {
	// Value already past Bronze and Silver, both already held.
	result, err := EvaluateTiers(threeTiers(), 25, 2, 5)
	require.NoError(t, err)
	assert.Empty(t, result.Unlocked)

	// One more push crosses Gold only.
	result, err = EvaluateTiers(threeTiers(), 30, 2, 20)
	require.NoError(t, err)
	require.Len(t, result.Unlocked, 1)
	assert.Equal(t, "Gold", result.Unlocked[0].Name)
}

func TestEvaluateTiersRejectsNegativeDelta(t *testing.T) {
	_, err := EvaluateTiers(threeTiers(), 10, 1, -5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluateAbsoluteNeverRegresses(t *testing.T) {
	// Syncing to a lower value keeps the current value and tier.
	result, err := EvaluateAbsolute(threeTiers(), 25, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, result.NewValue)
	assert.Equal(t, 2, result.NewTier)
	assert.Empty(t, result.Unlocked)

	// Syncing to a higher value moves forward normally.
	result, err = EvaluateAbsolute(threeTiers(), 25, 2, 55)
	require.NoError(t, err)
	assert.Equal(t, 55, result.NewValue)
	assert.Equal(t, 3, result.NewTier)
}

func TestValidateTiers(t *testing.T) {
	assert.ErrorIs(t, ValidateTiers(nil), ErrConfiguration)

	gap := threeTiers()
	gap[1].Number = 3
	assert.ErrorIs(t, ValidateTiers(gap), ErrConfiguration)

	flat := threeTiers()
	flat[1].Target = 10
	assert.ErrorIs(t, ValidateTiers(flat), ErrConfiguration)

	notOne := threeTiers()
	notOne[0].Number = 0
	notOne[1].Number = 1
	notOne[2].Number = 2
	assert.ErrorIs(t, ValidateTiers(notOne), ErrConfiguration)

	assert.NoError(t, ValidateTiers(threeTiers()))
}
