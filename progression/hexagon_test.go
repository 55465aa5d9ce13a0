package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileDefaultsAndValidation(t *testing.T) {
	p, err := NewProfile(nil)
	require.NoError(t, err)
	require.Len(t, p, 6)
	for _, axis := range Axes {
		state := p[axis]
		assert.Equal(t, 0, state.XP)
		assert.Equal(t, LevelBeginner, state.Level)
		assert.Equal(t, 0.0, state.Value)
	}

	_, err = NewProfile(map[Axis]int{"cardioEndurance": 100})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewProfileClampsNegativeXP(t *testing.T) {
	p, err := NewProfile(map[Axis]int{AxisBodyTension: -300})
	require.NoError(t, err)
	assert.Equal(t, 0, p[AxisBodyTension].XP)
}

func TestApplyAxisXPRecomputesDerivedState(t *testing.T) {
	p, err := NewProfile(map[Axis]int{AxisRelativeStrength: 1900})
	require.NoError(t, err)

	next, err := p.ApplyAxisXP(AxisRelativeStrength, 150)
	require.NoError(t, err)

	assert.Equal(t, 2050, next[AxisRelativeStrength].XP)
	assert.Equal(t, LevelIntermediate, next[AxisRelativeStrength].Level)

	// Original profile is untouched.
	assert.Equal(t, 1900, p[AxisRelativeStrength].XP)
	assert.Equal(t, LevelBeginner, p[AxisRelativeStrength].Level)

	// Other axes are unchanged.
	for _, axis := range Axes {
		if axis == AxisRelativeStrength {
			continue
		}
		assert.Equal(t, p[axis], next[axis])
	}
}

func TestApplyMultiAxisXPAllOrNothing(t *testing.T) {
	p, err := NewProfile(map[Axis]int{AxisBalanceControl: 100})
	require.NoError(t, err)

	_, err = p.ApplyMultiAxisXP(map[Axis]int{
		AxisBalanceControl: 50,
		AxisBodyTension:    -10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 100, p[AxisBalanceControl].XP)

	next, err := p.ApplyMultiAxisXP(map[Axis]int{
		AxisBalanceControl: 50,
		AxisBodyTension:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 150, next[AxisBalanceControl].XP)
	assert.Equal(t, 10, next[AxisBodyTension].XP)
}

func TestOverallLevelIsMeanOfAxes(t *testing.T) {
	p, err := NewProfile(map[Axis]int{
		AxisRelativeStrength:  0,
		AxisMuscularEndurance: 2000,
		AxisBalanceControl:    7000,
		AxisJointMobility:     17000,
		AxisBodyTension:       500,
		AxisSkillTechnique:    1000,
	})
	require.NoError(t, err)

	// Mean is 27500/6 = 4583, inside the INTERMEDIATE band.
	assert.Equal(t, LevelIntermediate, p.OverallLevel())
	assert.Equal(t, 27500, p.TotalXP())
}

func TestOverallLevelNotDraggedByOneAxis(t *testing.T) {
	// One ELITE axis alone does not make the overall profile ELITE.
	p, err := NewProfile(map[Axis]int{AxisRelativeStrength: 17000})
	require.NoError(t, err)
	assert.Equal(t, LevelIntermediate, p.OverallLevel())
}
