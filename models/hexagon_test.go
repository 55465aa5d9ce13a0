package models

import (
	"testing"

	"hexfit/progression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexagonProfileRoundTrip(t *testing.T) {
	row := HexagonProfile{
		RelativeStrengthXP:  2100,
		MuscularEnduranceXP: 450,
		BalanceControlXP:    7300,
		JointMobilityXP:     0,
		BodyTensionXP:       17000,
		SkillTechniqueXP:    1999,
	}

	profile := row.ToProfile()
	require.Len(t, profile, 6)

	// Derived fields come from the stored raw XP, nothing else.
	assert.Equal(t, progression.LevelIntermediate, profile[progression.AxisRelativeStrength].Level)
	assert.Equal(t, progression.LevelAdvanced, profile[progression.AxisBalanceControl].Level)
	assert.Equal(t, progression.LevelElite, profile[progression.AxisBodyTension].Level)
	assert.Equal(t, progression.LevelBeginner, profile[progression.AxisSkillTechnique].Level)

	// Writing the profile back reproduces the original row.
	var back HexagonProfile
	back.SetFromProfile(profile)
	assert.Equal(t, row.RelativeStrengthXP, back.RelativeStrengthXP)
	assert.Equal(t, row.MuscularEnduranceXP, back.MuscularEnduranceXP)
	assert.Equal(t, row.BalanceControlXP, back.BalanceControlXP)
	assert.Equal(t, row.JointMobilityXP, back.JointMobilityXP)
	assert.Equal(t, row.BodyTensionXP, back.BodyTensionXP)
	assert.Equal(t, row.SkillTechniqueXP, back.SkillTechniqueXP)
}

func TestHexagonProfileGrantRoundTrip(t *testing.T) {
	row := HexagonProfile{RelativeStrengthXP: 1900}

	updated, err := row.ToProfile().ApplyMultiAxisXP(map[progression.Axis]int{
		progression.AxisRelativeStrength: 150,
		progression.AxisJointMobility:    40,
	})
	require.NoError(t, err)

	row.SetFromProfile(updated)
	assert.Equal(t, 2050, row.RelativeStrengthXP)
	assert.Equal(t, 40, row.JointMobilityXP)

	// Level crossed the INTERMEDIATE threshold on the way through.
	assert.Equal(t, progression.LevelIntermediate, row.ToProfile()[progression.AxisRelativeStrength].Level)
}
