// models/hexagon.go
package models

import (
	"time"

	"hexfit/progression"
)

// HexagonProfile stores the raw per-axis XP for one user. Only XP is
// persisted; levels and normalized values are derived on read so the stored
// row can never disagree with the progression rules.
type HexagonProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	RelativeStrengthXP  int `gorm:"default:0" json:"relative_strength_xp"`
	MuscularEnduranceXP int `gorm:"default:0" json:"muscular_endurance_xp"`
	BalanceControlXP    int `gorm:"default:0" json:"balance_control_xp"`
	JointMobilityXP     int `gorm:"default:0" json:"joint_mobility_xp"`
	BodyTensionXP       int `gorm:"default:0" json:"body_tension_xp"`
	SkillTechniqueXP    int `gorm:"default:0" json:"skill_technique_xp"`

	// Version guards the read-modify-write cycle of XP grants.
	Version int `gorm:"default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (HexagonProfile) TableName() string {
	return "hexagon_profiles"
}

// ToProfile converts the stored raw XP into a computed progression profile.
func (h *HexagonProfile) ToProfile() progression.Profile {
	p, _ := progression.NewProfile(map[progression.Axis]int{
		progression.AxisRelativeStrength:  h.RelativeStrengthXP,
		progression.AxisMuscularEndurance: h.MuscularEnduranceXP,
		progression.AxisBalanceControl:    h.BalanceControlXP,
		progression.AxisJointMobility:     h.JointMobilityXP,
		progression.AxisBodyTension:       h.BodyTensionXP,
		progression.AxisSkillTechnique:    h.SkillTechniqueXP,
	})
	return p
}

// SetFromProfile writes the profile's raw XP back to the row.
func (h *HexagonProfile) SetFromProfile(p progression.Profile) {
	h.RelativeStrengthXP = p[progression.AxisRelativeStrength].XP
	h.MuscularEnduranceXP = p[progression.AxisMuscularEndurance].XP
	h.BalanceControlXP = p[progression.AxisBalanceControl].XP
	h.JointMobilityXP = p[progression.AxisJointMobility].XP
	h.BodyTensionXP = p[progression.AxisBodyTension].XP
	h.SkillTechniqueXP = p[progression.AxisSkillTechnique].XP
}
