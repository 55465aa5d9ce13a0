// database/seed_catalog.go - Starter exercise and skill catalog
package database

import (
	"log"

	"hexfit/models"

	"gorm.io/gorm"
)

type catalogExercise struct {
	Name       string
	Category   string
	Difficulty string
	Equipment  string
}

// starterExercises covers every category so a fresh install can log workouts
// immediately. The full catalog ships through cmd/exercise-importer.
var starterExercises = []catalogExercise{
	{Name: "Push-Up", Category: "PUSH", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Diamond Push-Up", Category: "PUSH", Difficulty: "INTERMEDIATE", Equipment: "none"},
	{Name: "Pseudo Planche Push-Up", Category: "PUSH", Difficulty: "ADVANCED", Equipment: "none"},
	{Name: "Dip", Category: "PUSH", Difficulty: "INTERMEDIATE", Equipment: "parallel bars"},
	{Name: "Pull-Up", Category: "PULL", Difficulty: "INTERMEDIATE", Equipment: "bar"},
	{Name: "Australian Row", Category: "PULL", Difficulty: "BEGINNER", Equipment: "low bar"},
	{Name: "Archer Pull-Up", Category: "PULL", Difficulty: "ADVANCED", Equipment: "bar"},
	{Name: "Plank", Category: "CORE", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Hanging Knee Raise", Category: "CORE", Difficulty: "BEGINNER", Equipment: "bar"},
	{Name: "Toes to Bar", Category: "CORE", Difficulty: "INTERMEDIATE", Equipment: "bar"},
	{Name: "Dragon Flag", Category: "CORE", Difficulty: "EXPERT", Equipment: "bench"},
	{Name: "Wall Handstand Hold", Category: "BALANCE", Difficulty: "BEGINNER", Equipment: "wall"},
	{Name: "Freestanding Handstand", Category: "BALANCE", Difficulty: "ADVANCED", Equipment: "none"},
	{Name: "Crow Pose", Category: "BALANCE", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Bodyweight Squat", Category: "LEGS", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Pistol Squat", Category: "LEGS", Difficulty: "ADVANCED", Equipment: "none"},
	{Name: "Nordic Curl", Category: "LOWER_BODY", Difficulty: "EXPERT", Equipment: "anchor"},
	{Name: "L-Sit", Category: "STATICS", Difficulty: "INTERMEDIATE", Equipment: "parallettes"},
	{Name: "Tuck Front Lever", Category: "STATICS", Difficulty: "INTERMEDIATE", Equipment: "bar"},
	{Name: "Front Lever", Category: "STATICS", Difficulty: "EXPERT", Equipment: "bar"},
	{Name: "Burpee", Category: "CARDIO", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Jump Rope", Category: "CARDIO", Difficulty: "BEGINNER", Equipment: "rope"},
	{Name: "Wrist Circles", Category: "WARM_UP", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Shoulder Dislocates", Category: "WARM_UP", Difficulty: "BEGINNER", Equipment: "band"},
	{Name: "Deep Squat Hold", Category: "FLEXIBILITY", Difficulty: "BEGINNER", Equipment: "none"},
	{Name: "Pancake Stretch", Category: "FLEXIBILITY", Difficulty: "INTERMEDIATE", Equipment: "none"},
}

type catalogSkill struct {
	Name       string
	Category   string
	Difficulty string
	Icon       string
}

var starterSkills = []catalogSkill{
	{Name: "First Pull-Up", Category: "PULL", Difficulty: "BEGINNER", Icon: "💪"},
	{Name: "Muscle-Up", Category: "PULL", Difficulty: "ADVANCED", Icon: "🚀"},
	{Name: "One Arm Pull-Up", Category: "PULL", Difficulty: "EXPERT", Icon: "🦾"},
	{Name: "First Dip", Category: "PUSH", Difficulty: "BEGINNER", Icon: "🔻"},
	{Name: "Handstand Push-Up", Category: "PUSH", Difficulty: "EXPERT", Icon: "🙃"},
	{Name: "60s Handstand", Category: "BALANCE", Difficulty: "ADVANCED", Icon: "🤸"},
	{Name: "Press to Handstand", Category: "BALANCE", Difficulty: "EXPERT", Icon: "🎪"},
	{Name: "10s L-Sit", Category: "STATICS", Difficulty: "INTERMEDIATE", Icon: "🪑"},
	{Name: "Back Lever", Category: "STATICS", Difficulty: "ADVANCED", Icon: "🦇"},
	{Name: "Full Planche", Category: "STATICS", Difficulty: "EXPERT", Icon: "🛸"},
	{Name: "Pistol Squat", Category: "LEGS", Difficulty: "ADVANCED", Icon: "🦵"},
	{Name: "Full Pancake", Category: "FLEXIBILITY", Difficulty: "ADVANCED", Icon: "🥞"},
}

// SeedCatalog inserts the starter catalog on an empty database. Existing
// catalogs (seeded or imported) are left alone.
func SeedCatalog(db *gorm.DB) error {
	var exerciseCount int64
	if err := db.Model(&models.Exercise{}).Count(&exerciseCount).Error; err != nil {
		return err
	}
	if exerciseCount == 0 {
		exercises := make([]models.Exercise, 0, len(starterExercises))
		for _, e := range starterExercises {
			exercises = append(exercises, models.Exercise{
				Name:       e.Name,
				Category:   e.Category,
				Difficulty: e.Difficulty,
				Equipment:  e.Equipment,
				IsActive:   true,
			})
		}
		if err := db.Create(&exercises).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d starter exercises", len(exercises))
	}

	var skillCount int64
	if err := db.Model(&models.Skill{}).Count(&skillCount).Error; err != nil {
		return err
	}
	if skillCount == 0 {
		skills := make([]models.Skill, 0, len(starterSkills))
		for _, s := range starterSkills {
			skills = append(skills, models.Skill{
				Name:       s.Name,
				Category:   s.Category,
				Difficulty: s.Difficulty,
				Icon:       s.Icon,
				IsActive:   true,
			})
		}
		if err := db.Create(&skills).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d starter skills", len(skills))
	}
	return nil
}
