package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"hexfit/database"
	"hexfit/models"
	"hexfit/progression"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// JSONExercise is one catalog entry as shipped in the seed file.
type JSONExercise struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    string   `json:"equipment"`
	VideoURL     string   `json:"video_url"`
}

// JSONSkill is one unlockable skill entry.
type JSONSkill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Icon        string `json:"icon"`
}

type catalogFile struct {
	Exercises []JSONExercise `json:"exercises"`
	Skills    []JSONSkill    `json:"skills"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	jsonPath := "./data/exercise-catalog.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Fatal("Failed to read catalog file:", err)
	}

	var catalog catalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatal("Failed to parse catalog JSON:", err)
	}

	fmt.Printf("Found %d exercises and %d skills\n\n", len(catalog.Exercises), len(catalog.Skills))

	if err := database.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDB()
	db := database.GetDB()

	var exercises []models.Exercise
	for _, entry := range catalog.Exercises {
		if err := validateEntry(entry.Name, entry.Category, entry.Difficulty); err != nil {
			log.Printf("Skipping exercise %q: %v", entry.Name, err)
			continue
		}
		groups, _ := json.Marshal(entry.MuscleGroups)
		exercises = append(exercises, models.Exercise{
			Name:         entry.Name,
			Description:  entry.Description,
			Category:     strings.ToUpper(entry.Category),
			Difficulty:   strings.ToUpper(entry.Difficulty),
			MuscleGroups: string(groups),
			Equipment:    entry.Equipment,
			VideoURL:     entry.VideoURL,
			IsActive:     true,
		})
	}

	var skills []models.Skill
	for _, entry := range catalog.Skills {
		if err := validateEntry(entry.Name, entry.Category, entry.Difficulty); err != nil {
			log.Printf("Skipping skill %q: %v", entry.Name, err)
			continue
		}
		skills = append(skills, models.Skill{
			Name:        entry.Name,
			Description: entry.Description,
			Category:    strings.ToUpper(entry.Category),
			Difficulty:  strings.ToUpper(entry.Difficulty),
			Icon:        entry.Icon,
			IsActive:    true,
		})
	}

	// Re-running the importer refreshes existing rows by name.
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "category", "difficulty", "is_active"}),
	}

	batchSize := 200
	for i := 0; i < len(exercises); i += batchSize {
		end := i + batchSize
		if end > len(exercises) {
			end = len(exercises)
		}
		batch := exercises[i:end]
		if err := db.Clauses(upsert).Create(&batch).Error; err != nil {
			log.Printf("Error inserting exercises %d-%d: %v\n", i, end, err)
		} else {
			fmt.Printf("Imported exercises %d-%d\n", i+1, end)
		}
	}

	if len(skills) > 0 {
		if err := db.Clauses(upsert).Create(&skills).Error; err != nil {
			log.Printf("Error inserting skills: %v\n", err)
		} else {
			fmt.Printf("Imported %d skills\n", len(skills))
		}
	}

	var exerciseCount, skillCount int64
	db.Model(&models.Exercise{}).Count(&exerciseCount)
	db.Model(&models.Skill{}).Count(&skillCount)
	fmt.Printf("\n✓ Catalog import completed: %d exercises, %d skills in database\n", exerciseCount, skillCount)
}

func validateEntry(name, category, difficulty string) error {
	if name == "" {
		return fmt.Errorf("missing name")
	}
	if _, err := progression.ParseCategory(strings.ToUpper(category)); err != nil {
		return err
	}
	_, err := progression.ParseDifficulty(strings.ToUpper(difficulty))
	return err
}
