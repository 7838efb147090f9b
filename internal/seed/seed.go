package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-coach/internal/domain"
	"github.com/blaisecz/sleep-coach/internal/engine"
	"gorm.io/gorm"
)

const seededDays = 14

// Run seeds the database with a realistic recent log. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.SleepEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := seededDays; i >= 1; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")

		entry := domain.SleepEntry{
			Date:        date,
			Bedtime:     fmt.Sprintf("%02d:%02d", 22+rng.Intn(2), rng.Intn(60)),
			Waketime:    fmt.Sprintf("%02d:%02d", 6+rng.Intn(2), rng.Intn(60)),
			Caffeine:    []domain.CaffeineIntake{},
			Alcohol:     []domain.AlcoholDrink{},
			Meals:       []domain.Meal{},
			Exercise:    []domain.ExerciseSession{},
			Screens:     []domain.ScreenSession{},
			Environment: domain.DefaultEnvironment(),
		}

		// Morning coffee most days, sometimes an unwise afternoon one
		if rng.Float32() < 0.9 {
			entry.Caffeine = append(entry.Caffeine, domain.CaffeineIntake{Time: "08:30", Mg: 95})
		}
		if rng.Float32() < 0.3 {
			entry.Caffeine = append(entry.Caffeine, domain.CaffeineIntake{Time: "16:00", Mg: 95})
		}

		if rng.Float32() < 0.2 {
			entry.Alcohol = append(entry.Alcohol, domain.AlcoholDrink{Time: "19:30", Units: 1 + rng.Float64()*2})
		}

		entry.Meals = append(entry.Meals, domain.Meal{Time: "19:00", Size: domain.MealMedium, MacroProfile: domain.MacroBalanced})

		if rng.Float32() < 0.4 {
			entry.Exercise = append(entry.Exercise, domain.ExerciseSession{
				Time:        "18:00",
				Type:        domain.ExerciseCardio,
				Intensity:   domain.IntensityMedium,
				DurationMin: 30 + rng.Intn(30),
			})
		}

		if rng.Float32() < 0.7 {
			entry.Screens = append(entry.Screens, domain.ScreenSession{
				StartTime:   "21:00",
				EndTime:     fmt.Sprintf("22:%02d", rng.Intn(60)),
				ContentType: domain.ContentPassive,
			})
		}

		engine.Derive(&entry)

		if err := db.Where("date = ?", entry.Date).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to seed entry %s: %w", entry.Date, err)
		}
	}

	log.Println("Seed completed")
	return nil
}
