package database

import (
	"log"

	"fitcoach/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.WorkoutLog{},
		&models.MealLog{},
		&models.WeightLog{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
