package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type WorkoutLogRepository interface {
	Create(entry *models.WorkoutLog) error
	FindAllByUserID(userID uint) ([]models.WorkoutLog, error)
	Delete(userID, id uint) error
}

type workoutLogRepository struct {
	db *gorm.DB
}

func NewWorkoutLogRepository(db *gorm.DB) WorkoutLogRepository {
	return &workoutLogRepository{db}
}

func (r *workoutLogRepository) Create(entry *models.WorkoutLog) error {
	return r.db.Create(entry).Error
}

func (r *workoutLogRepository) FindAllByUserID(userID uint) ([]models.WorkoutLog, error) {
	var entries []models.WorkoutLog
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *workoutLogRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.WorkoutLog{}, id).Error
}
