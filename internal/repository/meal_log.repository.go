package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type MealLogRepository interface {
	Create(entry *models.MealLog) error
	FindAllByUserID(userID uint) ([]models.MealLog, error)
	Delete(userID, id uint) error
}

type mealLogRepository struct {
	db *gorm.DB
}

func NewMealLogRepository(db *gorm.DB) MealLogRepository {
	return &mealLogRepository{db}
}

func (r *mealLogRepository) Create(entry *models.MealLog) error {
	return r.db.Create(entry).Error
}

func (r *mealLogRepository) FindAllByUserID(userID uint) ([]models.MealLog, error) {
	var entries []models.MealLog
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *mealLogRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.MealLog{}, id).Error
}
