package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type WeightLogRepository interface {
	Create(entry *models.WeightLog) error
	// FindAllByUserID returns entries ascending by date; the weight chart
	// depends on that order.
	FindAllByUserID(userID uint) ([]models.WeightLog, error)
	Delete(userID, id uint) error
	DeleteAllByUserID(userID uint) error
}

type weightLogRepository struct {
	db *gorm.DB
}

func NewWeightLogRepository(db *gorm.DB) WeightLogRepository {
	return &weightLogRepository{db}
}

func (r *weightLogRepository) Create(entry *models.WeightLog) error {
	return r.db.Create(entry).Error
}

func (r *weightLogRepository) FindAllByUserID(userID uint) ([]models.WeightLog, error) {
	var entries []models.WeightLog
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *weightLogRepository) Delete(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.WeightLog{}, id).Error
}

func (r *weightLogRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.WeightLog{}).Error
}
