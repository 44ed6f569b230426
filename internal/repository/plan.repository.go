package repository

import (
	"errors"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type PlanRepository interface {
	// SaveActivePlan deactivates any currently active plan for the user and
	// inserts the new one as active, in a single transaction.
	SaveActivePlan(userID uint, doc models.PlanDocument) (*models.Plan, error)
	// FindActiveByUserID returns the user's active plan, or nil when the user
	// has none yet.
	FindActiveByUserID(userID uint) (*models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db}
}

func (r *planRepository) SaveActivePlan(userID uint, doc models.PlanDocument) (*models.Plan, error) {
	plan := &models.Plan{
		UserID:   userID,
		IsActive: true,
		PlanData: doc,
	}

	// Deactivate-then-insert must be atomic: two concurrent generations must
	// never both end up active.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Plan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *planRepository) FindActiveByUserID(userID uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
