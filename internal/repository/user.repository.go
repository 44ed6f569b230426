package repository

import (
	"errors"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	UpsertByGoogleID(user *models.User) error
	FindByID(id uint) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

// UpsertByGoogleID creates the user on first sign-in and refreshes email and
// name afterwards. The caller's struct ends up with the stored ID either way.
func (r *userRepository) UpsertByGoogleID(user *models.User) error {
	var existing models.User
	err := r.db.Where("google_id = ?", user.GoogleID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(user).Error
	}
	if err != nil {
		return err
	}

	if err := r.db.Model(&existing).Updates(map[string]interface{}{
		"email": user.Email,
		"name":  user.Name,
	}).Error; err != nil {
		return err
	}
	*user = existing
	return nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
