package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	GoogleID  string         `gorm:"uniqueIndex;size:255" json:"-"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email" example:"jane@example.com"`
	Name      string         `json:"name" example:"Jane Doe"`
}
