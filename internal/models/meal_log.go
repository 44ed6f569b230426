package models

import (
	"time"

	"gorm.io/gorm"
)

type MealLog struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Date      time.Time      `json:"date" example:"2024-01-01T00:00:00Z"`
	Name      string         `json:"name" example:"Grilled Chicken"`
	Calories  float64        `json:"calories" example:"500"`
	Protein   float64        `json:"protein" example:"40"`
	Carbs     float64        `json:"carbs" example:"40"`
	Fats      float64        `json:"fats" example:"10"`
}
