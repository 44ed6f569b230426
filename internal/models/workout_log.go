package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutLog struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Date      time.Time      `json:"date" example:"2024-01-01T00:00:00Z"`
	Exercise  string         `json:"exercise" example:"Bench Press"`
	Sets      int            `json:"sets" example:"3"`
	Reps      int            `json:"reps" example:"10"`
	Weight    float64        `json:"weight" example:"60"`
}
