package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan is one generated 7-day program. Plans are never updated in place:
// regeneration inserts a new row and flips is_active on the old one.
type Plan struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	IsActive  bool           `gorm:"index" json:"is_active" example:"true"`
	PlanData  PlanDocument   `gorm:"type:jsonb;serializer:json" json:"plan_data"`
}

// PlanDocument is the validated shape of the model output. It is only ever
// constructed by the planner parser, which guarantees both day slices hold
// exactly seven entries with all required fields populated.
type PlanDocument struct {
	WorkoutPlan []DailyWorkout `json:"workoutPlan"`
	DietPlan    []DailyDiet    `json:"dietPlan"`
	Tips        []string       `json:"tips"`
	Motivation  string         `json:"motivation"`
}

type DailyWorkout struct {
	Day       string     `json:"day" example:"Day 1"`
	Focus     string     `json:"focus" example:"Chest and Triceps"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	Name     string `json:"name" example:"Push-ups"`
	Sets     string `json:"sets" example:"3"`
	Reps     string `json:"reps" example:"12"`
	Rest     string `json:"rest" example:"60s"`
	Notes    string `json:"notes,omitempty" example:"Keep back straight"`
	VideoURL string `json:"videoUrl,omitempty"`
}

type DailyDiet struct {
	Day       string `json:"day" example:"Day 1"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Snacks    []Meal `json:"snacks"`
}

type Meal struct {
	Name        string `json:"name" example:"Oatmeal"`
	Description string `json:"description" example:"Oats with berries"`
	Calories    string `json:"calories" example:"300"`
	Protein     string `json:"protein" example:"10g"`
	Carbs       string `json:"carbs" example:"50g"`
	Fats        string `json:"fats" example:"5g"`
	RecipeURL   string `json:"recipeUrl,omitempty"`
}
