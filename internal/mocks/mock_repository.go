package mocks

import (
	"context"

	"fitcoach/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockPlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) SaveActivePlan(userID uint, doc models.PlanDocument) (*models.Plan, error) {
	args := m.Called(userID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindActiveByUserID(userID uint) (*models.Plan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertByGoogleID(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockWorkoutLogRepository
type MockWorkoutLogRepository struct {
	mock.Mock
}

func (m *MockWorkoutLogRepository) Create(entry *models.WorkoutLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWorkoutLogRepository) FindAllByUserID(userID uint) ([]models.WorkoutLog, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WorkoutLog), args.Error(1)
}

func (m *MockWorkoutLogRepository) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

// Shared MockMealLogRepository
type MockMealLogRepository struct {
	mock.Mock
}

func (m *MockMealLogRepository) Create(entry *models.MealLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockMealLogRepository) FindAllByUserID(userID uint) ([]models.MealLog, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.MealLog), args.Error(1)
}

func (m *MockMealLogRepository) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

// Shared MockWeightLogRepository
type MockWeightLogRepository struct {
	mock.Mock
}

func (m *MockWeightLogRepository) Create(entry *models.WeightLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWeightLogRepository) FindAllByUserID(userID uint) ([]models.WeightLog, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WeightLog), args.Error(1)
}

func (m *MockWeightLogRepository) Delete(userID, id uint) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

func (m *MockWeightLogRepository) DeleteAllByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockCompleter stands in for the completion client.
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}
