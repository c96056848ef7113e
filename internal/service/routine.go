package service

import (
	"context"
	"fmt"
	"time"

	"habit-coach/internal/model"

	"gorm.io/gorm"
)

// RoutineService stores and reads the daily routine records the rule
// engine works from.
type RoutineService struct{ db *gorm.DB }

func NewRoutineService(db *gorm.DB) *RoutineService { return &RoutineService{db: db} }

// Create inserts one day's routine and returns the generated id.
// An empty date defaults to today.
func (s *RoutineService) Create(ctx context.Context, req model.CreateRoutineRequest) (int, error) {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	r := model.Routine{
		UserID:      req.UserID,
		Date:        date,
		WakeUpTime:  req.WakeUpTime,
		SleepTime:   req.SleepTime,
		MealTimes:   req.MealTimes,
		Workout:     req.Workout,
		BadHabits:   req.BadHabits,
		EnergyLevel: req.EnergyLevel,
		StressLevel: req.StressLevel,
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return 0, fmt.Errorf("insert routine: %w", err)
	}
	return r.ID, nil
}

// ListByUser returns all routines for a user, newest first.
func (s *RoutineService) ListByUser(ctx context.Context, userID int) ([]model.Routine, error) {
	var routines []model.Routine
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&routines).Error
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}
	return routines, nil
}
