package service

import (
	"context"
	"fmt"
	"time"

	"habit-coach/internal/model"

	"gorm.io/gorm"
)

// AdjustEngine derives habit adjustment proposals from a user's latest
// routine. Each rule is independent: any subset can fire in one call.
type AdjustEngine struct{ db *gorm.DB }

func NewAdjustEngine(db *gorm.DB) *AdjustEngine { return &AdjustEngine{db: db} }

// Evaluate runs every rule against the latest routine and persists one
// pending adjustment row per firing (one per meal for the meal rule).
// A habit that already has a pending row is skipped, so calling twice
// without resolving proposes nothing new. Returns ErrNoRoutine when the
// user has no routine data at all.
func (s *AdjustEngine) Evaluate(ctx context.Context, userID int) ([]model.ProposedAdjustment, error) {
	pending, err := s.pendingHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	var r model.Routine
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&r).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNoRoutine
	}
	if err != nil {
		return nil, fmt.Errorf("query latest routine: %w", err)
	}

	sleepHour, sleepMin, err := parseClock(r.SleepTime)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	var proposals []model.ProposedAdjustment
	var rows []model.Adjustment

	// A sleep hour in [0,1] means "after midnight but before 1am" and
	// skips both time rules.
	if !pending[model.HabitWakeUpTime] && sleepHour > 1 {
		wakeHour, wakeMin, err := parseClock(r.WakeUpTime)
		if err != nil {
			return nil, err
		}
		suggested := formatClock(max(6, wakeHour-1), wakeMin)
		proposals = append(proposals, model.ProposedAdjustment{Habit: model.HabitWakeUpTime, SuggestedChange: suggested})
		rows = append(rows, model.Adjustment{
			UserID: userID, Habit: model.HabitWakeUpTime,
			CurrentValue: r.WakeUpTime, SuggestedValue: suggested,
			Reason: "Gradual wake-up shift", Status: model.StatusPending, AppliedOn: today,
		})
	}

	if !pending[model.HabitSleepTime] && sleepHour > 1 {
		suggested := formatClock(max(22, sleepHour-1), sleepMin)
		proposals = append(proposals, model.ProposedAdjustment{Habit: model.HabitSleepTime, SuggestedChange: suggested})
		rows = append(rows, model.Adjustment{
			UserID: userID, Habit: model.HabitSleepTime,
			CurrentValue: r.SleepTime, SuggestedValue: suggested,
			Reason: "Improve sleep quality", Status: model.StatusPending, AppliedOn: today,
		})
	}

	if !pending[model.HabitMealTimes] && len(r.MealTimes) > 0 {
		newMeals := make([]string, 0, len(r.MealTimes))
		for _, meal := range r.MealTimes {
			h, m, err := parseClock(meal)
			if err != nil {
				return nil, err
			}
			suggested := formatClock(max(6, h-1), m)
			newMeals = append(newMeals, suggested)
			rows = append(rows, model.Adjustment{
				UserID: userID, Habit: model.HabitMealTimes,
				CurrentValue: meal, SuggestedValue: suggested,
				Reason: "Optimize meal timing", Status: model.StatusPending, AppliedOn: today,
			})
		}
		proposals = append(proposals, model.ProposedAdjustment{Habit: model.HabitMealTimes, SuggestedChange: newMeals})
	}

	if !pending[model.HabitBadHabits] && len(r.BadHabits) > 0 {
		// One habit removed per cycle: drop exactly the last element.
		reduced := []string(r.BadHabits[:len(r.BadHabits)-1])
		proposals = append(proposals, model.ProposedAdjustment{Habit: model.HabitBadHabits, SuggestedChange: reduced})
		rows = append(rows, model.Adjustment{
			UserID: userID, Habit: model.HabitBadHabits,
			CurrentValue: joinList(r.BadHabits), SuggestedValue: joinList(reduced),
			Reason: "Reduce negative habits", Status: model.StatusPending, AppliedOn: today,
		})
	}

	if len(rows) > 0 {
		if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return nil, fmt.Errorf("insert adjustments: %w", err)
		}
	}
	return proposals, nil
}

// pendingHabits returns the habit names that already have an unresolved
// adjustment for the user. Re-read on every call so the duplicate check
// reflects the most recent persisted state.
func (s *AdjustEngine) pendingHabits(ctx context.Context, userID int) (map[model.Habit]bool, error) {
	var habits []model.Habit
	err := s.db.WithContext(ctx).
		Model(&model.Adjustment{}).
		Where("user_id = ? AND status = ?", userID, model.StatusPending).
		Pluck("habit", &habits).Error
	if err != nil {
		return nil, fmt.Errorf("query pending habits: %w", err)
	}
	set := make(map[model.Habit]bool, len(habits))
	for _, h := range habits {
		set[h] = true
	}
	return set, nil
}
