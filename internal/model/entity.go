package model

import "gorm.io/datatypes"

// Habit is the closed set of habit dimensions the engine can adjust.
type Habit string

const (
	HabitWakeUpTime Habit = "wake_up_time"
	HabitSleepTime  Habit = "sleep_time"
	HabitMealTimes  Habit = "meal_times"
	HabitBadHabits  Habit = "bad_habits"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsResolution reports whether s is a valid terminal status for an adjustment.
func (s Status) IsResolution() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Routine is one day's recorded lifestyle data for a user. Rows are
// immutable; the newest date wins for "latest routine" queries.
type Routine struct {
	ID          int                         `gorm:"primaryKey" json:"id"`
	UserID      int                         `gorm:"index" json:"user_id"`
	Date        string                      `gorm:"type:date" json:"date"`
	WakeUpTime  string                      `json:"wake_up_time"`
	SleepTime   string                      `json:"sleep_time"`
	MealTimes   datatypes.JSONSlice[string] `json:"meal_times"`
	Workout     string                      `json:"workout"`
	BadHabits   datatypes.JSONSlice[string] `json:"bad_habits"`
	EnergyLevel int                         `json:"energy_level"`
	StressLevel int                         `json:"stress_level"`
}

// Adjustment is a proposed, not-yet-resolved change to one habit.
// Status stays pending for the whole life of the row; resolving moves
// the row into habit_history and deletes it.
type Adjustment struct {
	ID             int    `gorm:"primaryKey" json:"id"`
	UserID         int    `gorm:"index" json:"user_id"`
	Habit          Habit  `json:"habit"`
	CurrentValue   string `json:"current_value"`
	SuggestedValue string `json:"suggested_value"`
	Reason         string `json:"reason"`
	Status         Status `gorm:"default:pending" json:"status"`
	AppliedOn      string `gorm:"type:date" json:"applied_on"`
}

// HistoryEntry is the terminal record of a resolved adjustment.
// Never mutated or deleted once written.
type HistoryEntry struct {
	ID              int    `gorm:"primaryKey" json:"id"`
	UserID          int    `gorm:"index" json:"user_id"`
	Habit           Habit  `json:"habit"`
	PreviousValue   string `json:"previous_value"`
	NewValue        string `json:"new_value"`
	Status          Status `json:"status"`
	ReminderMessage string `json:"reminder_message"`
	ResolvedOn      string `gorm:"type:date" json:"resolved_on"`
}

func (Routine) TableName() string      { return "daily_routines" }
func (Adjustment) TableName() string   { return "habit_adjustments" }
func (HistoryEntry) TableName() string { return "habit_history" }
