package model

type CreateRoutineRequest struct {
	UserID      int      `json:"user_id" binding:"required"`
	Date        string   `json:"date"`
	WakeUpTime  string   `json:"wake_up_time" binding:"required"`
	SleepTime   string   `json:"sleep_time" binding:"required"`
	MealTimes   []string `json:"meal_times"`
	Workout     string   `json:"workout"`
	BadHabits   []string `json:"bad_habits"`
	EnergyLevel int      `json:"energy_level"`
	StressLevel int      `json:"stress_level"`
}

type UpdateHabitRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProposedAdjustment is one rule firing. SuggestedChange is a "HH:MM"
// string for the time rules and a string list for meals/bad habits.
type ProposedAdjustment struct {
	Habit           Habit `json:"habit"`
	SuggestedChange any   `json:"suggested_change"`
}

type AdjustmentsResponse struct {
	Adjustments []ProposedAdjustment `json:"adjustments"`
}

// ProgressEntry is one adjustment as shown by the progress and history
// reports.
type ProgressEntry struct {
	Habit         Habit  `json:"habit"`
	PreviousValue string `json:"previous_value"`
	NewValue      string `json:"new_value"`
	Date          string `json:"date"`
}

type ProgressReport struct {
	Accepted []ProgressEntry `json:"accepted"`
	Pending  []ProgressEntry `json:"pending"`
	Rejected []ProgressEntry `json:"rejected"`
}

type HistoryReport struct {
	Accepted []ProgressEntry `json:"accepted"`
	Rejected []ProgressEntry `json:"rejected"`
}

type Reminder struct {
	Habit    Habit  `json:"habit"`
	Reminder string `json:"reminder"`
	Date     string `json:"date"`
}
