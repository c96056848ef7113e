package service

import (
	"context"
	"testing"
	"time"

	"habit-coach/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedHistory(t *testing.T, db *gorm.DB, e model.HistoryEntry) model.HistoryEntry {
	t.Helper()
	require.NoError(t, db.Create(&e).Error)
	return e
}

func TestProgressBucketsAndOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seedAdjustment(t, db, model.Adjustment{
		UserID: 1, Habit: model.HabitSleepTime,
		CurrentValue: "02:00", SuggestedValue: "22:00", AppliedOn: "2025-02-07",
	})
	seedAdjustment(t, db, model.Adjustment{
		UserID: 1, Habit: model.HabitWakeUpTime,
		CurrentValue: "10:00", SuggestedValue: "09:00", AppliedOn: "2025-02-06",
	})
	seedAdjustment(t, db, model.Adjustment{
		UserID: 2, Habit: model.HabitBadHabits,
		CurrentValue: "sugar", SuggestedValue: "", AppliedOn: "2025-02-06",
	})

	report, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Empty(t, report.Accepted)
	assert.Empty(t, report.Rejected)
	require.Len(t, report.Pending, 2)
	// Ascending by the date each adjustment was proposed.
	assert.Equal(t, model.HabitWakeUpTime, report.Pending[0].Habit)
	assert.Equal(t, model.HabitSleepTime, report.Pending[1].Habit)
}

func TestProgressNoData(t *testing.T) {
	svc := NewReportService(newTestDB(t))

	report, err := svc.Progress(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestHistoryBucketsDescending(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitWakeUpTime,
		PreviousValue: "10:00", NewValue: "09:00",
		Status: model.StatusAccepted, ResolvedOn: "2025-02-01",
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitSleepTime,
		PreviousValue: "02:00", NewValue: "22:00",
		Status: model.StatusAccepted, ResolvedOn: "2025-02-03",
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitBadHabits,
		PreviousValue: "coffee, sugar", NewValue: "coffee",
		Status: model.StatusRejected, ResolvedOn: "2025-02-02",
	})

	report, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, report)

	require.Len(t, report.Accepted, 2)
	assert.Equal(t, "2025-02-03", report.Accepted[0].Date)
	assert.Equal(t, "2025-02-01", report.Accepted[1].Date)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, model.HabitBadHabits, report.Rejected[0].Habit)
}

func TestRemindersTodayAcceptedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	today := time.Now().Format("2006-01-02")

	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitWakeUpTime,
		Status: model.StatusAccepted, ReminderMessage: "wake up at 09:00",
		ResolvedOn: today,
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitSleepTime,
		Status: model.StatusRejected, ResolvedOn: today,
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitMealTimes,
		Status: model.StatusAccepted, ResolvedOn: "2020-01-01",
	})

	reminders, err := svc.Reminders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, model.HabitWakeUpTime, reminders[0].Habit)
	assert.Equal(t, "wake up at 09:00", reminders[0].Reminder)
	assert.Equal(t, today, reminders[0].Date)
}

func TestInsightsSentences(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitWakeUpTime,
		PreviousValue: "10:00", NewValue: "09:00",
		Status: model.StatusAccepted, ResolvedOn: "2025-02-02",
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitSleepTime,
		PreviousValue: "02:00", NewValue: "22:00",
		Status: model.StatusRejected, ResolvedOn: "2025-02-03",
	})

	insights, err := svc.Insights(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	// Newest resolution first, same as the history report.
	assert.Equal(t, "You decided not to change sleep_time from '02:00' to '22:00' on 2025-02-03. That's okay! Adjust at your own pace.", insights[0])
	assert.Equal(t, "You successfully changed wake_up_time from '10:00' to '09:00' on 2025-02-02. Keep it up!", insights[1])
}

func TestProjectionsTrackLatestValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitWakeUpTime,
		PreviousValue: "10:00", NewValue: "09:00",
		Status: model.StatusAccepted, ResolvedOn: "2025-02-01",
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitWakeUpTime,
		PreviousValue: "09:00", NewValue: "08:00",
		Status: model.StatusAccepted, ResolvedOn: "2025-02-08",
	})
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitSleepTime,
		PreviousValue: "02:00", NewValue: "22:00",
		Status: model.StatusAccepted, ResolvedOn: "2025-02-05",
	})
	// Rejected entries never project.
	seedHistory(t, db, model.HistoryEntry{
		UserID: 1, Habit: model.HabitBadHabits,
		PreviousValue: "coffee", NewValue: "",
		Status: model.StatusRejected, ResolvedOn: "2025-02-05",
	})

	projections, err := svc.Projections(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, projections, 2)
	assert.Equal(t, "If you continue, your wake_up_time could improve from '10:00' to '08:00' within a few months!", projections[0])
	assert.Equal(t, "If you continue, your sleep_time could improve from '02:00' to '22:00' within a few months!", projections[1])
}

func TestReportersEmptyCollections(t *testing.T) {
	svc := NewReportService(newTestDB(t))
	ctx := context.Background()

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, history)

	reminders, err := svc.Reminders(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, reminders)

	insights, err := svc.Insights(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, insights)

	projections, err := svc.Projections(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, projections)
}
