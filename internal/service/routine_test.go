package service

import (
	"context"
	"testing"
	"time"

	"habit-coach/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineCreateDefaultsDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)

	id, err := svc.Create(context.Background(), model.CreateRoutineRequest{
		UserID: 1, WakeUpTime: "10:00", SleepTime: "02:00",
		MealTimes: []string{"10:20", "14:00", "19:00"},
		Workout:   "15-minute walk", BadHabits: []string{"coffee"},
		EnergyLevel: 5, StressLevel: 6,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	var r model.Routine
	require.NoError(t, db.First(&r, id).Error)
	assert.Equal(t, time.Now().Format("2006-01-02"), r.Date)
	assert.Equal(t, []string{"10:20", "14:00", "19:00"}, []string(r.MealTimes))
}

func TestRoutineListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoutineService(db)
	ctx := context.Background()

	for _, date := range []string{"2025-02-04", "2025-02-06", "2025-02-05"} {
		_, err := svc.Create(ctx, model.CreateRoutineRequest{
			UserID: 1, Date: date, WakeUpTime: "08:00", SleepTime: "23:30",
		})
		require.NoError(t, err)
	}

	routines, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, routines, 3)
	assert.Equal(t, "2025-02-06", routines[0].Date)
	assert.Equal(t, "2025-02-05", routines[1].Date)
	assert.Equal(t, "2025-02-04", routines[2].Date)

	other, err := svc.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, other)
}
