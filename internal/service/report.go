package service

import (
	"context"
	"fmt"
	"time"

	"habit-coach/internal/model"

	"gorm.io/gorm"
)

// ReportService derives the read-only views over adjustments and history:
// progress buckets, archive, daily reminders, chat insights and naive
// projections.
type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// Progress buckets the user's adjustment rows by status, ordered by the
// date each was first proposed. Resolved rows are deleted on resolution,
// so in practice only the pending bucket fills; the shape is kept for
// clients that render all three. Returns nil when the user has no rows.
func (s *ReportService) Progress(ctx context.Context, userID int) (*model.ProgressReport, error) {
	var adjustments []model.Adjustment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_on ASC").
		Find(&adjustments).Error
	if err != nil {
		return nil, fmt.Errorf("query adjustments: %w", err)
	}
	if len(adjustments) == 0 {
		return nil, nil
	}

	report := &model.ProgressReport{
		Accepted: []model.ProgressEntry{},
		Pending:  []model.ProgressEntry{},
		Rejected: []model.ProgressEntry{},
	}
	for _, a := range adjustments {
		entry := model.ProgressEntry{
			Habit:         a.Habit,
			PreviousValue: a.CurrentValue,
			NewValue:      a.SuggestedValue,
			Date:          a.AppliedOn,
		}
		switch a.Status {
		case model.StatusAccepted:
			report.Accepted = append(report.Accepted, entry)
		case model.StatusPending:
			report.Pending = append(report.Pending, entry)
		default:
			report.Rejected = append(report.Rejected, entry)
		}
	}
	return report, nil
}

// History buckets resolved entries into accepted and rejected, newest
// resolution first. Returns nil when the user has no history.
func (s *ReportService) History(ctx context.Context, userID int) (*model.HistoryReport, error) {
	entries, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	report := &model.HistoryReport{
		Accepted: []model.ProgressEntry{},
		Rejected: []model.ProgressEntry{},
	}
	for _, e := range entries {
		entry := model.ProgressEntry{
			Habit:         e.Habit,
			PreviousValue: e.PreviousValue,
			NewValue:      e.NewValue,
			Date:          e.ResolvedOn,
		}
		if e.Status == model.StatusAccepted {
			report.Accepted = append(report.Accepted, entry)
		} else {
			report.Rejected = append(report.Rejected, entry)
		}
	}
	return report, nil
}

// Reminders returns the history entries accepted today. The reminder text
// comes straight from storage; nothing is generated here.
func (s *ReportService) Reminders(ctx context.Context, userID int) ([]model.Reminder, error) {
	today := time.Now().Format("2006-01-02")
	var entries []model.HistoryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND resolved_on = ?", userID, model.StatusAccepted, today).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}

	reminders := make([]model.Reminder, 0, len(entries))
	for _, e := range entries {
		reminders = append(reminders, model.Reminder{
			Habit:    e.Habit,
			Reminder: e.ReminderMessage,
			Date:     e.ResolvedOn,
		})
	}
	return reminders, nil
}

// Insights maps each history entry to one sentence, ordered like the
// history report (newest first).
func (s *ReportService) Insights(ctx context.Context, userID int) ([]string, error) {
	entries, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	insights := make([]string, 0, len(entries))
	for _, e := range entries {
		switch e.Status {
		case model.StatusAccepted:
			insights = append(insights, fmt.Sprintf(
				"You successfully changed %s from '%s' to '%s' on %s. Keep it up!",
				e.Habit, e.PreviousValue, e.NewValue, e.ResolvedOn))
		case model.StatusRejected:
			insights = append(insights, fmt.Sprintf(
				"You decided not to change %s from '%s' to '%s' on %s. That's okay! Adjust at your own pace.",
				e.Habit, e.PreviousValue, e.NewValue, e.ResolvedOn))
		}
	}
	return insights, nil
}

// Projections restates, per habit, the first previous value and the most
// recent accepted value in date-ascending order. No extrapolation: the
// "projection" is simply where the habit stands now.
func (s *ReportService) Projections(ctx context.Context, userID int) ([]string, error) {
	var entries []model.HistoryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.StatusAccepted).
		Order("resolved_on ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query accepted history: %w", err)
	}

	type trend struct {
		start   string
		current string
	}
	trends := make(map[model.Habit]*trend)
	var order []model.Habit
	for _, e := range entries {
		t, ok := trends[e.Habit]
		if !ok {
			t = &trend{start: e.PreviousValue}
			trends[e.Habit] = t
			order = append(order, e.Habit)
		}
		t.current = e.NewValue
	}

	projections := make([]string, 0, len(order))
	for _, habit := range order {
		t := trends[habit]
		projections = append(projections, fmt.Sprintf(
			"If you continue, your %s could improve from '%s' to '%s' within a few months!",
			habit, t.start, t.current))
	}
	return projections, nil
}

func (s *ReportService) history(ctx context.Context, userID int) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("resolved_on DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return entries, nil
}
