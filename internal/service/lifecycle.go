package service

import (
	"context"
	"fmt"
	"time"

	"habit-coach/internal/model"

	"gorm.io/gorm"
)

// LifecycleService resolves pending adjustments: the row is archived into
// habit_history and removed from habit_adjustments in one transaction, so
// readers never see both records for the same logical change.
type LifecycleService struct{ db *gorm.DB }

func NewLifecycleService(db *gorm.DB) *LifecycleService { return &LifecycleService{db: db} }

// Resolve moves the adjustment with the given id into history under the
// supplied terminal status. Returns ErrInvalidStatus or ErrNotFound
// without mutating anything.
func (s *LifecycleService) Resolve(ctx context.Context, adjustmentID int, status model.Status) (*model.HistoryEntry, error) {
	if !status.IsResolution() {
		return nil, ErrInvalidStatus
	}

	var entry model.HistoryEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var adj model.Adjustment
		if err := tx.First(&adj, adjustmentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return fmt.Errorf("query adjustment: %w", err)
		}

		entry = model.HistoryEntry{
			UserID:        adj.UserID,
			Habit:         adj.Habit,
			PreviousValue: adj.CurrentValue,
			NewValue:      adj.SuggestedValue,
			Status:        status,
			ResolvedOn:    time.Now().Format("2006-01-02"),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
		if err := tx.Delete(&model.Adjustment{}, adjustmentID).Error; err != nil {
			return fmt.Errorf("delete adjustment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
