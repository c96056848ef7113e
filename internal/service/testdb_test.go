package service

import (
	"fmt"
	"strings"
	"testing"

	"habit-coach/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database, named per test so parallel
// tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Routine{}, &model.Adjustment{}, &model.HistoryEntry{}))
	return db
}

func seedRoutine(t *testing.T, db *gorm.DB, r model.Routine) model.Routine {
	t.Helper()
	require.NoError(t, db.Create(&r).Error)
	return r
}
