// Package testutil provides in-memory databases for repository and handler tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seasons mirrors the default SEASONS setting.
var Seasons = []string{"2023", "2024", "2025"}

// NewDB opens a private in-memory SQLite database with every owned table and
// the per-season leaderboard and results tables created.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.Owned()...))
	for _, season := range Seasons {
		require.NoError(t, db.Table(models.LeaderboardTable(season)).AutoMigrate(&models.LeaderboardRow{}))
		require.NoError(t, db.Table(models.ResultsTable(season)).AutoMigrate(&models.SeasonResult{}))
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
