package seed_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/propaint/estimate-api/internal/database"
	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/seed"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestSeed_PopulatesEmptyDatabase(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, seed.Run(context.Background(), db, zap.NewNop()))

	var templates int64
	require.NoError(t, db.Model(&domain.ItemTemplate{}).Count(&templates).Error)
	assert.Equal(t, int64(5), templates)

	var materials int64
	require.NoError(t, db.Model(&domain.MaterialLine{}).Count(&materials).Error)
	assert.Equal(t, int64(6), materials)

	var presets int64
	require.NoError(t, db.Model(&domain.RoomNamePreset{}).Count(&presets).Error)
	assert.Equal(t, int64(12), presets)

	var settings domain.AppSettings
	require.NoError(t, db.First(&settings, "id = ?", domain.SettingsRowID).Error)
	assert.InDelta(t, 50.0, settings.Settings.LaborRatePerHour, 0.001)

	var walls domain.ItemTemplate
	require.NoError(t, db.First(&walls, "id = ?", "tpl_walls").Error)
	assert.Equal(t, domain.CalcWallArea, walls.Strategy)
	assert.Equal(t, 2, walls.DefaultCoats)
	assert.True(t, walls.IsActive)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)
	ctx := context.Background()

	require.NoError(t, seed.Run(ctx, db, zap.NewNop()))
	require.NoError(t, seed.Run(ctx, db, zap.NewNop()))

	var templates int64
	require.NoError(t, db.Model(&domain.ItemTemplate{}).Count(&templates).Error)
	assert.Equal(t, int64(5), templates)

	var materials int64
	require.NoError(t, db.Model(&domain.MaterialLine{}).Count(&materials).Error)
	assert.Equal(t, int64(6), materials)
}

func TestSeed_PreservesOperatorEdits(t *testing.T) {
	db := setupSeedTestDB(t)
	ctx := context.Background()

	require.NoError(t, seed.Run(ctx, db, zap.NewNop()))

	// An operator reprices a line; a restart must not undo it
	require.NoError(t, db.Model(&domain.MaterialLine{}).
		Where("id = ?", "mat_sw_promar200").
		Update("price_per_gallon", 42.50).Error)

	require.NoError(t, seed.Run(ctx, db, zap.NewNop()))

	var material domain.MaterialLine
	require.NoError(t, db.First(&material, "id = ?", "mat_sw_promar200").Error)
	assert.InDelta(t, 42.50, material.PricePerGallon, 0.001)
}
