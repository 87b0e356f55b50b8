package migration

import (
	"testing"

	"github.com/slzdigital/catalogo/internal/config"
	referencedomain "github.com/slzdigital/catalogo/internal/reference/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestPrepareSqliteBuildsSchemaAndSeeds(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migration_prepare?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Config{DBType: "sqlite", DBName: "migration_prepare"}
	require.NoError(t, Prepare(db, cfg, zap.NewNop()))

	var categoryCount, secretaryCount int64
	require.NoError(t, db.Model(&referencedomain.Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.Model(&referencedomain.Secretary{}).Count(&secretaryCount).Error)
	assert.Equal(t, int64(6), categoryCount)
	assert.Equal(t, int64(11), secretaryCount)

	// a second start must not duplicate reference rows
	require.NoError(t, Prepare(db, cfg, zap.NewNop()))
	require.NoError(t, db.Model(&referencedomain.Secretary{}).Count(&secretaryCount).Error)
	assert.Equal(t, int64(11), secretaryCount)
}
