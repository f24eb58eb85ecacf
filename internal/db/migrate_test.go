package db

import (
	"testing"

	"asset_map/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(gdb))

	m := gdb.Migrator()
	assert.True(t, m.HasTable(&domain.User{}))
	assert.True(t, m.HasTable(&domain.Asset{}))
	assert.True(t, m.HasIndex(&domain.Asset{}, "idx_assets_owner_mnemonic"))
	assert.True(t, m.HasIndex(&domain.User{}, "idx_users_email"))

	// Running twice is a no-op
	require.NoError(t, Migrate(gdb))
}
